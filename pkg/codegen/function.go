package codegen

import (
	"fmt"
	"io"
)

// Function is a free function, an impl method, or a trait method
// prototype. A function without a body renders as a `;`-terminated
// prototype.
type Function struct {
	name       string
	docs       *Docs
	attributes []string
	vis        string
	async      bool
	generics   []string
	receiver   string
	args       []Field
	ret        *Type
	bounds     []Bound
	body       []string
	hasBody    bool
}

// NewFunction returns a new function with the given name and no body.
func NewFunction(name string) *Function {
	return &Function{name: name}
}

// Doc sets the function documentation.
func (fn *Function) Doc(docs string) *Function {
	fn.docs = NewDocs(docs)
	return fn
}

// Attr adds a verbatim attribute line, e.g. `inline`.
func (fn *Function) Attr(attribute string) *Function {
	fn.attributes = append(fn.attributes, attribute)
	return fn
}

// Vis sets the function visibility.
func (fn *Function) Vis(vis string) *Function {
	fn.vis = vis
	return fn
}

// Async marks the function as async.
func (fn *Function) Async() *Function {
	fn.async = true
	return fn
}

// Generic adds a generic parameter.
func (fn *Function) Generic(name string) *Function {
	fn.generics = append(fn.generics, name)
	return fn
}

// SelfArg sets the receiver argument verbatim, e.g. `&self` or `&mut self`.
func (fn *Function) SelfArg(receiver string) *Function {
	fn.receiver = receiver
	return fn
}

// Arg adds a named argument.
func (fn *Function) Arg(name string, ty Type) *Function {
	fn.args = append(fn.args, Field{Name: name, Ty: ty})
	return fn
}

// Ret sets the return type.
func (fn *Function) Ret(ty Type) *Function {
	fn.ret = &ty
	return fn
}

// Bound adds a where-clause bound.
func (fn *Function) Bound(name string, ty Type) *Function {
	fn.bounds = append(fn.bounds, Bound{Name: name, Traits: []Type{ty}})
	return fn
}

// Line appends one line to the function body. The first call gives the
// function a body, switching rendering from a prototype to a block.
func (fn *Function) Line(line string) *Function {
	fn.hasBody = true
	fn.body = append(fn.body, line)
	return fn
}

// Linef appends one formatted line to the function body.
func (fn *Function) Linef(format string, args ...any) *Function {
	return fn.Line(fmt.Sprintf(format, args...))
}

func (fn *Function) render(f *Formatter) error {
	return fn.renderIn(false, f)
}

// renderIn formats the function. Inside a trait the visibility token is
// suppressed, since trait methods inherit the trait's visibility.
func (fn *Function) renderIn(insideTrait bool, f *Formatter) error {
	if fn.docs != nil {
		if err := fn.docs.render(f); err != nil {
			return err
		}
	}
	for _, attr := range fn.attributes {
		if _, err := fmt.Fprintf(f, "#[%s]\n", attr); err != nil {
			return err
		}
	}
	if !insideTrait && fn.vis != "" {
		if _, err := fmt.Fprintf(f, "%s ", fn.vis); err != nil {
			return err
		}
	}
	if fn.async {
		if _, err := io.WriteString(f, "async "); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(f, "fn "+fn.name); err != nil {
		return err
	}
	if err := formatGenerics(f, fn.generics); err != nil {
		return err
	}

	if _, err := io.WriteString(f, "("); err != nil {
		return err
	}
	wroteArg := false
	if fn.receiver != "" {
		if _, err := io.WriteString(f, fn.receiver); err != nil {
			return err
		}
		wroteArg = true
	}
	for _, arg := range fn.args {
		if wroteArg {
			if _, err := io.WriteString(f, ", "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(f, "%s: %s", arg.Name, arg.Ty.String()); err != nil {
			return err
		}
		wroteArg = true
	}
	if _, err := io.WriteString(f, ")"); err != nil {
		return err
	}

	if fn.ret != nil {
		if _, err := fmt.Fprintf(f, " -> %s", fn.ret.String()); err != nil {
			return err
		}
	}
	if err := formatBounds(f, fn.bounds); err != nil {
		return err
	}

	if !fn.hasBody {
		_, err := io.WriteString(f, ";\n")
		return err
	}
	return f.Block(func(f *Formatter) error {
		for _, line := range fn.body {
			if _, err := fmt.Fprintf(f, "%s\n", line); err != nil {
				return err
			}
		}
		return nil
	})
}
