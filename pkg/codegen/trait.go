package codegen

import (
	"fmt"
	"io"
	"strings"
)

// Trait is a trait definition: supertraits, associated types, and method
// prototypes or provided methods.
type Trait struct {
	name       string
	vis        string
	docs       *Docs
	attributes []string
	generics   []string
	parents    []Type
	bounds     []Bound
	assocTys   []Field
	fns        []*Function
}

// NewTrait returns a new trait definition with the given name.
func NewTrait(name string) *Trait {
	return &Trait{name: name}
}

// Doc sets the trait documentation.
func (t *Trait) Doc(docs string) *Trait {
	t.docs = NewDocs(docs)
	return t
}

// Vis sets the trait visibility.
func (t *Trait) Vis(vis string) *Trait {
	t.vis = vis
	return t
}

// Attr adds a verbatim attribute line, e.g. `async_trait`.
func (t *Trait) Attr(attribute string) *Trait {
	t.attributes = append(t.attributes, attribute)
	return t
}

// Generic adds a generic parameter.
func (t *Trait) Generic(name string) *Trait {
	t.generics = append(t.generics, name)
	return t
}

// Parent adds a supertrait.
func (t *Trait) Parent(ty Type) *Trait {
	t.parents = append(t.parents, ty)
	return t
}

// Bound adds a where-clause bound.
func (t *Trait) Bound(name string, ty Type) *Trait {
	t.bounds = append(t.bounds, Bound{Name: name, Traits: []Type{ty}})
	return t
}

// AssociatedType adds an associated type declaration, optionally bounded.
func (t *Trait) AssociatedType(name string, bound ...Type) *Trait {
	field := Field{Name: name}
	if len(bound) > 0 {
		field.Ty = bound[0]
	}
	t.assocTys = append(t.assocTys, field)
	return t
}

// NewFn appends a new method and returns it. A method without a body
// renders as a required prototype; one with a body as a provided method.
func (t *Trait) NewFn(name string) *Function {
	fn := NewFunction(name)
	t.fns = append(t.fns, fn)
	return fn
}

// PushFn appends a method.
func (t *Trait) PushFn(fn *Function) *Trait {
	t.fns = append(t.fns, fn)
	return t
}

func (t *Trait) render(f *Formatter) error {
	if t.docs != nil {
		if err := t.docs.render(f); err != nil {
			return err
		}
	}
	for _, attr := range t.attributes {
		if _, err := fmt.Fprintf(f, "#[%s]\n", attr); err != nil {
			return err
		}
	}
	if t.vis != "" {
		if _, err := fmt.Fprintf(f, "%s ", t.vis); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(f, "trait "+t.name); err != nil {
		return err
	}
	if err := formatGenerics(f, t.generics); err != nil {
		return err
	}
	if len(t.parents) > 0 {
		names := make([]string, len(t.parents))
		for i, p := range t.parents {
			names[i] = p.String()
		}
		if _, err := fmt.Fprintf(f, ": %s", strings.Join(names, " + ")); err != nil {
			return err
		}
	}
	if err := formatBounds(f, t.bounds); err != nil {
		return err
	}

	return f.Block(func(f *Formatter) error {
		for _, assoc := range t.assocTys {
			if assoc.Ty.Name() != "" {
				if _, err := fmt.Fprintf(f, "type %s: %s;\n", assoc.Name, assoc.Ty.String()); err != nil {
					return err
				}
			} else if _, err := fmt.Fprintf(f, "type %s;\n", assoc.Name); err != nil {
				return err
			}
		}
		for i, fn := range t.fns {
			if i != 0 || len(t.assocTys) > 0 {
				if _, err := io.WriteString(f, "\n"); err != nil {
					return err
				}
			}
			if err := fn.renderIn(true, f); err != nil {
				return err
			}
		}
		return nil
	})
}
