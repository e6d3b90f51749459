package codegen

import (
	"fmt"
	"io"
	"strings"
)

// Enum is an enum definition.
type Enum struct {
	name       string
	vis        string
	docs       *Docs
	derives    []string
	attributes []string
	generics   []string
	variants   []*Variant
}

// Variant is a single enum variant: unit, tuple, or named-field form.
type Variant struct {
	name   string
	docs   *Docs
	fields []Field
	tuple  []Type
}

// NewEnum returns a new enum definition with the given name.
func NewEnum(name string) *Enum {
	return &Enum{name: name}
}

// Doc sets the enum documentation.
func (e *Enum) Doc(docs string) *Enum {
	e.docs = NewDocs(docs)
	return e
}

// Vis sets the enum visibility.
func (e *Enum) Vis(vis string) *Enum {
	e.vis = vis
	return e
}

// Derive adds a trait to the `#[derive(...)]` attribute.
func (e *Enum) Derive(trait string) *Enum {
	e.derives = append(e.derives, trait)
	return e
}

// Attr adds a verbatim attribute line.
func (e *Enum) Attr(attribute string) *Enum {
	e.attributes = append(e.attributes, attribute)
	return e
}

// Generic adds a generic parameter.
func (e *Enum) Generic(name string) *Enum {
	e.generics = append(e.generics, name)
	return e
}

// NewVariant appends a new variant and returns it for further mutation.
func (e *Enum) NewVariant(name string) *Variant {
	v := &Variant{name: name}
	e.variants = append(e.variants, v)
	return v
}

// PushVariant appends a variant.
func (e *Enum) PushVariant(v *Variant) *Enum {
	e.variants = append(e.variants, v)
	return e
}

// Doc sets the variant documentation.
func (v *Variant) Doc(docs string) *Variant {
	v.docs = NewDocs(docs)
	return v
}

// Named adds a named field to the variant.
func (v *Variant) Named(name string, ty Type) *Variant {
	v.fields = append(v.fields, Field{Name: name, Ty: ty})
	return v
}

// Tuple adds a tuple field to the variant.
func (v *Variant) Tuple(ty Type) *Variant {
	v.tuple = append(v.tuple, ty)
	return v
}

func (e *Enum) render(f *Formatter) error {
	if e.docs != nil {
		if err := e.docs.render(f); err != nil {
			return err
		}
	}
	if len(e.derives) > 0 {
		if _, err := fmt.Fprintf(f, "#[derive(%s)]\n", strings.Join(e.derives, ", ")); err != nil {
			return err
		}
	}
	for _, attr := range e.attributes {
		if _, err := fmt.Fprintf(f, "#[%s]\n", attr); err != nil {
			return err
		}
	}
	if e.vis != "" {
		if _, err := fmt.Fprintf(f, "%s ", e.vis); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(f, "enum "+e.name); err != nil {
		return err
	}
	if err := formatGenerics(f, e.generics); err != nil {
		return err
	}

	return f.Block(func(f *Formatter) error {
		for _, v := range e.variants {
			if err := v.render(f); err != nil {
				return err
			}
		}
		return nil
	})
}

func (v *Variant) render(f *Formatter) error {
	if v.docs != nil {
		if err := v.docs.render(f); err != nil {
			return err
		}
	}

	switch {
	case len(v.fields) > 0:
		// A braced variant closes with `},` so a following variant stays
		// valid, which Block's bare `}` would not produce.
		if _, err := io.WriteString(f, v.name+" {\n"); err != nil {
			return err
		}
		if err := f.indented(func(f *Formatter) error {
			for _, field := range v.fields {
				if err := renderField(f, field); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return err
		}
		_, err := io.WriteString(f, "},\n")
		return err
	case len(v.tuple) > 0:
		names := make([]string, len(v.tuple))
		for i, ty := range v.tuple {
			names[i] = ty.String()
		}
		_, err := fmt.Fprintf(f, "%s(%s),\n", v.name, strings.Join(names, ", "))
		return err
	default:
		_, err := fmt.Fprintf(f, "%s,\n", v.name)
		return err
	}
}
