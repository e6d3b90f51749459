package codegen

import (
	"fmt"
	"io"
	"strings"
)

// Struct is a struct definition with named fields, tuple fields, or
// neither (a unit struct).
type Struct struct {
	name       string
	vis        string
	docs       *Docs
	derives    []string
	attributes []string
	generics   []string
	bounds     []Bound
	fields     []*Field
	tuple      []Type
}

// NewStruct returns a new struct definition with the given name.
func NewStruct(name string) *Struct {
	return &Struct{name: name}
}

// Name returns the struct name.
func (s *Struct) Name() string {
	return s.name
}

// Doc sets the struct documentation.
func (s *Struct) Doc(docs string) *Struct {
	s.docs = NewDocs(docs)
	return s
}

// Vis sets the struct visibility.
func (s *Struct) Vis(vis string) *Struct {
	s.vis = vis
	return s
}

// Derive adds a trait to the `#[derive(...)]` attribute.
func (s *Struct) Derive(trait string) *Struct {
	s.derives = append(s.derives, trait)
	return s
}

// Attr adds a verbatim attribute line, e.g. `serde(deny_unknown_fields)`.
func (s *Struct) Attr(attribute string) *Struct {
	s.attributes = append(s.attributes, attribute)
	return s
}

// Generic adds a generic parameter.
func (s *Struct) Generic(name string) *Struct {
	s.generics = append(s.generics, name)
	return s
}

// Bound adds a where-clause bound.
func (s *Struct) Bound(name string, ty Type) *Struct {
	s.bounds = append(s.bounds, Bound{Name: name, Traits: []Type{ty}})
	return s
}

// Field adds a named field and returns it for further mutation. The
// returned handle stays valid as more fields are added.
func (s *Struct) Field(name string, ty Type) *Field {
	field := &Field{Name: name, Ty: ty}
	s.fields = append(s.fields, field)
	return field
}

// PushField adds a named field.
func (s *Struct) PushField(field Field) *Struct {
	s.fields = append(s.fields, &field)
	return s
}

// Tuple adds an unnamed tuple field. Named and tuple fields are mutually
// exclusive; when both are present the named fields win.
func (s *Struct) Tuple(ty Type) *Struct {
	s.tuple = append(s.tuple, ty)
	return s
}

func (s *Struct) render(f *Formatter) error {
	if s.docs != nil {
		if err := s.docs.render(f); err != nil {
			return err
		}
	}
	if len(s.derives) > 0 {
		if _, err := fmt.Fprintf(f, "#[derive(%s)]\n", strings.Join(s.derives, ", ")); err != nil {
			return err
		}
	}
	for _, attr := range s.attributes {
		if _, err := fmt.Fprintf(f, "#[%s]\n", attr); err != nil {
			return err
		}
	}
	if s.vis != "" {
		if _, err := fmt.Fprintf(f, "%s ", s.vis); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(f, "struct "+s.name); err != nil {
		return err
	}
	if err := formatGenerics(f, s.generics); err != nil {
		return err
	}

	switch {
	case len(s.fields) > 0:
		if err := formatBounds(f, s.bounds); err != nil {
			return err
		}
		return f.Block(func(f *Formatter) error {
			for _, field := range s.fields {
				if err := renderField(f, *field); err != nil {
					return err
				}
			}
			return nil
		})
	case len(s.tuple) > 0:
		names := make([]string, len(s.tuple))
		for i, ty := range s.tuple {
			names[i] = ty.String()
		}
		// In tuple form the where clause follows the parenthesized fields.
		if _, err := fmt.Fprintf(f, "(%s)", strings.Join(names, ", ")); err != nil {
			return err
		}
		if err := formatBounds(f, s.bounds); err != nil {
			return err
		}
		_, err := io.WriteString(f, ";\n")
		return err
	default:
		if err := formatBounds(f, s.bounds); err != nil {
			return err
		}
		_, err := io.WriteString(f, ";\n")
		return err
	}
}

// renderField writes one named field line, preceded by its documentation
// and annotations. Shared by structs and named enum variants.
func renderField(f *Formatter, field Field) error {
	for _, line := range field.Documentation {
		if _, err := fmt.Fprintf(f, "/// %s\n", line); err != nil {
			return err
		}
	}
	for _, ann := range field.Annotations {
		if _, err := fmt.Fprintf(f, "#[%s]\n", ann); err != nil {
			return err
		}
	}
	if field.Vis != "" {
		if _, err := fmt.Fprintf(f, "%s ", field.Vis); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(f, "%s: %s,\n", field.Name, field.Ty.String())
	return err
}
