package codegen

import (
	"fmt"
	"strings"
)

// Type is a reference to a named type, optionally carrying generic
// arguments (`HashMap<String, i32>`). The name may be any raw type text,
// including paths (`core::option::Option`), references, or tuples.
type Type struct {
	name     string
	generics []Type
}

// NewType creates a type reference with the given name.
func NewType(name string) Type {
	return Type{name: name}
}

// WithGeneric returns a copy of the type with the given generic arguments
// appended.
func (t Type) WithGeneric(args ...Type) Type {
	generics := make([]Type, 0, len(t.generics)+len(args))
	generics = append(generics, t.generics...)
	generics = append(generics, args...)
	return Type{name: t.name, generics: generics}
}

// Name returns the base name of the type, without generic arguments.
func (t Type) Name() string {
	return t.name
}

// String returns the rendered form of the type.
func (t Type) String() string {
	if len(t.generics) == 0 {
		return t.name
	}
	args := make([]string, len(t.generics))
	for i, g := range t.generics {
		args[i] = g.String()
	}
	return fmt.Sprintf("%s<%s>", t.name, strings.Join(args, ", "))
}
