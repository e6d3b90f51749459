package codegen

// Bound is a single where-clause entry: a type parameter name and the
// traits it must satisfy.
type Bound struct {
	Name   string
	Traits []Type
}
