package codegen

// Field is a named, typed member of a struct, enum variant, or impl block
// (associated consts and types reuse it). It is inert data; the owning
// declaration renders it.
type Field struct {
	// Name of the field.
	Name string

	// Ty is the field type.
	Ty Type

	// Documentation lines rendered above the field.
	Documentation []string

	// Annotations are attribute bodies rendered as `#[...]` lines, e.g.
	// `serde(rename = "x")`.
	Annotations []string

	// Value holds the initializer for associated constants.
	Value string

	// Vis is the optional visibility token.
	Vis string
}
