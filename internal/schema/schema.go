// Package schema defines the declarative TOML input format of the quill
// CLI and its validation rules. A schema file describes one generated
// source file: its imports, declarations, and nested modules.
package schema

// Package is the root of a schema file.
type Package struct {
	// Name of the generated package; used for the output file name.
	Name string `toml:"name"`

	// Format is the schema format version, e.g. "v1". Defaults to the
	// current format when omitted.
	Format string `toml:"format"`

	// Docs renders as the file-level documentation block.
	Docs string `toml:"docs"`

	Body

	// Source is the path the schema was loaded from. Populated by Load,
	// not by the schema author.
	Source string `toml:"-"`

	// Undecoded lists schema keys that matched nothing in the model,
	// surfaced as warnings by the CLI. Populated by Load.
	Undecoded []string `toml:"-"`
}

// Body is the set of declarations a package or module can hold. Modules
// nest recursively.
type Body struct {
	Imports []Import    `toml:"import"`
	Structs []Struct    `toml:"struct"`
	Enums   []Enum      `toml:"enum"`
	Traits  []Trait     `toml:"trait"`
	Impls   []Impl      `toml:"impl"`
	Consts  []Const     `toml:"const"`
	Aliases []TypeAlias `toml:"alias"`
	Modules []Module    `toml:"module"`
	Raw     []string    `toml:"raw"`
}

// Import brings one or more types from a path into the generated scope.
type Import struct {
	Path  string   `toml:"path"`
	Types []string `toml:"types"`
	Vis   string   `toml:"vis"`
}

// Struct describes a struct declaration.
type Struct struct {
	Name     string   `toml:"name"`
	Vis      string   `toml:"vis"`
	Docs     string   `toml:"docs"`
	Derive   []string `toml:"derive"`
	Attrs    []string `toml:"attrs"`
	Generics []string `toml:"generics"`
	Fields   []Field  `toml:"field"`
	Tuple    []string `toml:"tuple"`
}

// Field is a named struct or variant field.
type Field struct {
	Name  string   `toml:"name"`
	Type  string   `toml:"type"`
	Vis   string   `toml:"vis"`
	Docs  string   `toml:"docs"`
	Attrs []string `toml:"attrs"`
}

// Enum describes an enum declaration.
type Enum struct {
	Name     string    `toml:"name"`
	Vis      string    `toml:"vis"`
	Docs     string    `toml:"docs"`
	Derive   []string  `toml:"derive"`
	Attrs    []string  `toml:"attrs"`
	Generics []string  `toml:"generics"`
	Variants []Variant `toml:"variant"`
}

// Variant is one enum variant: unit when both Tuple and Fields are empty.
type Variant struct {
	Name   string   `toml:"name"`
	Docs   string   `toml:"docs"`
	Tuple  []string `toml:"tuple"`
	Fields []Field  `toml:"field"`
}

// Trait describes a trait declaration.
type Trait struct {
	Name     string       `toml:"name"`
	Vis      string       `toml:"vis"`
	Docs     string       `toml:"docs"`
	Attrs    []string     `toml:"attrs"`
	Generics []string     `toml:"generics"`
	Parents  []string     `toml:"parents"`
	Types    []AssocType  `toml:"type"`
	Methods  []Method     `toml:"method"`
}

// AssocType is an associated type declaration inside a trait.
type AssocType struct {
	Name  string `toml:"name"`
	Bound string `toml:"bound"`
}

// Impl describes an impl block, inherent or for a trait.
type Impl struct {
	Target   string   `toml:"target"`
	Trait    string   `toml:"trait"`
	Attrs    []string `toml:"attrs"`
	Generics []string `toml:"generics"`
	Methods  []Method `toml:"method"`
}

// Method is a function inside a trait or impl block. A method without
// body lines renders as a prototype.
type Method struct {
	Name     string   `toml:"name"`
	Vis      string   `toml:"vis"`
	Docs     string   `toml:"docs"`
	Attrs    []string `toml:"attrs"`
	Async    bool     `toml:"async"`
	SelfArg  string   `toml:"self"`
	Args     []Arg    `toml:"args"`
	Ret      string   `toml:"ret"`
	Generics []string `toml:"generics"`
	Body     []string `toml:"body"`
}

// Arg is a named method argument.
type Arg struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

// Const describes a constant.
type Const struct {
	Name  string `toml:"name"`
	Type  string `toml:"type"`
	Value string `toml:"value"`
	Vis   string `toml:"vis"`
	Docs  string `toml:"docs"`
}

// TypeAlias describes a `type Name = Target;` alias.
type TypeAlias struct {
	Name   string `toml:"name"`
	Target string `toml:"target"`
	Vis    string `toml:"vis"`
	Docs   string `toml:"docs"`
}

// Module is a nested module. Repeating a module name merges the bodies in
// schema order, so large modules can be split across blocks.
type Module struct {
	Name  string   `toml:"name"`
	Vis   string   `toml:"vis"`
	Docs  string   `toml:"docs"`
	Attrs []string `toml:"attrs"`

	Body
}
