// Package typeexpr parses Rust type expressions appearing in schema files
// (field types, method signatures, alias targets) into codegen types.
// Only type syntax is handled here; generated source is never parsed.
package typeexpr

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/quillgen/quill/pkg/codegen"
)

// expr is the grammar root: a reference, tuple, slice/array, or path type.
type expr struct {
	Ref   *refExpr   `parser:"  @@"`
	Tuple *tupleExpr `parser:"| @@"`
	Slice *sliceExpr `parser:"| @@"`
	Path  *pathExpr  `parser:"| @@"`
}

type refExpr struct {
	Lifetime string `parser:"'&' @Lifetime?"`
	Mut      bool   `parser:"@'mut'?"`
	Elem     *expr  `parser:"@@"`
}

type tupleExpr struct {
	Elems []*expr `parser:"'(' (@@ (',' @@)*)? ')'"`
}

type sliceExpr struct {
	Elem *expr  `parser:"'[' @@"`
	Len  string `parser:"(';' @Number)? ']'"`
}

type pathExpr struct {
	Segments []string      `parser:"@Ident ('::' @Ident)*"`
	Args     []*genericArg `parser:"('<' @@ (',' @@)* '>')?"`
}

// genericArg admits lifetimes (`Formatter<'_>`) in argument position only;
// a bare lifetime is not a type.
type genericArg struct {
	Lifetime string `parser:"  @Lifetime"`
	Type     *expr  `parser:"| @@"`
}

var typeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Lifetime", Pattern: `'[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "PathSep", Pattern: `::`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[<>&(),;\[\]]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[expr](
	participle.Lexer(typeLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse turns a type expression into a codegen type. Path types keep
// their generic arguments structured; references, tuples, and slices
// lower to normalized raw type text.
func Parse(input string) (codegen.Type, error) {
	node, err := parser.ParseString("", input)
	if err != nil {
		return codegen.Type{}, err
	}
	return node.lower(), nil
}

func (e *expr) lower() codegen.Type {
	switch {
	case e.Ref != nil:
		prefix := "&"
		if e.Ref.Lifetime != "" {
			prefix += e.Ref.Lifetime + " "
		}
		if e.Ref.Mut {
			prefix += "mut "
		}
		return codegen.NewType(prefix + e.Ref.Elem.lower().String())

	case e.Tuple != nil:
		parts := make([]string, len(e.Tuple.Elems))
		for i, elem := range e.Tuple.Elems {
			parts[i] = elem.lower().String()
		}
		return codegen.NewType("(" + strings.Join(parts, ", ") + ")")

	case e.Slice != nil:
		elem := e.Slice.Elem.lower().String()
		if e.Slice.Len != "" {
			return codegen.NewType("[" + elem + "; " + e.Slice.Len + "]")
		}
		return codegen.NewType("[" + elem + "]")

	default:
		ty := codegen.NewType(strings.Join(e.Path.Segments, "::"))
		for _, arg := range e.Path.Args {
			if arg.Lifetime != "" {
				ty = ty.WithGeneric(codegen.NewType(arg.Lifetime))
			} else {
				ty = ty.WithGeneric(arg.Type.lower())
			}
		}
		return ty
	}
}
