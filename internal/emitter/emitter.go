// Package emitter lowers validated schema packages onto the codegen
// builder API and writes the rendered source to disk.
package emitter

import (
	"os"
	"strings"

	"github.com/quillgen/quill/internal/errors"
	"github.com/quillgen/quill/internal/schema"
	"github.com/quillgen/quill/internal/schema/typeexpr"
	"github.com/quillgen/quill/pkg/codegen"
)

// Build constructs the codegen scope for a schema package. Declarations
// are appended kind by kind in schema order, so identical schemas always
// produce identical trees.
func Build(pkg *schema.Package) (*codegen.Scope, error) {
	scope := codegen.NewScope()
	if pkg.Docs != "" {
		scope.Doc(pkg.Docs)
	}
	if err := buildBody(scope, &pkg.Body); err != nil {
		return nil, errors.WrapGenerateError(pkg.Name, err)
	}
	return scope, nil
}

// Render produces the final file contents for a schema package.
func Render(pkg *schema.Package) (string, error) {
	scope, err := Build(pkg)
	if err != nil {
		return "", err
	}
	out := scope.String()
	if out != "" {
		out += "\n"
	}
	return out, nil
}

// Check reports whether the file at path already holds the output the
// schema renders to. A missing file counts as stale.
func Check(pkg *schema.Package, path string) (bool, error) {
	want, err := Render(pkg)
	if err != nil {
		return false, err
	}
	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.WrapFileSystemError("read", path, err)
	}
	return string(existing) == want, nil
}

func buildBody(scope *codegen.Scope, body *schema.Body) error {
	for _, imp := range body.Imports {
		for _, ty := range imp.Types {
			entry := scope.Import(imp.Path, ty)
			if imp.Vis != "" {
				entry.Vis(imp.Vis)
			}
		}
	}

	for _, st := range body.Structs {
		if err := buildStruct(scope, st); err != nil {
			return err
		}
	}
	for _, en := range body.Enums {
		if err := buildEnum(scope, en); err != nil {
			return err
		}
	}
	for _, tr := range body.Traits {
		if err := buildTrait(scope, tr); err != nil {
			return err
		}
	}
	for _, im := range body.Impls {
		if err := buildImpl(scope, im); err != nil {
			return err
		}
	}
	for _, cst := range body.Consts {
		ty, err := parseType(cst.Type, "const "+cst.Name)
		if err != nil {
			return err
		}
		out := scope.NewConst(cst.Name).Ty(ty).Value(cst.Value)
		if cst.Vis != "" {
			out.Vis(cst.Vis)
		}
		if cst.Docs != "" {
			out.Doc(cst.Docs)
		}
	}
	for _, alias := range body.Aliases {
		target, err := parseType(alias.Target, "alias "+alias.Name)
		if err != nil {
			return err
		}
		out := scope.NewTypeAlias(alias.Name, target)
		if alias.Vis != "" {
			out.Vis(alias.Vis)
		}
		if alias.Docs != "" {
			out.Doc(alias.Docs)
		}
	}
	for _, text := range body.Raw {
		scope.Raw(text)
	}

	for i := range body.Modules {
		m := &body.Modules[i]
		// GetOrNewModule merges repeated blocks for the same module, so a
		// schema can split a large module into several sections.
		module := scope.GetOrNewModule(m.Name)
		if m.Vis != "" {
			module.Vis(m.Vis)
		}
		if m.Docs != "" {
			module.Doc(m.Docs)
		}
		for _, attr := range m.Attrs {
			module.Attr(attr)
		}
		if err := buildBody(module.Scope(), &m.Body); err != nil {
			return err
		}
	}

	return nil
}

func buildStruct(scope *codegen.Scope, st schema.Struct) error {
	out := scope.NewStruct(st.Name)
	if st.Vis != "" {
		out.Vis(st.Vis)
	}
	if st.Docs != "" {
		out.Doc(st.Docs)
	}
	for _, derive := range st.Derive {
		out.Derive(derive)
	}
	for _, attr := range st.Attrs {
		out.Attr(attr)
	}
	for _, generic := range st.Generics {
		out.Generic(generic)
	}
	for _, f := range st.Fields {
		ty, err := parseType(f.Type, st.Name+"."+f.Name)
		if err != nil {
			return err
		}
		field := out.Field(f.Name, ty)
		field.Vis = f.Vis
		field.Annotations = f.Attrs
		if f.Docs != "" {
			field.Documentation = strings.Split(f.Docs, "\n")
		}
	}
	for _, raw := range st.Tuple {
		ty, err := parseType(raw, "struct "+st.Name)
		if err != nil {
			return err
		}
		out.Tuple(ty)
	}
	return nil
}

func buildEnum(scope *codegen.Scope, en schema.Enum) error {
	out := scope.NewEnum(en.Name)
	if en.Vis != "" {
		out.Vis(en.Vis)
	}
	if en.Docs != "" {
		out.Doc(en.Docs)
	}
	for _, derive := range en.Derive {
		out.Derive(derive)
	}
	for _, attr := range en.Attrs {
		out.Attr(attr)
	}
	for _, generic := range en.Generics {
		out.Generic(generic)
	}
	for _, v := range en.Variants {
		variant := out.NewVariant(v.Name)
		if v.Docs != "" {
			variant.Doc(v.Docs)
		}
		for _, raw := range v.Tuple {
			ty, err := parseType(raw, en.Name+"::"+v.Name)
			if err != nil {
				return err
			}
			variant.Tuple(ty)
		}
		for _, f := range v.Fields {
			ty, err := parseType(f.Type, en.Name+"::"+v.Name+"."+f.Name)
			if err != nil {
				return err
			}
			variant.Named(f.Name, ty)
		}
	}
	return nil
}

func buildTrait(scope *codegen.Scope, tr schema.Trait) error {
	out := scope.NewTrait(tr.Name)
	if tr.Vis != "" {
		out.Vis(tr.Vis)
	}
	if tr.Docs != "" {
		out.Doc(tr.Docs)
	}
	for _, attr := range tr.Attrs {
		out.Attr(attr)
	}
	for _, generic := range tr.Generics {
		out.Generic(generic)
	}
	for _, parent := range tr.Parents {
		ty, err := parseType(parent, "trait "+tr.Name)
		if err != nil {
			return err
		}
		out.Parent(ty)
	}
	for _, assoc := range tr.Types {
		if assoc.Bound != "" {
			bound, err := parseType(assoc.Bound, tr.Name+"::"+assoc.Name)
			if err != nil {
				return err
			}
			out.AssociatedType(assoc.Name, bound)
		} else {
			out.AssociatedType(assoc.Name)
		}
	}
	for _, m := range tr.Methods {
		fn, err := buildMethod(tr.Name, m)
		if err != nil {
			return err
		}
		out.PushFn(fn)
	}
	return nil
}

func buildImpl(scope *codegen.Scope, im schema.Impl) error {
	target, err := parseType(im.Target, "impl "+im.Target)
	if err != nil {
		return err
	}
	out := codegen.NewImpl(target)
	scope.PushImpl(out)

	owner := im.Target
	if im.Trait != "" {
		trait, err := parseType(im.Trait, "impl "+im.Trait+" for "+im.Target)
		if err != nil {
			return err
		}
		out.ImplTrait(trait)
		owner = im.Trait + " for " + im.Target
	}
	for _, attr := range im.Attrs {
		out.Attr(attr)
	}
	for _, generic := range im.Generics {
		out.Generic(generic)
	}
	for _, m := range im.Methods {
		fn, err := buildMethod(owner, m)
		if err != nil {
			return err
		}
		out.PushFn(fn)
	}
	return nil
}

func buildMethod(owner string, m schema.Method) (*codegen.Function, error) {
	fn := codegen.NewFunction(m.Name)
	if m.Vis != "" {
		fn.Vis(m.Vis)
	}
	if m.Docs != "" {
		fn.Doc(m.Docs)
	}
	for _, attr := range m.Attrs {
		fn.Attr(attr)
	}
	if m.Async {
		fn.Async()
	}
	for _, generic := range m.Generics {
		fn.Generic(generic)
	}
	if m.SelfArg != "" {
		fn.SelfArg(m.SelfArg)
	}
	for _, arg := range m.Args {
		ty, err := parseType(arg.Type, owner+"."+m.Name+"("+arg.Name+")")
		if err != nil {
			return nil, err
		}
		fn.Arg(arg.Name, ty)
	}
	if m.Ret != "" {
		ty, err := parseType(m.Ret, owner+"."+m.Name)
		if err != nil {
			return nil, err
		}
		fn.Ret(ty)
	}
	for _, line := range m.Body {
		fn.Line(line)
	}
	return fn, nil
}

func parseType(raw, element string) (codegen.Type, error) {
	ty, err := typeexpr.Parse(raw)
	if err != nil {
		return codegen.Type{}, errors.WrapTypeExprError(raw, element, err)
	}
	return ty, nil
}
