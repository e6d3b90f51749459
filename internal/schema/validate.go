package schema

import (
	"fmt"
	"regexp"

	"github.com/quillgen/quill/internal/errors"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the structural rules of a loaded schema: identifiers
// are well formed, declarations carry their required parts, and structs
// do not mix named and tuple fields. Type expressions are checked later,
// when the emitter parses them.
func (p *Package) Validate() error {
	loc := errors.SourceLocation{File: p.Source}

	if p.Name == "" {
		return errors.NewValidationError("package", "name is required", loc)
	}
	if !identPattern.MatchString(p.Name) {
		return errors.NewValidationError("package", fmt.Sprintf("name %q is not a valid identifier", p.Name), loc)
	}
	return p.Body.validate(loc)
}

func (b *Body) validate(loc errors.SourceLocation) error {
	for _, imp := range b.Imports {
		if imp.Path == "" {
			return errors.NewValidationError("import", "path is required", loc)
		}
		if len(imp.Types) == 0 {
			return errors.NewValidationError("import", fmt.Sprintf("import of %q lists no types", imp.Path), loc)
		}
	}

	for _, st := range b.Structs {
		if err := checkIdent("struct", st.Name, loc); err != nil {
			return err
		}
		if len(st.Fields) > 0 && len(st.Tuple) > 0 {
			return errors.NewValidationError("struct", fmt.Sprintf("%q mixes named and tuple fields", st.Name), loc).
				WithSuggestion("use either [[struct.field]] blocks or the tuple list, not both")
		}
		for _, field := range st.Fields {
			if err := checkField(st.Name, field, loc); err != nil {
				return err
			}
		}
	}

	for _, en := range b.Enums {
		if err := checkIdent("enum", en.Name, loc); err != nil {
			return err
		}
		if len(en.Variants) == 0 {
			return errors.NewValidationError("enum", fmt.Sprintf("%q has no variants", en.Name), loc)
		}
		for _, variant := range en.Variants {
			if err := checkIdent("variant", variant.Name, loc); err != nil {
				return err
			}
			if len(variant.Fields) > 0 && len(variant.Tuple) > 0 {
				return errors.NewValidationError("variant",
					fmt.Sprintf("%s::%s mixes named and tuple fields", en.Name, variant.Name), loc)
			}
			for _, field := range variant.Fields {
				if err := checkField(en.Name+"::"+variant.Name, field, loc); err != nil {
					return err
				}
			}
		}
	}

	for _, tr := range b.Traits {
		if err := checkIdent("trait", tr.Name, loc); err != nil {
			return err
		}
		for _, assoc := range tr.Types {
			if err := checkIdent("associated type", assoc.Name, loc); err != nil {
				return err
			}
		}
		for _, method := range tr.Methods {
			if err := checkMethod(tr.Name, method, loc); err != nil {
				return err
			}
		}
	}

	for _, im := range b.Impls {
		if im.Target == "" {
			return errors.NewValidationError("impl", "target is required", loc)
		}
		name := im.Target
		if im.Trait != "" {
			name = im.Trait + " for " + im.Target
		}
		for _, method := range im.Methods {
			if err := checkMethod(name, method, loc); err != nil {
				return err
			}
		}
	}

	for _, cst := range b.Consts {
		if err := checkIdent("const", cst.Name, loc); err != nil {
			return err
		}
		if cst.Type == "" || cst.Value == "" {
			return errors.NewValidationError("const", fmt.Sprintf("%q needs both type and value", cst.Name), loc)
		}
	}

	for _, alias := range b.Aliases {
		if err := checkIdent("alias", alias.Name, loc); err != nil {
			return err
		}
		if alias.Target == "" {
			return errors.NewValidationError("alias", fmt.Sprintf("%q needs a target type", alias.Name), loc)
		}
	}

	for i := range b.Modules {
		module := &b.Modules[i]
		if err := checkIdent("module", module.Name, loc); err != nil {
			return err
		}
		if err := module.Body.validate(loc); err != nil {
			return err
		}
	}

	return nil
}

func checkIdent(kind, name string, loc errors.SourceLocation) error {
	if name == "" {
		return errors.NewValidationError(kind, "name is required", loc)
	}
	if !identPattern.MatchString(name) {
		return errors.NewValidationError(kind, fmt.Sprintf("name %q is not a valid identifier", name), loc)
	}
	return nil
}

func checkField(owner string, field Field, loc errors.SourceLocation) error {
	if err := checkIdent("field", field.Name, loc); err != nil {
		return err
	}
	if field.Type == "" {
		return errors.NewValidationError("field",
			fmt.Sprintf("%s.%s has no type", owner, field.Name), loc)
	}
	return nil
}

func checkMethod(owner string, method Method, loc errors.SourceLocation) error {
	if err := checkIdent("method", method.Name, loc); err != nil {
		return err
	}
	for _, arg := range method.Args {
		if err := checkIdent("argument", arg.Name, loc); err != nil {
			return err
		}
		if arg.Type == "" {
			return errors.NewValidationError("argument",
				fmt.Sprintf("%s.%s(%s) has no type", owner, method.Name, arg.Name), loc)
		}
	}
	return nil
}
