package codegen

import "fmt"

// TypeAlias is a `type Name = Target;` definition.
type TypeAlias struct {
	docs   *Docs
	vis    string
	name   string
	target Type
}

// NewTypeAlias returns a new type alias.
func NewTypeAlias(name string, target Type) *TypeAlias {
	return &TypeAlias{name: name, target: target}
}

// Doc sets the alias documentation.
func (a *TypeAlias) Doc(docs string) *TypeAlias {
	a.docs = NewDocs(docs)
	return a
}

// Vis sets the alias visibility.
func (a *TypeAlias) Vis(vis string) *TypeAlias {
	a.vis = vis
	return a
}

func (a *TypeAlias) render(f *Formatter) error {
	if a.docs != nil {
		if err := a.docs.render(f); err != nil {
			return err
		}
	}
	if a.vis != "" {
		if _, err := fmt.Fprintf(f, "%s ", a.vis); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(f, "type %s = %s;\n", a.name, a.target.String())
	return err
}
