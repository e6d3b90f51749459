package codegen

import "fmt"

// Const is a constant definition.
type Const struct {
	docs  *Docs
	vis   string
	name  string
	ty    Type
	value string
}

// NewConst returns a new constant with the given name.
func NewConst(name string) *Const {
	return &Const{name: name}
}

// Doc sets the constant documentation.
func (c *Const) Doc(docs string) *Const {
	c.docs = NewDocs(docs)
	return c
}

// Vis sets the constant visibility.
func (c *Const) Vis(vis string) *Const {
	c.vis = vis
	return c
}

// Ty sets the constant type.
func (c *Const) Ty(ty Type) *Const {
	c.ty = ty
	return c
}

// Value sets the constant initializer, verbatim.
func (c *Const) Value(value string) *Const {
	c.value = value
	return c
}

func (c *Const) render(f *Formatter) error {
	if c.docs != nil {
		if err := c.docs.render(f); err != nil {
			return err
		}
	}
	if c.vis != "" {
		if _, err := fmt.Fprintf(f, "%s ", c.vis); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(f, "const %s: %s = %s;\n", c.name, c.ty.String(), c.value)
	return err
}
