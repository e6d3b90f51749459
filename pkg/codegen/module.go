package codegen

import (
	"fmt"
	"io"
)

// Module is a named, visibility-qualified wrapper around a nested scope.
// Modules are themselves scope items, so trees of modules may nest to any
// depth; ownership is strictly top-down and never cyclic.
type Module struct {
	name       string
	vis        string
	docs       *Docs
	attributes []string
	scope      Scope
}

// NewModule returns a new, empty module with the given name.
func NewModule(name string) *Module {
	return &Module{
		name:  name,
		scope: *NewScope(),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return m.name
}

// Doc sets the module documentation.
func (m *Module) Doc(docs string) *Module {
	m.docs = NewDocs(docs)
	return m
}

// Vis sets the module visibility.
func (m *Module) Vis(vis string) *Module {
	m.vis = vis
	return m
}

// Attr adds a verbatim attribute line to the module, e.g.
// `allow(unused_imports)`.
func (m *Module) Attr(attribute string) *Module {
	m.attributes = append(m.attributes, attribute)
	return m
}

// Scope returns the module's inner scope for direct mutation.
func (m *Module) Scope() *Scope {
	return &m.scope
}

// Import registers a type import in the module's scope.
func (m *Module) Import(path, ty string) *Module {
	m.scope.Import(path, ty)
	return m
}

// NewModule appends a new nested module definition and returns it.
// It panics when the name is already defined in this module; see
// Scope.PushModule.
func (m *Module) NewModule(name string) *Module {
	return m.scope.NewModule(name)
}

// GetModule returns the nested module with the given name, or nil.
func (m *Module) GetModule(name string) *Module {
	return m.scope.GetModule(name)
}

// GetOrNewModule returns the nested module with the given name, creating
// it if it does not exist.
func (m *Module) GetOrNewModule(name string) *Module {
	return m.scope.GetOrNewModule(name)
}

// PushModule appends a nested module definition. It panics when the name
// is already defined in this module; see Scope.PushModule.
func (m *Module) PushModule(child *Module) *Module {
	m.scope.PushModule(child)
	return m
}

// NewStruct appends a new struct definition and returns it.
func (m *Module) NewStruct(name string) *Struct {
	return m.scope.NewStruct(name)
}

// PushStruct appends a struct definition.
func (m *Module) PushStruct(st *Struct) *Module {
	m.scope.PushStruct(st)
	return m
}

// NewFn appends a new function definition and returns it.
func (m *Module) NewFn(name string) *Function {
	return m.scope.NewFn(name)
}

// PushFn appends a function definition.
func (m *Module) PushFn(fn *Function) *Module {
	m.scope.PushFn(fn)
	return m
}

// NewEnum appends a new enum definition and returns it.
func (m *Module) NewEnum(name string) *Enum {
	return m.scope.NewEnum(name)
}

// PushEnum appends an enum definition.
func (m *Module) PushEnum(e *Enum) *Module {
	m.scope.PushEnum(e)
	return m
}

// NewTrait appends a new trait definition and returns it.
func (m *Module) NewTrait(name string) *Trait {
	return m.scope.NewTrait(name)
}

// PushTrait appends a trait definition.
func (m *Module) PushTrait(t *Trait) *Module {
	m.scope.PushTrait(t)
	return m
}

// NewImpl appends a new impl block and returns it.
func (m *Module) NewImpl(target string) *Impl {
	return m.scope.NewImpl(target)
}

// PushImpl appends an impl block.
func (m *Module) PushImpl(im *Impl) *Module {
	m.scope.PushImpl(im)
	return m
}

// NewConst appends a new constant and returns it.
func (m *Module) NewConst(name string) *Const {
	return m.scope.NewConst(name)
}

// NewTypeAlias appends a new type alias and returns it.
func (m *Module) NewTypeAlias(name string, target Type) *TypeAlias {
	return m.scope.NewTypeAlias(name, target)
}

func (m *Module) render(f *Formatter) error {
	if m.docs != nil {
		if err := m.docs.render(f); err != nil {
			return err
		}
	}
	for _, attr := range m.attributes {
		if _, err := fmt.Fprintf(f, "#[%s]\n", attr); err != nil {
			return err
		}
	}
	if m.vis != "" {
		if _, err := fmt.Fprintf(f, "%s ", m.vis); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(f, "mod "+m.name); err != nil {
		return err
	}
	return f.Block(func(f *Formatter) error {
		return m.scope.Render(f)
	})
}
