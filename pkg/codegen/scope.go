package codegen

import (
	"fmt"
	"io"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Scope is an ordered, mutable container of declarations plus their
// consolidated imports and optional documentation. A Scope is exclusively
// owned: build it on a single goroutine, render it once it is complete.
type Scope struct {
	docs *Docs

	// imports maps import path -> type name -> import, both levels in
	// insertion order. Rendering depends on first-seen ordering, which a
	// plain map would not preserve.
	imports *orderedmap.OrderedMap[string, *orderedmap.OrderedMap[string, *Import]]

	items []item
}

// NewScope returns a new, empty scope.
func NewScope() *Scope {
	return &Scope{
		imports: orderedmap.New[string, *orderedmap.OrderedMap[string, *Import]](),
	}
}

// Doc sets the scope documentation.
func (s *Scope) Doc(docs string) *Scope {
	s.docs = NewDocs(docs)
	return s
}

// Import registers a type under an import path and returns the Import so
// the caller can set its visibility. Registering the same (path, type)
// pair again returns the existing entry, so repeated registration is
// idempotent and the last visibility written wins.
func (s *Scope) Import(path, ty string) *Import {
	// A caller may refer to a type namespaced within the imported
	// namespace, like "a::B"; the import is keyed by the head segment.
	if i := strings.Index(ty, "::"); i >= 0 {
		ty = ty[:i]
	}

	byType, ok := s.imports.Get(path)
	if !ok {
		byType = orderedmap.New[string, *Import]()
		s.imports.Set(path, byType)
	}
	imp, ok := byType.Get(ty)
	if !ok {
		imp = &Import{}
		byType.Set(ty, imp)
	}
	return imp
}

// NewModule appends a new module definition and returns it for further
// mutation.
//
// Module names must be unique within a scope; NewModule panics when the
// name is already taken. GetOrNewModule returns the existing definition
// instead of panicking.
func (s *Scope) NewModule(name string) *Module {
	m := NewModule(name)
	s.PushModule(m)
	return m
}

// GetModule returns the module with the given name, or nil.
func (s *Scope) GetModule(name string) *Module {
	for _, it := range s.items {
		if m, ok := it.(*Module); ok && m.name == name {
			return m
		}
	}
	return nil
}

// GetOrNewModule returns the module with the given name, creating it if it
// does not exist.
func (s *Scope) GetOrNewModule(name string) *Module {
	if m := s.GetModule(name); m != nil {
		return m
	}
	return s.NewModule(name)
}

// PushModule appends a module definition.
//
// A module's name uniquely identifies it within the scope it is defined
// in. Pushing a duplicate is a programming error in the generator, not a
// recoverable condition, and panics immediately so the mistake surfaces at
// the call site that introduced it.
func (s *Scope) PushModule(m *Module) *Scope {
	if s.GetModule(m.name) != nil {
		panic(fmt.Sprintf("codegen: module %q is already defined in this scope", m.name))
	}
	s.items = append(s.items, m)
	return s
}

// NewStruct appends a new struct definition and returns it.
func (s *Scope) NewStruct(name string) *Struct {
	st := NewStruct(name)
	s.PushStruct(st)
	return st
}

// PushStruct appends a struct definition.
func (s *Scope) PushStruct(st *Struct) *Scope {
	s.items = append(s.items, st)
	return s
}

// NewFn appends a new function definition and returns it.
func (s *Scope) NewFn(name string) *Function {
	fn := NewFunction(name)
	s.PushFn(fn)
	return fn
}

// PushFn appends a function definition.
func (s *Scope) PushFn(fn *Function) *Scope {
	s.items = append(s.items, fn)
	return s
}

// NewTrait appends a new trait definition and returns it.
func (s *Scope) NewTrait(name string) *Trait {
	t := NewTrait(name)
	s.PushTrait(t)
	return t
}

// PushTrait appends a trait definition.
func (s *Scope) PushTrait(t *Trait) *Scope {
	s.items = append(s.items, t)
	return s
}

// NewEnum appends a new enum definition and returns it.
func (s *Scope) NewEnum(name string) *Enum {
	e := NewEnum(name)
	s.PushEnum(e)
	return e
}

// PushEnum appends an enum definition.
func (s *Scope) PushEnum(e *Enum) *Scope {
	s.items = append(s.items, e)
	return s
}

// NewImpl appends a new impl block for the target type and returns it.
func (s *Scope) NewImpl(target string) *Impl {
	im := NewImpl(NewType(target))
	s.PushImpl(im)
	return im
}

// PushImpl appends an impl block.
func (s *Scope) PushImpl(im *Impl) *Scope {
	s.items = append(s.items, im)
	return s
}

// NewConst appends a new constant and returns it.
func (s *Scope) NewConst(name string) *Const {
	c := NewConst(name)
	s.PushConst(c)
	return c
}

// PushConst appends a constant.
func (s *Scope) PushConst(c *Const) *Scope {
	s.items = append(s.items, c)
	return s
}

// NewTypeAlias appends a new type alias and returns it.
func (s *Scope) NewTypeAlias(name string, target Type) *TypeAlias {
	a := NewTypeAlias(name, target)
	s.PushTypeAlias(a)
	return a
}

// PushTypeAlias appends a type alias.
func (s *Scope) PushTypeAlias(a *TypeAlias) *Scope {
	s.items = append(s.items, a)
	return s
}

// Raw appends verbatim text to the scope. It is included in the output
// unchanged.
func (s *Scope) Raw(text string) *Scope {
	s.items = append(s.items, raw(text))
	return s
}

// String renders the scope and returns the generated source with the
// trailing newline trimmed.
func (s *Scope) String() string {
	var b strings.Builder
	if err := s.Render(NewFormatter(&b)); err != nil {
		// strings.Builder writes cannot fail; an error here is a bug in a
		// renderer.
		panic(err)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Render formats the scope using the given formatter: documentation first,
// then consolidated imports, then every item in insertion order with one
// blank line between successive items. A failed write aborts the render
// and the partial output must be discarded.
func (s *Scope) Render(f *Formatter) error {
	if s.docs != nil {
		if err := s.docs.render(f); err != nil {
			return err
		}
	}

	if err := s.renderImports(f); err != nil {
		return err
	}
	if s.imports.Len() > 0 {
		if _, err := io.WriteString(f, "\n"); err != nil {
			return err
		}
	}

	for i, it := range s.items {
		if i != 0 {
			if _, err := io.WriteString(f, "\n"); err != nil {
				return err
			}
		}
		if err := it.render(f); err != nil {
			return err
		}
	}
	return nil
}

// renderImports consolidates the import table into the minimum number of
// use statements, grouped by visibility and then by path. Both groupings
// follow first-seen order: output is a stable partition of the insertion
// sequence, never a sort, so identical input sequences always render
// byte-identically.
func (s *Scope) renderImports(f *Formatter) error {
	var visibilities []string
	for p := s.imports.Oldest(); p != nil; p = p.Next() {
		for t := p.Value.Oldest(); t != nil; t = t.Next() {
			if !containsString(visibilities, t.Value.vis) {
				visibilities = append(visibilities, t.Value.vis)
			}
		}
	}

	for _, vis := range visibilities {
		for p := s.imports.Oldest(); p != nil; p = p.Next() {
			var tys []string
			for t := p.Value.Oldest(); t != nil; t = t.Next() {
				if t.Value.vis == vis {
					tys = append(tys, t.Key)
				}
			}
			// This path's types all belong to other visibility groups.
			if len(tys) == 0 {
				continue
			}

			if vis != "" {
				if _, err := fmt.Fprintf(f, "%s ", vis); err != nil {
					return err
				}
			}
			if len(tys) == 1 {
				if _, err := fmt.Fprintf(f, "use %s::%s;\n", p.Key, tys[0]); err != nil {
					return err
				}
			} else {
				if _, err := fmt.Fprintf(f, "use %s::{%s};\n", p.Key, strings.Join(tys, ", ")); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
