package codegen

import (
	"fmt"
	"io"
)

// Impl is an impl block: inherent methods on a target type, or a trait
// implementation for it.
type Impl struct {
	target     Type
	generics   []string
	implTrait  *Type
	attributes []string
	assocCsts  []Field
	assocTys   []Field
	bounds     []Bound
	fns        []*Function
}

// NewImpl returns a new impl block for the target type.
func NewImpl(target Type) *Impl {
	return &Impl{target: target}
}

// Generic adds a generic parameter to the impl block itself (`impl<T>`),
// not to the target type.
func (im *Impl) Generic(name string) *Impl {
	im.generics = append(im.generics, name)
	return im
}

// TargetGeneric adds a generic argument to the target type.
func (im *Impl) TargetGeneric(ty Type) *Impl {
	im.target = im.target.WithGeneric(ty)
	return im
}

// ImplTrait sets the trait this block implements.
func (im *Impl) ImplTrait(ty Type) *Impl {
	im.implTrait = &ty
	return im
}

// Attr adds a verbatim attribute line to the block, e.g. `async_trait`.
func (im *Impl) Attr(attribute string) *Impl {
	im.attributes = append(im.attributes, attribute)
	return im
}

// AssociateConst adds an associated constant.
func (im *Impl) AssociateConst(name string, ty Type, value, vis string) *Impl {
	im.assocCsts = append(im.assocCsts, Field{Name: name, Ty: ty, Value: value, Vis: vis})
	return im
}

// AssociateType adds an associated type binding.
func (im *Impl) AssociateType(name string, ty Type) *Impl {
	im.assocTys = append(im.assocTys, Field{Name: name, Ty: ty})
	return im
}

// Bound adds a where-clause bound.
func (im *Impl) Bound(name string, ty Type) *Impl {
	im.bounds = append(im.bounds, Bound{Name: name, Traits: []Type{ty}})
	return im
}

// NewFn appends a new method and returns it.
func (im *Impl) NewFn(name string) *Function {
	fn := NewFunction(name)
	im.fns = append(im.fns, fn)
	return fn
}

// PushFn appends a method.
func (im *Impl) PushFn(fn *Function) *Impl {
	im.fns = append(im.fns, fn)
	return im
}

func (im *Impl) render(f *Formatter) error {
	for _, attr := range im.attributes {
		if _, err := fmt.Fprintf(f, "#[%s]\n", attr); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(f, "impl"); err != nil {
		return err
	}
	if err := formatGenerics(f, im.generics); err != nil {
		return err
	}
	if im.implTrait != nil {
		if _, err := fmt.Fprintf(f, " %s for", im.implTrait.String()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(f, " %s", im.target.String()); err != nil {
		return err
	}
	if err := formatBounds(f, im.bounds); err != nil {
		return err
	}

	return f.Block(func(f *Formatter) error {
		for _, cst := range im.assocCsts {
			if cst.Vis != "" {
				if _, err := fmt.Fprintf(f, "%s ", cst.Vis); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(f, "const %s: %s = %s;\n", cst.Name, cst.Ty.String(), cst.Value); err != nil {
				return err
			}
		}
		for _, assoc := range im.assocTys {
			if _, err := fmt.Fprintf(f, "type %s = %s;\n", assoc.Name, assoc.Ty.String()); err != nil {
				return err
			}
		}
		for i, fn := range im.fns {
			if i != 0 || len(im.assocCsts) > 0 || len(im.assocTys) > 0 {
				if _, err := io.WriteString(f, "\n"); err != nil {
					return err
				}
			}
			if err := fn.renderIn(false, f); err != nil {
				return err
			}
		}
		return nil
	})
}
