package codegen

import "fmt"

// item is the closed set of declaration kinds a Scope can hold. The
// unexported render method seals the set to this package; every variant
// renders itself from its own fields only.
type item interface {
	render(f *Formatter) error
}

// raw is verbatim text included in the output unchanged.
type raw string

func (r raw) render(f *Formatter) error {
	_, err := fmt.Fprintf(f, "%s\n", string(r))
	return err
}
