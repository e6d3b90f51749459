package codegen

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// indentUnit is the fixed indentation written per nesting level.
const indentUnit = "    "

// Formatter writes rendered source to an underlying sink while tracking the
// current indentation level. Every declaration renders through a single
// Formatter during one render pass.
//
// Formatter implements io.Writer: indentation is inserted lazily at the start
// of every non-empty line, so renderers can write through fmt.Fprintf without
// caring about nesting depth.
type Formatter struct {
	w           io.Writer
	level       int
	atLineStart bool

	// afterBounds is set by formatBounds and consumed by the next Block, so
	// a brace following a where clause opens on its own line instead of
	// being padded onto the previous token. Any other write clears it.
	afterBounds bool
}

// NewFormatter creates a Formatter writing to w at indentation level zero.
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w, atLineStart: true}
}

// Write implements io.Writer. Each line started while the indentation level
// is N is prefixed with N indent units; blank lines stay empty.
func (f *Formatter) Write(p []byte) (int, error) {
	f.afterBounds = false
	n := 0
	for len(p) > 0 {
		var line []byte
		if i := bytes.IndexByte(p, '\n'); i >= 0 {
			line, p = p[:i+1], p[i+1:]
		} else {
			line, p = p, nil
		}

		if f.atLineStart && line[0] != '\n' {
			if err := f.writeIndent(); err != nil {
				return n, err
			}
			f.atLineStart = false
		}

		m, err := f.w.Write(line)
		n += m
		if err != nil {
			return n, err
		}
		f.atLineStart = line[len(line)-1] == '\n'
	}
	return n, nil
}

// Block writes an opening brace on the current line, runs body one
// indentation level deeper, and closes the brace on its own line at the
// outer level. The level is restored even when body fails or panics.
func (f *Formatter) Block(body func(*Formatter) error) error {
	opener := " {\n"
	if f.afterBounds {
		// A where clause already ended the header line; the brace starts
		// its own line at the outer level.
		opener = "{\n"
	}
	if _, err := io.WriteString(f, opener); err != nil {
		return err
	}
	if err := f.indented(body); err != nil {
		return err
	}
	_, err := io.WriteString(f, "}\n")
	return err
}

func (f *Formatter) indented(body func(*Formatter) error) error {
	f.level++
	defer func() { f.level-- }()
	return body(f)
}

func (f *Formatter) writeIndent() error {
	for i := 0; i < f.level; i++ {
		if _, err := io.WriteString(f.w, indentUnit); err != nil {
			return err
		}
	}
	return nil
}

// formatGenerics writes a generic parameter list (`<T, U>`) when one exists.
func formatGenerics(f *Formatter, generics []string) error {
	if len(generics) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(f, "<%s>", strings.Join(generics, ", "))
	return err
}

// formatBounds writes a where clause, one bound per line.
func formatBounds(f *Formatter, bounds []Bound) error {
	if len(bounds) == 0 {
		return nil
	}
	if _, err := io.WriteString(f, "\nwhere\n"); err != nil {
		return err
	}
	for _, b := range bounds {
		names := make([]string, len(b.Traits))
		for i, t := range b.Traits {
			names[i] = t.String()
		}
		if _, err := fmt.Fprintf(f, "%s%s: %s,\n", indentUnit, b.Name, strings.Join(names, " + ")); err != nil {
			return err
		}
	}
	f.afterBounds = true
	return nil
}
