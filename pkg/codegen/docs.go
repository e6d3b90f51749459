package codegen

import "fmt"

// Docs is a documentation block attached to a scope or declaration. Each
// line of the source text renders as a `///` comment line.
type Docs struct {
	text string
}

// NewDocs creates a documentation block from text. Newlines split the text
// into separate comment lines.
func NewDocs(text string) *Docs {
	return &Docs{text: text}
}

func (d *Docs) render(f *Formatter) error {
	for _, line := range splitLines(d.text) {
		if _, err := fmt.Fprintf(f, "/// %s\n", line); err != nil {
			return err
		}
	}
	return nil
}

func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	return append(lines, text[start:])
}
