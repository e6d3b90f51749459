// Package cli orchestrates schema compilation for the quill command:
// loading, validating, and emitting each schema file with user-facing
// progress reporting.
package cli

import (
	"path/filepath"

	"github.com/quillgen/quill/internal/emitter"
	"github.com/quillgen/quill/internal/errors"
	"github.com/quillgen/quill/internal/schema"
	"github.com/quillgen/quill/internal/utils"
)

// Generator compiles schema files into generated source files.
type Generator struct {
	diagnostics *utils.DiagnosticSystem
	outDir      string
	check       bool
}

// NewGenerator creates a generator writing into outDir. In check mode no
// files are written; existing output is compared instead.
func NewGenerator(diagnostics *utils.DiagnosticSystem, outDir string, check bool) *Generator {
	return &Generator{
		diagnostics: diagnostics,
		outDir:      outDir,
		check:       check,
	}
}

// Run compiles every schema path in order. The first load, validation,
// or write failure aborts the run; in check mode all schemas are checked
// and stale outputs are reported together.
func (g *Generator) Run(schemaPaths []string) error {
	if len(schemaPaths) == 0 {
		return errors.New(errors.ValidationErrorCode, "at least one schema file is required")
	}
	g.diagnostics.Info("Compiling %d schema file(s)", len(schemaPaths))

	var stale []string
	written := 0

	for _, path := range schemaPaths {
		g.diagnostics.Verbose("Loading schema %s", path)
		pkg, err := schema.Load(path)
		if err != nil {
			return err
		}
		for _, key := range pkg.Undecoded {
			g.diagnostics.Warn("%s: unknown schema key %q", path, key)
		}
		if err := pkg.Validate(); err != nil {
			return err
		}

		outPath := g.OutputPath(pkg)
		if g.check {
			upToDate, err := emitter.Check(pkg, outPath)
			if err != nil {
				return err
			}
			if upToDate {
				g.diagnostics.Progress("%s is up to date", outPath)
			} else {
				g.diagnostics.Warn("%s is stale", outPath)
				stale = append(stale, outPath)
			}
			continue
		}

		content, err := emitter.Render(pkg)
		if err != nil {
			return err
		}
		if err := emitter.WriteFileAtomic(outPath, []byte(content)); err != nil {
			return err
		}
		g.diagnostics.Progress("Wrote %s", outPath)
		written++
	}

	if g.check {
		if len(stale) > 0 {
			for _, path := range stale {
				g.diagnostics.List("%s", path)
			}
			return errors.Newf(errors.GenerationErrorCode,
				"%d generated file(s) out of date; re-run quill without --check", len(stale))
		}
		g.diagnostics.Success("All generated files are up to date")
		return nil
	}

	g.diagnostics.Summary("Generation complete", []utils.SummaryStat{
		{Name: "schemas", Value: len(schemaPaths)},
		{Name: "files written", Value: written},
	})
	return nil
}

// OutputPath returns where a schema package's generated source lands.
func (g *Generator) OutputPath(pkg *schema.Package) string {
	return filepath.Join(g.outDir, pkg.Name+".rs")
}
