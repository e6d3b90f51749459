package emitter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillgen/quill/internal/schema"
)

func geometryPackage() *schema.Package {
	return &schema.Package{
		Name: "geometry",
		Docs: "Geometry primitives.",
		Body: schema.Body{
			Imports: []schema.Import{
				{Path: "std::fmt", Types: []string{"Display", "Formatter"}},
				{Path: "serde", Types: []string{"Serialize"}, Vis: "pub"},
			},
			Structs: []schema.Struct{{
				Name:   "Point",
				Vis:    "pub",
				Docs:   "A point in 2D space.",
				Derive: []string{"Debug", "Clone"},
				Fields: []schema.Field{
					{Name: "x", Type: "f64", Vis: "pub"},
					{Name: "y", Type: "f64", Vis: "pub"},
				},
			}},
			Impls: []schema.Impl{{
				Target: "Point",
				Trait:  "Display",
				Methods: []schema.Method{{
					Name:    "fmt",
					SelfArg: "&self",
					Args:    []schema.Arg{{Name: "f", Type: "&mut Formatter<'_>"}},
					Ret:     "fmt::Result",
					Body:    []string{`write!(f, "({}, {})", self.x, self.y)`},
				}},
			}},
		},
	}
}

func TestRender(t *testing.T) {
	expected := `/// Geometry primitives.
use std::fmt::{Display, Formatter};
pub use serde::Serialize;

/// A point in 2D space.
#[derive(Debug, Clone)]
pub struct Point {
    pub x: f64,
    pub y: f64,
}

impl Display for Point {
    fn fmt(&self, f: &mut Formatter<'_>) -> fmt::Result {
        write!(f, "({}, {})", self.x, self.y)
    }
}
`

	out, err := Render(geometryPackage())
	require.NoError(t, err)
	assert.Equal(t, expected, out)
}

func TestRenderIsDeterministic(t *testing.T) {
	first, err := Render(geometryPackage())
	require.NoError(t, err)
	second, err := Render(geometryPackage())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderEmptyPackage(t *testing.T) {
	out, err := Render(&schema.Package{Name: "empty"})
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRenderMergesRepeatedModuleBlocks(t *testing.T) {
	pkg := &schema.Package{
		Name: "api",
		Body: schema.Body{
			Modules: []schema.Module{
				{
					Name: "api",
					Vis:  "pub",
					Body: schema.Body{
						Structs: []schema.Struct{{
							Name:   "Request",
							Vis:    "pub",
							Docs:   "HTTP request shell.",
							Fields: []schema.Field{{Name: "path", Type: "String"}},
						}},
					},
				},
				{
					Name: "api",
					Body: schema.Body{
						Consts: []schema.Const{{Name: "VERSION", Type: "u32", Value: "1"}},
					},
				},
			},
		},
	}

	expected := `pub mod api {
    /// HTTP request shell.
    pub struct Request {
        path: String,
    }

    const VERSION: u32 = 1;
}
`

	out, err := Render(pkg)
	require.NoError(t, err)
	assert.Equal(t, expected, out)
}

func TestBuildReportsBadTypeExpression(t *testing.T) {
	pkg := &schema.Package{
		Name: "broken",
		Body: schema.Body{
			Structs: []schema.Struct{{
				Name:   "Broken",
				Fields: []schema.Field{{Name: "items", Type: "Vec<"}},
			}},
		},
	}

	_, err := Build(pkg)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to generate broken")
	assert.ErrorContains(t, err, `invalid type expression "Vec<" in Broken.items`)
}

func TestCheck(t *testing.T) {
	pkg := geometryPackage()
	path := filepath.Join(t.TempDir(), "geometry.rs")

	upToDate, err := Check(pkg, path)
	require.NoError(t, err)
	assert.False(t, upToDate, "missing output file counts as stale")

	content, err := Render(pkg)
	require.NoError(t, err)
	require.NoError(t, WriteFileAtomic(path, []byte(content)))

	upToDate, err = Check(pkg, path)
	require.NoError(t, err)
	assert.True(t, upToDate)

	require.NoError(t, os.WriteFile(path, []byte("// edited by hand\n"), 0644))
	upToDate, err = Check(pkg, path)
	require.NoError(t, err)
	assert.False(t, upToDate)
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.rs")

	require.NoError(t, WriteFileAtomic(path, []byte("pub struct A;\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pub struct A;\n", string(data))

	// No temp files should survive a successful write.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.rs", entries[0].Name())
}

func TestWriteFileAtomicOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.rs")
	require.NoError(t, WriteFileAtomic(path, []byte("first\n")))
	require.NoError(t, WriteFileAtomic(path, []byte("second\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))
}
