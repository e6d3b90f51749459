package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillgen/quill/internal/schema"
	"github.com/quillgen/quill/internal/utils"
)

const modelsSchema = `
name = "models"
docs = "Generated data models."

[[struct]]
name = "User"
vis = "pub"

[[struct.field]]
name = "id"
type = "u64"
vis = "pub"
`

func newTestGenerator(t *testing.T, outDir string, check bool) (*Generator, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	diagnostics := utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	diagnostics.SetOutput(&out, &errOut)
	return NewGenerator(diagnostics, outDir, check), &out
}

func writeSchema(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGeneratorRun(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeSchema(t, dir, "models.toml", modelsSchema)
	outDir := filepath.Join(dir, "generated")

	gen, out := newTestGenerator(t, outDir, false)
	require.NoError(t, gen.Run([]string{schemaPath}))

	data, err := os.ReadFile(filepath.Join(outDir, "models.rs"))
	require.NoError(t, err)
	assert.Equal(t, `/// Generated data models.
pub struct User {
    pub id: u64,
}
`, string(data))

	assert.Contains(t, out.String(), "Compiling 1 schema file(s)")
	assert.Contains(t, out.String(), "Wrote")
	assert.Contains(t, out.String(), "Generation complete")
}

func TestGeneratorRunRequiresSchemas(t *testing.T) {
	gen, _ := newTestGenerator(t, t.TempDir(), false)
	err := gen.Run(nil)
	assert.ErrorContains(t, err, "at least one schema file is required")
}

func TestGeneratorRunInvalidSchema(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeSchema(t, dir, "bad.toml", `docs = "no name"`)

	gen, _ := newTestGenerator(t, dir, false)
	err := gen.Run([]string{schemaPath})
	assert.ErrorContains(t, err, "name is required")
}

func TestGeneratorRunWarnsOnUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeSchema(t, dir, "models.toml", modelsSchema+"\ntypo_key = 1\n")

	gen, out := newTestGenerator(t, dir, false)
	require.NoError(t, gen.Run([]string{schemaPath}))
	assert.Contains(t, out.String(), "unknown schema key")
	assert.Contains(t, out.String(), "typo_key")
}

func TestGeneratorCheckMode(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeSchema(t, dir, "models.toml", modelsSchema)

	// Nothing written yet, so check mode must flag the output as stale.
	check, staleOut := newTestGenerator(t, dir, true)
	err := check.Run([]string{schemaPath})
	assert.ErrorContains(t, err, "out of date")
	assert.Contains(t, staleOut.String(), "- "+filepath.Join(dir, "models.rs"))

	write, _ := newTestGenerator(t, dir, false)
	require.NoError(t, write.Run([]string{schemaPath}))

	check, out := newTestGenerator(t, dir, true)
	require.NoError(t, check.Run([]string{schemaPath}))
	assert.Contains(t, out.String(), "up to date")
	assert.NoFileExists(t, filepath.Join(dir, "models.rs.tmp"))
}

func TestOutputPath(t *testing.T) {
	gen, _ := newTestGenerator(t, filepath.Join("src", "generated"), false)

	// The output name follows the package name, not the schema file name.
	pkg := &schema.Package{Name: "models", Source: "anything.toml"}
	assert.Equal(t, filepath.Join("src", "generated", "models.rs"), gen.OutputPath(pkg))
}
