package schema

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/semver"

	"github.com/quillgen/quill/internal/errors"
)

// CurrentFormat is the schema format version this build understands.
// Schemas declaring a different major version are rejected at load time.
const CurrentFormat = "v1"

// Load reads and decodes a schema file, defaulting and gating the format
// version. The result is decoded but not yet validated; call Validate
// before emitting.
func Load(path string) (*Package, error) {
	var pkg Package
	meta, err := toml.DecodeFile(path, &pkg)
	if err != nil {
		return nil, errors.WrapDecodeError(path, err)
	}

	pkg.Source = path
	for _, key := range meta.Undecoded() {
		pkg.Undecoded = append(pkg.Undecoded, key.String())
	}

	if pkg.Format == "" {
		pkg.Format = CurrentFormat
	}
	if !semver.IsValid(pkg.Format) {
		return nil, errors.NewSchemaError(
			fmt.Sprintf("invalid format version %q", pkg.Format),
			errors.SourceLocation{File: path},
		).WithSuggestion(fmt.Sprintf("use a semantic version like %q", CurrentFormat))
	}
	if semver.Major(pkg.Format) != CurrentFormat {
		return nil, errors.NewSchemaError(
			fmt.Sprintf("unsupported format version %q (supported: %s)", pkg.Format, CurrentFormat),
			errors.SourceLocation{File: path},
		)
	}

	return &pkg, nil
}
