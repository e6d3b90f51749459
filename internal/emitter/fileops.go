package emitter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/quillgen/quill/internal/errors"
)

// WriteFileAtomic writes data to a uniquely named temp file in the target
// directory and renames it into place, so readers never observe a
// half-written file and concurrent generator runs cannot collide on the
// temp name.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.WrapFileSystemError("create directory", dir, err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.WrapFileSystemError("write", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.WrapFileSystemError("rename", tmp, err)
	}
	return nil
}
