package scratch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Dir hands out scratch files under a single directory. Every file gets
// a unique name so concurrent operations never touch each other's data.
type Dir struct {
	path string
}

// New ensures the scratch directory exists and returns a Dir over it.
func New(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create scratch directory: %w", err)
	}
	return &Dir{path: path}, nil
}

// Create stages the contents of src into a fresh scratch file with the
// given extension and returns its path. The caller owns the file and
// must Remove it when done.
func (d *Dir) Create(src io.Reader, ext string) (string, error) {
	name := filepath.Join(d.path, uuid.New().String()+ext)

	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("create scratch file: %w", err)
	}

	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		os.Remove(name)
		return "", fmt.Errorf("write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("close scratch file: %w", err)
	}

	return name, nil
}

// Remove deletes a scratch file. A file that is already gone is not an
// error.
func (d *Dir) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
