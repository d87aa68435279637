// Package system abstracts the filesystem documents are read from and written to.
package system

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Stdin is the document name that selects standard input.
const Stdin = "-"

type VirtualFS interface {
	fs.FS
}

type WritableVirtualFS interface {
	VirtualFS
	WriteFile(name string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
}

// FileSystem is a VirtualFS over the host filesystem. Names are host paths,
// not the slash separated paths io/fs expects.
type FileSystem struct{}

var (
	_ VirtualFS         = (*FileSystem)(nil)
	_ WritableVirtualFS = (*FileSystem)(nil)
)

func (fs *FileSystem) Open(name string) (fs.File, error) {
	return os.Open(name) //nolint:gosec
}

// WriteFile writes data to name, creating missing parent directories.
func (fs *FileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	if err := fs.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return err
	}
	return os.WriteFile(name, data, perm)
}

func (fs *FileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// ReadDocument returns the contents of name from fsys, or everything
// readable from stdin when name is Stdin.
func ReadDocument(fsys VirtualFS, stdin io.Reader, name string) ([]byte, error) {
	if name == Stdin {
		if stdin == nil {
			return nil, fmt.Errorf("no standard input available")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return data, nil
	}

	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}
