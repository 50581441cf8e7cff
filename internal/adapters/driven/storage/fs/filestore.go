// Package fs provides the local filesystem implementation of driven.FileStore.
package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
	"github.com/custodia-labs/chromcmm/internal/core/ports/driven"
)

// Ensure FileStore implements the interface.
var _ driven.FileStore = (*FileStore)(nil)

// FileStore reads and writes files on the local disk.
type FileStore struct {
	perm os.FileMode
}

// NewFileStore creates a file store that creates new files with mode 0644.
func NewFileStore() *FileStore {
	return &FileStore{perm: 0o644}
}

// Open opens path for reading. A missing file wraps domain.ErrNotFound.
func (s *FileStore) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// WriteFile replaces path with data. An existing file keeps its mode.
func (s *FileStore) WriteFile(path string, data []byte) error {
	perm := s.perm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return WriteFileAtomic(path, data, perm)
}

// WriteFileAtomic writes data to a temporary file in the target directory and
// renames it over path, so readers never observe a partial file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
