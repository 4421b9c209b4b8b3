package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/itchan-dev/minichan/internal/service"
)

// Storage persists uploaded media as flat files under a single root
// directory. Names are generated by the service layer; this package
// only moves bytes.
type Storage struct {
	rootPath string
}

// Ensure Storage implements the interface at compile time.
var _ service.MediaStorage = (*Storage)(nil)

func New(rootPath string) (*Storage, error) {
	// Clean to prevent path traversal like "media/../"
	p := filepath.Clean(rootPath)

	if err := os.MkdirAll(p, 0755); err != nil {
		return nil, fmt.Errorf("failed to create root storage directory %s: %w", p, err)
	}

	return &Storage{rootPath: p}, nil
}

// Save writes the file under the given name and reports how many bytes
// were written. A failed copy removes the partial file, so the write is
// all-or-nothing at this boundary.
func (s *Storage) Save(name string, data io.Reader) (int64, error) {
	fullPath := filepath.Join(s.rootPath, filepath.Base(name))

	dst, err := os.Create(fullPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, data)
	if err != nil {
		os.Remove(fullPath) // Best effort, ignore error here.
		return 0, fmt.Errorf("failed to copy file data: %w", err)
	}

	return written, nil
}

// Read opens a stored file for reading.
func (s *Storage) Read(name string) (io.ReadCloser, error) {
	fullPath := filepath.Join(s.rootPath, filepath.Base(name))

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("attachment not found: %w", err)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Delete removes a single stored file. A file that is already gone is
// not an error.
func (s *Storage) Delete(name string) error {
	fullPath := filepath.Join(s.rootPath, filepath.Base(name))

	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Root reports the directory files are stored under, for the router's
// file server.
func (s *Storage) Root() string {
	return s.rootPath
}
