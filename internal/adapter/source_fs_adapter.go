// Package adapter contains the infrastructure adapters used by the checker:
// filesystem access, the ctags declaration provider and the report store.
package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	m "github.com/mouse-blink/cstyle/internal/model"
)

// ErrSourceNotFound is returned when the file to analyze does not exist.
var ErrSourceNotFound = errors.New("not found")

// SourceFSAdapter abstracts the filesystem operations the domain layer needs
// to load a C source file, so the workflow can be tested without the disk.
type SourceFSAdapter interface {
	// Load reads the file once and returns it as an immutable document.
	Load(path m.Path) (m.SourceDocument, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Load opens path, reads it fully and closes it before returning.
func (a *LocalSourceFSAdapter) Load(path m.Path) (m.SourceDocument, error) {
	info, err := a.FileInfo(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m.SourceDocument{}, fmt.Errorf("file '%s' %w", path, ErrSourceNotFound)
		}

		return m.SourceDocument{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if info.IsDir() {
		return m.SourceDocument{}, fmt.Errorf("%s is a directory, expected a C source file", path)
	}

	content, err := a.ReadFile(path)
	if err != nil {
		return m.SourceDocument{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	file := m.File{Path: path, Hash: fmt.Sprintf("%x", sha256.Sum256(content))}

	return m.NewSourceDocument(file, string(content)), nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - path is the file the user asked to analyze
	f, err := os.Open(string(path))
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	return io.ReadAll(f)
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	// #nosec G304 - path is the file the user asked to analyze
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}
