// Package source reads script files for the interpreter.
package source

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/RaresPSCR/ROScript/pkg/compiler/lexer"
)

// DefaultMaxSize bounds a script when no limit is configured.
const DefaultMaxSize = 1 << 20

// ErrTooLarge is returned for scripts above the loader's MaxSize.
var ErrTooLarge = errors.New("source file too large")

// Loader reads scripts from disk. With a Root set, every path is resolved
// inside it; leading ".." elements are clamped at the root.
type Loader struct {
	Root    string
	MaxSize int64
}

// NewLoader returns a loader jailed to root (empty for none) that refuses
// files larger than maxSize bytes (0 for DefaultMaxSize).
func NewLoader(root string, maxSize int64) *Loader {
	if root != "" {
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Loader{Root: root, MaxSize: maxSize}
}

// Resolve maps path to the file the loader would open.
func (l *Loader) Resolve(path string) string {
	if l.Root == "" {
		return path
	}
	return filepath.Join(l.Root, filepath.Clean("/"+path))
}

// Load returns the whole file. A file that cannot be opened is reported as
// lexer.ErrSourceNotFound.
func (l *Loader) Load(path string) ([]byte, error) {
	f, err := os.Open(l.Resolve(path))
	if err != nil {
		return nil, errors.Wrapf(lexer.ErrSourceNotFound, "%s: %v", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(lexer.ErrSourceNotFound, "%s: %v", path, err)
	}
	if info.IsDir() {
		return nil, errors.Wrapf(lexer.ErrSourceNotFound, "%s is a directory", path)
	}
	if info.Size() > l.MaxSize {
		return nil, errors.Wrapf(ErrTooLarge, "%s is %d bytes, limit %d", path, info.Size(), l.MaxSize)
	}

	data, err := io.ReadAll(io.LimitReader(f, l.MaxSize+1))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	if int64(len(data)) > l.MaxSize {
		return nil, errors.Wrapf(ErrTooLarge, "%s exceeds %d bytes", path, l.MaxSize)
	}
	return data, nil
}
