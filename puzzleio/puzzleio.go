package puzzleio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is the directory inputs are read from when none is configured.
const DefaultDir = "data"

// ErrEmptyName indicates Read was called without a file name.
var ErrEmptyName = errors.New("puzzleio: file name must not be empty")

// Option configures a Reader.
type Option func(*Reader)

// WithDir returns an Option that sets the data directory.
// Passing an empty dir has no effect.
func WithDir(dir string) Option {
	return func(r *Reader) {
		if dir != "" {
			r.Dir = dir
		}
	}
}

// Reader loads puzzle inputs from Dir.
type Reader struct {
	Dir string
}

// NewReader returns a Reader rooted at DefaultDir unless overridden.
func NewReader(opts ...Option) Reader {
	r := Reader{Dir: DefaultDir}
	for _, opt := range opts {
		opt(&r)
	}

	return r
}

// Path reports where name would be read from.
func (r Reader) Path(name string) string {
	return filepath.Join(r.Dir, name)
}

// Read returns the entire contents of Dir/name.
func (r Reader) Read(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	path := r.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("puzzleio: read %s: %w", path, err)
	}

	return string(data), nil
}

// Lines splits text on '\n', dropping one trailing newline and any '\r'
// line endings. Empty text yields no lines.
func Lines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
