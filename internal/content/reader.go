// Package content reads important files as UTF-8 text.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// ErrNotFound is matched by read failures caused by a missing file.
var ErrNotFound = errors.New("file not found")

// Kind classifies a read failure.
type Kind int

const (
	// KindNotFound means the path did not exist at read time.
	KindNotFound Kind = iota
	// KindIO covers every other failure: permissions, directories, decoding, devices.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindIO:
		return "read_error"
	default:
		return "unknown"
	}
}

// ReadError reports why a file could not be read.
type ReadError struct {
	Path string
	Kind Kind
	Err  error
}

func (e *ReadError) Error() string {
	if e.Kind == KindNotFound {
		return fmt.Sprintf("file not found: %s", e.Path)
	}
	return fmt.Sprintf("error reading file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrNotFound) match not-found failures.
func (e *ReadError) Is(target error) bool {
	return target == ErrNotFound && e.Kind == KindNotFound
}

// Reader opens files through an afero filesystem.
type Reader struct {
	fs afero.Fs
}

// NewReader creates a Reader over fs.
func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// Read returns the full text of path with newlines normalized to "\n".
func (r *Reader) Read(path string) (string, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &ReadError{Path: path, Kind: KindNotFound, Err: err}
		}
		return "", &ReadError{Path: path, Kind: KindIO, Err: err}
	}

	if !utf8.Valid(data) {
		return "", &ReadError{Path: path, Kind: KindIO, Err: errors.New("invalid UTF-8 content")}
	}

	return normalizeNewlines(string(data)), nil
}

// normalizeNewlines converts "\r\n" and lone "\r" to "\n".
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
