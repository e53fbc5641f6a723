// Package report writes extraction records as a flat text dump.
package report

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/dbsmedya/filescraper/internal/extraction"
)

// Separator terminates every block.
var Separator = strings.Repeat("-", 80)

// Writer streams records to a report file.
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a Writer over fs.
func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// Write replaces path with one block per record, in order.
func (w *Writer) Write(records []extraction.Record, path string) (err error) {
	if err := w.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	f, err := w.fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close report %s: %w", path, cerr)
		}
	}()

	if err := Render(f, records); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

// Render writes the blocks for records to out.
func Render(out io.Writer, records []extraction.Record) error {
	bw := bufio.NewWriter(out)
	for _, r := range records {
		writeBlock(bw, r)
	}
	return bw.Flush()
}

// writeBlock relies on bufio.Writer keeping the first error for Flush.
func writeBlock(bw *bufio.Writer, r extraction.Record) {
	fmt.Fprintf(bw, "File: %s\n", r.Path)
	fmt.Fprintf(bw, "Content:\n%s\n", r.Content)
	if r.Declarations != nil {
		fmt.Fprintf(bw, "Functions: %s\n", strings.Join(r.Declarations.Functions, ", "))
		fmt.Fprintf(bw, "Classes: %s\n", strings.Join(r.Declarations.Classes, ", "))
	}
	bw.WriteString(Separator)
	bw.WriteByte('\n')
}
