// Package extraction re-reads the important files listed in a structure map
// and assembles one record per readable file.
package extraction

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/filescraper/internal/content"
	"github.com/dbsmedya/filescraper/internal/declarations"
	"github.com/dbsmedya/filescraper/internal/logger"
	"github.com/dbsmedya/filescraper/internal/structure"
)

// ContentReader reads one file as text.
type ContentReader interface {
	Read(path string) (string, error)
}

// DeclarationExtractor pulls declaration names from source text.
type DeclarationExtractor interface {
	Extract(ctx context.Context, source string) declarations.Result
}

// Record is the captured state of one file. Declarations is nil at depth 1
// and always set, possibly with empty lists, at depth 2.
type Record struct {
	Path         string
	Content      string
	Declarations *declarations.Names
}

// Stats summarises one extraction run.
type Stats struct {
	Listed      int // files named by the structure map
	Read        int // records produced
	NotFound    int
	ReadErrors  int
	Unparseable int // depth 2 only
}

// Skipped returns the number of listed files that produced no record.
func (s Stats) Skipped() int {
	return s.NotFound + s.ReadErrors
}

// Driver walks a structure map and builds records.
type Driver struct {
	reader    ContentReader
	extractor DeclarationExtractor
	log       *logger.Logger
}

// NewDriver creates a Driver.
func NewDriver(reader ContentReader, extractor DeclarationExtractor, log *logger.Logger) *Driver {
	if log == nil {
		log = logger.NewNop()
	}
	return &Driver{reader: reader, extractor: extractor, log: log}
}

// Extract reads every important file of m relative to basePath, in map order
// and stored file order. Files that cannot be read are logged and left out
// entirely; they never stop the run. Two entries resolving to the same path
// yield one record at the first position with the later content.
func (d *Driver) Extract(ctx context.Context, m *structure.Map, basePath string, depth Depth) ([]Record, Stats) {
	var stats Stats
	records := orderedmap.NewOrderedMap[string, Record]()

	for _, dir := range m.Directories() {
		for _, name := range dir.ImportantFiles {
			stats.Listed++
			path := filepath.Join(basePath, filepath.FromSlash(dir.Path), name)

			text, err := d.reader.Read(path)
			if err != nil {
				d.logReadFailure(path, err, &stats)
				continue
			}

			record := Record{Path: path, Content: text}
			if depth.WantsDeclarations() {
				result := d.extractor.Extract(ctx, text)
				if !result.Parsed() {
					stats.Unparseable++
					d.log.Debugw("No declarations extracted", "file", path, "reason", result.Err)
				}
				names := result.Names
				record.Declarations = &names
			}
			records.Set(path, record)
		}
	}

	out := make([]Record, 0, records.Len())
	for el := records.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	stats.Read = len(out)
	return out, stats
}

func (d *Driver) logReadFailure(path string, err error, stats *Stats) {
	if errors.Is(err, content.ErrNotFound) {
		stats.NotFound++
		d.log.WithFile(path).Warn("File not found")
		return
	}
	stats.ReadErrors++
	d.log.WithFile(path).Warnw("Error reading file", "error", err)
}
