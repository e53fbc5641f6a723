package structure

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/dbsmedya/filescraper/internal/logger"
)

// markerPrefixes name directories that are always recorded, with no files.
var markerPrefixes = []string{".", "_"}

// Predicate decides whether a file is important.
type Predicate struct {
	extensions []string
	names      map[string]struct{}
}

// NewPredicate builds a Predicate from an extension allow-list (matched as
// name suffixes) and an exact filename allow-list.
func NewPredicate(extensions, fileNames []string) Predicate {
	names := make(map[string]struct{}, len(fileNames))
	for _, n := range fileNames {
		names[n] = struct{}{}
	}
	return Predicate{
		extensions: append([]string(nil), extensions...),
		names:      names,
	}
}

// Match reports whether name is important.
func (p Predicate) Match(name string) bool {
	if _, ok := p.names[name]; ok {
		return true
	}
	for _, ext := range p.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Scanner builds a Map by walking a directory tree.
type Scanner struct {
	fs        afero.Fs
	predicate Predicate
	log       *logger.Logger
}

// NewScanner creates a Scanner over fs.
func NewScanner(fs afero.Fs, predicate Predicate, log *logger.Logger) *Scanner {
	if log == nil {
		log = logger.NewNop()
	}
	return &Scanner{fs: fs, predicate: predicate, log: log}
}

// Scan walks root top-down. A directory is recorded when it holds at least one
// important file. Every subdirectory whose name starts with "." or "_" is
// recorded with an empty file list; that marker is applied after the walk so
// it wins over anything the directory's own visit recorded.
//
// Symlinked directories are recorded like any other directory but never
// descended into. Unreadable subdirectories are logged and skipped.
func (s *Scanner) Scan(root string) (*Map, error) {
	entries, err := afero.ReadDir(s.fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to read scan root %s: %w", root, err)
	}

	m := NewMap()
	var markers []string
	s.visit(root, RootPath, entries, m, &markers)

	for _, key := range markers {
		m.Set(key, nil)
	}

	s.log.Debugw("Scan complete",
		"root", root,
		"directories", m.Len(),
		"files", m.FileCount(),
	)
	return m, nil
}

func (s *Scanner) visit(dir, rel string, entries []os.FileInfo, m *Map, markers *[]string) {
	var files []string
	var descend []string

	for _, info := range entries {
		name := info.Name()
		isDir, follow := s.classify(dir, info)
		if !isDir {
			if s.predicate.Match(name) {
				files = append(files, name)
			}
			continue
		}
		if follow {
			descend = append(descend, name)
		}
	}

	if len(files) > 0 {
		m.Set(rel, files)
	}

	for _, info := range entries {
		name := info.Name()
		if isDir, _ := s.classify(dir, info); !isDir || !hasMarkerPrefix(name) {
			continue
		}
		key := joinRel(rel, name)
		m.Set(key, nil)
		*markers = append(*markers, key)
	}

	for _, name := range descend {
		childDir := filepath.Join(dir, name)
		childEntries, err := afero.ReadDir(s.fs, childDir)
		if err != nil {
			s.log.Warnw("Skipping unreadable directory", "dir", childDir, "error", err)
			continue
		}
		s.visit(childDir, joinRel(rel, name), childEntries, m, markers)
	}
}

// classify reports whether info names a directory and whether the walk
// should descend into it. Symlinks are classified by their target.
func (s *Scanner) classify(dir string, info os.FileInfo) (isDir, follow bool) {
	if info.Mode()&os.ModeSymlink != 0 {
		target, err := s.fs.Stat(filepath.Join(dir, info.Name()))
		return err == nil && target.IsDir(), false
	}
	return info.IsDir(), info.IsDir()
}

func hasMarkerPrefix(name string) bool {
	for _, prefix := range markerPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func joinRel(rel, name string) string {
	if rel == RootPath {
		return name
	}
	return rel + "/" + name
}
