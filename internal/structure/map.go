// Package structure records which directories of a project hold important
// files, persists that index as JSON and renders it as a tree.
package structure

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
)

// RootPath is the relative path of the scan root itself.
const RootPath = "."

// Entry is the value stored for one directory.
type Entry struct {
	ImportantFiles []string `json:"important_files"`
}

// Directory pairs a relative path with its entry, in map order.
type Directory struct {
	Path           string
	ImportantFiles []string
}

// Map is an insertion-ordered index from slash-separated relative directory
// path to its important files. Setting an existing key replaces the value
// and keeps the key's original position.
type Map struct {
	entries *orderedmap.OrderedMap[string, Entry]
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{entries: orderedmap.NewOrderedMap[string, Entry]()}
}

// Set records files for path, replacing any earlier value.
func (m *Map) Set(path string, files []string) {
	if files == nil {
		files = []string{}
	}
	m.entries.Set(path, Entry{ImportantFiles: files})
}

// Get returns the important files recorded for path.
func (m *Map) Get(path string) ([]string, bool) {
	entry, ok := m.entries.Get(path)
	if !ok {
		return nil, false
	}
	return entry.ImportantFiles, true
}

// Len returns the number of recorded directories.
func (m *Map) Len() int {
	return m.entries.Len()
}

// Keys returns the recorded paths in insertion order.
func (m *Map) Keys() []string {
	return m.entries.Keys()
}

// Directories returns every entry in insertion order.
func (m *Map) Directories() []Directory {
	dirs := make([]Directory, 0, m.entries.Len())
	for el := m.entries.Front(); el != nil; el = el.Next() {
		dirs = append(dirs, Directory{Path: el.Key, ImportantFiles: el.Value.ImportantFiles})
	}
	return dirs
}

// FileCount returns the total number of important files across all entries.
func (m *Map) FileCount() int {
	n := 0
	for el := m.entries.Front(); el != nil; el = el.Next() {
		n += len(el.Value.ImportantFiles)
	}
	return n
}

// MarshalJSON writes the map as a JSON object with keys in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for el := m.entries.Front(); el != nil; el = el.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := marshalRaw(el.Key)
		if err != nil {
			return nil, err
		}
		value, err := marshalRaw(el.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode entry %q: %w", el.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalRaw encodes v without HTML escaping.
func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON reads a JSON object, preserving key order. Duplicate keys
// follow the same last-write-wins rule as Set.
func (m *Map) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("structure index must be a JSON object, got %v", tok)
	}

	entries := orderedmap.NewOrderedMap[string, Entry]()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v in structure index", tok)
		}

		var entry Entry
		if err := dec.Decode(&entry); err != nil {
			return fmt.Errorf("failed to decode entry %q: %w", key, err)
		}
		if entry.ImportantFiles == nil {
			entry.ImportantFiles = []string{}
		}
		entries.Set(key, entry)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	m.entries = entries
	return nil
}
