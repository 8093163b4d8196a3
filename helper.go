// FILE: lixenwraith/inifile/helper.go
package inifile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// CommentMarker starts a comment line.
	CommentMarker = ";"
	// KeyValueSeparator splits an identifier from its value at its first occurrence.
	KeyValueSeparator = "="

	sectionOpen  = "["
	sectionClose = "]"
)

type entryKind uint8

const (
	entryPair entryKind = iota
	entryComment
	entryOpaque
)

// entry is one stored line of a section.
// Pairs are rewritten from key and value, everything else from raw.
type entry struct {
	kind  entryKind
	key   string
	value string
	raw   string
}

// section is a named, ordered group of entries.
type section struct {
	name    string
	entries []entry
}

// parseEntry classifies a non-empty, non-header line.
func parseEntry(line string) entry {
	if isComment(line) {
		return entry{kind: entryComment, raw: line}
	}
	if key, value, found := strings.Cut(line, KeyValueSeparator); found && key != "" {
		return entry{kind: entryPair, key: key, value: value}
	}
	return entry{kind: entryOpaque, raw: line}
}

// line renders the entry exactly as it is persisted.
func (e entry) line() string {
	if e.kind == entryPair {
		return e.key + KeyValueSeparator + e.value
	}
	return e.raw
}

// isComment reports whether the first non-blank character is the comment marker.
func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), CommentMarker)
}

// parseHeader extracts the section name from a trimmed `[name]` line.
func parseHeader(trimmed string) (string, bool) {
	if len(trimmed) < 2 || !strings.HasPrefix(trimmed, sectionOpen) || !strings.HasSuffix(trimmed, sectionClose) {
		return "", false
	}
	return trimmed[1 : len(trimmed)-1], true
}

// isHeader reports whether the line opens a section.
func isHeader(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), sectionOpen)
}

// lookup returns the value of the first pair whose identifier equals key.
func (s *section) lookup(key string) (string, bool) {
	for _, e := range s.entries {
		if e.kind == entryPair && e.key == key {
			return e.value, true
		}
	}
	return "", false
}

// set overwrites the first matching pair or appends a new one.
func (s *section) set(key, value string) {
	for i := range s.entries {
		if s.entries[i].kind == entryPair && s.entries[i].key == key {
			s.entries[i].value = value
			return
		}
	}
	s.entries = append(s.entries, entry{kind: entryPair, key: key, value: value})
}

// remove deletes the first matching pair and reports whether one was found.
func (s *section) remove(key string) bool {
	for i, e := range s.entries {
		if e.kind == entryPair && e.key == key {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// clone returns a deep copy of the section.
func (s *section) clone() *section {
	entries := make([]entry, len(s.entries))
	copy(entries, s.entries)
	return &section{name: s.name, entries: entries}
}

// isValidKey checks that a key survives a write/parse round trip as an identifier.
func isValidKey(key string) bool {
	if key == "" {
		return false
	}
	if strings.Contains(key, KeyValueSeparator) || strings.ContainsAny(key, "\r\n") {
		return false
	}
	if isComment(key) || isHeader(key) {
		return false
	}
	return true
}

// ValidateEntry reports an error when key and value cannot be stored as one
// identifier=value line that reads back unchanged.
func ValidateEntry(key, value string) error {
	if !isValidKey(key) {
		return fmt.Errorf("%w %q", ErrInvalidKey, key)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w: value for key %q spans multiple lines", ErrConversion, key)
	}
	return nil
}

// validateSectionName rejects names that would split the header line.
func validateSectionName(name string) error {
	if strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("%w: section name %q spans multiple lines", ErrInvalidKey, name)
	}
	return nil
}

// resolvePath expands a leading "~" and returns an absolute, cleaned path.
func resolvePath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
