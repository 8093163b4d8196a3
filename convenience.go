// FILE: lixenwraith/inifile/convenience.go
package inifile

import (
	"fmt"
	"io"
	"strings"
)

// Open loads the document at path with default options.
// This is the recommended way to open a plain UTF-8 file.
func Open(path string) (*Document, error) {
	return Load(path, DefaultOptions())
}

// MustOpen is like Open but panics on error
func MustOpen(path string) *Document {
	doc, err := Open(path)
	if err != nil {
		panic(fmt.Sprintf("document open failed: %v", err))
	}
	return doc
}

// Validate checks that every key has a non-empty value in section
func (d *Document) Validate(section string, keys ...string) error {
	var missing []string
	for _, key := range keys {
		if d.ReadString(section, key, "") == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w in section %q: %s", ErrMissingKey, section, strings.Join(missing, ", "))
	}
	return nil
}

// Dump writes the serialized lines using the line ending of the file storage.
// The character encoding of the storage is not applied.
func (d *Document) Dump(w io.Writer) error {
	d.mutex.RLock()
	lines := d.serialize()
	d.mutex.RUnlock()

	ending := "\n"
	if fs, ok := d.storage.(*FileStorage); ok && fs.LineEnding != "" {
		ending = fs.LineEnding
	}

	for _, line := range lines {
		if _, err := io.WriteString(w, line+ending); err != nil {
			return fmt.Errorf("failed to dump document: %w", err)
		}
	}
	return nil
}

// String returns the serialized document
func (d *Document) String() string {
	var b strings.Builder
	_ = d.Dump(&b)
	return b.String()
}

// Clone creates a deep copy of the document sharing its path, storage and options.
// The copy keeps the dirty state of the original.
func (d *Document) Clone() *Document {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	clone := &Document{
		path:     d.path,
		storage:  d.storage,
		opts:     d.opts,
		numbers:  d.numbers,
		logger:   d.logger,
		sections: make([]*section, len(d.sections)),
		dirty:    d.dirty,
		closed:   d.closed,
	}

	for i, s := range d.sections {
		clone.sections[i] = s.clone()
	}

	return clone
}
