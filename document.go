// FILE: lixenwraith/inifile/document.go
package inifile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/text/language"
)

// Options configures how a Document is loaded, typed and persisted.
type Options struct {
	// Storage is the backing store. Nil selects a FileStorage with UTF-8 and "\n" line endings.
	Storage Storage

	// Locale drives the decimal separator of currency values.
	Locale language.Tag

	// Location is the time zone date-time values are composed in.
	Location *time.Location

	// Logger receives debug records. Nil discards them.
	Logger *slog.Logger

	// StrictSections rejects documents that repeat a section header.
	StrictSections bool
}

// DefaultOptions returns the standard options.
func DefaultOptions() Options {
	return Options{
		Locale:   language.English,
		Location: time.Local,
	}
}

// KeyValue is one identifier/value pair of a section.
type KeyValue struct {
	Key   string `json:"key" yaml:"key" toml:"key"`
	Value string `json:"value" yaml:"value" toml:"value"`
}

// Document is an ordered set of sections loaded from, and saved back to, a Storage.
// Only the first section with a given name is addressed by reads and writes.
type Document struct {
	path     string
	storage  Storage
	opts     Options
	numbers  numberFormat
	logger   *slog.Logger
	sections []*section
	dirty    bool
	closed   bool
	mutex    sync.RWMutex
}

// Load reads the document at path. A missing file yields an empty document.
func Load(path string, opts Options) (*Document, error) {
	if path == "" {
		return nil, errors.New("document path cannot be empty")
	}

	resolved, err := resolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve document path '%s': %w", path, err)
	}

	d := newDocument(resolved, opts)

	if !d.storage.Exists(resolved) {
		d.logger.Debug("document not found, starting empty", "path", resolved)
		return d, nil
	}

	lines, err := d.storage.ReadLines(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to read document '%s': %w", resolved, err)
	}

	sections, err := parseLines(resolved, lines, opts.StrictSections)
	if err != nil {
		d.logger.Debug("document rejected", "path", resolved, "error", err)
		return nil, err
	}
	d.sections = sections

	d.logger.Debug("document loaded", "path", resolved, "sections", len(sections), "lines", len(lines))
	return d, nil
}

func newDocument(path string, opts Options) *Document {
	if opts.Storage == nil {
		opts.Storage = &FileStorage{}
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Locale == language.Und {
		opts.Locale = language.English
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Document{
		path:    path,
		storage: opts.Storage,
		opts:    opts,
		numbers: newNumberFormat(opts.Locale),
		logger:  logger,
	}
}

// Path returns the resolved location of the document.
func (d *Document) Path() string {
	return d.path
}

// Dirty reports whether the document changed since it was loaded or last flushed.
func (d *Document) Dirty() bool {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.dirty
}

// findSection returns the first section with the exact name.
func (d *Document) findSection(name string) *section {
	for _, s := range d.sections {
		if s.name == name {
			return s
		}
	}
	return nil
}

// ReadString returns the value stored for key in section.
// An empty key returns "". An absent section or key, or an empty stored value,
// returns def.
func (d *Document) ReadString(section, key, def string) string {
	if key == "" {
		return ""
	}

	d.mutex.RLock()
	defer d.mutex.RUnlock()

	if s := d.findSection(section); s != nil {
		if value, found := s.lookup(key); found && value != "" {
			return value
		}
	}
	return def
}

// WriteString stores value for key in section, creating the section if needed.
// A new "" section is placed first so it stays headerless.
func (d *Document) WriteString(section, key, value string) {
	if key == "" {
		return
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.writeLocked(section, key, value)
}

func (d *Document) writeLocked(name, key, value string) {
	if d.closed {
		d.logger.Debug("write ignored on closed document", "section", name, "key", key)
		return
	}

	s := d.findSection(name)
	if s == nil {
		s = &section{name: name}
		if name == "" {
			d.sections = append([]*section{s}, d.sections...)
		} else {
			d.sections = append(d.sections, s)
		}
	}

	s.set(key, value)
	d.dirty = true
}

// ListSections returns every section name in stored order, duplicates included.
func (d *Document) ListSections() []string {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	names := make([]string, 0, len(d.sections))
	for _, s := range d.sections {
		names = append(names, s.name)
	}
	return names
}

// ListIdentifiers returns the identifiers of section in stored order. Comments are skipped.
func (d *Document) ListIdentifiers(section string) []string {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	s := d.findSection(section)
	if s == nil {
		return []string{}
	}

	keys := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		if e.kind == entryPair {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// ListSectionEntries returns the identifier/value pairs of section in stored order.
func (d *Document) ListSectionEntries(section string) []KeyValue {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	s := d.findSection(section)
	if s == nil {
		return []KeyValue{}
	}

	pairs := make([]KeyValue, 0, len(s.entries))
	for _, e := range s.entries {
		if e.kind == entryPair {
			pairs = append(pairs, KeyValue{Key: e.key, Value: e.value})
		}
	}
	return pairs
}

// WriteSectionEntries writes every pair in the given order.
// A key repeated later in pairs overwrites the earlier value.
func (d *Document) WriteSectionEntries(section string, pairs []KeyValue) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	for _, kv := range pairs {
		if kv.Key == "" {
			continue
		}
		d.writeLocked(section, kv.Key, kv.Value)
	}
}

// SectionExists reports whether a section with the exact name exists.
func (d *Document) SectionExists(section string) bool {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.findSection(section) != nil
}

// KeyExists reports whether key is stored in section, even with an empty value.
func (d *Document) KeyExists(section, key string) bool {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	if s := d.findSection(section); s != nil {
		_, found := s.lookup(key)
		return found
	}
	return false
}

// EraseSection removes the first section named section.
// The headerless "" section is never erased.
func (d *Document) EraseSection(section string) {
	if section == "" {
		return
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.closed {
		return
	}

	for i, s := range d.sections {
		if s.name == section {
			d.sections = append(d.sections[:i], d.sections[i+1:]...)
			d.dirty = true
			return
		}
	}
}

// DeleteKey removes the first pair for key in section.
// Empty names and keys starting with the comment marker are ignored.
func (d *Document) DeleteKey(section, key string) {
	if section == "" || key == "" || isComment(key) {
		return
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.closed {
		return
	}

	if s := d.findSection(section); s != nil && s.remove(key) {
		d.dirty = true
	}
}

// Flush saves the document if it changed. A successful save clears the dirty flag.
func (d *Document) Flush() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.closed {
		return ErrClosed
	}
	return d.flushLocked()
}

func (d *Document) flushLocked() error {
	if !d.dirty {
		d.logger.Debug("document unchanged, skipping save", "path", d.path)
		return nil
	}

	lines := d.serialize()
	if err := d.storage.WriteLines(d.path, lines); err != nil {
		return fmt.Errorf("failed to save document '%s': %w", d.path, err)
	}
	d.dirty = false

	d.logger.Debug("document saved", "path", d.path, "sections", len(d.sections), "lines", len(lines))
	return nil
}

// Close saves the document if it changed and releases the in-memory model.
// Close may be called once; later calls return ErrClosed.
func (d *Document) Close() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.closed {
		return ErrClosed
	}

	err := d.flushLocked()
	d.closed = true
	d.sections = nil
	return err
}
