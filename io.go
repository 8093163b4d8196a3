// FILE: lixenwraith/inifile/io.go
package inifile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Storage is the backing store of a Document.
type Storage interface {
	// Exists reports whether a document is stored at path.
	Exists(path string) bool
	// ReadLines returns the stored lines without line terminators.
	ReadLines(path string) ([]string, error)
	// WriteLines replaces the stored document with lines.
	WriteLines(path string, lines []string) error
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileStorage stores documents as OS files and replaces them atomically on write.
type FileStorage struct {
	// Encoding of the file contents. Nil means UTF-8.
	Encoding encoding.Encoding

	// LineEnding terminates every written line. Empty means "\n".
	LineEnding string

	// Perm is applied to written files. Zero means 0644.
	Perm os.FileMode

	// MaxFileSize rejects larger files on read. Zero disables the check.
	MaxFileSize int64
}

// Exists reports whether path is a regular file.
func (fs *FileStorage) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ReadLines reads and decodes the file, splitting on "\n" and trimming "\r".
func (fs *FileStorage) ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file '%s': %w", path, err)
	}
	defer file.Close()

	if fs.MaxFileSize > 0 {
		info, err := file.Stat()
		if err != nil {
			return nil, fmt.Errorf("failed to stat file '%s': %w", path, err)
		}
		if info.Size() > fs.MaxFileSize {
			return nil, fmt.Errorf("file '%s' exceeds maximum size %d bytes", path, fs.MaxFileSize)
		}
	}

	var reader io.Reader = file
	if fs.Encoding != nil {
		reader = transform.NewReader(file, fs.Encoding.NewDecoder())
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	return splitLines(bytes.TrimPrefix(data, utf8BOM)), nil
}

// WriteLines encodes the lines and atomically replaces the file.
func (fs *FileStorage) WriteLines(path string, lines []string) error {
	ending := fs.LineEnding
	if ending == "" {
		ending = "\n"
	}

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteString(ending)
	}

	data := buf.Bytes()
	if fs.Encoding != nil {
		encoded, err := fs.Encoding.NewEncoder().Bytes(data)
		if err != nil {
			return fmt.Errorf("failed to encode file '%s': %w", path, err)
		}
		data = encoded
	}

	perm := fs.Perm
	if perm == 0 {
		perm = 0644
	}
	return atomicWriteFile(path, data, perm)
}

// EncodingByName resolves an IANA charset name such as "windows-1252" or "ISO-8859-1".
// Empty and UTF-8 names return nil, meaning no transcoding.
func EncodingByName(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "_", "-")) {
	case "", "utf-8", "utf8":
		return nil, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("encoding %q is not supported", name)
	}
	return enc, nil
}

// splitLines splits text into lines, dropping the terminator of the final line.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}

	text := strings.TrimSuffix(string(data), "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in '%s': %w", dir, err)
	}

	tempPath := tempFile.Name()
	removed := false
	defer func() {
		if !removed {
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file '%s': %w", tempPath, err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file '%s': %w", tempPath, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file '%s': %w", tempPath, err)
	}

	if err := os.Chmod(tempPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions on '%s': %w", tempPath, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file '%s' to '%s': %w", tempPath, path, err)
	}
	removed = true

	return nil
}

// MemoryStorage keeps documents in process memory. It is safe for concurrent use.
type MemoryStorage struct {
	mu     sync.Mutex
	files  map[string][]string
	writes map[string]int
}

// NewMemoryStorage returns an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		files:  make(map[string][]string),
		writes: make(map[string]int),
	}
}

// Put seeds the store with lines for path without counting a write.
func (m *MemoryStorage) Put(path string, lines ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = append([]string(nil), lines...)
}

// Exists reports whether path holds a document.
func (m *MemoryStorage) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path]
	return ok
}

// ReadLines returns a copy of the stored lines.
func (m *MemoryStorage) ReadLines(path string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("failed to read '%s': %w", path, os.ErrNotExist)
	}
	return append([]string(nil), lines...), nil
}

// WriteLines replaces the stored lines.
func (m *MemoryStorage) WriteLines(path string, lines []string) error {
	if path == "" {
		return errors.New("storage path cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[path] = append([]string(nil), lines...)
	m.writes[path]++
	return nil
}

// Lines returns a copy of the lines stored for path.
func (m *MemoryStorage) Lines(path string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.files[path]...)
}

// Writes returns how many times path was written.
func (m *MemoryStorage) Writes(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[path]
}
