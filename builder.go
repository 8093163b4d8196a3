// FILE: lixenwraith/inifile/builder.go
package inifile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/language"
)

// ValidatorFunc defines the signature for a function that can validate a loaded Document.
// It should return an error if validation fails.
type ValidatorFunc func(d *Document) error

// Builder provides a fluent interface for opening documents
type Builder struct {
	opts        Options
	file        string
	args        []string
	encoding    encoding.Encoding
	lineEnding  string
	maxFileSize int64
	err         error
	validators  []ValidatorFunc
}

// NewBuilder creates a new document builder
func NewBuilder() *Builder {
	return &Builder{
		opts:       DefaultOptions(),
		args:       os.Args[1:],
		validators: make([]ValidatorFunc, 0),
	}
}

// WithFile sets the document path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithArgs sets the command-line arguments used by file discovery
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithStorage sets a custom backing store. Encoding, line ending and size
// settings only apply to the default file storage.
func (b *Builder) WithStorage(storage Storage) *Builder {
	b.opts.Storage = storage
	return b
}

// WithEncoding sets the character encoding of the backing file
func (b *Builder) WithEncoding(enc encoding.Encoding) *Builder {
	b.encoding = enc
	return b
}

// WithEncodingName sets the encoding by IANA name, e.g. "windows-1252"
func (b *Builder) WithEncodingName(name string) *Builder {
	enc, err := EncodingByName(name)
	if err != nil {
		b.err = err
		return b
	}
	b.encoding = enc
	return b
}

// WithLineEnding sets the terminator for written lines
func (b *Builder) WithLineEnding(ending string) *Builder {
	b.lineEnding = ending
	return b
}

// WithMaxFileSize rejects backing files larger than size bytes
func (b *Builder) WithMaxFileSize(size int64) *Builder {
	b.maxFileSize = size
	return b
}

// WithLocale sets the locale used for currency values
func (b *Builder) WithLocale(tag language.Tag) *Builder {
	b.opts.Locale = tag
	return b
}

// WithLocation sets the time zone for date-time values
func (b *Builder) WithLocation(loc *time.Location) *Builder {
	if loc == nil {
		b.err = errors.New("location cannot be nil")
		return b
	}
	b.opts.Location = loc
	return b
}

// WithLogger sets the logger for debug records
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.opts.Logger = logger
	return b
}

// WithStrictSections rejects documents with repeated section headers
func (b *Builder) WithStrictSections() *Builder {
	b.opts.StrictSections = true
	return b
}

// WithValidator adds a validation function that runs after the document is loaded
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build loads the Document with all specified options
func (b *Builder) Build() (*Document, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.file == "" {
		return nil, errors.New("no document path configured")
	}

	opts := b.opts
	if opts.Storage == nil {
		opts.Storage = &FileStorage{
			Encoding:    b.encoding,
			LineEnding:  b.lineEnding,
			MaxFileSize: b.maxFileSize,
		}
	}

	doc, err := Load(b.file, opts)
	if err != nil {
		return nil, err
	}

	for _, validator := range b.validators {
		if err := validator(doc); err != nil {
			return nil, fmt.Errorf("document validation failed: %w", err)
		}
	}

	return doc, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Document {
	doc, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("document build failed: %v", err))
	}
	return doc
}

// BuildAndScan builds the document and decodes section into target
func (b *Builder) BuildAndScan(section string, target any) (*Document, error) {
	doc, err := b.Build()
	if err != nil {
		return nil, err
	}

	if err := doc.Scan(section, target); err != nil {
		return nil, fmt.Errorf("failed to scan section into target: %w", err)
	}
	return doc, nil
}
