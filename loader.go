// FILE: lixenwraith/inifile/loader.go
package inifile

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported export and import formats.
const (
	FormatINI  = "ini"
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// parseLines builds the section sequence from raw lines.
// Zero-length lines are dropped; lines before the first header go to an implicit "" section.
func parseLines(path string, lines []string, strict bool) ([]*section, error) {
	var sections []*section
	var current *section
	seen := make(map[string]bool)

	for i, line := range lines {
		if line == "" {
			continue
		}

		if isHeader(line) {
			name, ok := parseHeader(strings.TrimSpace(line))
			if !ok {
				return nil, &ParseError{
					Path:    path,
					Line:    i + 1,
					Message: fmt.Sprintf("section header %q has no closing bracket", line),
					Err:     ErrMalformedHeader,
				}
			}
			if strict && seen[name] {
				return nil, &ParseError{
					Path:    path,
					Line:    i + 1,
					Message: fmt.Sprintf("section %q appears more than once", name),
					Err:     ErrDuplicateSection,
				}
			}
			seen[name] = true

			current = &section{name: name}
			sections = append(sections, current)
			continue
		}

		if current == nil {
			current = &section{name: ""}
			sections = append(sections, current)
			seen[""] = true
		}
		current.entries = append(current.entries, parseEntry(line))
	}

	return sections, nil
}

// serialize renders the document for a whole-file replace.
// Only a "" section in the first slot omits its header; every section ends with one blank line.
func (d *Document) serialize() []string {
	count := 0
	for _, s := range d.sections {
		count += len(s.entries) + 2
	}

	lines := make([]string, 0, count)
	for i, s := range d.sections {
		if i > 0 || s.name != "" {
			lines = append(lines, sectionOpen+s.name+sectionClose)
		}
		for _, e := range s.entries {
			lines = append(lines, e.line())
		}
		lines = append(lines, "")
	}
	return lines
}

// DetectFileFormat determines format from file extension
func DetectFileFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".ini", ".conf", ".cfg":
		return FormatINI
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// JSON is the strictest
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return FormatJSON
	}

	// TOML before YAML, YAML accepts nearly anything
	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return FormatTOML
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return FormatYAML
	}

	return ""
}
