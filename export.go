// FILE: lixenwraith/inifile/export.go
package inifile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Export writes the readable content of the document in the given format.
// Pairs of the "" section become top-level keys; other sections become tables.
// Comments, duplicate sections and shadowed keys are not exported.
func (d *Document) Export(w io.Writer, format string) error {
	if format == FormatINI {
		return d.Dump(w)
	}

	data := d.nestedMap()

	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(data); err != nil {
			return fmt.Errorf("failed to marshal document to TOML: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to marshal document to YAML: %w", err)
		}
		return encoder.Close()
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to marshal document to JSON: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return nil
}

// nestedMap builds a section -> key -> value map using first-match semantics.
func (d *Document) nestedMap() map[string]any {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	root := make(map[string]any)
	seen := make(map[string]bool)

	for _, s := range d.sections {
		if seen[s.name] {
			continue
		}
		seen[s.name] = true

		if s.name == "" {
			for _, e := range s.entries {
				if e.kind != entryPair {
					continue
				}
				if _, exists := root[e.key]; !exists {
					root[e.key] = e.value
				}
			}
			continue
		}

		table := make(map[string]any)
		for _, e := range s.entries {
			if e.kind != entryPair {
				continue
			}
			if _, exists := table[e.key]; !exists {
				table[e.key] = e.value
			}
		}
		// A section shadows a headerless key of the same name
		root[s.name] = table
	}
	return root
}

// Merge writes the content of a TOML, YAML or JSON document into d.
// Top-level scalars go to the "" section, tables to sections of the same name.
// An empty format is detected from the content. Tables nested deeper than one
// level are rejected. Every key and value is checked before the first write, so
// a rejected merge leaves d untouched.
func (d *Document) Merge(data []byte, format string) error {
	if format == "" {
		format = detectFormatFromContent(data)
	}

	raw := make(map[string]any)
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse TOML: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&raw); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	var rootPairs []KeyValue
	tables := make(map[string][]KeyValue)

	for _, key := range sortedKeys(raw) {
		value := raw[key]
		if table, ok := value.(map[string]any); ok {
			if err := validateSectionName(key); err != nil {
				return fmt.Errorf("failed to merge %s: %w", key, err)
			}
			pairs := make([]KeyValue, 0, len(table))
			for _, k := range sortedKeys(table) {
				text, err := formatScalar(table[k])
				if err != nil {
					return fmt.Errorf("failed to merge %s.%s: %w", key, k, err)
				}
				if err := ValidateEntry(k, text); err != nil {
					return fmt.Errorf("failed to merge %s.%s: %w", key, k, err)
				}
				pairs = append(pairs, KeyValue{Key: k, Value: text})
			}
			tables[key] = pairs
			continue
		}

		text, err := formatScalar(value)
		if err != nil {
			return fmt.Errorf("failed to merge %s: %w", key, err)
		}
		if err := ValidateEntry(key, text); err != nil {
			return fmt.Errorf("failed to merge %s: %w", key, err)
		}
		rootPairs = append(rootPairs, KeyValue{Key: key, Value: text})
	}

	if len(rootPairs) > 0 {
		d.WriteSectionEntries("", rootPairs)
	}
	for _, name := range sortedKeys(tables) {
		d.WriteSectionEntries(name, tables[name])
	}
	return nil
}

// formatScalar renders a decoded value with the typed accessor encodings.
func formatScalar(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		if v {
			return "1", nil
		}
		return "0", nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return formatFloat(v), nil
	case json.Number:
		return v.String(), nil
	case time.Time:
		return v.Format(DateTimeLayout), nil
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			text, err := formatScalar(item)
			if err != nil {
				return "", err
			}
			items = append(items, text)
		}
		return strings.Join(items, ","), nil
	case map[string]any:
		return "", fmt.Errorf("%w: nested tables cannot be stored in a section", ErrUnsupportedFormat)
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
