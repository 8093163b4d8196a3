// FILE: lixenwraith/inifile/export_test.go
package inifile

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newExportDocument(t *testing.T) *Document {
	doc, _ := newTestDocument(t,
		"name=demo",
		";comment",
		"[server]",
		"host=example.com",
		"port=8080",
		"host=shadowed",
		"[server]",
		"host=duplicate",
		"[empty]",
	)
	return doc
}

func TestExport(t *testing.T) {
	expected := map[string]any{
		"name": "demo",
		"server": map[string]any{
			"host": "example.com",
			"port": "8080",
		},
		"empty": map[string]any{},
	}

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newExportDocument(t).Export(&buf, FormatJSON))

		var got map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, expected, got)
	})

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newExportDocument(t).Export(&buf, FormatYAML))

		var got map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, expected, got)
	})

	t.Run("TOML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newExportDocument(t).Export(&buf, FormatTOML))

		var got map[string]any
		_, err := toml.Decode(buf.String(), &got)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("INI", func(t *testing.T) {
		doc := newExportDocument(t)

		var buf bytes.Buffer
		require.NoError(t, doc.Export(&buf, FormatINI))
		assert.Equal(t, doc.String(), buf.String())
		assert.Contains(t, buf.String(), ";comment\n")
	})

	t.Run("Unsupported", func(t *testing.T) {
		var buf bytes.Buffer
		err := newExportDocument(t).Export(&buf, "xml")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("SectionShadowsRootKey", func(t *testing.T) {
		doc, _ := newTestDocument(t, "server=flat", "[server]", "host=h")

		data := doc.nestedMap()
		assert.Equal(t, map[string]any{"host": "h"}, data["server"])
	})
}

func TestMerge(t *testing.T) {
	t.Run("TOML", func(t *testing.T) {
		doc, storage := newTestDocument(t, "[server]", "host=old", "keep=1")

		data := []byte(`
title = "demo"
debug = true

[server]
host = "new.example.com"
port = 8080
ratio = 0.5
tags = ["a", "b"]
`)
		require.NoError(t, doc.Merge(data, FormatTOML))
		require.NoError(t, doc.Close())

		expected := []string{
			"debug=1",
			"title=demo",
			"",
			"[server]",
			"host=new.example.com",
			"keep=1",
			"port=8080",
			"ratio=0.5",
			"tags=a,b",
			"",
		}
		assert.Equal(t, expected, storage.Lines(testPath))
	})

	t.Run("JSONKeepsNumberText", func(t *testing.T) {
		doc, _ := newTestDocument(t)

		require.NoError(t, doc.Merge([]byte(`{"limits": {"max": 12345678901234567890, "off": false}}`), FormatJSON))
		assert.Equal(t, "12345678901234567890", doc.ReadString("limits", "max", ""))
		assert.False(t, doc.ReadBool("limits", "off", true))
	})

	t.Run("YAML", func(t *testing.T) {
		doc, _ := newTestDocument(t)

		require.NoError(t, doc.Merge([]byte("db:\n  name: app\n  pool: 4\n"), FormatYAML))
		assert.Equal(t, "app", doc.ReadString("db", "name", ""))
		assert.Equal(t, int64(4), doc.ReadInteger("db", "pool", 0))
	})

	t.Run("DetectFormat", func(t *testing.T) {
		doc, _ := newTestDocument(t)

		require.NoError(t, doc.Merge([]byte(`{"a": {"b": "c"}}`), ""))
		assert.Equal(t, "c", doc.ReadString("a", "b", ""))
	})

	t.Run("ExportThenMerge", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newExportDocument(t).Export(&buf, FormatYAML))

		doc, _ := newTestDocument(t)
		require.NoError(t, doc.Merge(buf.Bytes(), FormatYAML))

		assert.Equal(t, "demo", doc.ReadString("", "name", ""))
		assert.Equal(t, "example.com", doc.ReadString("server", "host", ""))
		assert.Equal(t, int64(8080), doc.ReadInteger("server", "port", 0))
	})

	t.Run("Rejected", func(t *testing.T) {
		doc, _ := newTestDocument(t)

		err := doc.Merge([]byte(`{"a": {"b": {"c": 1}}}`), FormatJSON)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)

		err = doc.Merge([]byte(`a = `), FormatTOML)
		assert.Error(t, err)

		err = doc.Merge([]byte(`{}`), "xml")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("MultilineValueRejected", func(t *testing.T) {
		doc, storage := newTestDocument(t, "[server]", "motd=hi")

		data := []byte(`server: {motd: "hello\n[admin]\ntoken=stolen\n"}`)
		err := doc.Merge(data, FormatYAML)
		assert.ErrorIs(t, err, ErrConversion)
		assert.False(t, doc.Dirty())
		require.NoError(t, doc.Close())

		assert.Equal(t, []string{"[server]", "motd=hi"}, storage.Lines(testPath))
	})

	t.Run("InvalidKeyRejected", func(t *testing.T) {
		keys := []string{`[x`, `a=b`, `;note`, ``}
		for _, key := range keys {
			doc, _ := newTestDocument(t)
			raw, err := json.Marshal(map[string]any{"app": map[string]string{key: "1"}})
			require.NoError(t, err)

			err = doc.Merge(raw, FormatJSON)
			assert.ErrorIs(t, err, ErrInvalidKey, key)
			assert.Empty(t, doc.ListSections(), key)
		}
	})

	t.Run("NoPartialMerge", func(t *testing.T) {
		doc, _ := newTestDocument(t)

		err := doc.Merge([]byte(`{"a": {"ok": "1"}, "b": {"[x": "1"}, "top": "v"}`), FormatJSON)
		assert.ErrorIs(t, err, ErrInvalidKey)
		assert.False(t, doc.Dirty())
		assert.Empty(t, doc.ListSections())
	})

	t.Run("MultilineSectionRejected", func(t *testing.T) {
		doc, _ := newTestDocument(t)

		err := doc.Merge([]byte(`{"a\nb": {"k": "1"}}`), FormatJSON)
		assert.ErrorIs(t, err, ErrInvalidKey)
		assert.False(t, doc.Dirty())
	})
}
