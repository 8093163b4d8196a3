// FILE: lixenwraith/inifile/cmd/inictl/export_test.go
package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand(t *testing.T) {
	t.Run("default json to stdout", func(t *testing.T) {
		resetFlags()

		output, err := captureOutput(t, func() error {
			return runExport([]string{writeSample(t)})
		})
		require.NoError(t, err)

		result := decodeJSON(t, output)
		assert.Equal(t, "demo", result["name"])
		assert.Equal(t, map[string]interface{}{"host": "example.com", "port": "8080", "tls": "1"}, result["server"])
	})

	t.Run("yaml", func(t *testing.T) {
		resetFlags()
		exportFormat = "yaml"

		output, err := captureOutput(t, func() error {
			return runExport([]string{writeSample(t)})
		})
		require.NoError(t, err)
		assert.Contains(t, output, "server:\n  host: example.com\n")
	})

	t.Run("output file format from extension", func(t *testing.T) {
		resetFlags()
		exportOutput = filepath.Join(t.TempDir(), "out.toml")

		output, err := captureOutput(t, func() error {
			return runExport([]string{writeSample(t)})
		})
		require.NoError(t, err)
		assert.Contains(t, output, "(toml)")

		content := readFile(t, exportOutput)
		assert.Contains(t, content, "[server]")
		assert.Contains(t, content, `host = "example.com"`)
	})

	t.Run("unsupported format", func(t *testing.T) {
		resetFlags()
		exportFormat = "xml"

		_, err := captureOutput(t, func() error {
			return runExport([]string{writeSample(t)})
		})
		assert.Error(t, err)
	})
}

func TestImportCommand(t *testing.T) {
	t.Run("toml", func(t *testing.T) {
		resetFlags()
		path := writeSample(t)
		source := filepath.Join(t.TempDir(), "overrides.toml")
		require.NoError(t, writeRaw(source, "[server]\nport = 9090\n\n[cache]\nsize = 64\n"))

		output, err := captureOutput(t, func() error {
			return runImport([]string{path, source})
		})
		require.NoError(t, err)
		assert.Contains(t, output, "Imported")

		content := readFile(t, path)
		assert.Contains(t, content, "port=9090\n;tls is optional\n")
		assert.Contains(t, content, "[cache]\nsize=64\n")
	})

	t.Run("json with explicit format", func(t *testing.T) {
		resetFlags()
		importFormat = "json"
		path := writeSample(t)
		source := filepath.Join(t.TempDir(), "overrides.txt")
		require.NoError(t, writeRaw(source, `{"name": "renamed"}`))

		_, err := captureOutput(t, func() error {
			return runImport([]string{path, source})
		})
		require.NoError(t, err)
		assert.Contains(t, readFile(t, path), ";application settings\nname=renamed\n")
	})

	t.Run("ini source rejected", func(t *testing.T) {
		resetFlags()
		path := writeSample(t)

		_, err := captureOutput(t, func() error {
			return runImport([]string{path, writeSample(t)})
		})
		assert.Error(t, err)
	})

	t.Run("nested tables rejected", func(t *testing.T) {
		resetFlags()
		path := writeSample(t)
		source := filepath.Join(t.TempDir(), "deep.json")
		require.NoError(t, writeRaw(source, `{"a": {"b": {"c": 1}}}`))

		_, err := captureOutput(t, func() error {
			return runImport([]string{path, source})
		})
		assert.Error(t, err)
		assert.Equal(t, sampleDocument, readFile(t, path))
	})

	t.Run("multiline value rejected", func(t *testing.T) {
		resetFlags()
		path := writeSample(t)
		source := filepath.Join(t.TempDir(), "inject.yaml")
		require.NoError(t, writeRaw(source, `server: {motd: "hello\n[admin]\ntoken=stolen\n"}`+"\n"))

		_, err := captureOutput(t, func() error {
			return runImport([]string{path, source})
		})
		assert.Error(t, err)
		assert.Equal(t, sampleDocument, readFile(t, path))
	})

	t.Run("invalid key rejected", func(t *testing.T) {
		resetFlags()
		path := writeSample(t)
		source := filepath.Join(t.TempDir(), "badkey.json")
		require.NoError(t, writeRaw(source, `{"server": {"port": "1", "[x": "1"}}`))

		_, err := captureOutput(t, func() error {
			return runImport([]string{path, source})
		})
		assert.Error(t, err)
		assert.Equal(t, sampleDocument, readFile(t, path))
	})

	t.Run("missing source", func(t *testing.T) {
		resetFlags()

		_, err := captureOutput(t, func() error {
			return runImport([]string{writeSample(t), filepath.Join(t.TempDir(), "absent.toml")})
		})
		assert.Error(t, err)
	})
}
