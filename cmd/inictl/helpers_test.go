// FILE: lixenwraith/inifile/cmd/inictl/helpers_test.go
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDocument = `;application settings
name=demo

[server]
host=example.com
port=8080
;tls is optional
tls=1

[license]
key=DE,AD,BE,EF

[legacy]
old=1

`

// writeSample writes the sample document to a temp dir and returns its path
func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.ini")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0644))
	return path
}

// readFile returns the content of path
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// resetFlags restores every command flag to its default
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	encodingName = ""
	getType = "string"
	getDefault = ""
	setType = "string"
	exportFormat = ""
	exportOutput = ""
	importFormat = ""
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Drain the pipe concurrently so large outputs cannot block
	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		buf.ReadFrom(r)
		close(done)
	}()

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout
	<-done

	return buf.String(), fnErr
}

// decodeJSON unmarshals command output into a map
func decodeJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &result), "output: %s", output)
	return result
}

// writeRaw writes content to path
func writeRaw(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
