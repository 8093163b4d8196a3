// FILE: lixenwraith/inifile/example/main.go
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/inifile"
)

// ServerSection mirrors the [server] section of the demo document.
type ServerSection struct {
	Host    string           `ini:"host"`
	Port    int              `ini:"port"`
	TLS     bool             `ini:"tls"`
	Timeout time.Duration    `ini:"timeout"`
	Rate    inifile.Currency `ini:"rate"`
}

const initialDocument = `; demo settings
app=inifile-demo

[server]
host=localhost
; port is overridden below
port=8080
tls=0
timeout=30s
rate=0.5
`

func main() {
	// =========================================================================
	// PART 1: INITIAL SETUP
	// Write a document with comments to a temp dir.
	// =========================================================================
	dir, err := os.MkdirTemp("", "inifile-demo")
	if err != nil {
		log.Fatalf("FATAL: could not create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "app.ini")
	if err := os.WriteFile(path, []byte(initialDocument), 0644); err != nil {
		log.Fatalf("FATAL: could not write demo document: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// =========================================================================
	// PART 2: OPEN AND SCAN
	// =========================================================================
	var server ServerSection
	doc, err := inifile.NewBuilder().
		WithFile(path).
		WithLogger(logger).
		WithValidator(func(d *inifile.Document) error {
			return d.Validate("server", "host", "port")
		}).
		BuildAndScan("server", &server)
	if err != nil {
		log.Fatalf("FATAL: could not open document: %v", err)
	}

	fmt.Printf("Sections: %q\n", doc.ListSections())
	fmt.Printf("Server:   %+v\n", server)
	fmt.Printf("Rate:     %s\n", server.Rate)

	// =========================================================================
	// PART 3: TYPED WRITES
	// =========================================================================
	doc.WriteInteger("server", "port", 9443)
	doc.WriteBool("server", "tls", true)
	doc.WriteDateTime("server", "updated", time.Now())
	doc.WriteBinary("license", "key", []byte{0xDE, 0xAD, 0xBE, 0xEF})
	doc.DeleteKey("server", "timeout")

	buf := make([]byte, 4)
	n, err := doc.ReadBinary("license", "key", buf)
	if err != nil {
		log.Fatalf("FATAL: could not read binary value: %v", err)
	}
	fmt.Printf("License:  % X (%d bytes)\n", buf[:n], n)

	// =========================================================================
	// PART 4: EXPORT AND SAVE
	// =========================================================================
	fmt.Println("\n--- YAML export ---")
	if err := doc.Export(os.Stdout, inifile.FormatYAML); err != nil {
		log.Fatalf("FATAL: export failed: %v", err)
	}

	if err := doc.Close(); err != nil {
		log.Fatalf("FATAL: could not save document: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("FATAL: could not read saved document: %v", err)
	}
	fmt.Println("\n--- Saved document ---")
	fmt.Print(string(data))
}
