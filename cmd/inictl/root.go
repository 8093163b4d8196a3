// FILE: lixenwraith/inifile/cmd/inictl/root.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lixenwraith/inifile"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose      bool
	quiet        bool
	jsonOut      bool
	encodingName string
)

var rootCmd = &cobra.Command{
	Use:   "inictl",
	Short: "Inspect and edit INI-style configuration files",
	Long: `inictl reads and edits INI-style configuration files without disturbing
comments, ordering or any line it does not touch. Files are only rewritten
when a command actually changes them.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&encodingName, "encoding", "", "File character encoding (e.g. windows-1252)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// openDocument loads the document at path with the global flags applied
func openDocument(path string) (*inifile.Document, error) {
	printVerbose("Opening document: %s\n", path)

	doc, err := inifile.NewBuilder().
		WithFile(path).
		WithArgs(nil).
		WithEncodingName(encodingName).
		WithLogger(newLogger()).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	return doc, nil
}

// closeDocument saves pending changes and reports whether a write happened
func closeDocument(doc *inifile.Document) error {
	changed := doc.Dirty()
	if err := doc.Close(); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	if changed {
		printVerbose("Saved %s\n", doc.Path())
	} else {
		printVerbose("No changes to save\n")
	}
	return nil
}

// newLogger routes library debug records to stderr in verbose mode
func newLogger() *slog.Logger {
	if !verbose || quiet {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
