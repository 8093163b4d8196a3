// FILE: lixenwraith/inifile/cmd/inictl/export.go
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/lixenwraith/inifile"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format (ini, toml, yaml, json); defaults to the output extension, then json")
	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a document to TOML, YAML or JSON",
		Long: `The export command converts a document into another configuration format.
Keys before the first header become top-level keys and each section becomes a table.
Comments and shadowed duplicates are not exported.

Example:
  inictl export app.ini --format yaml
  inictl export app.ini -o app.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	doc, err := openDocument(args[0])
	if err != nil {
		return err
	}
	defer doc.Close()

	format := exportFormat
	if format == "" && exportOutput != "" {
		format = inifile.DetectFileFormat(exportOutput)
	}
	if format == "" {
		format = inifile.FormatJSON
	}

	var buf bytes.Buffer
	if err := doc.Export(&buf, format); err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	if exportOutput == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(exportOutput, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	printInfo("Exported %s to %s (%s)\n", args[0], exportOutput, format)
	return nil
}
