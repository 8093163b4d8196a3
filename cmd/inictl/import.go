// FILE: lixenwraith/inifile/cmd/inictl/import.go
package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/inifile"
	"github.com/spf13/cobra"
)

var importFormat string

func init() {
	cmd := newImportCmd()
	cmd.Flags().StringVarP(&importFormat, "format", "f", "", "Source format (toml, yaml, json); detected when omitted")
	rootCmd.AddCommand(cmd)
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file> <source>",
		Short: "Merge a TOML, YAML or JSON file into a document",
		Long: `The import command writes the values of a TOML, YAML or JSON file into
the document. Top-level values go to the headerless section and each table
to the section of the same name. Existing keys are overwritten in place.

Example:
  inictl import app.ini overrides.toml
  inictl import app.ini settings.json --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(args)
		},
	}
	return cmd
}

func runImport(args []string) error {
	path := args[0]
	source := args[1]

	data, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}

	format := importFormat
	if format == "" {
		format = inifile.DetectFileFormat(source)
	}
	if format == inifile.FormatINI {
		return fmt.Errorf("importing from INI is not supported, use a TOML, YAML or JSON source")
	}

	doc, err := openDocument(path)
	if err != nil {
		return err
	}

	if err := doc.Merge(data, format); err != nil {
		doc.Close()
		return fmt.Errorf("failed to import %s: %w", source, err)
	}

	if err := closeDocument(doc); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"source":  source,
			"success": true,
		})
	}

	printInfo("Imported %s into %s\n", source, path)
	return nil
}
