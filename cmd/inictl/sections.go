// FILE: lixenwraith/inifile/cmd/inictl/sections.go
package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSectionsCmd())
}

func newSectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections <file>",
		Short: "List section names",
		Long: `The sections command lists every section in file order, including
repeated headers. The headerless section is shown as "".

Example:
  inictl sections app.ini
  inictl sections app.ini --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSections(args)
		},
	}
	return cmd
}

func runSections(args []string) error {
	doc, err := openDocument(args[0])
	if err != nil {
		return err
	}
	defer doc.Close()

	names := doc.ListSections()

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":     args[0],
			"sections": names,
		})
	}

	for _, name := range names {
		if name == "" {
			printInfo("\"\"\n")
			continue
		}
		printInfo("%s\n", name)
	}
	printVerbose("\n%d section(s)\n", len(names))
	return nil
}
