// FILE: lixenwraith/inifile/cmd/inictl/erase.go
package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newEraseCmd())
}

func newEraseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "erase <file> <section>",
		Short: "Erase a whole section",
		Long: `The erase command removes the first section with the given name,
including its comments. The headerless section cannot be erased.

Example:
  inictl erase app.ini legacy`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runErase(args)
		},
	}
	return cmd
}

func runErase(args []string) error {
	path := args[0]
	section := args[1]

	doc, err := openDocument(path)
	if err != nil {
		return err
	}

	doc.EraseSection(section)
	erased := doc.Dirty()

	if err := closeDocument(doc); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"section": section,
			"erased":  erased,
		})
	}

	if erased {
		printInfo("Erased section [%s]\n", section)
	} else {
		printInfo("Section [%s] not erased\n", section)
	}
	return nil
}
