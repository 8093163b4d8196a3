// FILE: lixenwraith/inifile/cmd/inictl/delete.go
package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDeleteCmd())
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <file> <section> <key>",
		Short: "Delete a key",
		Long: `The delete command removes the first occurrence of a key from a section.
Deleting an absent key leaves the file untouched.

Example:
  inictl delete app.ini server debug`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
	return cmd
}

func runDelete(args []string) error {
	path := args[0]
	section := args[1]
	key := args[2]

	doc, err := openDocument(path)
	if err != nil {
		return err
	}

	doc.DeleteKey(section, key)
	deleted := doc.Dirty()

	if err := closeDocument(doc); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"section": section,
			"key":     key,
			"deleted": deleted,
		})
	}

	if deleted {
		printInfo("Deleted [%s] %s\n", section, key)
	} else {
		printInfo("Key %s not found in [%s], nothing to delete\n", key, section)
	}
	return nil
}
