// FILE: lixenwraith/inifile/cmd/inictl/entries.go
package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newEntriesCmd())
}

func newEntriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries <file> <section>",
		Short: "List the key/value pairs of a section",
		Long: `The entries command prints every key=value pair of a section in file order.

Example:
  inictl entries app.ini server
  inictl entries app.ini server --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntries(args)
		},
	}
	return cmd
}

func runEntries(args []string) error {
	doc, err := openDocument(args[0])
	if err != nil {
		return err
	}
	defer doc.Close()

	entries := doc.ListSectionEntries(args[1])

	if jsonOut {
		return printJSON(map[string]interface{}{
			"section": args[1],
			"entries": entries,
		})
	}

	for _, kv := range entries {
		printInfo("%s=%s\n", kv.Key, kv.Value)
	}
	return nil
}
