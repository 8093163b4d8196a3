// FILE: lixenwraith/inifile/cmd/inictl/keys.go
package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <file> <section>",
		Short: "List the keys of a section",
		Long: `The keys command lists the keys of a section in file order.
Comment lines are skipped.

Example:
  inictl keys app.ini server`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

func runKeys(args []string) error {
	doc, err := openDocument(args[0])
	if err != nil {
		return err
	}
	defer doc.Close()

	keys := doc.ListIdentifiers(args[1])

	if jsonOut {
		return printJSON(map[string]interface{}{
			"section": args[1],
			"keys":    keys,
		})
	}

	for _, key := range keys {
		printInfo("%s\n", key)
	}
	printVerbose("\n%d key(s)\n", len(keys))
	return nil
}
