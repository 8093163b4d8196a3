// FILE: lixenwraith/inifile/cmd/inictl/set.go
package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/inifile"
	"github.com/spf13/cobra"
)

var setType string

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setType, "type", "string", "Value type (string, int, bool, char, float, currency, datetime, binary)")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <section> <key> <value>",
		Short: "Set a value",
		Long: `The set command stores a value, creating the section and key when
they do not exist. The value is validated and encoded for the requested type.

Example:
  inictl set app.ini server host example.com
  inictl set app.ini server port 8080 --type int
  inictl set app.ini server tls true --type bool
  inictl set app.ini billing rate 12.50 --type currency
  inictl set app.ini schedule next "2024/01/15 08:30:00" --type datetime
  inictl set app.ini license key DEADBEEF --type binary`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	path := args[0]
	section := args[1]
	key := args[2]
	valueStr := args[3]

	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	if strings.ContainsAny(section, "\r\n") {
		return fmt.Errorf("section name %q spans multiple lines", section)
	}

	doc, err := openDocument(path)
	if err != nil {
		return err
	}

	if err := writeTyped(doc, section, key, setType, valueStr); err != nil {
		doc.Close()
		return err
	}

	if err := closeDocument(doc); err != nil {
		return err
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"section": section,
			"key":     key,
			"type":    setType,
			"success": true,
		})
	}

	printInfo("Set [%s] %s = %s\n", section, key, valueStr)
	return nil
}

// writeTyped parses value as typ and stores it through the matching typed writer
func writeTyped(doc *inifile.Document, section, key, typ, value string) error {
	if err := inifile.ValidateEntry(key, value); err != nil {
		return err
	}

	switch typ {
	case "string":
		doc.WriteString(section, key, value)
	case "int":
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", value, err)
		}
		doc.WriteInteger(section, key, v)
	case "bool":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q: %w", value, err)
		}
		doc.WriteBool(section, key, v)
	case "char":
		runes := []rune(value)
		if len(runes) != 1 {
			return fmt.Errorf("char value must be exactly one character, got %q", value)
		}
		doc.WriteChar(section, key, runes[0])
	case "float":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid float %q: %w", value, err)
		}
		doc.WriteFloat(section, key, v)
	case "currency":
		v, err := inifile.ParseCurrency(value)
		if err != nil {
			return err
		}
		doc.WriteCurrency(section, key, v)
	case "datetime":
		v, err := parseDateTime(value)
		if err != nil {
			return fmt.Errorf("invalid date-time %q, expected %s: %w", value, inifile.DateTimeLayout, err)
		}
		doc.WriteDateTime(section, key, v)
	case "binary":
		data, err := hex.DecodeString(strings.ReplaceAll(value, ",", ""))
		if err != nil {
			return fmt.Errorf("invalid hex data %q: %w", value, err)
		}
		doc.WriteBinary(section, key, data)
	default:
		return fmt.Errorf("unknown value type %q", typ)
	}
	return nil
}
