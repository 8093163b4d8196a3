// FILE: lixenwraith/inifile/cmd/inictl/get.go
package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/lixenwraith/inifile"
	"github.com/spf13/cobra"
)

var (
	getType    string
	getDefault string
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().StringVar(&getType, "type", "string", "Value type (string, int, bool, char, float, currency, datetime, binary)")
	cmd.Flags().StringVar(&getDefault, "default", "", "Value printed when the key is absent")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <section> <key>",
		Short: "Get a value",
		Long: `The get command prints the value stored for a key, decoded as the
requested type. Use "" as the section name for keys before the first header.

Example:
  inictl get app.ini server host
  inictl get app.ini server port --type int
  inictl get app.ini license key --type binary`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path := args[0]
	section := args[1]
	key := args[2]

	doc, err := openDocument(path)
	if err != nil {
		return err
	}
	defer doc.Close()

	if !doc.KeyExists(section, key) && getDefault == "" {
		return fmt.Errorf("key %q not found in section %q", key, section)
	}

	value, err := readTyped(doc, section, key, getType, getDefault)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"section": section,
			"key":     key,
			"type":    getType,
			"value":   value,
		})
	}

	printInfo("%s\n", value)
	return nil
}

// readTyped reads a value through the typed accessor for typ and renders it as text.
// def is parsed with the same rules as the set command.
func readTyped(doc *inifile.Document, section, key, typ, def string) (string, error) {
	switch typ {
	case "string":
		return doc.ReadString(section, key, def), nil
	case "int":
		fallback, err := parseDefault(def, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) })
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(doc.ReadInteger(section, key, fallback), 10), nil
	case "bool":
		fallback, err := parseDefault(def, strconv.ParseBool)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(doc.ReadBool(section, key, fallback)), nil
	case "char":
		var fallback rune
		for _, r := range def {
			fallback = r
			break
		}
		c := doc.ReadChar(section, key, fallback)
		if c == 0 {
			return "", nil
		}
		return string(c), nil
	case "float":
		fallback, err := parseDefault(def, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(doc.ReadFloat(section, key, fallback), 'g', -1, 64), nil
	case "currency":
		fallback, err := parseDefault(def, inifile.ParseCurrency)
		if err != nil {
			return "", err
		}
		return doc.ReadCurrency(section, key, fallback).String(), nil
	case "datetime":
		fallback, err := parseDefault(def, parseDateTime)
		if err != nil {
			return "", err
		}
		v := doc.ReadDateTime(section, key, fallback)
		if v.IsZero() {
			return "", nil
		}
		return v.Format(inifile.DateTimeLayout), nil
	case "binary":
		data, err := doc.ReadBytes(section, key)
		if err != nil {
			return "", err
		}
		if data == nil {
			return def, nil
		}
		return hex.EncodeToString(data), nil
	default:
		return "", fmt.Errorf("unknown value type %q", typ)
	}
}

// parseDefault parses def with parse, treating "" as the zero value
func parseDefault[T any](def string, parse func(string) (T, error)) (T, error) {
	var zero T
	if def == "" {
		return zero, nil
	}
	v, err := parse(def)
	if err != nil {
		return zero, fmt.Errorf("invalid default %q: %w", def, err)
	}
	return v, nil
}

func parseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(inifile.DateTimeLayout, s, time.Local)
}
