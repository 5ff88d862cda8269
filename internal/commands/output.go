package commands

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/gitquery/pkg/iojson"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func formatFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "format",
		Usage:       "output format (text, json)",
		Value:       formatText,
		Destination: dest,
	}
}

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
}

// writeString prints a string query result. An empty value prints nothing in
// text mode and exits 1 in both modes.
func writeString(c *cli.Command, format, key, value string) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	root := c.Root()
	if format == formatJSON {
		if err := iojson.WriteWith(root.Writer, root.ErrWriter, map[string]string{key: value}); err != nil {
			return err
		}
	} else if value != "" {
		_, _ = fmt.Fprintln(root.Writer, value)
	}

	if value == "" {
		return cli.Exit("", 1)
	}
	return nil
}

// writeBool prints a predicate result and exits 1 when it is false.
func writeBool(c *cli.Command, format, key string, value bool) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	root := c.Root()
	if format == formatJSON {
		if err := iojson.WriteWith(root.Writer, root.ErrWriter, map[string]bool{key: value}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintln(root.Writer, value)
	}

	if !value {
		return cli.Exit("", 1)
	}
	return nil
}
