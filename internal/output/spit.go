// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/staranto/sgdatago/internal/settings"
)

// Formats are the accepted --output values.
var Formats = []string{"text", "json", "raw", "yaml"}

// Colors are the text table colors.
type Colors struct {
	Title string
	Even  string
	Odd   string
}

// Options control how a result set is emitted.
type Options struct {
	Format  string
	Titles  bool
	Color   bool
	Sort    string
	Filter  string
	Padding int
	Colors  Colors
}

// NewOptions reads the output related flags from cmd. Padding and colors come
// from the settings file.
func NewOptions(cmd *cli.Command, s settings.Type) Options {
	opts := Options{
		Format: cmd.String("output"),
		Titles: cmd.Bool("titles"),
		Color:  cmd.Bool("color"),
		Sort:   cmd.String("sort"),
		Filter: cmd.String("filter"),
	}
	opts.Padding, _ = s.GetInt("padding", 1)
	opts.Colors = getColors(s, "colors")
	return opts
}

// SliceDiceSpit filters, sorts and renders rows. columns fixes the column
// order for text and raw output.
func SliceDiceSpit(rows []map[string]interface{}, columns []string, opts Options, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	filtered := FilterDataset(rows, opts.Filter)
	SortDataset(filtered, opts.Sort)
	log.Debugf("emitting %d of %d rows as %s", len(filtered), len(rows), opts.Format)

	switch opts.Format {
	case "json":
		if filtered == nil {
			filtered = []map[string]interface{}{}
		}
		out, err := json.Marshal(filtered)
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		out, err := yaml.Marshal(filtered)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "raw":
		for _, row := range filtered {
			cells := make([]string, 0, len(columns))
			for _, c := range columns {
				cells = append(cells, InterfaceToString(row[c]))
			}
			if _, err := fmt.Fprintln(w, strings.Join(cells, ",")); err != nil {
				return err
			}
		}
		return nil
	default:
		TableWriter(filtered, columns, opts, w)
		return nil
	}
}

// SpitMap emits key/value pairs as rows with "key" and "value" columns,
// sorted by key. Raw output is key=value lines.
func SpitMap(kv map[string]string, opts Options, w io.Writer) error {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if opts.Format == "raw" {
		if w == nil {
			w = os.Stdout
		}
		for _, k := range keys {
			if _, err := fmt.Fprintf(w, "%s=%s\n", k, kv[k]); err != nil {
				return err
			}
		}
		return nil
	}

	rows := make([]map[string]interface{}, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, map[string]interface{}{"key": k, "value": kv[k]})
	}
	return SliceDiceSpit(rows, []string{"key", "value"}, opts, w)
}

// SpitValue emits a single value. text and raw print it bare.
func SpitValue(v string, opts Options, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	switch opts.Format {
	case "json":
		out, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}
}

// TableWriter renders the result set in a tabular form honoring color,
// titles and padding options.
func TableWriter(resultSet []map[string]interface{}, columns []string, opts Options, w io.Writer) {
	if len(resultSet) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerStyle = headerStyle.Foreground(lipgloss.Color(opts.Colors.Title))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(opts.Colors.Even))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(opts.Colors.Odd))
	}

	rows := make([][]string, 0, len(resultSet))
	for _, result := range resultSet {
		row := make([]string, 0, len(columns))
		for _, c := range columns {
			row = append(row, InterfaceToString(result[c], "-"))
		}
		rows = append(rows, row)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(opts.Padding)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(columns...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering.
func getColors(s settings.Type, key string) Colors {
	var c Colors
	c.Title, _ = s.GetString(key+".title", "#f6be00")
	c.Even, _ = s.GetString(key+".even", "#ffffff")
	c.Odd, _ = s.GetString(key+".odd", "#00c8f0")
	return c
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
