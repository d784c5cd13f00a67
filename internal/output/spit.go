// Copyright © 2025 eligum <eligum@users.noreply.github.com>
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/big"
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/eligum/primes/internal/attrs"
	"github.com/eligum/primes/internal/config"
)

// SliceDiceSpit orchestrates filtering, sorting and rendering of a
// dataset according to command flags and attribute specifications. raw
// holds a JSON document; parent (optional) is the gjson path to the row
// array within it.
func SliceDiceSpit(raw bytes.Buffer,
	attrs attrs.AttrList,
	cmd *cli.Command,
	parent string,
	w io.Writer) {

	if w == nil {
		w = os.Stdout
	}

	// If raw, just dump it and go home.
	output := cmd.String("output")
	if output == "raw" {
		_, _ = w.Write(raw.Bytes())
		return
	}

	var fullDataset gjson.Result
	if parent != "" {
		fullDataset = gjson.Parse(raw.String()).Get(parent)
	} else {
		fullDataset = gjson.Parse(raw.String())
	}

	// Filter out the rows we don't want. Do it here so that the following
	// processes are slightly more efficient since they'll be working on a
	// smaller dataset.
	filteredDataset := FilterDataset(fullDataset, attrs, cmd.String("filter"))

	SortDataset(filteredDataset, cmd.String("sort"))

	switch output {
	case "json":
		jsonOutput, err := json.Marshal(filteredDataset)
		if err != nil {
			log.WithError(err).Error("SliceDiceSpit()")
		}
		_, _ = w.Write(jsonOutput)
		fmt.Fprintln(w)
	case "yaml":
		yamlOutput, err := yaml.Marshal(filteredDataset)
		if err != nil {
			log.WithError(err).Error("SliceDiceSpit()")
		}
		_, _ = w.Write(yamlOutput)
	default:
		TableWriter(filteredDataset, attrs, cmd, w)
	}
}

// TableWriter renders the result set in a tabular form honoring color,
// titles, human-readable grouping and padding options.
func TableWriter(
	resultSet []map[string]interface{},
	attrs attrs.AttrList,
	cmd *cli.Command,
	w io.Writer) {

	if len(resultSet) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if cmd.Bool("color") {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	human := cmd.Bool("human")

	var rows [][]string
	for _, result := range resultSet {
		row := make([]string, 0, len(result))
		for _, attr := range attrs {
			if !attr.Include {
				continue
			}
			row = append(row, cell(result[attr.OutputKey], human))
		}
		rows = append(rows, row)
	}

	pad, _ := config.GetInt("padding", 2)

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
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if cmd.Bool("titles") {
		var headers []string
		for _, attr := range attrs {
			if attr.Include {
				headers = append(headers, attr.OutputKey)
			}
		}

		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// cell renders a single table value. With human enabled, integers get
// comma grouping (1009 -> "1,009").
func cell(value interface{}, human bool) string {
	if human {
		switch v := value.(type) {
		case uint64:
			if v > math.MaxInt64 {
				return humanize.BigComma(new(big.Int).SetUint64(v))
			}
			return humanize.Comma(int64(v))
		case int:
			return humanize.Comma(int64(v))
		case int64:
			return humanize.Comma(v)
		}
	}
	return InterfaceToString(value, "-")
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom value for nil may be provided.
func InterfaceToString(value interface{}, nilValue ...string) string {
	if len(nilValue) == 0 {
		nilValue = []string{""}
	}

	if value == nil {
		return nilValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case uint64:
		return strconv.FormatUint(value, 10)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		// Row values keep whole numbers as uint64, so a float here
		// carries a fractional part.
		return strconv.FormatFloat(value, 'g', -1, 64)
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
