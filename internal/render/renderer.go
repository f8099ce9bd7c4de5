// Package render turns AttachedDevices into text for terminals, scripts and
// HTTP clients. Nothing here modifies its input.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/FreeMasen/orbi-helpers/internal/model"
)

// Format selects a CLI output representation.
type Format string

const (
	FormatTable  Format = "table"
	FormatSimple Format = "simple"
	FormatJSON   Format = "json"
)

// Formats lists the accepted --output-format values.
func Formats() []string {
	return []string{string(FormatTable), string(FormatSimple), string(FormatJSON)}
}

// ParseFormat validates a --output-format value. Empty means table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatSimple, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (valid: %s)", s, strings.Join(Formats(), ", "))
}

// Write renders devices in the given format to w. fields only applies to
// the table format.
func Write(w io.Writer, format Format, devices *model.AttachedDevices, fields []model.Field) error {
	var out string
	switch format {
	case FormatTable, "":
		out = Table(devices, fields) + "\n"
	case FormatSimple:
		out = Simple(devices)
	case FormatJSON:
		data, err := JSON(devices)
		if err != nil {
			return err
		}
		out = string(data) + "\n"
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	_, err := io.WriteString(w, out)
	return err
}

// Rows returns the header labels and one row per entry of devices.Devices
// holding the selected fields in order. No fields means model.DefaultFields.
func Rows(devices *model.AttachedDevices, fields []model.Field) ([]string, [][]string) {
	if len(fields) == 0 {
		fields = model.DefaultFields
	}
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.Label()
	}
	if devices == nil {
		return header, [][]string{}
	}
	rows := make([][]string, 0, len(devices.Devices))
	for i := range devices.Devices {
		d := &devices.Devices[i]
		row := make([]string, len(fields))
		for j, f := range fields {
			row[j] = f.Value(d)
		}
		rows = append(rows, row)
	}
	return header, rows
}

// Simple returns one "<name>: <ip>" line per device.
func Simple(devices *model.AttachedDevices) string {
	if devices == nil {
		return ""
	}
	var b strings.Builder
	for _, d := range devices.Devices {
		fmt.Fprintf(&b, "%s: %s\n", d.Name, d.IP)
	}
	return b.String()
}

// JSON returns the full structure, satellites included, as indented JSON.
func JSON(devices *model.AttachedDevices) ([]byte, error) {
	if devices == nil {
		devices = model.NewAttachedDevices()
	}
	data, err := json.MarshalIndent(devices, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode devices: %w", err)
	}
	return data, nil
}
