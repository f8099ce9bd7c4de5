package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/FreeMasen/orbi-helpers/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	plainCell   = lipgloss.NewStyle().Padding(0, 1)
)

// Table renders the selected fields as a bordered terminal table. Colors
// are dropped automatically when the output is not a terminal.
func Table(devices *model.AttachedDevices, fields []model.Field) string {
	header, rows := Rows(devices, fields)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(header...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

// PlainText renders the default fields as an ASCII table with no escape
// sequences, for HTTP clients asking for text/plain.
func PlainText(devices *model.AttachedDevices) string {
	header, rows := Rows(devices, model.DefaultFields)
	t := table.New().
		Border(lipgloss.ASCIIBorder()).
		Headers(header...).
		Rows(rows...).
		StyleFunc(func(_, _ int) lipgloss.Style { return plainCell })
	return t.String() + "\n"
}
