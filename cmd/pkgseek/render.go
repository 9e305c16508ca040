package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pkgseek/pkgseek/internal/searcher"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// renderTable formats search results as a Name/Version/Source table.
func renderTable(results []searcher.Result) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Name", "Version", "Source")

	for _, r := range results {
		t.Row(r.Name, r.Version, r.Source)
	}
	return t.Render()
}
