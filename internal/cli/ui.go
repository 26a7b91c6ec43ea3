package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - values
	colorGreen = lipgloss.Color("35")  // Green - yes
	colorRed   = lipgloss.Color("167") // Soft red - no
	colorWhite = lipgloss.Color("255") // Bright white - plain data
	colorGray  = lipgloss.Color("245") // Gray - labels
	colorDim   = lipgloss.Color("240") // Dim gray - separators
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for section headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleDim for separators and muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleYes   = lipgloss.NewStyle().Foreground(colorGreen)
	styleNo    = lipgloss.NewStyle().Foreground(colorRed)
	styleLabel = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

const (
	iconArrow = "→"
	iconYes   = "✓"
	iconNo    = "✗"
)

// =============================================================================
// Output Helpers
// =============================================================================

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleLabel.Render(key)+" "+StyleValue.Render(value))
}

// printBool prints a labeled yes/no answer.
func printBool(w io.Writer, key string, v bool) {
	answer := styleNo.Render(iconNo + " no")
	if v {
		answer = styleYes.Render(iconYes + " yes")
	}
	fmt.Fprintln(w, styleLabel.Render(key)+" "+answer)
}

// renderChain joins values with dim arrows: 1 → 2 → 3.
// An empty chain renders as "(empty)".
func renderChain[T any](values []T) string {
	if len(values) == 0 {
		return StyleDim.Render("(empty)")
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = StyleValue.Render(fmt.Sprint(v))
	}
	return strings.Join(parts, " "+StyleDim.Render(iconArrow)+" ")
}

// renderSets formats a power set as {a, b} groups on one line.
func renderSets[T any](sets [][]T) string {
	parts := make([]string, len(sets))
	for i, s := range sets {
		items := make([]string, len(s))
		for j, v := range s {
			items[j] = fmt.Sprint(v)
		}
		parts[i] = "{" + strings.Join(items, ", ") + "}"
	}
	return strings.Join(parts, " ")
}

// renderGrid draws rows as a bordered table.
func renderGrid[T any](rows [][]T) string {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = fmt.Sprint(v)
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1).Align(lipgloss.Right)
		})

	return t.Render()
}
