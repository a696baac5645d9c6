package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jpoz/gitdash/internal/unified"
)

// BarChartData represents a single bar in the chart.
type BarChartData struct {
	Label string
	Value int
}

// categoryBars returns one bar per contribution category in display order.
func categoryBars(c unified.ContributionData) []BarChartData {
	cats := unified.Categories()
	data := make([]BarChartData, 0, len(cats))
	for _, cat := range cats {
		data = append(data, BarChartData{Label: string(cat), Value: c.ByCategory[cat]})
	}
	return data
}

// renderBarChart renders a text-based bar chart using block characters. The
// tallest bar is drawn in peakColor.
func renderBarChart(data []BarChartData, maxHeight int, barColor, labelColor, peakColor lipgloss.Color) string {
	if len(data) == 0 {
		return ""
	}

	maxVal := 0
	barWidth := 3
	for _, d := range data {
		maxVal = max(maxVal, d.Value)
		barWidth = max(barWidth, len(d.Label))
	}

	// Limit available height for bars (leave room for x-axis labels)
	barMaxHeight := max(maxHeight-2, 1)
	yWidth := max(len(fmt.Sprint(maxVal)), 2)

	barStyle := lipgloss.NewStyle().Foreground(barColor)
	peakStyle := lipgloss.NewStyle().Foreground(peakColor)
	lblStyle := lipgloss.NewStyle().Foreground(labelColor)

	var b strings.Builder

	for row := barMaxHeight; row >= 1; row-- {
		switch {
		case maxVal > 0 && row == barMaxHeight:
			b.WriteString(lblStyle.Render(fmt.Sprintf("%*d │", yWidth, maxVal)))
		case maxVal > 0 && row == 1:
			b.WriteString(lblStyle.Render(fmt.Sprintf("%*d │", yWidth, 0)))
		default:
			b.WriteString(lblStyle.Render(strings.Repeat(" ", yWidth) + " │"))
		}

		for i, d := range data {
			var barHeight int
			if maxVal > 0 {
				barHeight = d.Value * barMaxHeight / maxVal
				if d.Value > 0 && barHeight == 0 {
					barHeight = 1
				}
			}

			style := barStyle
			if maxVal > 0 && d.Value == maxVal {
				style = peakStyle
			}

			if row <= barHeight {
				b.WriteString(style.Render(strings.Repeat("█", barWidth)))
			} else if row == barHeight+1 && d.Value > 0 {
				b.WriteString(lblStyle.Render(fmt.Sprintf("%-*d", barWidth, d.Value)))
			} else {
				b.WriteString(strings.Repeat(" ", barWidth))
			}

			if i < len(data)-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(lblStyle.Render(strings.Repeat(" ", yWidth) + " └"))
	b.WriteString(lblStyle.Render(strings.Repeat("─", len(data)*(barWidth+1))))
	b.WriteString("\n")

	b.WriteString(strings.Repeat(" ", yWidth+2))
	for i, d := range data {
		b.WriteString(lblStyle.Render(fmt.Sprintf("%-*s", barWidth, d.Label)))
		if i < len(data)-1 {
			b.WriteString(" ")
		}
	}

	return b.String()
}
