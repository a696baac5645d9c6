package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const heatmapLevels = 4

// heatLevel buckets count into 0..heatmapLevels relative to peak.
func heatLevel(count, peak int) int {
	if count <= 0 || peak <= 0 {
		return 0
	}
	return min((count*heatmapLevels+peak-1)/peak, heatmapLevels)
}

// heatmapColor interpolates between the theme's banner endpoints.
func heatmapColor(t Theme, level int) lipgloss.Color {
	frac := float64(level) / heatmapLevels
	dark, bright := t.BannerDark, t.BannerBright
	r := dark[0] + int(frac*float64(bright[0]-dark[0]))
	g := dark[1] + int(frac*float64(bright[1]-dark[1]))
	b := dark[2] + int(frac*float64(bright[2]-dark[2]))
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// renderHeatmap draws a calendar of byDate counts: one column per week,
// Sunday at the top, ending with the week that contains end.
func renderHeatmap(byDate map[string]int, end time.Time, weeks int, t Theme) string {
	if weeks <= 0 {
		return ""
	}
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -int(end.Weekday())-7*(weeks-1))

	peak := 0
	for _, n := range byDate {
		peak = max(peak, n)
	}

	lblStyle := lipgloss.NewStyle().Foreground(t.Subtle)
	dayLabels := [7]string{"   ", "Mon", "   ", "Wed", "   ", "Fri", "   "}

	var b strings.Builder
	for day := range 7 {
		b.WriteString(lblStyle.Render(dayLabels[day]) + " ")
		for week := range weeks {
			date := start.AddDate(0, 0, week*7+day)
			if date.After(end) {
				b.WriteString("  ")
				continue
			}
			level := heatLevel(byDate[date.Format("2006-01-02")], peak)
			cell := lipgloss.NewStyle().Foreground(heatmapColor(t, level)).Render("■")
			if level == 0 {
				cell = lblStyle.Render("·")
			}
			b.WriteString(cell + " ")
		}
		if day < 6 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
