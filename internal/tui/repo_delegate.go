package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/jpoz/gitdash/internal/unified"
)

// RepoDelegate is a custom list.ItemDelegate that renders repositories with
// individually colored star, fork and language badges.
type RepoDelegate struct {
	theme Theme
	now   func() time.Time
}

func newRepoDelegate(t Theme, now func() time.Time) RepoDelegate {
	return RepoDelegate{theme: t, now: now}
}

func (d RepoDelegate) Height() int                             { return 2 }
func (d RepoDelegate) Spacing() int                            { return 1 }
func (d RepoDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d RepoDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	repoItem, ok := item.(RepoItem)
	if !ok {
		return
	}
	repo := repoItem.repo

	selected := index == m.Index()

	nameColor := d.theme.NormalForeground
	if selected {
		nameColor = d.theme.SelectedForeground
	}
	segments := []string{lipgloss.NewStyle().Foreground(nameColor).Bold(selected).Render(repo.Name)}

	if repo.Stars > 0 {
		segments = append(segments, lipgloss.NewStyle().Foreground(d.theme.Stars).Render(fmt.Sprintf("  ★ %d", repo.Stars)))
	}
	if repo.Forks > 0 {
		segments = append(segments, lipgloss.NewStyle().Foreground(d.theme.Forks).Render(fmt.Sprintf("  ⑂ %d", repo.Forks)))
	}
	if lang := unified.StringValue(repo.Language); lang != "" {
		segments = append(segments, lipgloss.NewStyle().Foreground(d.theme.Language).Render("  "+lang))
	}
	titleLine := strings.Join(segments, "")

	descColor := d.theme.NormalDesc
	if selected {
		descColor = d.theme.SelectedDesc
	}
	var descParts []string
	if d.now != nil {
		if ago := updatedAgo(repo.UpdatedAt, d.now()); ago != "" {
			descParts = append(descParts, lipgloss.NewStyle().Foreground(d.theme.Subtle).Render(ago))
		}
	}
	desc := unified.StringValue(repo.Description)
	if desc == "" {
		desc = "No description"
	}
	descParts = append(descParts, lipgloss.NewStyle().Foreground(descColor).Render(desc))
	descLine := strings.Join(descParts, " ")

	// Truncate lines to fit available width (account for padding/border)
	contentWidth := max(m.Width()-4, 0)
	titleLine = ansi.Truncate(titleLine, contentWidth, "…")
	descLine = ansi.Truncate(descLine, contentWidth, "…")

	var rendered string
	if selected {
		wrapper := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(d.theme.Accent).
			PaddingLeft(1)
		rendered = wrapper.Render(titleLine + "\n" + descLine)
	} else {
		rendered = lipgloss.NewStyle().PaddingLeft(2).Render(titleLine + "\n" + descLine)
	}

	fmt.Fprint(w, rendered)
}
