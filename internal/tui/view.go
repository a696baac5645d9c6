package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jpoz/gitdash/internal/aggregate"
	"github.com/jpoz/gitdash/internal/platform"
	"github.com/jpoz/gitdash/internal/state"
	"github.com/jpoz/gitdash/internal/unified"
)

const (
	headerHeight       = 2
	footerHeight       = 2
	detailHeaderHeight = 6
	heatmapWeeks       = 26
)

// spinnerFrames are braille-dot characters used as a text spinner.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (m *Model) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.Error).
		Bold(true)
}

func (m *Model) helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(m.theme.HelpText)
}

func (m *Model) focusedPaneStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.FocusedBorder)
}

func (m *Model) unfocusedPaneStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.UnfocusedBorder)
}

func (m *Model) spinner() string {
	return spinnerFrames[m.frame%len(spinnerFrames)]
}

// View implements tea.Model
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var body, help string
	switch m.screen {
	case SearchScreen:
		body = m.renderSearch()
		help = "enter: search | tab: platform | esc: back | ctrl+c: quit"
	case ProfileScreen:
		body = m.renderProfile()
		help = "enter: open | /: filter | s: stats | p: export PDF | t: theme | esc: search | q: quit"
	case StatsScreen:
		body = m.renderStats()
		help = "↑/↓: scroll | s/esc: back | p: export PDF | t: theme | q: quit"
	case DetailScreen:
		body = m.renderDetail()
		help = "↑/↓: scroll | esc: back | p: export PDF | t: theme | q: quit"
	}

	status := ""
	if m.err != nil {
		status = m.errorStyle().Render(fmt.Sprintf("⚠ Error: %s", m.err))
	} else if m.notice != "" {
		status = lipgloss.NewStyle().Foreground(m.theme.Accent).Render(m.notice)
	}

	return m.renderHeader() + "\n\n" + body + "\n" + status + "\n" + m.helpStyle().Render(help)
}

func (m *Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(m.theme.Title).
		Background(m.theme.TitleBar).
		Bold(true).
		Padding(0, 1).
		Render("gitdash")

	var tabs []string
	for _, p := range platform.All() {
		style := lipgloss.NewStyle().Foreground(m.theme.Subtle).Padding(0, 1)
		if p == m.state.Platform {
			style = style.Foreground(m.theme.SelectedForeground).Bold(true).Underline(true)
		}
		tabs = append(tabs, style.Render(p.String()))
	}
	return title + " " + strings.Join(tabs, "")
}

// renderSearch renders the banner with a pulsing color above the search box
func (m *Model) renderSearch() string {
	banner := strings.TrimRight(bannerText, "\n")

	t := math.Sin(2 * math.Pi * float64(m.frame) / 40)
	frac := (t + 1) / 2

	dark := m.theme.BannerDark
	bright := m.theme.BannerBright
	r := dark[0] + int(frac*float64(bright[0]-dark[0]))
	g := dark[1] + int(frac*float64(bright[1]-dark[1]))
	b := dark[2] + int(frac*float64(bright[2]-dark[2]))
	color := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))

	hint := lipgloss.NewStyle().Foreground(m.theme.HelpText).
		Render(fmt.Sprintf("Search %s users", m.state.Platform))
	box := m.focusedPaneStyle().Padding(0, 1).Width(36).Render(m.input.View())

	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(color).Render(banner),
		"",
		hint,
		box,
	)

	return lipgloss.Place(m.width, max(m.height-headerHeight-footerHeight-2, 0), lipgloss.Center, lipgloss.Center, content)
}

// slotLine renders a slot that is not loaded as a one-line status.
func (m *Model) slotLine(status state.Status, errMsg, what string) string {
	switch status {
	case state.Loading:
		return lipgloss.NewStyle().Foreground(m.theme.StatusPending).Render(fmt.Sprintf("%s Loading %s...", m.spinner(), what))
	case state.Failed:
		return m.errorStyle().Render(errMsg)
	default:
		return ""
	}
}

func (m *Model) renderProfile() string {
	bodyHeight := max(m.height-headerHeight-footerHeight-2, 0)
	leftWidth := max(m.width/2-2, 0)
	rightWidth := max(m.width-m.width/2-2, 0)

	left := m.unfocusedPaneStyle().
		Width(leftWidth).
		Height(bodyHeight).
		Padding(0, 1).
		Render(m.renderProfileCard(leftWidth - 2))

	var listView string
	if m.state.Repos.Status == state.Loaded {
		listView = m.repoList.View()
	} else {
		listView = m.slotLine(m.state.Repos.Status, m.state.Repos.Err, "repositories")
	}
	right := m.focusedPaneStyle().
		Width(rightWidth).
		Height(bodyHeight).
		Render(listView)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m *Model) renderProfileCard(width int) string {
	u := m.state.User
	if u.Status != state.Loaded {
		return m.slotLine(u.Status, u.Err, "profile")
	}
	user := u.Value

	titleStyle := lipgloss.NewStyle().Foreground(m.theme.Title).Bold(true)
	subtleStyle := lipgloss.NewStyle().Foreground(m.theme.Subtle)
	normalStyle := lipgloss.NewStyle().Foreground(m.theme.NormalForeground)
	accentStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)

	lines := []string{
		titleStyle.Render(user.DisplayName()),
		subtleStyle.Render("@" + user.Username + " on " + user.Platform.String()),
		"",
	}
	if bio := unified.StringValue(user.Bio); bio != "" {
		lines = append(lines, normalStyle.Width(width).Render(bio), "")
	}
	for _, f := range []struct {
		label string
		value *string
	}{
		{"Location", user.Location},
		{"Company", user.Company},
		{"Website", user.Blog},
	} {
		if v := unified.StringValue(f.value); v != "" {
			lines = append(lines, subtleStyle.Render(fmt.Sprintf("%-9s", f.label))+normalStyle.Render(v))
		}
	}
	lines = append(lines,
		"",
		fmt.Sprintf("%s followers  %s following  %s repos",
			accentStyle.Render(fmt.Sprint(user.Followers)),
			accentStyle.Render(fmt.Sprint(user.Following)),
			accentStyle.Render(fmt.Sprint(user.PublicRepos))),
	)

	if m.state.Repos.Status == state.Loaded {
		repos := m.state.Repos.Value
		lines = append(lines,
			fmt.Sprintf("%s stars  %s forks",
				accentStyle.Render(fmt.Sprint(aggregate.TotalStars(repos))),
				accentStyle.Render(fmt.Sprint(aggregate.TotalForks(repos)))),
		)
		if langs := aggregate.TopLanguages(repos, 3); len(langs) > 0 {
			lines = append(lines, subtleStyle.Render("Top languages ")+normalStyle.Render(strings.Join(langs, ", ")))
		}
	}

	c := m.state.Contributions
	lines = append(lines, "")
	if c.Status == state.Loaded {
		lines = append(lines, fmt.Sprintf("%s events in recent activity (%s commits)",
			accentStyle.Render(fmt.Sprint(c.Value.Events)),
			accentStyle.Render(fmt.Sprint(c.Value.ByCategory[unified.Commits]))))
	} else {
		lines = append(lines, m.slotLine(c.Status, c.Err, "activity"))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderStats() string {
	return m.focusedPaneStyle().
		Padding(0, 1).
		Render(m.stats.View())
}

// renderStatsBody renders everything the stats screen scrolls through.
func (m *Model) renderStatsBody() string {
	if m.state.User.Status != state.Loaded {
		return m.slotLine(m.state.User.Status, m.state.User.Err, "profile")
	}

	titleStyle := lipgloss.NewStyle().Foreground(m.theme.Title).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	subtleStyle := lipgloss.NewStyle().Foreground(m.theme.Subtle)
	normalStyle := lipgloss.NewStyle().Foreground(m.theme.NormalForeground)
	sep := subtleStyle.Render(strings.Repeat("─", max(m.stats.Width-2, 10)))

	var lines []string

	lines = append(lines, titleStyle.Render("Languages"), sep)
	if m.state.Repos.Status == state.Loaded {
		repos := m.state.Repos.Value
		shares := aggregate.LanguageDistribution(repos)
		if len(shares) == 0 {
			lines = append(lines, subtleStyle.Render("  No languages"))
		}
		for _, s := range shares {
			bar := strings.Repeat("█", max(int(s.Percent/5), 1))
			lines = append(lines, fmt.Sprintf("  %-14s %s %s",
				s.Language,
				accentStyle.Render(bar),
				subtleStyle.Render(fmt.Sprintf("%.1f%%", s.Percent))))
		}

		lines = append(lines, "", titleStyle.Render("Top starred"), sep)
		for _, r := range aggregate.TopStarred(repos, 5) {
			lines = append(lines, fmt.Sprintf("  %s %s",
				normalStyle.Render(r.Name),
				lipgloss.NewStyle().Foreground(m.theme.Stars).Render(fmt.Sprintf("★ %d", r.Stars))))
		}
		if r, ok := aggregate.LastWorkedOn(repos); ok {
			lines = append(lines, "", subtleStyle.Render("Last worked on ")+normalStyle.Render(r.Name))
		}
	} else {
		lines = append(lines, m.slotLine(m.state.Repos.Status, m.state.Repos.Err, "repositories"))
	}

	lines = append(lines, "", titleStyle.Render("Recent activity"), sep)
	c := m.state.Contributions
	if c.Status == state.Loaded {
		if name, ok := aggregate.MostActiveRepo(c.Value, m.state.Repos.Value); ok {
			lines = append(lines, subtleStyle.Render("Most active ")+normalStyle.Render(name), "")
		}
		lines = append(lines,
			renderBarChart(categoryBars(c.Value), 10, m.theme.Accent, m.theme.Subtle, m.theme.StatusSuccess),
			"",
			renderHeatmap(c.Value.ByDate, m.now(), heatmapWeeks, m.theme),
		)
	} else {
		lines = append(lines, m.slotLine(c.Status, c.Err, "activity"))
	}

	lines = append(lines, "", titleStyle.Render("Profile README"), sep)
	switch pr := m.state.ProfileReadme; pr.Status {
	case state.Loaded:
		lines = append(lines, pr.Value)
	case state.Failed:
		lines = append(lines, subtleStyle.Render("No profile README"))
	default:
		lines = append(lines, m.slotLine(pr.Status, pr.Err, "profile README"))
	}

	return strings.Join(lines, "\n")
}

func (m *Model) renderDetail() string {
	d := m.state.Detail
	if d == nil {
		return ""
	}
	repo := d.Repo

	titleStyle := lipgloss.NewStyle().Foreground(m.theme.Title).Bold(true)
	subtleStyle := lipgloss.NewStyle().Foreground(m.theme.Subtle)
	normalStyle := lipgloss.NewStyle().Foreground(m.theme.NormalForeground)
	accentStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)

	badges := []string{
		lipgloss.NewStyle().Foreground(m.theme.Stars).Render(fmt.Sprintf("★ %d", repo.Stars)),
		lipgloss.NewStyle().Foreground(m.theme.Forks).Render(fmt.Sprintf("⑂ %d", repo.Forks)),
	}
	if lang := unified.StringValue(repo.Language); lang != "" {
		badges = append(badges, lipgloss.NewStyle().Foreground(m.theme.Language).Render(lang))
	}

	commits := m.slotLine(d.CommitCount.Status, d.CommitCount.Err, "commits")
	if d.CommitCount.Status == state.Loaded {
		commits = accentStyle.Render(fmt.Sprint(d.CommitCount.Value)) + subtleStyle.Render(" commits")
	}
	branches := m.slotLine(d.Branches.Status, d.Branches.Err, "branches")
	if d.Branches.Status == state.Loaded {
		branches = accentStyle.Render(fmt.Sprint(len(d.Branches.Value))) + subtleStyle.Render(" branches ") +
			normalStyle.Render(strings.Join(d.Branches.Value, ", "))
	}

	name := repo.FullName
	if name == "" {
		name = repo.Name
	}
	header := strings.Join([]string{
		titleStyle.Render(name),
		normalStyle.Render(unified.StringValue(repo.Description)),
		strings.Join(badges, "  "),
		commits,
		branches,
		subtleStyle.Render(repo.HTMLURL),
	}, "\n")
	header = lipgloss.NewStyle().MaxWidth(max(m.width-2, 0)).Render(header)

	readme := m.focusedPaneStyle().
		Padding(0, 1).
		Render(m.readme.View())

	return header + "\n" + readme
}
