package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jpoz/gitdash/internal/aggregate"
	"github.com/jpoz/gitdash/internal/notify"
	"github.com/jpoz/gitdash/internal/report"
	"github.com/jpoz/gitdash/internal/state"
	"github.com/jpoz/gitdash/internal/unified"
)

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case StateMsg:
		m.state = msg.State
		return m, tea.Batch(m.syncWidgets(), waitForState(m.states))

	case SearchMsg:
		return m, m.search(msg.Username)

	case TickMsg:
		m.frame++
		return m, tick()

	case ReportSavedMsg:
		m.err = nil
		m.notice = "Report saved to " + msg.Path
		notify.SendDesktopNotification("gitdash", m.notice)
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			return m, m.quit()
		}
		switch m.screen {
		case SearchScreen:
			return m.updateSearch(msg)
		case ProfileScreen:
			return m.updateProfile(msg)
		case StatsScreen:
			return m.updateStats(msg)
		case DetailScreen:
			return m.updateDetail(msg)
		}
	}

	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Platform):
		m.driver.SelectPlatform(m.state.Platform.Next())
		m.state = m.driver.State()
		return m, nil

	case key.Matches(msg, keys.Enter):
		return m, m.search(m.input.Value())

	case key.Matches(msg, keys.Back):
		if m.state.User.Status != state.Idle {
			m.screen = ProfileScreen
			m.input.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.state.Query {
		m.driver.SetQuery(m.input.Value())
		m.state = m.driver.State()
	}
	return m, cmd
}

func (m *Model) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.repoList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.repoList, cmd = m.repoList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, m.quit()
	case key.Matches(msg, keys.Back):
		if m.repoList.FilterState() == list.FilterApplied {
			m.repoList.ResetFilter()
			return m, nil
		}
		return m, m.backToSearch()
	case key.Matches(msg, keys.Enter):
		if item, ok := m.repoList.SelectedItem().(RepoItem); ok {
			m.driver.OpenRepo(item.repo)
			m.state = m.driver.State()
			m.screen = DetailScreen
			return m, m.syncWidgets()
		}
		return m, nil
	case key.Matches(msg, keys.Stats):
		m.screen = StatsScreen
		m.stats.GotoTop()
		return m, nil
	case key.Matches(msg, keys.Export):
		return m, m.exportReport()
	case key.Matches(msg, keys.Theme):
		m.cycleTheme()
		return m, nil
	}

	var cmd tea.Cmd
	m.repoList, cmd = m.repoList.Update(msg)
	return m, cmd
}

func (m *Model) updateStats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, m.quit()
	case key.Matches(msg, keys.Back, keys.Stats):
		m.screen = ProfileScreen
		return m, nil
	case key.Matches(msg, keys.Export):
		return m, m.exportReport()
	case key.Matches(msg, keys.Theme):
		m.cycleTheme()
		return m, nil
	}

	var cmd tea.Cmd
	m.stats, cmd = m.stats.Update(msg)
	return m, cmd
}

func (m *Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, m.quit()
	case key.Matches(msg, keys.Back):
		m.driver.CloseRepo()
		m.state = m.driver.State()
		m.screen = ProfileScreen
		return m, nil
	case key.Matches(msg, keys.Export):
		return m, m.exportReport()
	case key.Matches(msg, keys.Theme):
		m.cycleTheme()
		return m, nil
	}

	var cmd tea.Cmd
	m.readme, cmd = m.readme.Update(msg)
	return m, cmd
}

// search starts loading username and moves to the profile screen. Blank
// input is ignored.
func (m *Model) search(username string) tea.Cmd {
	if strings.TrimSpace(username) == "" {
		return nil
	}
	m.input.SetValue(username)
	m.driver.SetQuery(username)
	m.driver.Search(username)
	m.state = m.driver.State()
	m.notice = ""
	m.err = nil
	m.screen = ProfileScreen
	m.input.Blur()
	return m.syncWidgets()
}

func (m *Model) backToSearch() tea.Cmd {
	m.screen = SearchScreen
	m.notice = ""
	return m.input.Focus()
}

func (m *Model) quit() tea.Cmd {
	m.cancel()
	return tea.Quit
}

// exportReport writes the PDF for the loaded profile. Repositories and
// contributions that have not loaded count as empty.
func (m *Model) exportReport() tea.Cmd {
	if m.state.User.Status != state.Loaded {
		m.notice = "Nothing to export yet"
		return nil
	}
	contrib := m.state.Contributions.Value
	if m.state.Contributions.Status != state.Loaded {
		contrib = unified.NewContributionData()
	}
	summary := aggregate.BuildSummary(m.state.User.Value, m.state.Repos.Value, contrib)
	dir := m.reportDir
	m.notice = "Exporting report..."

	return func() tea.Msg {
		path, err := report.Save(dir, summary)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("export report: %w", err)}
		}
		return ReportSavedMsg{Path: path}
	}
}

// layout sizes the widgets for the current window.
func (m *Model) layout() {
	paneWidth := max(m.width-4, 0)
	bodyHeight := max(m.height-headerHeight-footerHeight, 0)

	m.repoList.SetSize(max(m.width/2-2, 0), max(bodyHeight-2, 0))
	m.readme.Width = paneWidth
	m.readme.Height = max(bodyHeight-detailHeaderHeight-2, 1)
	m.stats.Width = paneWidth
	m.stats.Height = max(bodyHeight-2, 1)
	m.stats.SetContent(m.renderStatsBody())
}
