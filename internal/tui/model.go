package tui

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jpoz/gitdash/internal/platform"
	"github.com/jpoz/gitdash/internal/state"
	"github.com/jpoz/gitdash/internal/unified"
)

//go:embed banner.txt
var bannerText string

// Driver is what the model needs from the state holder.
type Driver interface {
	State() state.State
	Subscribe(ctx context.Context) <-chan state.State
	SetQuery(q string)
	SelectPlatform(p platform.Platform)
	Search(username string)
	OpenRepo(repo unified.Repo)
	CloseRepo()
}

// RepoItem implements list.Item for the repository list
type RepoItem struct {
	repo unified.Repo
}

// FilterValue implements list.Item
func (i RepoItem) FilterValue() string {
	return i.repo.Name + " " + unified.StringValue(i.repo.Language)
}

// Title implements list.DefaultItem
func (i RepoItem) Title() string {
	return i.repo.Name
}

// Description implements list.DefaultItem
func (i RepoItem) Description() string {
	return unified.StringValue(i.repo.Description)
}

// Screen identifies what the model is showing
type Screen int

const (
	SearchScreen Screen = iota
	ProfileScreen
	StatsScreen
	DetailScreen
)

// Options configures a Model.
type Options struct {
	Theme     string
	ReportDir string
	// Now is used for the contribution calendar; defaults to time.Now.
	Now func() time.Time
}

// Model is the main bubbletea model
type Model struct {
	driver Driver
	states <-chan state.State
	ctx    context.Context
	cancel context.CancelFunc

	state  state.State
	screen Screen

	input    textinput.Model
	repoList list.Model
	readme   viewport.Model
	stats    viewport.Model

	// keys of the data last copied into the widgets
	reposKey  string
	detailKey string

	theme     Theme
	themeKey  string
	reportDir string
	now       func() time.Time

	notice string
	err    error
	frame  int
	width  int
	height int
}

// New creates a new TUI model driving d.
func New(ctx context.Context, d Driver, opts Options) *Model {
	ctx, cancel := context.WithCancel(ctx)

	ti := textinput.New()
	ti.Placeholder = "username"
	ti.Prompt = "› "
	ti.CharLimit = 100
	ti.Width = 30
	ti.Focus()

	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Repositories"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	reportDir := opts.ReportDir
	if reportDir == "" {
		reportDir = "."
	}

	st := d.State()
	ti.SetValue(st.Query)

	m := &Model{
		driver:    d,
		states:    d.Subscribe(ctx),
		ctx:       ctx,
		cancel:    cancel,
		state:     st,
		screen:    SearchScreen,
		input:     ti,
		repoList:  l,
		readme:    viewport.New(0, 0),
		stats:     viewport.New(0, 0),
		reportDir: reportDir,
		now:       now,
	}
	m.setTheme(opts.Theme)
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		waitForState(m.states),
		textinput.Blink,
		tick(),
	)
}

// Screen returns the screen currently shown.
func (m *Model) Screen() Screen {
	return m.screen
}

// tick returns a command that sends a TickMsg after a short delay
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// waitForState blocks until the holder publishes the next state.
func waitForState(ch <-chan state.State) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-ch
		if !ok {
			return nil
		}
		return StateMsg{State: st}
	}
}

// syncWidgets copies repository and detail data into the list and viewports
// when it changed since the last sync.
func (m *Model) syncWidgets() tea.Cmd {
	var cmd tea.Cmd

	repos := m.state.Repos
	key := fmt.Sprintf("%d/%s", m.state.Generation, repos.Status)
	if key != m.reposKey {
		m.reposKey = key
		items := make([]list.Item, 0, len(repos.Value))
		for _, r := range repos.Value {
			items = append(items, RepoItem{repo: r})
		}
		m.repoList.ResetFilter()
		cmd = m.repoList.SetItems(items)
		m.repoList.Select(0)
	}

	if d := m.state.Detail; d != nil {
		key := fmt.Sprintf("%d/%s", d.Seq, d.Readme.Status)
		if key != m.detailKey {
			m.detailKey = key
			m.readme.SetContent(readmeContent(d.Readme))
			m.readme.GotoTop()
		}
	} else {
		m.detailKey = ""
	}

	m.stats.SetContent(m.renderStatsBody())
	return cmd
}

func readmeContent(s state.Slot[string]) string {
	switch s.Status {
	case state.Loading:
		return "Loading README..."
	case state.Failed:
		return "No README available"
	case state.Loaded:
		return s.Value
	default:
		return ""
	}
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return "just now"
	}
	if d < time.Hour {
		minutes := int(d.Minutes())
		return fmt.Sprintf("%dm ago", minutes)
	}
	if d < 24*time.Hour {
		hours := int(d.Hours())
		return fmt.Sprintf("%dh ago", hours)
	}
	days := int(d.Hours() / 24)
	return fmt.Sprintf("%dd ago", days)
}

// updatedAgo renders a platform timestamp relative to now, or "" when it
// cannot be parsed.
func updatedAgo(ts *string, now time.Time) string {
	t, err := time.Parse(time.RFC3339, unified.StringValue(ts))
	if err != nil {
		return ""
	}
	return formatDuration(now.Sub(t))
}
