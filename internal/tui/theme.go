package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/jpoz/gitdash/internal/config"
)

// Theme holds all color slots the app needs.
type Theme struct {
	Name string

	// UI chrome
	Error           lipgloss.Color
	HelpText        lipgloss.Color
	FocusedBorder   lipgloss.Color
	UnfocusedBorder lipgloss.Color

	// Banner animation endpoints (RGB)
	BannerDark   [3]int
	BannerBright [3]int

	// Load status
	StatusSuccess lipgloss.Color
	StatusFailure lipgloss.Color
	StatusPending lipgloss.Color

	// List styling
	Title              lipgloss.Color
	TitleBar           lipgloss.Color
	SelectedForeground lipgloss.Color
	SelectedDesc       lipgloss.Color
	NormalForeground   lipgloss.Color
	NormalDesc         lipgloss.Color

	// Repository badges. Stars are warm and forks cool.
	Stars    lipgloss.Color
	Forks    lipgloss.Color
	Language lipgloss.Color

	// General
	Accent lipgloss.Color
	Subtle lipgloss.Color
}

// Built-in themes keyed by lowercase identifier.
var themes = map[string]Theme{
	"default": {
		Name:               "Default",
		Error:              lipgloss.Color("9"),
		HelpText:           lipgloss.Color("241"),
		FocusedBorder:      lipgloss.Color("62"),
		UnfocusedBorder:    lipgloss.Color("241"),
		BannerDark:         [3]int{80, 80, 100},
		BannerBright:       [3]int{95, 135, 175},
		StatusSuccess:      lipgloss.Color("42"),
		StatusFailure:      lipgloss.Color("196"),
		StatusPending:      lipgloss.Color("214"),
		Title:              lipgloss.Color("62"),
		TitleBar:           lipgloss.Color("236"),
		SelectedForeground: lipgloss.Color("62"),
		SelectedDesc:       lipgloss.Color("246"),
		NormalForeground:   lipgloss.Color("255"),
		NormalDesc:         lipgloss.Color("241"),
		Stars:              lipgloss.Color("220"),
		Forks:              lipgloss.Color("110"),
		Language:           lipgloss.Color("141"),
		Accent:             lipgloss.Color("62"),
		Subtle:             lipgloss.Color("241"),
	},
	"nord": {
		Name:               "Nord",
		Error:              lipgloss.Color("#BF616A"),
		HelpText:           lipgloss.Color("#4C566A"),
		FocusedBorder:      lipgloss.Color("#88C0D0"),
		UnfocusedBorder:    lipgloss.Color("#4C566A"),
		BannerDark:         [3]int{59, 66, 82},
		BannerBright:       [3]int{136, 192, 208},
		StatusSuccess:      lipgloss.Color("#A3BE8C"),
		StatusFailure:      lipgloss.Color("#BF616A"),
		StatusPending:      lipgloss.Color("#EBCB8B"),
		Title:              lipgloss.Color("#88C0D0"),
		TitleBar:           lipgloss.Color("#3B4252"),
		SelectedForeground: lipgloss.Color("#88C0D0"),
		SelectedDesc:       lipgloss.Color("#D8DEE9"),
		NormalForeground:   lipgloss.Color("#ECEFF4"),
		NormalDesc:         lipgloss.Color("#4C566A"),
		Stars:              lipgloss.Color("#EBCB8B"),
		Forks:              lipgloss.Color("#8FBCBB"),
		Language:           lipgloss.Color("#B48EAD"),
		Accent:             lipgloss.Color("#88C0D0"),
		Subtle:             lipgloss.Color("#4C566A"),
	},
	"dracula": {
		Name:               "Dracula",
		Error:              lipgloss.Color("#FF5555"),
		HelpText:           lipgloss.Color("#6272A4"),
		FocusedBorder:      lipgloss.Color("#BD93F9"),
		UnfocusedBorder:    lipgloss.Color("#6272A4"),
		BannerDark:         [3]int{68, 71, 90},
		BannerBright:       [3]int{189, 147, 249},
		StatusSuccess:      lipgloss.Color("#50FA7B"),
		StatusFailure:      lipgloss.Color("#FF5555"),
		StatusPending:      lipgloss.Color("#F1FA8C"),
		Title:              lipgloss.Color("#BD93F9"),
		TitleBar:           lipgloss.Color("#44475A"),
		SelectedForeground: lipgloss.Color("#BD93F9"),
		SelectedDesc:       lipgloss.Color("#F8F8F2"),
		NormalForeground:   lipgloss.Color("#F8F8F2"),
		NormalDesc:         lipgloss.Color("#6272A4"),
		Stars:              lipgloss.Color("#F1FA8C"),
		Forks:              lipgloss.Color("#8BE9FD"),
		Language:           lipgloss.Color("#FF79C6"),
		Accent:             lipgloss.Color("#BD93F9"),
		Subtle:             lipgloss.Color("#6272A4"),
	},
	"catppuccin": {
		Name:               "Catppuccin Mocha",
		Error:              lipgloss.Color("#F38BA8"),
		HelpText:           lipgloss.Color("#585B70"),
		FocusedBorder:      lipgloss.Color("#CBA6F7"),
		UnfocusedBorder:    lipgloss.Color("#585B70"),
		BannerDark:         [3]int{49, 50, 68},
		BannerBright:       [3]int{203, 166, 247},
		StatusSuccess:      lipgloss.Color("#A6E3A1"),
		StatusFailure:      lipgloss.Color("#F38BA8"),
		StatusPending:      lipgloss.Color("#F9E2AF"),
		Title:              lipgloss.Color("#CBA6F7"),
		TitleBar:           lipgloss.Color("#313244"),
		SelectedForeground: lipgloss.Color("#CBA6F7"),
		SelectedDesc:       lipgloss.Color("#CDD6F4"),
		NormalForeground:   lipgloss.Color("#CDD6F4"),
		NormalDesc:         lipgloss.Color("#585B70"),
		Stars:              lipgloss.Color("#F9E2AF"),
		Forks:              lipgloss.Color("#94E2D5"),
		Language:           lipgloss.Color("#F5C2E7"),
		Accent:             lipgloss.Color("#CBA6F7"),
		Subtle:             lipgloss.Color("#585B70"),
	},
	"solarized": {
		Name:               "Solarized Dark",
		Error:              lipgloss.Color("#DC322F"),
		HelpText:           lipgloss.Color("#586E75"),
		FocusedBorder:      lipgloss.Color("#268BD2"),
		UnfocusedBorder:    lipgloss.Color("#586E75"),
		BannerDark:         [3]int{0, 43, 54},
		BannerBright:       [3]int{38, 139, 210},
		StatusSuccess:      lipgloss.Color("#859900"),
		StatusFailure:      lipgloss.Color("#DC322F"),
		StatusPending:      lipgloss.Color("#B58900"),
		Title:              lipgloss.Color("#268BD2"),
		TitleBar:           lipgloss.Color("#073642"),
		SelectedForeground: lipgloss.Color("#268BD2"),
		SelectedDesc:       lipgloss.Color("#93A1A1"),
		NormalForeground:   lipgloss.Color("#FDF6E3"),
		NormalDesc:         lipgloss.Color("#586E75"),
		Stars:              lipgloss.Color("#B58900"),
		Forks:              lipgloss.Color("#2AA198"),
		Language:           lipgloss.Color("#D33682"),
		Accent:             lipgloss.Color("#268BD2"),
		Subtle:             lipgloss.Color("#586E75"),
	},
	"gruvbox": {
		Name:               "Gruvbox",
		Error:              lipgloss.Color("#FB4934"),
		HelpText:           lipgloss.Color("#665C54"),
		FocusedBorder:      lipgloss.Color("#FE8019"),
		UnfocusedBorder:    lipgloss.Color("#665C54"),
		BannerDark:         [3]int{60, 56, 54},
		BannerBright:       [3]int{254, 128, 25},
		StatusSuccess:      lipgloss.Color("#B8BB26"),
		StatusFailure:      lipgloss.Color("#FB4934"),
		StatusPending:      lipgloss.Color("#FABD2F"),
		Title:              lipgloss.Color("#FE8019"),
		TitleBar:           lipgloss.Color("#3C3836"),
		SelectedForeground: lipgloss.Color("#FE8019"),
		SelectedDesc:       lipgloss.Color("#EBDBB2"),
		NormalForeground:   lipgloss.Color("#EBDBB2"),
		NormalDesc:         lipgloss.Color("#665C54"),
		Stars:              lipgloss.Color("#FABD2F"),
		Forks:              lipgloss.Color("#8EC07C"),
		Language:           lipgloss.Color("#D3869B"),
		Accent:             lipgloss.Color("#FE8019"),
		Subtle:             lipgloss.Color("#665C54"),
	},
	"tokyonight": {
		Name:               "Tokyo Night",
		Error:              lipgloss.Color("#F7768E"),
		HelpText:           lipgloss.Color("#565F89"),
		FocusedBorder:      lipgloss.Color("#7AA2F7"),
		UnfocusedBorder:    lipgloss.Color("#565F89"),
		BannerDark:         [3]int{26, 27, 38},
		BannerBright:       [3]int{122, 162, 247},
		StatusSuccess:      lipgloss.Color("#9ECE6A"),
		StatusFailure:      lipgloss.Color("#F7768E"),
		StatusPending:      lipgloss.Color("#E0AF68"),
		Title:              lipgloss.Color("#7AA2F7"),
		TitleBar:           lipgloss.Color("#1A1B26"),
		SelectedForeground: lipgloss.Color("#7AA2F7"),
		SelectedDesc:       lipgloss.Color("#C0CAF5"),
		NormalForeground:   lipgloss.Color("#C0CAF5"),
		NormalDesc:         lipgloss.Color("#565F89"),
		Stars:              lipgloss.Color("#E0AF68"),
		Forks:              lipgloss.Color("#7DCFFF"),
		Language:           lipgloss.Color("#BB9AF7"),
		Accent:             lipgloss.Color("#7AA2F7"),
		Subtle:             lipgloss.Color("#565F89"),
	},
	"rosepine": {
		Name:               "Rose Pine",
		Error:              lipgloss.Color("#EB6F92"),
		HelpText:           lipgloss.Color("#6E6A86"),
		FocusedBorder:      lipgloss.Color("#C4A7E7"),
		UnfocusedBorder:    lipgloss.Color("#6E6A86"),
		BannerDark:         [3]int{35, 33, 54},
		BannerBright:       [3]int{196, 167, 231},
		StatusSuccess:      lipgloss.Color("#31748F"),
		StatusFailure:      lipgloss.Color("#EB6F92"),
		StatusPending:      lipgloss.Color("#F6C177"),
		Title:              lipgloss.Color("#C4A7E7"),
		TitleBar:           lipgloss.Color("#1F1D2E"),
		SelectedForeground: lipgloss.Color("#C4A7E7"),
		SelectedDesc:       lipgloss.Color("#E0DEF4"),
		NormalForeground:   lipgloss.Color("#E0DEF4"),
		NormalDesc:         lipgloss.Color("#6E6A86"),
		Stars:              lipgloss.Color("#F6C177"),
		Forks:              lipgloss.Color("#9CCFD8"),
		Language:           lipgloss.Color("#EBBCBA"),
		Accent:             lipgloss.Color("#C4A7E7"),
		Subtle:             lipgloss.Color("#6E6A86"),
	},
}

// themeOrder is the order the theme key cycles through.
var themeOrder = []string{
	"default",
	"nord",
	"dracula",
	"catppuccin",
	"solarized",
	"gruvbox",
	"tokyonight",
	"rosepine",
}

// GetTheme returns the theme for the given key, falling back to default.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["default"]
}

// nextTheme returns the key following name in themeOrder, wrapping around.
func nextTheme(name string) string {
	for i, key := range themeOrder {
		if key == name {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// applyListTheme sets the title style on a list model.
func applyListTheme(l *list.Model, t Theme) {
	l.Styles.Title = l.Styles.Title.
		Foreground(t.Title).
		Background(t.TitleBar)
}

// setTheme switches the active theme without persisting it.
func (m *Model) setTheme(name string) {
	if _, ok := themes[name]; !ok {
		name = "default"
	}
	m.themeKey = name
	m.theme = GetTheme(name)

	m.repoList.SetDelegate(newRepoDelegate(m.theme, m.now))
	applyListTheme(&m.repoList, m.theme)

	m.input.PromptStyle = m.input.PromptStyle.Foreground(m.theme.Accent)
	m.input.Cursor.Style = m.input.Cursor.Style.Foreground(m.theme.Accent)
}

// cycleTheme moves to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.setTheme(nextTheme(m.themeKey))
	if err := config.SaveTheme(m.themeKey); err != nil {
		m.err = err
		return
	}
	m.notice = "Theme: " + m.theme.Name
}
