package tui

import (
	"github.com/jpoz/gitdash/internal/state"
)

// StateMsg carries a new state from the holder's subscription
type StateMsg struct {
	State state.State
}

// SearchMsg starts a search as if it had been typed
type SearchMsg struct {
	Username string
}

// ReportSavedMsg is sent when the PDF report has been written
type ReportSavedMsg struct {
	Path string
}

// ErrorMsg is sent when a local operation fails
type ErrorMsg struct {
	Err error
}

// TickMsg is sent on each animation frame for the spinner and banner pulse
type TickMsg struct{}
