// Package state holds the dashboard's presentation state. State values are
// immutable; Reduce derives a new value from the current one and an action.
package state

import (
	"github.com/jpoz/gitdash/internal/platform"
	"github.com/jpoz/gitdash/internal/result"
	"github.com/jpoz/gitdash/internal/unified"
)

// Status is the lifecycle of one piece of loaded data.
type Status int

const (
	Idle Status = iota
	Loading
	Loaded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Slot is one independently loaded value.
type Slot[T any] struct {
	Status Status
	Value  T
	Err    string
}

func loadingSlot[T any]() Slot[T] {
	return Slot[T]{Status: Loading}
}

func slotFrom[T any](r result.Result[T]) Slot[T] {
	if v, ok := r.Value(); ok {
		return Slot[T]{Status: Loaded, Value: v}
	}
	return Slot[T]{Status: Failed, Err: r.Message()}
}

// Detail is the open repository view.
type Detail struct {
	Seq         int
	Repo        unified.Repo
	CommitCount Slot[int]
	Branches    Slot[[]string]
	Readme      Slot[string]
}

// State is the whole presentation state.
type State struct {
	Query    string
	Platform platform.Platform
	// Generation identifies the current search; results of older searches
	// are dropped.
	Generation int

	User          Slot[unified.User]
	Repos         Slot[[]unified.Repo]
	Contributions Slot[unified.ContributionData]
	ProfileReadme Slot[string]

	// DetailSeq identifies the latest opened repository view.
	DetailSeq int
	Detail    *Detail
}

// Initial returns the starting state for platform p.
func Initial(p platform.Platform) State {
	if !p.Valid() {
		p = platform.GitHub
	}
	return State{Platform: p}
}

// Loading reports whether the user lookup is in flight.
func (s State) Loading() bool {
	return s.User.Status == Loading
}
