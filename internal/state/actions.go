package state

import (
	"github.com/jpoz/gitdash/internal/platform"
	"github.com/jpoz/gitdash/internal/result"
	"github.com/jpoz/gitdash/internal/unified"
)

// Action is an input to Reduce.
type Action interface {
	isAction()
}

type QueryChanged struct{ Query string }

type PlatformSelected struct{ Platform platform.Platform }

// SearchStarted begins a new search generation for Username.
type SearchStarted struct{ Username string }

type UserLoaded struct {
	Generation int
	Result     result.Result[unified.User]
}

type ReposLoaded struct {
	Generation int
	Result     result.Result[[]unified.Repo]
}

type ContributionsLoaded struct {
	Generation int
	Result     result.Result[unified.ContributionData]
}

type ProfileReadmeLoaded struct {
	Generation int
	Result     result.Result[string]
}

type RepoOpened struct{ Repo unified.Repo }

type CommitCountLoaded struct {
	Seq    int
	Result result.Result[int]
}

type BranchesLoaded struct {
	Seq    int
	Result result.Result[[]string]
}

type ReadmeLoaded struct {
	Seq    int
	Result result.Result[string]
}

type RepoClosed struct{}

func (QueryChanged) isAction()        {}
func (PlatformSelected) isAction()    {}
func (SearchStarted) isAction()       {}
func (UserLoaded) isAction()          {}
func (ReposLoaded) isAction()         {}
func (ContributionsLoaded) isAction() {}
func (ProfileReadmeLoaded) isAction() {}
func (RepoOpened) isAction()          {}
func (CommitCountLoaded) isAction()   {}
func (BranchesLoaded) isAction()      {}
func (ReadmeLoaded) isAction()        {}
func (RepoClosed) isAction()          {}
