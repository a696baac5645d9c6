package state

import "github.com/jpoz/gitdash/internal/unified"

// Reduce returns the state that results from applying a to s. It never
// modifies s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case QueryChanged:
		s.Query = a.Query
	case PlatformSelected:
		if a.Platform.Valid() {
			s.Platform = a.Platform
		}
	case SearchStarted:
		s = State{
			Query:      a.Username,
			Platform:   s.Platform,
			Generation: s.Generation + 1,
			DetailSeq:  s.DetailSeq,
			User:       loadingSlot[unified.User](),
		}
	case UserLoaded:
		if a.Generation != s.Generation {
			return s
		}
		s.User = slotFrom(a.Result)
		if s.User.Status == Loaded {
			s.Repos = loadingSlot[[]unified.Repo]()
			s.Contributions = loadingSlot[unified.ContributionData]()
			s.ProfileReadme = loadingSlot[string]()
		}
	case ReposLoaded:
		if a.Generation == s.Generation {
			s.Repos = slotFrom(a.Result)
		}
	case ContributionsLoaded:
		if a.Generation == s.Generation {
			s.Contributions = slotFrom(a.Result)
		}
	case ProfileReadmeLoaded:
		if a.Generation == s.Generation {
			s.ProfileReadme = slotFrom(a.Result)
		}
	case RepoOpened:
		s.DetailSeq++
		s.Detail = &Detail{
			Seq:         s.DetailSeq,
			Repo:        a.Repo,
			CommitCount: loadingSlot[int](),
			Branches:    loadingSlot[[]string](),
			Readme:      loadingSlot[string](),
		}
	case CommitCountLoaded:
		if d, ok := s.detailFor(a.Seq); ok {
			d.CommitCount = slotFrom(a.Result)
			s.Detail = d
		}
	case BranchesLoaded:
		if d, ok := s.detailFor(a.Seq); ok {
			d.Branches = slotFrom(a.Result)
			s.Detail = d
		}
	case ReadmeLoaded:
		if d, ok := s.detailFor(a.Seq); ok {
			d.Readme = slotFrom(a.Result)
			s.Detail = d
		}
	case RepoClosed:
		s.Detail = nil
	}
	return s
}

// detailFor returns a copy of the open detail if it matches seq.
func (s State) detailFor(seq int) (*Detail, bool) {
	if s.Detail == nil || s.Detail.Seq != seq {
		return nil, false
	}
	d := *s.Detail
	return &d, true
}
