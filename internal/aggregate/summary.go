package aggregate

import (
	"context"
	"sync"

	"github.com/jpoz/gitdash/internal/platform"
	"github.com/jpoz/gitdash/internal/result"
	"github.com/jpoz/gitdash/internal/unified"
)

// SummaryReport is a Summary plus the message of a contributions fetch that
// failed. The summary is still usable without the contribution window.
type SummaryReport struct {
	Summary
	ContributionsError string `json:"contributions_error,omitempty"`
}

// GetSummary loads the user, then repositories and contributions
// concurrently, and builds the summary. A user or repository failure fails
// the whole call.
func (s *Service) GetSummary(ctx context.Context, username string, p platform.Platform) result.Result[SummaryReport] {
	user, err := s.GetUser(ctx, username, p).Get()
	if err != nil {
		return result.Fail[SummaryReport](toFailure(err))
	}

	var (
		wg      sync.WaitGroup
		repos   result.Result[[]unified.Repo]
		contrib result.Result[unified.ContributionData]
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		repos = s.GetUserRepos(ctx, user.Username, p)
	}()
	go func() {
		defer wg.Done()
		contrib = s.GetContributions(ctx, user.Username, p, user.ID)
	}()
	wg.Wait()

	repoList, err := repos.Get()
	if err != nil {
		return result.Fail[SummaryReport](toFailure(err))
	}

	report := SummaryReport{}
	data, ok := contrib.Value()
	if !ok {
		data = unified.NewContributionData()
		report.ContributionsError = contrib.Message()
	}
	report.Summary = BuildSummary(user, repoList, data)
	return result.Ok(report)
}
