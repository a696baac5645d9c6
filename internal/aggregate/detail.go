package aggregate

import (
	"context"
	"sync"

	"github.com/jpoz/gitdash/internal/result"
	"github.com/jpoz/gitdash/internal/unified"
)

// RepoDetail holds the three independent fetches of a repository view.
type RepoDetail struct {
	Repo        unified.Repo
	CommitCount result.Result[int]
	Branches    result.Result[[]string]
	Readme      result.Result[string]
}

// GetRepoDetail fetches commit count, branches and README concurrently. A
// failure in one leaves the others untouched.
func (s *Service) GetRepoDetail(ctx context.Context, repo unified.Repo) RepoDetail {
	d := RepoDetail{Repo: repo}
	owner, id := repo.Owner.Login, repo.RepoID()

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		d.CommitCount = s.GetCommitCount(ctx, owner, repo.Name, repo.Platform, id)
	}()
	go func() {
		defer wg.Done()
		d.Branches = s.GetBranches(ctx, owner, repo.Name, repo.Platform, id)
	}()
	go func() {
		defer wg.Done()
		d.Readme = s.GetReadme(ctx, owner, repo.Name, repo.Platform, id, repo.DefaultBranch)
	}()
	wg.Wait()

	return d
}
