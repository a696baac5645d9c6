package aggregate

import (
	"context"

	"github.com/jpoz/gitdash/internal/github"
	"github.com/jpoz/gitdash/internal/unified"
)

type githubSource struct {
	api GitHubAPI
}

func (s *githubSource) user(ctx context.Context, username string) (unified.User, error) {
	u, err := s.api.GetUser(ctx, username)
	if err != nil {
		return unified.User{}, err
	}
	return unified.FromGitHubUser(*u), nil
}

func (s *githubSource) repos(ctx context.Context, username string) ([]unified.Repo, error) {
	repos, err := s.api.ListUserRepos(ctx, username)
	if err != nil {
		return nil, err
	}
	return unified.FromGitHubRepos(repos), nil
}

// commitCount asks for one commit per page; the rel="last" page number is
// then the total. Without a Link header the page itself is the whole history.
func (s *githubSource) commitCount(ctx context.Context, ref RepoRef) (int, error) {
	page, err := s.api.ListCommits(ctx, ref.Owner, ref.Name, commitsPerPage)
	if err != nil {
		return 0, err
	}
	if n, ok := lastPageFromLink(page.Header); ok {
		return n, nil
	}
	return len(page.Commits), nil
}

func (s *githubSource) branches(ctx context.Context, ref RepoRef) ([]string, error) {
	branches, err := s.api.ListBranches(ctx, ref.Owner, ref.Name)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(branches))
	for _, b := range branches {
		names = append(names, b.Name)
	}
	return names, nil
}

func (s *githubSource) readme(ctx context.Context, ref RepoRef) (string, error) {
	readme, err := s.api.GetReadme(ctx, ref.Owner, ref.Name)
	if err != nil {
		return "", err
	}
	return decodeContent(readme.Content, readme.Encoding)
}

func (s *githubSource) contributions(ctx context.Context, username string, _ int64) (unified.ContributionData, error) {
	data := unified.NewContributionData()
	fetch := func(ctx context.Context, page, perPage int) ([]github.Event, error) {
		return s.api.ListUserEvents(ctx, username, page, perPage)
	}
	pages, err := scanEvents(ctx, fetch, func(e github.Event) {
		data.Add(e.CreatedAt, unified.CategorizeGitHubEvent(e.Type), e.Repo.Name)
	})
	if err != nil {
		return unified.ContributionData{}, err
	}
	data.Pages = pages
	return data, nil
}

func (s *githubSource) profileReadme(ctx context.Context, username string) (string, error) {
	return s.readme(ctx, RepoRef{Owner: username, Name: username})
}
