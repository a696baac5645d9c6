package aggregate

import (
	"context"
	"strconv"

	"github.com/jpoz/gitdash/internal/gitlab"
	"github.com/jpoz/gitdash/internal/result"
	"github.com/jpoz/gitdash/internal/unified"
)

const (
	readmePath     = "README.md"
	fallbackBranch = "main"
	legacyBranch   = "master"
)

type gitlabSource struct {
	api GitLabAPI
}

func errMissingRepoID() error {
	return result.MissingParamFailure("repository ID required for GitLab")
}

func (s *gitlabSource) user(ctx context.Context, username string) (unified.User, error) {
	users, err := s.api.SearchUsers(ctx, username)
	if err != nil {
		return unified.User{}, err
	}
	if len(users) == 0 {
		return unified.User{}, result.NotFoundFailure("GitLab user '%s' not found", username)
	}
	return unified.FromGitLabUser(users[0]), nil
}

func (s *gitlabSource) repos(ctx context.Context, username string) ([]unified.Repo, error) {
	projects, err := s.api.ListUserProjects(ctx, username)
	if err != nil {
		return nil, err
	}
	return unified.FromGitLabProjects(projects), nil
}

func (s *gitlabSource) commitCount(ctx context.Context, ref RepoRef) (int, error) {
	if ref.ID == nil {
		return 0, errMissingRepoID()
	}
	page, err := s.api.ListCommits(ctx, *ref.ID, commitsPerPage)
	if err != nil {
		return 0, err
	}
	return totalPages(page.Header), nil
}

func (s *gitlabSource) branches(ctx context.Context, ref RepoRef) ([]string, error) {
	if ref.ID == nil {
		return nil, errMissingRepoID()
	}
	branches, err := s.api.ListBranches(ctx, *ref.ID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(branches))
	for _, b := range branches {
		names = append(names, b.Name)
	}
	return names, nil
}

// readme tries the given default branch (or "main"), then "master" once.
// Only the second attempt's error is returned.
func (s *gitlabSource) readme(ctx context.Context, ref RepoRef) (string, error) {
	if ref.ID == nil {
		return "", errMissingRepoID()
	}
	branch := fallbackBranch
	if ref.DefaultBranch != nil && *ref.DefaultBranch != "" {
		branch = *ref.DefaultBranch
	}

	content, err := s.readmeAt(ctx, *ref.ID, branch)
	if err == nil {
		return content, nil
	}
	return s.readmeAt(ctx, *ref.ID, legacyBranch)
}

func (s *gitlabSource) readmeAt(ctx context.Context, projectID int64, branch string) (string, error) {
	file, err := s.api.GetFile(ctx, projectID, readmePath, branch)
	if err != nil {
		return "", err
	}
	return decodeContent(file.Content, file.Encoding)
}

func (s *gitlabSource) contributions(ctx context.Context, _ string, userID int64) (unified.ContributionData, error) {
	data := unified.NewContributionData()
	fetch := func(ctx context.Context, page, perPage int) ([]gitlab.Event, error) {
		return s.api.ListUserEvents(ctx, userID, page, perPage)
	}
	pages, err := scanEvents(ctx, fetch, func(e gitlab.Event) {
		repoKey := ""
		if e.ProjectID != nil {
			repoKey = strconv.FormatInt(*e.ProjectID, 10)
		}
		data.Add(e.CreatedAt, unified.CategorizeGitLabEvent(e.ActionName, e.TargetType), repoKey)
	})
	if err != nil {
		return unified.ContributionData{}, err
	}
	data.Pages = pages
	return data, nil
}

// profileReadme resolves the {username}/{username} project and reads its
// README through the usual branch fallback.
func (s *gitlabSource) profileReadme(ctx context.Context, username string) (string, error) {
	project, err := s.api.GetProject(ctx, username+"/"+username)
	if err != nil {
		return "", err
	}
	id := project.ID
	return s.readme(ctx, RepoRef{
		Owner:         username,
		Name:          username,
		ID:            &id,
		DefaultBranch: project.DefaultBranch,
	})
}
