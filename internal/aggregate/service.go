// Package aggregate is the single boundary that turns platform API calls into
// unified values. Every operation returns a result.Result and never lets an
// error or panic escape.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jpoz/gitdash/internal/github"
	"github.com/jpoz/gitdash/internal/gitlab"
	"github.com/jpoz/gitdash/internal/logging"
	"github.com/jpoz/gitdash/internal/metrics"
	"github.com/jpoz/gitdash/internal/platform"
	"github.com/jpoz/gitdash/internal/result"
	"github.com/jpoz/gitdash/internal/unified"
)

// GitHubAPI is the subset of the GitHub client the service uses.
type GitHubAPI interface {
	GetUser(ctx context.Context, username string) (*github.User, error)
	ListUserRepos(ctx context.Context, username string) ([]github.Repo, error)
	ListCommits(ctx context.Context, owner, repo string, perPage int) (*github.CommitPage, error)
	ListBranches(ctx context.Context, owner, repo string) ([]github.Branch, error)
	GetReadme(ctx context.Context, owner, repo string) (*github.Readme, error)
	ListUserEvents(ctx context.Context, username string, page, perPage int) ([]github.Event, error)
}

// GitLabAPI is the subset of the GitLab client the service uses.
type GitLabAPI interface {
	SearchUsers(ctx context.Context, username string) ([]gitlab.User, error)
	ListUserProjects(ctx context.Context, username string) ([]gitlab.Project, error)
	GetProject(ctx context.Context, path string) (*gitlab.Project, error)
	ListCommits(ctx context.Context, projectID int64, perPage int) (*gitlab.CommitPage, error)
	ListBranches(ctx context.Context, projectID int64) ([]gitlab.Branch, error)
	GetFile(ctx context.Context, projectID int64, filePath, ref string) (*gitlab.File, error)
	ListUserEvents(ctx context.Context, userID int64, page, perPage int) ([]gitlab.Event, error)
}

// RepoRef addresses a repository. GitHub uses Owner and Name; GitLab needs ID.
type RepoRef struct {
	Owner         string
	Name          string
	ID            *int64
	DefaultBranch *string
}

// source implements every operation for one platform. Adding a platform means
// adding a source and a case in sourceFor.
type source interface {
	user(ctx context.Context, username string) (unified.User, error)
	repos(ctx context.Context, username string) ([]unified.Repo, error)
	commitCount(ctx context.Context, ref RepoRef) (int, error)
	branches(ctx context.Context, ref RepoRef) ([]string, error)
	readme(ctx context.Context, ref RepoRef) (string, error)
	contributions(ctx context.Context, username string, userID int64) (unified.ContributionData, error)
	profileReadme(ctx context.Context, username string) (string, error)
}

// Service is the unified aggregation service.
type Service struct {
	github source
	gitlab source
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for failure reporting.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// New creates a Service over the two platform clients.
func New(gh GitHubAPI, gl GitLabAPI, opts ...Option) *Service {
	s := &Service{
		github: &githubSource{api: gh},
		gitlab: &gitlabSource{api: gl},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) sourceFor(p platform.Platform) (source, error) {
	switch p {
	case platform.GitHub:
		return s.github, nil
	case platform.GitLab:
		return s.gitlab, nil
	default:
		return nil, fmt.Errorf("unsupported platform %s", p)
	}
}

// GetUser looks a user up by username. On GitLab this is a search and the
// first match is taken; the match is not guaranteed to be the exact account
// when several usernames match.
func (s *Service) GetUser(ctx context.Context, username string, p platform.Platform) result.Result[unified.User] {
	return run(logging.WithUsername(ctx, username), s, "get_user", p, func(ctx context.Context, src source) (unified.User, error) {
		return src.user(ctx, username)
	})
}

// GetUserRepos lists a user's repositories on p.
func (s *Service) GetUserRepos(ctx context.Context, username string, p platform.Platform) result.Result[[]unified.Repo] {
	return run(logging.WithUsername(ctx, username), s, "get_user_repos", p, func(ctx context.Context, src source) ([]unified.Repo, error) {
		return src.repos(ctx, username)
	})
}

// GetCommitCount derives the total commit count from pagination metadata.
// GitLab requires repoID.
func (s *Service) GetCommitCount(ctx context.Context, owner, repo string, p platform.Platform, repoID *int64) result.Result[int] {
	ref := RepoRef{Owner: owner, Name: repo, ID: repoID}
	return run(logging.WithRepo(ctx, owner, repo), s, "get_commit_count", p, func(ctx context.Context, src source) (int, error) {
		return src.commitCount(ctx, ref)
	})
}

// GetBranches lists branch names. GitLab requires repoID.
func (s *Service) GetBranches(ctx context.Context, owner, repo string, p platform.Platform, repoID *int64) result.Result[[]string] {
	ref := RepoRef{Owner: owner, Name: repo, ID: repoID}
	return run(logging.WithRepo(ctx, owner, repo), s, "get_branches", p, func(ctx context.Context, src source) ([]string, error) {
		return src.branches(ctx, ref)
	})
}

// GetReadme fetches and decodes a repository README. GitLab requires repoID
// and falls back from defaultBranch (or "main") to "master".
func (s *Service) GetReadme(ctx context.Context, owner, repo string, p platform.Platform, repoID *int64, defaultBranch *string) result.Result[string] {
	ref := RepoRef{Owner: owner, Name: repo, ID: repoID, DefaultBranch: defaultBranch}
	return run(logging.WithRepo(ctx, owner, repo), s, "get_readme", p, func(ctx context.Context, src source) (string, error) {
		return src.readme(ctx, ref)
	})
}

// GetContributions scans the recent events window. GitHub addresses the feed
// by username, GitLab by userID.
func (s *Service) GetContributions(ctx context.Context, username string, p platform.Platform, userID int64) result.Result[unified.ContributionData] {
	return run(logging.WithUsername(ctx, username), s, "get_contributions", p, func(ctx context.Context, src source) (unified.ContributionData, error) {
		return src.contributions(ctx, username, userID)
	})
}

// GetProfileReadme fetches the README of the user's profile repository,
// {username}/{username}.
func (s *Service) GetProfileReadme(ctx context.Context, username string, p platform.Platform) result.Result[string] {
	return run(logging.WithUsername(ctx, username), s, "get_profile_readme", p, func(ctx context.Context, src source) (string, error) {
		return src.profileReadme(ctx, username)
	})
}

// run resolves the source, invokes fn and converts its outcome into a result.
// Callers add the username or repository to ctx.
func run[T any](ctx context.Context, s *Service, op string, p platform.Platform, fn func(context.Context, source) (T, error)) (res result.Result[T]) {
	ctx = logging.WithOperation(ctx, op)
	ctx = logging.WithPlatform(ctx, p.Slug())

	defer func() {
		if r := recover(); r != nil {
			res = failResult[T](s, ctx, op, fmt.Errorf("internal error: %v", r))
		}
	}()

	src, err := s.sourceFor(p)
	if err != nil {
		return failResult[T](s, ctx, op, err)
	}

	v, err := fn(ctx, src)
	if err != nil {
		return failResult[T](s, ctx, op, err)
	}
	return result.Ok(v)
}

func failResult[T any](s *Service, ctx context.Context, op string, err error) result.Result[T] {
	return result.Fail[T](s.report(ctx, op, toFailure(err)))
}

// toFailure keeps failures raised deliberately by a source and wraps
// everything else as a transport failure.
func toFailure(err error) *result.Failure {
	var f *result.Failure
	if errors.As(err, &f) {
		return f
	}
	return result.TransportFailure(err)
}

func (s *Service) report(ctx context.Context, op string, f *result.Failure) *result.Failure {
	switch f.Kind {
	case result.Transport:
		s.logger.WarnContext(ctx, "aggregation failed", "kind", f.Kind.String(), "error", f.Message)
	default:
		s.logger.DebugContext(ctx, "aggregation failed", "kind", f.Kind.String(), "error", f.Message)
	}
	metrics.IncAggregationFailure(op, f.Kind.String())
	return f
}
