// Package httpapi serves the aggregation operations as a read-only JSON API.
package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jpoz/gitdash/internal/aggregate"
	"github.com/jpoz/gitdash/internal/platform"
	"github.com/jpoz/gitdash/internal/result"
	"github.com/jpoz/gitdash/internal/unified"
)

// Aggregator is the service the API exposes.
type Aggregator interface {
	GetUser(ctx context.Context, username string, p platform.Platform) result.Result[unified.User]
	GetUserRepos(ctx context.Context, username string, p platform.Platform) result.Result[[]unified.Repo]
	GetContributions(ctx context.Context, username string, p platform.Platform, userID int64) result.Result[unified.ContributionData]
	GetProfileReadme(ctx context.Context, username string, p platform.Platform) result.Result[string]
	GetCommitCount(ctx context.Context, owner, repo string, p platform.Platform, repoID *int64) result.Result[int]
	GetBranches(ctx context.Context, owner, repo string, p platform.Platform, repoID *int64) result.Result[[]string]
	GetReadme(ctx context.Context, owner, repo string, p platform.Platform, repoID *int64, defaultBranch *string) result.Result[string]
	GetSummary(ctx context.Context, username string, p platform.Platform) result.Result[aggregate.SummaryReport]
	GetRepoDetail(ctx context.Context, repo unified.Repo) aggregate.RepoDetail
}

// NewRouter builds the API routes over svc.
func NewRouter(svc Aggregator) http.Handler {
	h := &handlers{svc: svc}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(LoggerMiddleware)
	r.Use(PanicMiddleware)

	r.Get("/health", h.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/{platform}", func(r chi.Router) {
		r.Get("/users/{username}", h.user)
		r.Get("/users/{username}/repos", h.repos)
		r.Get("/users/{username}/contributions", h.contributions)
		r.Get("/users/{username}/summary", h.summary)
		r.Get("/users/{username}/readme", h.profileReadme)

		r.Get("/repos/{owner}/{repo}", h.repoDetail)
		r.Get("/repos/{owner}/{repo}/commits/count", h.commitCount)
		r.Get("/repos/{owner}/{repo}/branches", h.branches)
		r.Get("/repos/{owner}/{repo}/readme", h.readme)
	})

	return r
}
