package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jpoz/gitdash/internal/platform"
	"github.com/jpoz/gitdash/internal/result"
	"github.com/jpoz/gitdash/internal/unified"
)

type handlers struct {
	svc Aggregator
}

type countResponse struct {
	Count int `json:"count"`
}

type readmeResponse struct {
	Content string `json:"content"`
}

type branchesResponse struct {
	Branches []string `json:"branches"`
}

// part is one independently loaded piece of a repository detail.
type part[T any] struct {
	Value *T            `json:"value,omitempty"`
	Error *APIErrorBody `json:"error,omitempty"`
}

type repoDetailResponse struct {
	Owner       string         `json:"owner"`
	Name        string         `json:"name"`
	CommitCount part[int]      `json:"commit_count"`
	Branches    part[[]string] `json:"branches"`
	Readme      part[string]   `json:"readme"`
}

func partOf[T any](res result.Result[T]) part[T] {
	if v, ok := res.Value(); ok {
		return part[T]{Value: &v}
	}
	f := res.Failure()
	return part[T]{Error: &APIErrorBody{Code: failureCode(f.Kind), Message: f.Message}}
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// platformParam parses {platform}; on failure it has already written a 400.
func platformParam(w http.ResponseWriter, r *http.Request) (platform.Platform, bool) {
	p, err := platform.Parse(chi.URLParam(r, "platform"))
	if err != nil {
		BadRequest(w, "BAD_PLATFORM", err.Error())
		return 0, false
	}
	return p, true
}

// int64Query parses an optional integer query parameter.
func int64Query(w http.ResponseWriter, r *http.Request, name string) (*int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		BadRequest(w, "BAD_QUERY", fmt.Sprintf("%s must be an integer", name))
		return nil, false
	}
	return &n, true
}

func (h *handlers) user(w http.ResponseWriter, r *http.Request) {
	p, ok := platformParam(w, r)
	if !ok {
		return
	}
	respond(w, r, h.svc.GetUser(r.Context(), chi.URLParam(r, "username"), p))
}

func (h *handlers) repos(w http.ResponseWriter, r *http.Request) {
	p, ok := platformParam(w, r)
	if !ok {
		return
	}
	respond(w, r, h.svc.GetUserRepos(r.Context(), chi.URLParam(r, "username"), p))
}

// contributions resolves the user first when user_id is not given, since
// GitLab's events feed is keyed by numeric id.
func (h *handlers) contributions(w http.ResponseWriter, r *http.Request) {
	p, ok := platformParam(w, r)
	if !ok {
		return
	}
	userID, ok := int64Query(w, r, "user_id")
	if !ok {
		return
	}
	username := chi.URLParam(r, "username")

	var id int64
	if userID != nil {
		id = *userID
	} else {
		user := h.svc.GetUser(r.Context(), username, p)
		u, ok := user.Value()
		if !ok {
			WriteFailure(w, r, user.Failure())
			return
		}
		id = u.ID
	}
	respond(w, r, h.svc.GetContributions(r.Context(), username, p, id))
}

func (h *handlers) summary(w http.ResponseWriter, r *http.Request) {
	p, ok := platformParam(w, r)
	if !ok {
		return
	}
	respond(w, r, h.svc.GetSummary(r.Context(), chi.URLParam(r, "username"), p))
}

func (h *handlers) profileReadme(w http.ResponseWriter, r *http.Request) {
	p, ok := platformParam(w, r)
	if !ok {
		return
	}
	res := h.svc.GetProfileReadme(r.Context(), chi.URLParam(r, "username"), p)
	if v, ok := res.Value(); ok {
		RespondJSON(w, http.StatusOK, readmeResponse{Content: v})
		return
	}
	WriteFailure(w, r, res.Failure())
}

func (h *handlers) commitCount(w http.ResponseWriter, r *http.Request) {
	p, ok := platformParam(w, r)
	if !ok {
		return
	}
	repoID, ok := int64Query(w, r, "repo_id")
	if !ok {
		return
	}
	res := h.svc.GetCommitCount(r.Context(), chi.URLParam(r, "owner"), chi.URLParam(r, "repo"), p, repoID)
	if v, ok := res.Value(); ok {
		RespondJSON(w, http.StatusOK, countResponse{Count: v})
		return
	}
	WriteFailure(w, r, res.Failure())
}

func (h *handlers) branches(w http.ResponseWriter, r *http.Request) {
	p, ok := platformParam(w, r)
	if !ok {
		return
	}
	repoID, ok := int64Query(w, r, "repo_id")
	if !ok {
		return
	}
	res := h.svc.GetBranches(r.Context(), chi.URLParam(r, "owner"), chi.URLParam(r, "repo"), p, repoID)
	if v, ok := res.Value(); ok {
		RespondJSON(w, http.StatusOK, branchesResponse{Branches: v})
		return
	}
	WriteFailure(w, r, res.Failure())
}

func (h *handlers) readme(w http.ResponseWriter, r *http.Request) {
	p, ok := platformParam(w, r)
	if !ok {
		return
	}
	repoID, ok := int64Query(w, r, "repo_id")
	if !ok {
		return
	}
	var branch *string
	if b := r.URL.Query().Get("branch"); b != "" {
		branch = &b
	}
	res := h.svc.GetReadme(r.Context(), chi.URLParam(r, "owner"), chi.URLParam(r, "repo"), p, repoID, branch)
	if v, ok := res.Value(); ok {
		RespondJSON(w, http.StatusOK, readmeResponse{Content: v})
		return
	}
	WriteFailure(w, r, res.Failure())
}

// repoDetail loads the three parts of a repository view at once. A failed
// part is reported inside the body; the response itself is still 200.
func (h *handlers) repoDetail(w http.ResponseWriter, r *http.Request) {
	p, ok := platformParam(w, r)
	if !ok {
		return
	}
	repoID, ok := int64Query(w, r, "repo_id")
	if !ok {
		return
	}
	if p == platform.GitLab && repoID == nil {
		WriteFailure(w, r, result.MissingParamFailure("repository ID required for GitLab"))
		return
	}

	repo := unified.Repo{
		Name:     chi.URLParam(r, "repo"),
		Owner:    unified.Owner{Login: chi.URLParam(r, "owner")},
		Platform: p,
	}
	if repoID != nil {
		repo.ID = *repoID
	}
	if b := r.URL.Query().Get("branch"); b != "" {
		repo.DefaultBranch = &b
	}

	d := h.svc.GetRepoDetail(r.Context(), repo)
	RespondJSON(w, http.StatusOK, repoDetailResponse{
		Owner:       repo.Owner.Login,
		Name:        repo.Name,
		CommitCount: partOf(d.CommitCount),
		Branches:    partOf(d.Branches),
		Readme:      partOf(d.Readme),
	})
}
