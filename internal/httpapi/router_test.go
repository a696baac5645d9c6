package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jpoz/gitdash/internal/aggregate"
	"github.com/jpoz/gitdash/internal/platform"
	"github.com/jpoz/gitdash/internal/result"
	"github.com/jpoz/gitdash/internal/unified"
)

type fakeService struct {
	lastRepoID  *int64
	lastBranch  *string
	lastUserID  int64
	userFailure *result.Failure
	userLookups int
	lastDetail  unified.Repo
}

func (f *fakeService) GetUser(_ context.Context, username string, p platform.Platform) result.Result[unified.User] {
	f.userLookups++
	if f.userFailure != nil {
		return result.Fail[unified.User](f.userFailure)
	}
	return result.Ok(unified.User{ID: 77, Username: username, Platform: p})
}

func (f *fakeService) GetUserRepos(context.Context, string, platform.Platform) result.Result[[]unified.Repo] {
	return result.Ok([]unified.Repo{{ID: 1, Name: "r", Platform: platform.GitLab}})
}

func (f *fakeService) GetContributions(_ context.Context, _ string, _ platform.Platform, userID int64) result.Result[unified.ContributionData] {
	f.lastUserID = userID
	return result.Ok(unified.NewContributionData())
}

func (f *fakeService) GetProfileReadme(context.Context, string, platform.Platform) result.Result[string] {
	return result.Fail[string](result.TransportFailure(nil))
}

func (f *fakeService) GetCommitCount(_ context.Context, _, _ string, p platform.Platform, repoID *int64) result.Result[int] {
	f.lastRepoID = repoID
	if p == platform.GitLab && repoID == nil {
		return result.Fail[int](result.MissingParamFailure("repository ID required for GitLab"))
	}
	return result.Ok(42)
}

func (f *fakeService) GetBranches(context.Context, string, string, platform.Platform, *int64) result.Result[[]string] {
	return result.Ok([]string{"main", "dev"})
}

func (f *fakeService) GetReadme(_ context.Context, _, _ string, _ platform.Platform, _ *int64, branch *string) result.Result[string] {
	f.lastBranch = branch
	return result.Ok("# readme")
}

func (f *fakeService) GetSummary(_ context.Context, username string, _ platform.Platform) result.Result[aggregate.SummaryReport] {
	return result.Ok(aggregate.SummaryReport{Summary: aggregate.Summary{User: unified.User{Username: username}, TotalStars: 9}})
}

func do(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) APIErrorBody {
	t.Helper()
	var body APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

func (f *fakeService) GetRepoDetail(_ context.Context, repo unified.Repo) aggregate.RepoDetail {
	f.lastDetail = repo
	return aggregate.RepoDetail{
		Repo:        repo,
		CommitCount: result.Fail[int](result.NotFoundFailure("no commits")),
		Branches:    result.Ok([]string{"main"}),
		Readme:      result.Ok("# readme"),
	}
}

func TestHealth(t *testing.T) {
	rec := do(t, NewRouter(&fakeService{}), "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGetUser(t *testing.T) {
	rec := do(t, NewRouter(&fakeService{}), "/api/v1/gitlab/users/someone")
	require.Equal(t, http.StatusOK, rec.Code)

	var u unified.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&u))
	require.Equal(t, "someone", u.Username)
	require.Equal(t, platform.GitLab, u.Platform)
}

func TestBadPlatform(t *testing.T) {
	rec := do(t, NewRouter(&fakeService{}), "/api/v1/bitbucket/users/x")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "BAD_PLATFORM", decodeError(t, rec).Code)
}

func TestFailureStatusMapping(t *testing.T) {
	svc := &fakeService{userFailure: result.NotFoundFailure("GitLab user 'x' not found")}
	rec := do(t, NewRouter(svc), "/api/v1/gitlab/users/x")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)

	rec = do(t, NewRouter(svc), "/api/v1/gitlab/repos/g/p/commits/count")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "MISSING_PARAM", decodeError(t, rec).Code)

	rec = do(t, NewRouter(svc), "/api/v1/github/users/x/readme")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Equal(t, "UPSTREAM_ERROR", decodeError(t, rec).Code)
}

func TestCommitCountWithRepoID(t *testing.T) {
	svc := &fakeService{}
	rec := do(t, NewRouter(svc), "/api/v1/gitlab/repos/g/p/commits/count?repo_id=12")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"count":42}`, rec.Body.String())
	require.NotNil(t, svc.lastRepoID)
	require.Equal(t, int64(12), *svc.lastRepoID)

	rec = do(t, NewRouter(svc), "/api/v1/gitlab/repos/g/p/commits/count?repo_id=abc")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "BAD_QUERY", decodeError(t, rec).Code)
}

func TestReadmePassesBranch(t *testing.T) {
	svc := &fakeService{}
	rec := do(t, NewRouter(svc), "/api/v1/gitlab/repos/g/p/readme?repo_id=1&branch=develop")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"content":"# readme"}`, rec.Body.String())
	require.Equal(t, "develop", *svc.lastBranch)
}

func TestBranches(t *testing.T) {
	rec := do(t, NewRouter(&fakeService{}), "/api/v1/github/repos/o/r/branches")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"branches":["main","dev"]}`, rec.Body.String())
}

func TestContributionsResolvesUserID(t *testing.T) {
	svc := &fakeService{}
	rec := do(t, NewRouter(svc), "/api/v1/gitlab/users/me/contributions")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(77), svc.lastUserID)
	require.Equal(t, 1, svc.userLookups)

	rec = do(t, NewRouter(svc), "/api/v1/gitlab/users/me/contributions?user_id=5")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(5), svc.lastUserID)
	require.Equal(t, 1, svc.userLookups)
}

func TestSummary(t *testing.T) {
	rec := do(t, NewRouter(&fakeService{}), "/api/v1/github/users/octocat/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.EqualValues(t, 9, body["total_stars"])
}

func TestMetricsEndpoint(t *testing.T) {
	rec := do(t, NewRouter(&fakeService{}), "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRepoDetail(t *testing.T) {
	svc := &fakeService{}
	rec := do(t, NewRouter(svc), "/api/v1/gitlab/repos/g/p?repo_id=7&branch=dev")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"owner": "g",
		"name": "p",
		"commit_count": {"error": {"code": "NOT_FOUND", "message": "no commits"}},
		"branches": {"value": ["main"]},
		"readme": {"value": "# readme"}
	}`, rec.Body.String())
	require.Equal(t, int64(7), svc.lastDetail.ID)
	require.Equal(t, platform.GitLab, svc.lastDetail.Platform)
	require.Equal(t, "dev", unified.StringValue(svc.lastDetail.DefaultBranch))

	rec = do(t, NewRouter(svc), "/api/v1/gitlab/repos/g/p")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "MISSING_PARAM", decodeError(t, rec).Code)
}
