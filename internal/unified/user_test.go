package unified

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jpoz/gitdash/internal/github"
	"github.com/jpoz/gitdash/internal/gitlab"
	"github.com/jpoz/gitdash/internal/platform"
)

func TestFromGitHubUser(t *testing.T) {
	in := github.User{
		Login:       "octocat",
		ID:          583231,
		AvatarURL:   "https://avatars.githubusercontent.com/u/583231",
		Name:        strPtr("The Octocat"),
		Company:     strPtr("@github"),
		Blog:        strPtr(""),
		Location:    strPtr("San Francisco"),
		PublicRepos: 8,
		Followers:   100,
		Following:   9,
	}

	u := FromGitHubUser(in)
	require.Equal(t, "octocat", u.Username)
	require.Equal(t, "The Octocat", u.DisplayName())
	require.Equal(t, "@github", StringValue(u.Company))
	require.NotNil(t, u.Blog, "empty blog passes through")
	require.Equal(t, "", *u.Blog)
	require.Nil(t, u.Bio)
	require.Equal(t, 8, u.PublicRepos)
	require.Equal(t, platform.GitHub, u.Platform)

	// the unified value does not alias the decoded response
	*in.Company = "changed"
	require.Equal(t, "@github", *u.Company)
}

func TestFromGitLabUser(t *testing.T) {
	followers := 12
	u := FromGitLabUser(gitlab.User{
		ID:           7,
		Username:     "jdoe",
		Name:         strPtr(""),
		Bio:          strPtr("builds things"),
		Organization: strPtr("ACME"),
		PublicEmail:  strPtr("jdoe@example.com"),
		Followers:    &followers,
	})

	require.Equal(t, "jdoe", u.DisplayName(), "empty name falls back to username")
	require.Equal(t, "", u.AvatarURL)
	require.Equal(t, "ACME", StringValue(u.Company))
	require.Equal(t, "jdoe@example.com", StringValue(u.Blog))
	require.Nil(t, u.Location)
	require.Equal(t, 12, u.Followers)
	require.Zero(t, u.Following)
	require.Zero(t, u.PublicRepos)
	require.Equal(t, platform.GitLab, u.Platform)
}

func TestFromGitHubRepo(t *testing.T) {
	r := FromGitHubRepo(github.Repo{
		ID:              1296269,
		Name:            "Hello-World",
		FullName:        "octocat/Hello-World",
		Description:     strPtr(""),
		StargazersCount: 80,
		ForksCount:      9,
		Language:        nil,
		DefaultBranch:   strPtr("main"),
		Owner:           github.Owner{Login: "octocat"},
	})

	require.NotNil(t, r.Description)
	require.Equal(t, "", *r.Description)
	require.Nil(t, r.Language)
	require.Equal(t, "main", StringValue(r.DefaultBranch))
	require.Equal(t, 80, r.Stars)
	require.Nil(t, r.RepoID())
}

func TestFromGitLabProject(t *testing.T) {
	r := FromGitLabProject(gitlab.Project{
		ID:                42,
		Name:              "widget",
		PathWithNamespace: "acme/widget",
		StarCount:         3,
		ForksCount:        1,
		LastActivityAt:    strPtr("2024-03-14T10:00:00Z"),
		Namespace:         gitlab.Namespace{Name: "acme"},
	})

	require.Equal(t, "acme/widget", r.FullName)
	require.Nil(t, r.Language)
	require.Equal(t, "2024-03-14T10:00:00Z", StringValue(r.UpdatedAt))
	require.Equal(t, "acme", r.Owner.Login)
	require.NotNil(t, r.RepoID())
	require.Equal(t, int64(42), *r.RepoID())
}
