package aggregate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jpoz/gitdash/internal/platform"
	"github.com/jpoz/gitdash/internal/unified"
)

func repo(name string, lang string, stars int, updated string) unified.Repo {
	r := unified.Repo{ID: int64(len(name)), Name: name, FullName: "me/" + name, Stars: stars, Platform: platform.GitHub}
	if lang != "" {
		r.Language = strPtr(lang)
	}
	if updated != "" {
		r.UpdatedAt = strPtr(updated)
	}
	return r
}

func TestLanguageDistribution(t *testing.T) {
	repos := []unified.Repo{
		repo("a", "Go", 0, ""),
		repo("b", "Rust", 0, ""),
		repo("c", "Go", 0, ""),
		repo("d", "", 0, ""),
		repo("e", "Elm", 0, ""),
	}
	shares := LanguageDistribution(repos)
	require.Len(t, shares, 3)
	require.Equal(t, "Go", shares[0].Language)
	require.Equal(t, 2, shares[0].Repos)
	require.InDelta(t, 50.0, shares[0].Percent, 0.001)
	require.Equal(t, "Elm", shares[1].Language)
	require.Equal(t, "Rust", shares[2].Language)

	require.Equal(t, []string{"Go", "Elm"}, TopLanguages(repos, 2))
	require.Empty(t, LanguageDistribution(nil))
}

func TestTopStarredAndTotals(t *testing.T) {
	repos := []unified.Repo{
		repo("a", "", 0, ""),
		repo("b", "", 5, ""),
		repo("c", "", 9, ""),
	}
	top := TopStarred(repos, 5)
	require.Len(t, top, 2)
	require.Equal(t, "c", top[0].Name)
	require.Equal(t, 14, TotalStars(repos))
	require.Equal(t, 0, TotalForks(repos))
}

func TestLastWorkedOn(t *testing.T) {
	_, ok := LastWorkedOn([]unified.Repo{repo("a", "", 0, "")})
	require.False(t, ok)

	r, ok := LastWorkedOn([]unified.Repo{
		repo("old", "", 0, "2023-01-01T00:00:00Z"),
		repo("none", "", 0, ""),
		repo("new", "", 0, "2024-06-01T00:00:00Z"),
	})
	require.True(t, ok)
	require.Equal(t, "new", r.Name)
}

func TestMostActiveRepo(t *testing.T) {
	repos := []unified.Repo{repo("alpha", "", 0, ""), repo("beta", "", 0, "")}
	contrib := unified.NewContributionData()
	_, ok := MostActiveRepo(contrib, repos)
	require.False(t, ok)

	contrib.PushesByRepo["me/beta"] = 4
	contrib.PushesByRepo["me/alpha"] = 2
	name, ok := MostActiveRepo(contrib, repos)
	require.True(t, ok)
	require.Equal(t, "beta", name)

	contrib.PushesByRepo["someone/else"] = 10
	name, _ = MostActiveRepo(contrib, repos)
	require.Equal(t, "someone/else", name)
}

func TestBuildSummary(t *testing.T) {
	contrib := unified.NewContributionData()
	contrib.Add("2024-01-01T00:00:00Z", unified.Commits, "me/a")
	contrib.Add("2024-01-02T00:00:00Z", unified.Issues, "")

	s := BuildSummary(unified.User{Username: "me"}, []unified.Repo{repo("a", "Go", 2, "2024-01-01")}, contrib)
	require.Equal(t, 1, s.RepoCount)
	require.Equal(t, 2, s.TotalStars)
	require.Equal(t, 1, s.CommitEvents)
	require.Equal(t, "a", s.MostActive)
	require.Equal(t, "a", s.LastWorkedOn)
	require.Equal(t, []string{"Go"}, s.TopLanguages)
}
