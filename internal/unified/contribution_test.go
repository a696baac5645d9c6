package unified

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCategorizeGitHubEvent(t *testing.T) {
	tests := []struct {
		eventType string
		want      Category
	}{
		{"PushEvent", Commits},
		{"PullRequestEvent", PRs},
		{"IssuesEvent", Issues},
		{"IssueCommentEvent", Comments},
		{"CommitCommentEvent", Comments},
		{"PullRequestReviewCommentEvent", Comments},
		{"PullRequestReviewEvent", Comments},
		{"WatchEvent", Other},
		{"CreateEvent", Other},
		{"pushevent", Other},
		{"", Other},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			require.Equal(t, tt.want, CategorizeGitHubEvent(tt.eventType))
		})
	}
}

func TestCategorizeGitLabEvent(t *testing.T) {
	tests := []struct {
		name   string
		action string
		target *string
		want   Category
	}{
		{"pushed to", "pushed to", nil, Commits},
		{"pushed new", "pushed new", nil, Commits},
		{"push ignores case", "Pushed to", nil, Commits},
		{"push wins over issue target", "pushed to", strPtr("Issue"), Commits},
		{"push wins over merge request target", "pushed new", strPtr("MergeRequest"), Commits},
		{"merge request target", "opened", strPtr("MergeRequest"), PRs},
		{"comment on merge request", "commented on", strPtr("MergeRequest"), PRs},
		{"accepted without target", "accepted", nil, PRs},
		{"merged without target", "merged", nil, PRs},
		{"merged wins over issue target", "merged", strPtr("Issue"), PRs},
		{"merged is case sensitive", "Merged", nil, Other},
		{"accepted is case sensitive", "ACCEPTED", nil, Other},
		{"issue target", "opened", strPtr("Issue"), Issues},
		{"closed issue", "closed", strPtr("Issue"), Issues},
		{"issue wins over comment", "commented on", strPtr("Issue"), Issues},
		{"comment on note", "commented on", strPtr("Note"), Comments},
		{"comment ignores case", "Commented on", nil, Comments},
		{"comment on diff note", "commented on", strPtr("DiffNote"), Comments},
		{"joined", "joined", nil, Other},
		{"created project", "created", nil, Other},
		{"empty", "", nil, Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CategorizeGitLabEvent(tt.action, tt.target))
		})
	}
}

func TestDateKey(t *testing.T) {
	tests := []struct {
		name string
		ts   string
		want string
	}{
		{"full timestamp", "2024-03-14T10:00:00Z", "2024-03-14"},
		{"gitlab timestamp", "2024-03-14T10:00:00.123+01:00", "2024-03-14"},
		{"date only", "2024-03-14", "2024-03-14"},
		{"short", "2024-03", "2024-03"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DateKey(tt.ts))
		})
	}
}

func TestContributionData(t *testing.T) {
	d := NewContributionData()
	require.Len(t, d.ByCategory, 5)
	for _, c := range Categories() {
		require.Contains(t, d.ByCategory, c)
		require.Zero(t, d.ByCategory[c])
	}
	require.Empty(t, d.ByDate)

	d.Add("2024-03-14T10:00:00Z", Commits, "octocat/hello")
	d.Add("2024-03-14T18:30:00Z", Commits, "octocat/hello")
	d.Add("2024-03-15T09:00:00Z", Commits, "")
	d.Add("2024-03-15T09:05:00Z", Issues, "octocat/hello")

	require.Equal(t, 4, d.Events)
	require.Equal(t, map[string]int{"2024-03-14": 2, "2024-03-15": 2}, d.ByDate)
	require.Equal(t, 3, d.ByCategory[Commits])
	require.Equal(t, 1, d.ByCategory[Issues])
	require.Zero(t, d.ByCategory[PRs])
	require.Equal(t, map[string]int{"octocat/hello": 2}, d.PushesByRepo)
}

func TestCategoriesReturnsCopy(t *testing.T) {
	got := Categories()
	require.Equal(t, []Category{Commits, PRs, Issues, Comments, Other}, got)
	got[0] = Other
	require.Equal(t, Commits, Categories()[0])
}
