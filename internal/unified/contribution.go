package unified

import "strings"

// Category is an activity bucket for contribution events.
type Category string

const (
	Commits  Category = "Commits"
	PRs      Category = "PRs"
	Issues   Category = "Issues"
	Comments Category = "Comments"
	Other    Category = "Other"
)

var categories = []Category{Commits, PRs, Issues, Comments, Other}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

var githubEventCategories = map[string]Category{
	"PushEvent":                     Commits,
	"PullRequestEvent":              PRs,
	"IssuesEvent":                   Issues,
	"IssueCommentEvent":             Comments,
	"CommitCommentEvent":            Comments,
	"PullRequestReviewCommentEvent": Comments,
	"PullRequestReviewEvent":        Comments,
}

// CategorizeGitHubEvent maps a GitHub event type. Unknown types are Other.
func CategorizeGitHubEvent(eventType string) Category {
	if c, ok := githubEventCategories[eventType]; ok {
		return c
	}
	return Other
}

// CategorizeGitLabEvent maps a GitLab event. The checks run in order and the
// first match wins, so a push is always Commits whatever its target. Only the
// push and comment checks ignore case; "accepted" and "merged" match exactly.
func CategorizeGitLabEvent(actionName string, targetType *string) Category {
	action := strings.ToLower(actionName)
	target := StringValue(targetType)

	switch {
	case strings.Contains(action, "push"):
		return Commits
	case target == "MergeRequest" || actionName == "accepted" || actionName == "merged":
		return PRs
	case target == "Issue":
		return Issues
	case strings.Contains(action, "comment"):
		return Comments
	default:
		return Other
	}
}

// ContributionData is the activity found in the scanned window of recent
// events. It is not a lifetime total.
type ContributionData struct {
	// ByDate is sparse: dates with no events are absent.
	ByDate     map[string]int   `json:"by_date"`
	ByCategory map[Category]int `json:"by_category"`
	// PushesByRepo counts Commits events per repository key: the repository
	// full name on GitHub, the decimal project id on GitLab.
	PushesByRepo map[string]int `json:"pushes_by_repo"`
	Events       int            `json:"events"`
	Pages        int            `json:"pages"`
}

// NewContributionData returns empty data with every category present.
func NewContributionData() ContributionData {
	d := ContributionData{
		ByDate:       make(map[string]int),
		ByCategory:   make(map[Category]int, len(categories)),
		PushesByRepo: make(map[string]int),
	}
	for _, c := range categories {
		d.ByCategory[c] = 0
	}
	return d
}

// Add records one event. repoKey may be empty when the event has no repository.
func (d *ContributionData) Add(createdAt string, c Category, repoKey string) {
	d.ByDate[DateKey(createdAt)]++
	d.ByCategory[c]++
	if c == Commits && repoKey != "" {
		d.PushesByRepo[repoKey]++
	}
	d.Events++
}

// DateKey truncates an ISO-8601 timestamp to its YYYY-MM-DD portion.
// Shorter strings are returned whole.
func DateKey(ts string) string {
	if len(ts) < 10 {
		return ts
	}
	return ts[:10]
}
