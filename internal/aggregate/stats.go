package aggregate

import (
	"sort"
	"strconv"

	"github.com/jpoz/gitdash/internal/unified"
)

// LanguageShare is one row of a language distribution.
type LanguageShare struct {
	Language string  `json:"language"`
	Repos    int     `json:"repos"`
	Percent  float64 `json:"percent"`
}

// LanguageDistribution counts repositories per primary language. Repos
// without a language (all GitLab repos) are left out. Rows are sorted by
// count, then name.
func LanguageDistribution(repos []unified.Repo) []LanguageShare {
	counts := make(map[string]int)
	total := 0
	for _, r := range repos {
		lang := unified.StringValue(r.Language)
		if lang == "" {
			continue
		}
		counts[lang]++
		total++
	}

	shares := make([]LanguageShare, 0, len(counts))
	for lang, n := range counts {
		shares = append(shares, LanguageShare{
			Language: lang,
			Repos:    n,
			Percent:  float64(n) * 100 / float64(total),
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Repos != shares[j].Repos {
			return shares[i].Repos > shares[j].Repos
		}
		return shares[i].Language < shares[j].Language
	})
	return shares
}

// TopLanguages returns at most n language names, most used first.
func TopLanguages(repos []unified.Repo, n int) []string {
	shares := LanguageDistribution(repos)
	if len(shares) > n {
		shares = shares[:n]
	}
	out := make([]string, len(shares))
	for i, s := range shares {
		out[i] = s.Language
	}
	return out
}

func TotalStars(repos []unified.Repo) int {
	total := 0
	for _, r := range repos {
		total += r.Stars
	}
	return total
}

func TotalForks(repos []unified.Repo) int {
	total := 0
	for _, r := range repos {
		total += r.Forks
	}
	return total
}

// TopStarred returns up to n repositories with at least one star, most
// starred first.
func TopStarred(repos []unified.Repo, n int) []unified.Repo {
	starred := make([]unified.Repo, 0, len(repos))
	for _, r := range repos {
		if r.Stars > 0 {
			starred = append(starred, r)
		}
	}
	sort.SliceStable(starred, func(i, j int) bool {
		return starred[i].Stars > starred[j].Stars
	})
	if len(starred) > n {
		starred = starred[:n]
	}
	return starred
}

// LastWorkedOn returns the repository with the greatest UpdatedAt. The
// timestamps are compared as strings, which orders ISO-8601 values from the
// same platform correctly.
func LastWorkedOn(repos []unified.Repo) (unified.Repo, bool) {
	var (
		best  unified.Repo
		found bool
	)
	for _, r := range repos {
		if r.UpdatedAt == nil {
			continue
		}
		if !found || *r.UpdatedAt > *best.UpdatedAt {
			best, found = r, true
		}
	}
	return best, found
}

// MostActiveRepo picks the repository key with the most Commits events in
// the contribution window and resolves it to a display name. Ties go to the
// smaller key so the answer is stable.
func MostActiveRepo(contrib unified.ContributionData, repos []unified.Repo) (string, bool) {
	bestKey, bestCount := "", 0
	for key, n := range contrib.PushesByRepo {
		if n > bestCount || (n == bestCount && key < bestKey) {
			bestKey, bestCount = key, n
		}
	}
	if bestCount == 0 {
		return "", false
	}

	for _, r := range repos {
		if r.FullName == bestKey || strconv.FormatInt(r.ID, 10) == bestKey {
			return r.Name, true
		}
	}
	return bestKey, true
}

// Summary is the aggregate view consumed by the report and the API.
type Summary struct {
	User          unified.User             `json:"user"`
	RepoCount     int                      `json:"repo_count"`
	TotalStars    int                      `json:"total_stars"`
	TotalForks    int                      `json:"total_forks"`
	Languages     []LanguageShare          `json:"languages"`
	TopLanguages  []string                 `json:"top_languages"`
	TopStarred    []unified.Repo           `json:"top_starred"`
	LastWorkedOn  string                   `json:"last_worked_on,omitempty"`
	MostActive    string                   `json:"most_active,omitempty"`
	Contributions unified.ContributionData `json:"contributions"`
	// CommitEvents is the Commits count of the contribution window, not a
	// lifetime total.
	CommitEvents int `json:"commit_events"`
}

const (
	summaryTopLanguages = 3
	summaryTopStarred   = 5
)

// BuildSummary derives the aggregate statistics.
func BuildSummary(user unified.User, repos []unified.Repo, contrib unified.ContributionData) Summary {
	s := Summary{
		User:          user,
		RepoCount:     len(repos),
		TotalStars:    TotalStars(repos),
		TotalForks:    TotalForks(repos),
		Languages:     LanguageDistribution(repos),
		TopLanguages:  TopLanguages(repos, summaryTopLanguages),
		TopStarred:    TopStarred(repos, summaryTopStarred),
		Contributions: contrib,
		CommitEvents:  contrib.ByCategory[unified.Commits],
	}
	if r, ok := LastWorkedOn(repos); ok {
		s.LastWorkedOn = r.Name
	}
	if name, ok := MostActiveRepo(contrib, repos); ok {
		s.MostActive = name
	}
	return s
}
