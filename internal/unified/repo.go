package unified

import (
	"github.com/jpoz/gitdash/internal/github"
	"github.com/jpoz/gitdash/internal/gitlab"
	"github.com/jpoz/gitdash/internal/platform"
)

// Owner is the account a repository belongs to.
type Owner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// Repo is a normalized repository. Timestamps are kept exactly as the
// platform sent them.
type Repo struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	FullName      string            `json:"full_name"`
	Description   *string           `json:"description"`
	HTMLURL       string            `json:"html_url"`
	Stars         int               `json:"stars"`
	Forks         int               `json:"forks"`
	Language      *string           `json:"language"`
	CreatedAt     *string           `json:"created_at"`
	UpdatedAt     *string           `json:"updated_at"`
	DefaultBranch *string           `json:"default_branch"`
	Owner         Owner             `json:"owner"`
	Platform      platform.Platform `json:"platform"`
}

// RepoID returns the numeric id as GitLab operations need it, or nil for
// platforms that address repositories by owner and name.
func (r Repo) RepoID() *int64 {
	if r.Platform != platform.GitLab {
		return nil
	}
	id := r.ID
	return &id
}

// FromGitHubRepo maps a GitHub repository listing entry.
func FromGitHubRepo(r github.Repo) Repo {
	return Repo{
		ID:            r.ID,
		Name:          r.Name,
		FullName:      r.FullName,
		Description:   clone(r.Description),
		HTMLURL:       r.HTMLURL,
		Stars:         r.StargazersCount,
		Forks:         r.ForksCount,
		Language:      clone(r.Language),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		DefaultBranch: clone(r.DefaultBranch),
		Owner: Owner{
			Login:     r.Owner.Login,
			AvatarURL: r.Owner.AvatarURL,
		},
		Platform: platform.GitHub,
	}
}

// FromGitLabProject maps a GitLab project. The project listing carries no
// primary language, so Language is always nil.
func FromGitLabProject(p gitlab.Project) Repo {
	return Repo{
		ID:            p.ID,
		Name:          p.Name,
		FullName:      p.PathWithNamespace,
		Description:   clone(p.Description),
		HTMLURL:       p.WebURL,
		Stars:         p.StarCount,
		Forks:         p.ForksCount,
		Language:      nil,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.LastActivityAt,
		DefaultBranch: clone(p.DefaultBranch),
		Owner: Owner{
			Login:     p.Namespace.Name,
			AvatarURL: StringValue(p.Namespace.AvatarURL),
		},
		Platform: platform.GitLab,
	}
}

// FromGitHubRepos maps a repository listing.
func FromGitHubRepos(rs []github.Repo) []Repo {
	out := make([]Repo, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromGitHubRepo(r))
	}
	return out
}

// FromGitLabProjects maps a project listing.
func FromGitLabProjects(ps []gitlab.Project) []Repo {
	out := make([]Repo, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromGitLabProject(p))
	}
	return out
}
