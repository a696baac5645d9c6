// Package unified holds the platform-agnostic user, repository and
// contribution shapes, and the conversions from each platform's native types.
package unified

import (
	"github.com/jpoz/gitdash/internal/github"
	"github.com/jpoz/gitdash/internal/gitlab"
	"github.com/jpoz/gitdash/internal/platform"
)

// User is a normalized public profile. AvatarURL is never absent; it is the
// empty string when the platform omits it.
type User struct {
	ID          int64             `json:"id"`
	Username    string            `json:"username"`
	Name        *string           `json:"name"`
	AvatarURL   string            `json:"avatar_url"`
	Bio         *string           `json:"bio"`
	Location    *string           `json:"location"`
	Company     *string           `json:"company"`
	Blog        *string           `json:"blog"`
	Followers   int               `json:"followers"`
	Following   int               `json:"following"`
	PublicRepos int               `json:"public_repos"`
	Platform    platform.Platform `json:"platform"`
}

// DisplayName returns the name if set, otherwise the username.
func (u User) DisplayName() string {
	if name := StringValue(u.Name); name != "" {
		return name
	}
	return u.Username
}

// FromGitHubUser maps a GitHub profile.
func FromGitHubUser(u github.User) User {
	return User{
		ID:          u.ID,
		Username:    u.Login,
		Name:        clone(u.Name),
		AvatarURL:   u.AvatarURL,
		Bio:         clone(u.Bio),
		Location:    clone(u.Location),
		Company:     clone(u.Company),
		Blog:        clone(u.Blog),
		Followers:   u.Followers,
		Following:   u.Following,
		PublicRepos: u.PublicRepos,
		Platform:    platform.GitHub,
	}
}

// FromGitLabUser maps a GitLab user search entry. GitLab has no company or
// blog field; organization and public email take their places. The search
// result carries no repository count, so PublicRepos is 0.
func FromGitLabUser(u gitlab.User) User {
	return User{
		ID:          u.ID,
		Username:    u.Username,
		Name:        clone(u.Name),
		AvatarURL:   StringValue(u.AvatarURL),
		Bio:         clone(u.Bio),
		Location:    clone(u.Location),
		Company:     clone(u.Organization),
		Blog:        clone(u.PublicEmail),
		Followers:   intValue(u.Followers),
		Following:   intValue(u.Following),
		PublicRepos: 0,
		Platform:    platform.GitLab,
	}
}

// StringValue dereferences s, yielding "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// clone copies s so the unified value does not alias the decoded response.
// Empty strings pass through; GitHub reports an unset blog as "".
func clone(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func intValue(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
