package gitlab

import "net/http"

// User is an entry of the GET /users?username= search result
type User struct {
	ID           int64   `json:"id"`
	Username     string  `json:"username"`
	Name         *string `json:"name"`
	AvatarURL    *string `json:"avatar_url"`
	WebURL       string  `json:"web_url"`
	Bio          *string `json:"bio"`
	Location     *string `json:"location"`
	Organization *string `json:"organization"`
	PublicEmail  *string `json:"public_email"`
	Followers    *int    `json:"followers"`
	Following    *int    `json:"following"`
}

// Project represents a GitLab project
type Project struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	PathWithNamespace string    `json:"path_with_namespace"`
	Description       *string   `json:"description"`
	WebURL            string    `json:"web_url"`
	StarCount         int       `json:"star_count"`
	ForksCount        int       `json:"forks_count"`
	CreatedAt         *string   `json:"created_at"`
	LastActivityAt    *string   `json:"last_activity_at"`
	DefaultBranch     *string   `json:"default_branch"`
	Namespace         Namespace `json:"namespace"`
}

// Namespace is the group or user owning a project
type Namespace struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Path      string  `json:"path"`
	AvatarURL *string `json:"avatar_url"`
}

// Commit is the subset of a commit listing entry we need
type Commit struct {
	ID string `json:"id"`
}

// CommitPage is one page of commits together with the response headers,
// which carry the X-Total-Pages pagination header.
type CommitPage struct {
	Commits []Commit
	Header  http.Header
}

// Branch represents a repository branch
type Branch struct {
	Name      string `json:"name"`
	Protected bool   `json:"protected"`
	Default   bool   `json:"default"`
}

// File is the envelope returned by the repository files endpoint
type File struct {
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
	Ref      string `json:"ref"`
	Encoding string `json:"encoding"`
	Content  string `json:"content"`
}

// Event is an entry from a user's contribution events feed
type Event struct {
	ID         int64   `json:"id"`
	ProjectID  *int64  `json:"project_id"`
	ActionName string  `json:"action_name"`
	TargetType *string `json:"target_type"`
	CreatedAt  string  `json:"created_at"`
}
