package github

import "net/http"

// User is the public profile returned by GET /users/{username}
type User struct {
	Login       string  `json:"login"`
	ID          int64   `json:"id"`
	AvatarURL   string  `json:"avatar_url"`
	Name        *string `json:"name"`
	Company     *string `json:"company"`
	Blog        *string `json:"blog"`
	Location    *string `json:"location"`
	Bio         *string `json:"bio"`
	PublicRepos int     `json:"public_repos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
}

// Repo represents a repository in the user's repo listing
type Repo struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	FullName        string  `json:"full_name"`
	Description     *string `json:"description"`
	HTMLURL         string  `json:"html_url"`
	StargazersCount int     `json:"stargazers_count"`
	ForksCount      int     `json:"forks_count"`
	Language        *string `json:"language"`
	CreatedAt       *string `json:"created_at"`
	UpdatedAt       *string `json:"updated_at"`
	DefaultBranch   *string `json:"default_branch"`
	Owner           Owner   `json:"owner"`
}

// Owner represents the repository owner
type Owner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// Commit is the subset of a commit listing entry we need
type Commit struct {
	SHA string `json:"sha"`
}

// CommitPage is one page of commits together with the response headers,
// which carry the pagination Link header.
type CommitPage struct {
	Commits []Commit
	Header  http.Header
}

// Branch represents a repository branch
type Branch struct {
	Name      string `json:"name"`
	Protected bool   `json:"protected"`
}

// Readme is the content envelope returned by GET /repos/{owner}/{repo}/readme
type Readme struct {
	Name        string  `json:"name"`
	Path        string  `json:"path"`
	Content     string  `json:"content"`
	Encoding    string  `json:"encoding"`
	DownloadURL *string `json:"download_url"`
}

// Event is an entry from a user's public events feed
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	CreatedAt string    `json:"created_at"`
	Repo      EventRepo `json:"repo"`
}

// EventRepo identifies the repository an event happened in
type EventRepo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
