package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "https://api.github.com"
	defaultUserAgent = "gitdash"
	apiVersion       = "application/vnd.github+json"
	apiVersionHdr    = "2022-11-28"

	// ReposPerPage is the page size of the user repo listing.
	ReposPerPage = 50
	// BranchesPerPage is the page size of the branch listing.
	BranchesPerPage = 100
)

// Config configures a Client. Zero fields take defaults.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// Client is an unauthenticated GitHub REST API client
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a new GitHub API client from cfg
func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: cfg.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return c
}

// StatusError is returned for any non-2xx response
type StatusError struct {
	StatusCode int
	Endpoint   string
}

func (e *StatusError) Error() string {
	if e.StatusCode == http.StatusForbidden || e.StatusCode == http.StatusTooManyRequests {
		return fmt.Sprintf("github: rate limited or forbidden (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("github: unexpected status code %d from %s", e.StatusCode, e.Endpoint)
}

// setHeaders sets the common GitHub API headers on a request
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", apiVersion)
	req.Header.Set("X-GitHub-Api-Version", apiVersionHdr)
	req.Header.Set("User-Agent", c.userAgent)
}

// get issues a GET request and decodes the JSON body into out. The response
// headers are returned for callers that need pagination metadata.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) (http.Header, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("github: new request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Endpoint: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("github: decode %s: %w", path, err)
	}

	return resp.Header, nil
}

// GetUser fetches a public user profile by login
func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	var user User
	if _, err := c.get(ctx, "/users/"+url.PathEscape(username), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUserRepos lists a user's public repositories, most recently updated first
func (c *Client) ListUserRepos(ctx context.Context, username string) ([]Repo, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(ReposPerPage))
	q.Set("sort", "updated")

	var repos []Repo
	if _, err := c.get(ctx, fmt.Sprintf("/users/%s/repos", url.PathEscape(username)), q, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// ListCommits fetches the first page of commits with the given page size.
func (c *Client) ListCommits(ctx context.Context, owner, repo string, perPage int) (*CommitPage, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(perPage))

	var commits []Commit
	header, err := c.get(ctx, repoPath(owner, repo, "/commits"), q, &commits)
	if err != nil {
		return nil, err
	}
	return &CommitPage{Commits: commits, Header: header}, nil
}

// ListBranches lists up to BranchesPerPage branches of a repository
func (c *Client) ListBranches(ctx context.Context, owner, repo string) ([]Branch, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(BranchesPerPage))

	var branches []Branch
	if _, err := c.get(ctx, repoPath(owner, repo, "/branches"), q, &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

// GetReadme fetches the repository README content envelope
func (c *Client) GetReadme(ctx context.Context, owner, repo string) (*Readme, error) {
	var readme Readme
	if _, err := c.get(ctx, repoPath(owner, repo, "/readme"), nil, &readme); err != nil {
		return nil, err
	}
	return &readme, nil
}

// ListUserEvents fetches one page of a user's public events
func (c *Client) ListUserEvents(ctx context.Context, username string, page, perPage int) ([]Event, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))

	var events []Event
	if _, err := c.get(ctx, fmt.Sprintf("/users/%s/events", url.PathEscape(username)), q, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func repoPath(owner, repo, suffix string) string {
	return fmt.Sprintf("/repos/%s/%s%s", url.PathEscape(owner), url.PathEscape(repo), suffix)
}
