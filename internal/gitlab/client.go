package gitlab

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
	defaultBaseURL   = "https://gitlab.com/api/v4"
	defaultUserAgent = "gitdash"

	// ProjectsPerPage is the page size of the user project listing.
	ProjectsPerPage = 50
	// BranchesPerPage is the page size of the branch listing.
	BranchesPerPage = 100
)

// Config configures a Client. Zero fields take defaults.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// Client is an unauthenticated GitLab REST v4 client
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a new GitLab API client from cfg
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
	if e.StatusCode == http.StatusTooManyRequests {
		return fmt.Sprintf("gitlab: rate limited (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("gitlab: unexpected status code %d from %s", e.StatusCode, e.Endpoint)
}

// get issues a GET request against an already escaped path and decodes the
// JSON body into out. The response headers are returned alongside.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) (http.Header, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("gitlab: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gitlab: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Endpoint: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("gitlab: decode %s: %w", path, err)
	}

	return resp.Header, nil
}

// SearchUsers looks users up by username. GitLab has no direct
// lookup-by-username endpoint, so the result is a list.
func (c *Client) SearchUsers(ctx context.Context, username string) ([]User, error) {
	q := url.Values{}
	q.Set("username", username)

	var users []User
	if _, err := c.get(ctx, "/users", q, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListUserProjects lists a user's public projects by last activity
func (c *Client) ListUserProjects(ctx context.Context, username string) ([]Project, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(ProjectsPerPage))
	q.Set("order_by", "last_activity_at")

	var projects []Project
	if _, err := c.get(ctx, fmt.Sprintf("/users/%s/projects", url.PathEscape(username)), q, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject fetches a project by its namespaced path, e.g. "group/name"
func (c *Client) GetProject(ctx context.Context, path string) (*Project, error) {
	var project Project
	if _, err := c.get(ctx, "/projects/"+url.PathEscape(path), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// ListCommits fetches the first page of a project's commits
func (c *Client) ListCommits(ctx context.Context, projectID int64, perPage int) (*CommitPage, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(perPage))

	var commits []Commit
	header, err := c.get(ctx, projectPath(projectID, "/repository/commits"), q, &commits)
	if err != nil {
		return nil, err
	}
	return &CommitPage{Commits: commits, Header: header}, nil
}

// ListBranches lists up to BranchesPerPage branches of a project
func (c *Client) ListBranches(ctx context.Context, projectID int64) ([]Branch, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(BranchesPerPage))

	var branches []Branch
	if _, err := c.get(ctx, projectPath(projectID, "/repository/branches"), q, &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

// GetFile fetches a repository file at ref
func (c *Client) GetFile(ctx context.Context, projectID int64, filePath, ref string) (*File, error) {
	q := url.Values{}
	q.Set("ref", ref)

	var file File
	if _, err := c.get(ctx, projectPath(projectID, "/repository/files/"+url.PathEscape(filePath)), q, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// ListUserEvents fetches one page of a user's contribution events
func (c *Client) ListUserEvents(ctx context.Context, userID int64, page, perPage int) ([]Event, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))

	var events []Event
	if _, err := c.get(ctx, fmt.Sprintf("/users/%d/events", userID), q, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func projectPath(projectID int64, suffix string) string {
	return "/projects/" + strconv.FormatInt(projectID, 10) + suffix
}
