package aggregate

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/jpoz/gitdash/internal/github"
	"github.com/jpoz/gitdash/internal/gitlab"
)

var errBoom = errors.New("boom")

type fakeGitHub struct {
	mu    sync.Mutex
	calls int

	user       *github.User
	userErr    error
	repos      []github.Repo
	commits    *github.CommitPage
	commitsErr error
	branches   []github.Branch
	readme     *github.Readme
	readmeErr  error
	readmeArgs [][2]string
	// eventPages[i] is returned for page i+1.
	eventPages [][]github.Event
	eventsErr  error
}

func (f *fakeGitHub) hit() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeGitHub) GetUser(context.Context, string) (*github.User, error) {
	f.hit()
	return f.user, f.userErr
}

func (f *fakeGitHub) ListUserRepos(context.Context, string) ([]github.Repo, error) {
	f.hit()
	return f.repos, nil
}

func (f *fakeGitHub) ListCommits(context.Context, string, string, int) (*github.CommitPage, error) {
	f.hit()
	return f.commits, f.commitsErr
}

func (f *fakeGitHub) ListBranches(context.Context, string, string) ([]github.Branch, error) {
	f.hit()
	return f.branches, nil
}

func (f *fakeGitHub) GetReadme(_ context.Context, owner, repo string) (*github.Readme, error) {
	f.hit()
	f.mu.Lock()
	f.readmeArgs = append(f.readmeArgs, [2]string{owner, repo})
	f.mu.Unlock()
	return f.readme, f.readmeErr
}

func (f *fakeGitHub) ListUserEvents(_ context.Context, _ string, page, _ int) ([]github.Event, error) {
	f.hit()
	if f.eventsErr != nil {
		return nil, f.eventsErr
	}
	if page-1 < len(f.eventPages) {
		return f.eventPages[page-1], nil
	}
	return nil, nil
}

type fakeGitLab struct {
	mu    sync.Mutex
	calls int

	users    []gitlab.User
	projects []gitlab.Project
	project  *gitlab.Project
	commits  *gitlab.CommitPage
	branches []gitlab.Branch
	// files maps a ref to its README; missing refs fail with errors
	// naming the ref.
	files      map[string]*gitlab.File
	fileRefs   []string
	eventPages [][]gitlab.Event
}

func (f *fakeGitLab) hit() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeGitLab) SearchUsers(context.Context, string) ([]gitlab.User, error) {
	f.hit()
	return f.users, nil
}

func (f *fakeGitLab) ListUserProjects(context.Context, string) ([]gitlab.Project, error) {
	f.hit()
	return f.projects, nil
}

func (f *fakeGitLab) GetProject(context.Context, string) (*gitlab.Project, error) {
	f.hit()
	if f.project == nil {
		return nil, &gitlab.StatusError{StatusCode: http.StatusNotFound, Endpoint: "/projects"}
	}
	return f.project, nil
}

func (f *fakeGitLab) ListCommits(context.Context, int64, int) (*gitlab.CommitPage, error) {
	f.hit()
	return f.commits, nil
}

func (f *fakeGitLab) ListBranches(context.Context, int64) ([]gitlab.Branch, error) {
	f.hit()
	return f.branches, nil
}

func (f *fakeGitLab) GetFile(_ context.Context, _ int64, _ string, ref string) (*gitlab.File, error) {
	f.hit()
	f.mu.Lock()
	f.fileRefs = append(f.fileRefs, ref)
	f.mu.Unlock()
	if file, ok := f.files[ref]; ok {
		return file, nil
	}
	return nil, errors.New("no readme at " + ref)
}

func (f *fakeGitLab) ListUserEvents(_ context.Context, _ int64, page, _ int) ([]gitlab.Event, error) {
	f.hit()
	if page-1 < len(f.eventPages) {
		return f.eventPages[page-1], nil
	}
	return nil, nil
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }
