package state

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jpoz/gitdash/internal/platform"
	"github.com/jpoz/gitdash/internal/result"
	"github.com/jpoz/gitdash/internal/unified"
)

type fakeAggregator struct {
	mu    sync.Mutex
	calls []string

	userErr  *result.Failure
	reposErr *result.Failure
	// gate, when set, blocks GetUser until closed.
	gate chan struct{}
}

func (f *fakeAggregator) record(op string) {
	f.mu.Lock()
	f.calls = append(f.calls, op)
	f.mu.Unlock()
}

func (f *fakeAggregator) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAggregator) GetUser(_ context.Context, username string, p platform.Platform) result.Result[unified.User] {
	f.record("user")
	if f.gate != nil {
		<-f.gate
	}
	if f.userErr != nil {
		return result.Fail[unified.User](f.userErr)
	}
	return result.Ok(unified.User{ID: 5, Username: username, Platform: p})
}

func (f *fakeAggregator) GetUserRepos(context.Context, string, platform.Platform) result.Result[[]unified.Repo] {
	f.record("repos")
	if f.reposErr != nil {
		return result.Fail[[]unified.Repo](f.reposErr)
	}
	return result.Ok([]unified.Repo{{Name: "r"}})
}

func (f *fakeAggregator) GetContributions(context.Context, string, platform.Platform, int64) result.Result[unified.ContributionData] {
	f.record("contributions")
	return result.Ok(unified.NewContributionData())
}

func (f *fakeAggregator) GetProfileReadme(context.Context, string, platform.Platform) result.Result[string] {
	f.record("profile_readme")
	return result.Ok("# me")
}

func (f *fakeAggregator) GetCommitCount(context.Context, string, string, platform.Platform, *int64) result.Result[int] {
	f.record("commits")
	return result.Fail[int](result.MissingParamFailure("repository ID required for GitLab"))
}

func (f *fakeAggregator) GetBranches(context.Context, string, string, platform.Platform, *int64) result.Result[[]string] {
	f.record("branches")
	return result.Ok([]string{"main"})
}

func (f *fakeAggregator) GetReadme(context.Context, string, string, platform.Platform, *int64, *string) result.Result[string] {
	f.record("readme")
	return result.Ok("readme")
}

func newHolder(t *testing.T, agg Aggregator) *Holder {
	t.Helper()
	h := NewHolder(context.Background(), agg, NewStore(Initial(platform.GitHub)), nil)
	t.Cleanup(func() {
		h.Close()
		h.Wait()
	})
	return h
}

func TestHolder_SearchLoadsDependentsAfterUser(t *testing.T) {
	agg := &fakeAggregator{}
	h := newHolder(t, agg)

	h.Search("  octocat ")
	h.Wait()

	st := h.State()
	require.Equal(t, "octocat", st.Query)
	require.Equal(t, Loaded, st.User.Status)
	require.Equal(t, Loaded, st.Repos.Status)
	require.Equal(t, Loaded, st.Contributions.Status)
	require.Equal(t, "# me", st.ProfileReadme.Value)

	calls := agg.called()
	require.Equal(t, "user", calls[0])
	require.ElementsMatch(t, []string{"user", "repos", "contributions", "profile_readme"}, calls)
}

func TestHolder_UserFailureSkipsRepos(t *testing.T) {
	agg := &fakeAggregator{userErr: result.NotFoundFailure("GitLab user 'x' not found")}
	h := newHolder(t, agg)

	h.Search("x")
	h.Wait()

	st := h.State()
	require.Equal(t, Failed, st.User.Status)
	require.Equal(t, Idle, st.Repos.Status)
	require.Equal(t, []string{"user"}, agg.called())
}

func TestHolder_ReposFailureKeepsUser(t *testing.T) {
	agg := &fakeAggregator{reposErr: result.TransportFailure(nil)}
	h := newHolder(t, agg)

	h.Search("x")
	h.Wait()

	st := h.State()
	require.Equal(t, Loaded, st.User.Status)
	require.Equal(t, Failed, st.Repos.Status)
	require.NotEmpty(t, st.Repos.Err)
}

func TestHolder_BlankSearchIgnored(t *testing.T) {
	agg := &fakeAggregator{}
	h := newHolder(t, agg)
	h.Search("   ")
	h.Wait()
	require.Empty(t, agg.called())
	require.Equal(t, 0, h.State().Generation)
}

func TestHolder_OpenRepoIndependentSlots(t *testing.T) {
	agg := &fakeAggregator{}
	h := newHolder(t, agg)

	h.OpenRepo(unified.Repo{Name: "r", Owner: unified.Owner{Login: "o"}, Platform: platform.GitLab})
	h.Wait()

	d := h.State().Detail
	require.NotNil(t, d)
	require.Equal(t, Failed, d.CommitCount.Status)
	require.Equal(t, Loaded, d.Branches.Status)
	require.Equal(t, "readme", d.Readme.Value)
}

func TestHolder_NoDispatchAfterClose(t *testing.T) {
	agg := &fakeAggregator{gate: make(chan struct{})}
	h := NewHolder(context.Background(), agg, NewStore(Initial(platform.GitHub)), nil)

	h.Search("x")
	h.Close()
	close(agg.gate)
	h.Wait()

	require.Equal(t, Loading, h.State().User.Status)
}

func TestStore_SubscribeLatestWins(t *testing.T) {
	store := NewStore(Initial(platform.GitHub))
	ctx, cancel := context.WithCancel(context.Background())
	ch := store.Subscribe(ctx)

	first := <-ch
	require.Equal(t, "", first.Query)

	store.Dispatch(QueryChanged{Query: "a"})
	store.Dispatch(QueryChanged{Query: "ab"})
	latest := <-ch
	require.Equal(t, "ab", latest.Query)

	cancel()
	require.Eventually(t, func() bool {
		_, open := <-ch
		return !open
	}, time.Second, 10*time.Millisecond)
}
