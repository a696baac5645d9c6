package state

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/jpoz/gitdash/internal/logging"
	"github.com/jpoz/gitdash/internal/platform"
	"github.com/jpoz/gitdash/internal/result"
	"github.com/jpoz/gitdash/internal/unified"
)

// Aggregator is the part of the aggregation service the holder drives.
type Aggregator interface {
	GetUser(ctx context.Context, username string, p platform.Platform) result.Result[unified.User]
	GetUserRepos(ctx context.Context, username string, p platform.Platform) result.Result[[]unified.Repo]
	GetContributions(ctx context.Context, username string, p platform.Platform, userID int64) result.Result[unified.ContributionData]
	GetProfileReadme(ctx context.Context, username string, p platform.Platform) result.Result[string]
	GetCommitCount(ctx context.Context, owner, repo string, p platform.Platform, repoID *int64) result.Result[int]
	GetBranches(ctx context.Context, owner, repo string, p platform.Platform, repoID *int64) result.Result[[]string]
	GetReadme(ctx context.Context, owner, repo string, p platform.Platform, repoID *int64, defaultBranch *string) result.Result[string]
}

// Holder runs user actions against the aggregator and feeds the results into
// its Store.
type Holder struct {
	svc    Aggregator
	store  *Store
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHolder creates a holder whose work is bound to ctx.
func NewHolder(ctx context.Context, svc Aggregator, store *Store, logger *slog.Logger) *Holder {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(ctx)
	return &Holder{svc: svc, store: store, logger: logger, ctx: ctx, cancel: cancel}
}

// State returns the current state.
func (h *Holder) State() State {
	return h.store.State()
}

// Subscribe streams state changes until ctx ends.
func (h *Holder) Subscribe(ctx context.Context) <-chan State {
	return h.store.Subscribe(ctx)
}

func (h *Holder) SetQuery(q string) {
	h.dispatch(QueryChanged{Query: q})
}

func (h *Holder) SelectPlatform(p platform.Platform) {
	h.dispatch(PlatformSelected{Platform: p})
}

// Search loads the user and, once that succeeds, the repositories,
// contributions and profile README concurrently. Blank input is ignored.
func (h *Holder) Search(username string) {
	username = strings.TrimSpace(username)
	if username == "" || h.ctx.Err() != nil {
		return
	}

	st := h.store.Dispatch(SearchStarted{Username: username})
	gen, p := st.Generation, st.Platform

	ctx := logging.WithNewRequestID(h.ctx)
	h.logger.InfoContext(ctx, "search started", "username", username, "platform", p.Slug())

	h.spawn(func() {
		res := h.svc.GetUser(ctx, username, p)
		h.dispatch(UserLoaded{Generation: gen, Result: res})

		user, ok := res.Value()
		if !ok {
			return
		}
		h.spawn(func() {
			h.dispatch(ReposLoaded{Generation: gen, Result: h.svc.GetUserRepos(ctx, username, p)})
		})
		h.spawn(func() {
			h.dispatch(ContributionsLoaded{Generation: gen, Result: h.svc.GetContributions(ctx, user.Username, p, user.ID)})
		})
		h.spawn(func() {
			h.dispatch(ProfileReadmeLoaded{Generation: gen, Result: h.svc.GetProfileReadme(ctx, user.Username, p)})
		})
	})
}

// OpenRepo shows repo and loads its commit count, branches and README
// concurrently; each lands in the state on its own.
func (h *Holder) OpenRepo(repo unified.Repo) {
	if h.ctx.Err() != nil {
		return
	}
	seq := h.store.Dispatch(RepoOpened{Repo: repo}).DetailSeq
	ctx := logging.WithNewRequestID(h.ctx)
	owner, id := repo.Owner.Login, repo.RepoID()

	h.spawn(func() {
		h.dispatch(CommitCountLoaded{Seq: seq, Result: h.svc.GetCommitCount(ctx, owner, repo.Name, repo.Platform, id)})
	})
	h.spawn(func() {
		h.dispatch(BranchesLoaded{Seq: seq, Result: h.svc.GetBranches(ctx, owner, repo.Name, repo.Platform, id)})
	})
	h.spawn(func() {
		h.dispatch(ReadmeLoaded{Seq: seq, Result: h.svc.GetReadme(ctx, owner, repo.Name, repo.Platform, id, repo.DefaultBranch)})
	})
}

func (h *Holder) CloseRepo() {
	h.dispatch(RepoClosed{})
}

// Close abandons in-flight work. No action is dispatched afterwards.
func (h *Holder) Close() {
	h.cancel()
}

// Wait blocks until all spawned work has returned.
func (h *Holder) Wait() {
	h.wg.Wait()
}

func (h *Holder) spawn(fn func()) {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		fn()
	}()
}

func (h *Holder) dispatch(a Action) {
	if h.ctx.Err() != nil {
		return
	}
	h.store.Dispatch(a)
}
