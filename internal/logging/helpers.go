package logging

import (
	"context"

	"github.com/google/uuid"
)

func update(ctx context.Context, fn func(*logCtx)) context.Context {
	c, _ := ctx.Value(key).(logCtx)
	fn(&c)
	return context.WithValue(ctx, key, c)
}

// WithRequestID adds a request id to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return update(ctx, func(c *logCtx) { c.RequestID = requestID })
}

// WithNewRequestID adds a freshly generated request id, for work that did not
// start from an HTTP request.
func WithNewRequestID(ctx context.Context) context.Context {
	return WithRequestID(ctx, uuid.NewString())
}

// RequestID returns the request id carried by ctx, if any.
func RequestID(ctx context.Context) string {
	c, _ := ctx.Value(key).(logCtx)
	return c.RequestID
}

// WithOperation names the aggregation operation being run.
func WithOperation(ctx context.Context, op string) context.Context {
	return update(ctx, func(c *logCtx) { c.Operation = op })
}

// WithPlatform adds the platform slug.
func WithPlatform(ctx context.Context, platform string) context.Context {
	return update(ctx, func(c *logCtx) { c.Platform = platform })
}

// WithUsername adds the looked-up username.
func WithUsername(ctx context.Context, username string) context.Context {
	return update(ctx, func(c *logCtx) { c.Username = username })
}

// WithRepo adds the repository an operation targets.
func WithRepo(ctx context.Context, owner, repo string) context.Context {
	return update(ctx, func(c *logCtx) {
		c.Owner = owner
		c.Repo = repo
	})
}

// WithRequest adds the HTTP method and path.
func WithRequest(ctx context.Context, method, path string) context.Context {
	return update(ctx, func(c *logCtx) {
		c.Method = method
		c.Path = path
	})
}

// WithResponse adds the response status and duration.
func WithResponse(ctx context.Context, status int, duration string) context.Context {
	return update(ctx, func(c *logCtx) {
		c.Status = status
		c.Duration = duration
	})
}
