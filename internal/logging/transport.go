package logging

import (
	"log/slog"
	"net/http"
	"time"
)

// Transport debug-logs every upstream request. It is set explicitly on each
// platform client's http.Client.
type Transport struct {
	Next   http.RoundTripper
	Logger *slog.Logger
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.Next
	if next == nil {
		next = http.DefaultTransport
	}
	logger := t.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx := req.Context()
	start := time.Now()
	resp, err := next.RoundTrip(req)
	elapsed := time.Since(start)
	if err != nil {
		logger.DebugContext(ctx, "upstream request failed",
			"host", req.URL.Host, "url_path", req.URL.Path, "elapsed", elapsed, "error", err)
		return nil, err
	}
	logger.DebugContext(ctx, "upstream request",
		"host", req.URL.Host, "url_path", req.URL.Path, "status_code", resp.StatusCode, "elapsed", elapsed)
	return resp, nil
}
