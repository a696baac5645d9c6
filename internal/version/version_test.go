package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func manifestServer(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/version.json"
}

func newChecker(url string, code int) *Checker {
	c := NewChecker(url, nil)
	c.currentCode = code
	c.currentName = "1.0.0"
	return c
}

func TestCheck_UpdateAvailable(t *testing.T) {
	url := manifestServer(t, http.StatusOK, `{"version_code":5,"version_name":"1.2.0","release_notes":"faster","download_url":"https://x/dl","is_mandatory":true}`)

	info, err := newChecker(url, 3).Check(context.Background())
	require.NoError(t, err)
	require.True(t, info.UpdateAvailable)
	require.Equal(t, "1.0.0", info.Current)
	require.Equal(t, "1.2.0", info.Latest)
	require.Equal(t, "faster", info.ReleaseNotes)
	require.Equal(t, "https://x/dl", info.DownloadURL)
	require.True(t, info.Mandatory)
}

func TestCheck_UpToDate(t *testing.T) {
	url := manifestServer(t, http.StatusOK, `{"version_code":3,"version_name":"1.0.0","is_mandatory":true}`)

	info, err := newChecker(url, 3).Check(context.Background())
	require.NoError(t, err)
	require.False(t, info.UpdateAvailable)
	require.False(t, info.Mandatory)
}

func TestCheck_Errors(t *testing.T) {
	_, err := newChecker(manifestServer(t, http.StatusNotFound, ""), 1).Check(context.Background())
	require.Error(t, err)

	_, err = newChecker(manifestServer(t, http.StatusOK, "{"), 1).Check(context.Background())
	require.Error(t, err)
}
