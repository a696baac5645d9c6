package aggregate

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLastPageFromLink(t *testing.T) {
	h := http.Header{}
	_, ok := lastPageFromLink(h)
	require.False(t, ok)

	h.Set("Link", `<https://api.github.com/x?page=1>; rel="first", <https://api.github.com/x?page=42>; rel="last"`)
	n, ok := lastPageFromLink(h)
	require.True(t, ok)
	require.Equal(t, 42, n)
}

func TestTotalPages(t *testing.T) {
	h := http.Header{}
	require.Equal(t, 0, totalPages(h))
	h.Set("X-Total-Pages", " 17 ")
	require.Equal(t, 17, totalPages(h))
	h.Set("X-Total-Pages", "-3")
	require.Equal(t, 0, totalPages(h))
}

func TestDecodeContent(t *testing.T) {
	got, err := decodeContent("aGVs\nbG8=\n", "base64")
	require.NoError(t, err)
	require.Equal(t, "hello", got)

	got, err = decodeContent("as is", "text")
	require.NoError(t, err)
	require.Equal(t, "as is", got)
}
