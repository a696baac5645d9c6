package tui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThemeBadgeColors(t *testing.T) {
	require.Len(t, themeOrder, len(themes))
	for _, key := range themeOrder {
		th, ok := themes[key]
		require.True(t, ok, key)
		require.NotEmpty(t, th.Stars, key)
		require.NotEmpty(t, th.Forks, key)
		require.NotEmpty(t, th.Language, key)
		require.NotEqual(t, th.Stars, th.Forks, key)
		require.NotEqual(t, th.Stars, th.Language, key)
		require.NotEqual(t, th.Forks, th.Language, key)
	}
}
