package notify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeSequence(t *testing.T) {
	require.Equal(t, "\033]777;notify;gitdash;Report saved\007", escapeSequence("gitdash", "Report saved", false))
	require.Equal(t, "\033Ptmux;\033\033]777;notify;gitdash;ok\007\033\\", escapeSequence("gitdash", "ok", true))
}

func TestEscapeSequenceSanitizes(t *testing.T) {
	got := escapeSequence("a;b", "line\nbreak\007", false)
	require.Equal(t, "\033]777;notify;ab;linebreak\007", got)
}
