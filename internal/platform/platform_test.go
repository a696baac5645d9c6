package platform

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAcceptsSlugsAndDisplayNames(t *testing.T) {
	cases := map[string]Platform{
		"github":   GitHub,
		"GitHub":   GitHub,
		" gitlab ": GitLab,
		"GITLAB":   GitLab,
	}
	for input, want := range cases {
		got, err := Parse(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
	}

	_, err := Parse("bitbucket")
	require.Error(t, err)
}

func TestNextCycles(t *testing.T) {
	require.Equal(t, GitLab, GitHub.Next())
	require.Equal(t, GitHub, GitLab.Next())
	require.Equal(t, GitHub, Platform(0).Next())
}

func TestJSONUsesSlug(t *testing.T) {
	data, err := json.Marshal(map[string]Platform{"p": GitLab})
	require.NoError(t, err)
	require.JSONEq(t, `{"p":"gitlab"}`, string(data))

	var decoded struct {
		P Platform `json:"p"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"p":"github"}`), &decoded))
	require.Equal(t, GitHub, decoded.P)
}

func TestAllReturnsCopy(t *testing.T) {
	list := All()
	list[0] = GitLab
	require.Equal(t, GitHub, All()[0])
	require.False(t, Platform(0).Valid())
}
