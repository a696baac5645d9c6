package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jpoz/gitdash/internal/aggregate"
	"github.com/jpoz/gitdash/internal/platform"
	"github.com/jpoz/gitdash/internal/unified"
)

func sampleSummary() aggregate.Summary {
	name := "Zoë Example"
	contrib := unified.NewContributionData()
	contrib.Add("2024-05-01T00:00:00Z", unified.Commits, "zoe/app")
	contrib.Add("2024-05-02T00:00:00Z", unified.PRs, "zoe/app")
	lang := "Go"
	repos := []unified.Repo{{ID: 1, Name: "app", FullName: "zoe/app", Stars: 3, Language: &lang}}
	return aggregate.BuildSummary(unified.User{Username: "zoe", Name: &name, Platform: platform.GitHub}, repos, contrib)
}

func TestWriteProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleSummary()))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteEmptySummary(t *testing.T) {
	var buf bytes.Buffer
	s := aggregate.BuildSummary(unified.User{Username: "empty", Platform: platform.GitLab}, nil, unified.NewContributionData())
	require.NoError(t, Write(&buf, s))
	require.NotZero(t, buf.Len())
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	path, err := Save(dir, sampleSummary())
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "gitdash_report_zoe.pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NotZero(t, info.Size())
}
