package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sgaunet/pr-report/pkg/report"
	"github.com/sgaunet/pr-report/testing/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonicalHeaderLine = "Project,Repository,Pull Request Title,Author,Created Time,Pull Request URL,Ready to Merge\n"

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	set := report.NewRowSet([]report.Row{{
		Project:      "KEY",
		Repository:   "api",
		Title:        `Fix "quoted", comma`,
		Author:       "Jane Doe",
		CreatedAt:    "2024-03-01 10:30:45",
		URL:          "https://bitbucket.example.com/projects/KEY/repos/api/pull-requests/1",
		ReadyToMerge: report.Unknown,
	}})

	require.NoError(t, report.Write(&buf, set))

	want := canonicalHeaderLine +
		`KEY,api,"Fix ""quoted"", comma",Jane Doe,2024-03-01 10:30:45,https://bitbucket.example.com/projects/KEY/repos/api/pull-requests/1,Unknown` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestRead(t *testing.T) {
	t.Run("header and records", func(t *testing.T) {
		in := canonicalHeaderLine + "o,r,t,a,d,https://x/1,Yes\n"
		set, err := report.Read(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, report.Header(), set.Header)
		assert.Equal(t, [][]string{{"o", "r", "t", "a", "d", "https://x/1", "Yes"}}, set.Records)
	})

	t.Run("header only", func(t *testing.T) {
		set, err := report.Read(strings.NewReader(canonicalHeaderLine))
		require.NoError(t, err)
		assert.Equal(t, 0, set.Len())
	})

	t.Run("byte order mark is dropped", func(t *testing.T) {
		set, err := report.Read(strings.NewReader("\ufeff" + canonicalHeaderLine))
		require.NoError(t, err)
		assert.Equal(t, report.ColumnProject, set.Header[0])
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := report.Read(strings.NewReader(""))
		assert.ErrorIs(t, err, report.ErrEmptyFile)
	})

	t.Run("ragged record", func(t *testing.T) {
		_, err := report.Read(strings.NewReader(canonicalHeaderLine + "only,three,fields\n"))
		assert.Error(t, err)
	})
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ghPath := filepath.Join(dir, "gh-pr.csv")
	bbPath := filepath.Join(dir, "bb-pr.csv")

	gh := report.NewRowSet(fixtures.GitHubRows())
	bb := report.NewRowSet(fixtures.BitbucketRows())
	require.NoError(t, report.WriteFile(ghPath, gh))
	require.NoError(t, report.WriteFile(bbPath, bb))

	got, err := report.ReadFiles(ghPath, bbPath)
	require.NoError(t, err)

	want, err := report.Aggregate(gh, bb)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadFiles_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := report.ReadFiles(filepath.Join(dir, "absent.csv"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("schema mismatch across files", func(t *testing.T) {
		good := filepath.Join(dir, "good.csv")
		bad := filepath.Join(dir, "bad.csv")
		require.NoError(t, os.WriteFile(good, []byte(canonicalHeaderLine), 0o600))
		require.NoError(t, os.WriteFile(bad, []byte("Project,Repository\nP,r\n"), 0o600))

		_, err := report.ReadFiles(good, bad)
		assert.ErrorIs(t, err, report.ErrSchemaMismatch)
	})

	t.Run("no files", func(t *testing.T) {
		_, err := report.ReadFiles()
		assert.ErrorIs(t, err, report.ErrNoRowSets)
	})
}
