package report_test

import (
	"testing"

	"github.com/sgaunet/pr-report/pkg/report"
	"github.com/sgaunet/pr-report/testing/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_ConcatenatesInOrder(t *testing.T) {
	a := report.NewRowSet(fixtures.GitHubRows())
	b := report.NewRowSet(fixtures.BitbucketRows())

	got, err := report.Aggregate(a, b)
	require.NoError(t, err)

	assert.Equal(t, report.Header(), got.Header)
	require.Equal(t, a.Len()+b.Len(), got.Len())
	for i, rec := range a.Records {
		assert.Equal(t, rec, got.Records[i])
	}
	for i, rec := range b.Records {
		assert.Equal(t, rec, got.Records[a.Len()+i])
	}
}

func TestAggregate_SingleAndEmptySets(t *testing.T) {
	empty := report.NewRowSet(nil)
	a := report.NewRowSet(fixtures.GitHubRows())

	got, err := report.Aggregate(empty, a, empty)
	require.NoError(t, err)
	assert.Equal(t, a.Records, got.Records)
}

func TestAggregate_DoesNotAliasInput(t *testing.T) {
	a := report.NewRowSet(fixtures.GitHubRows())

	got, err := report.Aggregate(a)
	require.NoError(t, err)

	got.Records[0][0] = "changed"
	got.Header[0] = "changed"
	assert.Equal(t, "octocat", a.Records[0][0])
	assert.Equal(t, report.ColumnProject, a.Header[0])
}

func TestAggregate_SchemaMismatch(t *testing.T) {
	a := report.NewRowSet(fixtures.GitHubRows())

	reordered := report.Header()
	reordered[0], reordered[1] = reordered[1], reordered[0]

	tests := []struct {
		name   string
		header []string
	}{
		{name: "reordered columns", header: reordered},
		{name: "missing column", header: report.Header()[:6]},
		{name: "renamed column", header: append(report.Header()[:6], "Mergeable")},
		{name: "extra column", header: append(report.Header(), "Reviewers")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := report.RowSet{Header: tt.header, Records: [][]string{{"x"}}}

			got, err := report.Aggregate(a, b)
			require.ErrorIs(t, err, report.ErrSchemaMismatch)
			assert.Equal(t, report.RowSet{}, got, "no partial output")
		})
	}
}

func TestAggregate_NoInput(t *testing.T) {
	_, err := report.Aggregate()
	assert.ErrorIs(t, err, report.ErrNoRowSets)
}

func TestRowSet_ColumnIndex(t *testing.T) {
	set := report.NewRowSet(nil)
	assert.Equal(t, 2, set.ColumnIndex(report.ColumnTitle))
	assert.Equal(t, 5, set.ColumnIndex(report.ColumnURL))
	assert.Equal(t, -1, set.ColumnIndex("Reviewers"))
}

func TestRow_Record(t *testing.T) {
	row := report.Row{
		Project:      "P",
		Repository:   "r",
		Title:        "t",
		Author:       "a",
		CreatedAt:    "2024-01-01 00:00:00",
		URL:          "https://example.com/1",
		ReadyToMerge: report.Blocked,
	}
	assert.Equal(t, []string{"P", "r", "t", "a", "2024-01-01 00:00:00", "https://example.com/1", "Blocked"}, row.Record())
	assert.Len(t, row.Record(), len(report.Header()))
}
