package report

import (
	"fmt"
	"slices"
)

// Aggregate concatenates row sets in input order. All sets must carry exactly
// the same header (same names, same order); otherwise ErrSchemaMismatch is
// returned and no partial result is produced. Columns are never reordered.
func Aggregate(sets ...RowSet) (RowSet, error) {
	if len(sets) == 0 {
		return RowSet{}, ErrNoRowSets
	}

	header := sets[0].Header
	total := 0
	for i, set := range sets {
		if !slices.Equal(header, set.Header) {
			return RowSet{}, fmt.Errorf("%w: set %d has %q, want %q", ErrSchemaMismatch, i, set.Header, header)
		}
		total += len(set.Records)
	}

	out := RowSet{
		Header:  slices.Clone(header),
		Records: make([][]string, 0, total),
	}
	for _, set := range sets {
		for _, rec := range set.Records {
			out.Records = append(out.Records, slices.Clone(rec))
		}
	}
	return out, nil
}
