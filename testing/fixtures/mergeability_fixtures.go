package fixtures

import "github.com/sgaunet/pr-report/pkg/mergeability"

// Detail returns a resolved pull request detail.
func Detail(mergeable bool, state string) mergeability.Detail {
	return mergeability.Detail{Mergeable: &mergeable, MergeableState: &state}
}

// UnknownStateDetail returns the detail GitHub reports while mergeability is
// still being computed.
func UnknownStateDetail() mergeability.Detail {
	state := "unknown"
	return mergeability.Detail{MergeableState: &state}
}
