package gitlab

import "github.com/sgaunet/pr-report/pkg/mergeability"

// Values of detailed_merge_status.
const (
	statusMergeable        = "mergeable"
	statusChecking         = "checking"
	statusUnchecked        = "unchecked"
	statusPreparing        = "preparing"
	statusApprovalsSyncing = "approvals_syncing"
	statusConflict         = "conflict"
	statusNeedRebase       = "need_rebase"
	statusBrokenStatus     = "broken_status"
	statusDraft            = "draft_status"
	statusNotOpen          = "not_open"
)

// DetailFromStatus translates detailed_merge_status into the GitHub-shaped
// detail used by the mergeability resolver.
//
// Statuses GitLab is still computing leave the detail unresolved so the
// resolver polls again. Statuses that cannot be fixed without touching the
// branch map to not mergeable. Everything else (pipelines, approvals,
// discussions) is reported as blocked.
func DetailFromStatus(status string) mergeability.Detail {
	switch status {
	case statusMergeable:
		return detail(true, mergeability.StateClean)
	case "", statusChecking, statusUnchecked, statusPreparing, statusApprovalsSyncing:
		return mergeability.Detail{}
	case statusConflict, statusNeedRebase, statusBrokenStatus, statusDraft, statusNotOpen:
		return detail(false, status)
	default:
		return detail(false, mergeability.StateBlocked)
	}
}

func detail(mergeable bool, state string) mergeability.Detail {
	return mergeability.Detail{Mergeable: &mergeable, MergeableState: &state}
}
