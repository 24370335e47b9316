// Package mergeability resolves whether an open pull request is ready to merge
// on platforms that compute mergeability asynchronously.
//
// Such platforms answer "not computed yet" right after a push, so the detail
// endpoint is polled a bounded number of times until both signals are present.
// Running out of attempts is not an error: the pull request is labelled
// [report.Unknown] and processing continues.
package mergeability

import (
	"context"
	"fmt"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/pr-report/internal/logger"
	"github.com/sgaunet/pr-report/internal/retry"
	"github.com/sgaunet/pr-report/pkg/report"
)

// Platform mergeable_state values with a dedicated mapping.
const (
	StateClean   = "clean"
	StateBlocked = "blocked"
)

// Ref identifies a pull request on its platform.
type Ref struct {
	Owner  string
	Repo   string
	Number int64
}

// String returns owner/repo#number.
func (r Ref) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// Detail carries the two platform signals. A nil field means the platform has
// not computed it yet.
type Detail struct {
	Mergeable      *bool
	MergeableState *string
}

// Resolved reports whether both signals are known.
func (d Detail) Resolved() bool {
	return d.Mergeable != nil && d.MergeableState != nil
}

// Fetcher retrieves the current mergeability detail of one pull request.
type Fetcher interface {
	FetchDetail(ctx context.Context, ref Ref) (Detail, error)
}

// Map converts resolved signals into a readiness label. Rules apply in order:
// mergeable and clean is Yes, a blocked state is Blocked, anything else is No.
func Map(mergeable bool, state string) report.Readiness {
	switch {
	case mergeable && state == StateClean:
		return report.Yes
	case state == StateBlocked:
		return report.Blocked
	default:
		return report.No
	}
}

// Resolver polls a Fetcher until the detail is resolved or the policy budget
// is spent.
type Resolver struct {
	fetcher Fetcher
	policy  retry.Policy
	log     *bullets.Logger
}

// NewResolver creates a resolver. Use retry.DefaultPolicy for 3 polls spaced
// by 2 seconds.
func NewResolver(fetcher Fetcher, policy retry.Policy) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		policy:  policy,
		log:     logger.NoLogger(),
	}
}

// SetLogger sets the logger for the resolver.
func (r *Resolver) SetLogger(log *bullets.Logger) {
	r.log = log
}

// Resolve returns the readiness label of ref. It never fails: fetch errors
// count as unresolved attempts and an exhausted budget yields report.Unknown.
func (r *Resolver) Resolve(ctx context.Context, ref Ref) report.Readiness {
	var detail Detail

	resolved := retry.Poll(ctx, r.policy, func(ctx context.Context, attempt int) bool {
		d, err := r.fetcher.FetchDetail(ctx, ref)
		if err != nil {
			r.log.Debug(fmt.Sprintf("Mergeability of %s, attempt %d failed: %v", ref, attempt, err))
			return false
		}
		if !d.Resolved() {
			r.log.Debug(fmt.Sprintf("Mergeability of %s not computed yet (attempt %d)", ref, attempt))
			return false
		}
		detail = d
		return true
	})

	if !resolved {
		r.log.Debug(fmt.Sprintf("Mergeability of %s unresolved, using %s", ref, report.Unknown))
		return report.Unknown
	}

	return Map(*detail.Mergeable, *detail.MergeableState)
}
