package mocks

import (
	"context"

	"github.com/sgaunet/pr-report/pkg/mergeability"
)

// DetailResponse is one scripted answer of a [DetailFetcher].
type DetailResponse struct {
	Detail mergeability.Detail
	Err    error
}

// DetailFetcher is a mock implementation of mergeability.Fetcher that replays
// scripted responses in order. The last response repeats once the script is
// exhausted.
type DetailFetcher struct {
	callTracker

	responses []DetailResponse
	next      int
}

// NewDetailFetcher creates a fetcher replaying responses.
func NewDetailFetcher(responses ...DetailResponse) *DetailFetcher {
	return &DetailFetcher{responses: responses}
}

// FetchDetail implements mergeability.Fetcher.
func (m *DetailFetcher) FetchDetail(_ context.Context, ref mergeability.Ref) (mergeability.Detail, error) {
	m.trackCall("FetchDetail", map[string]any{"ref": ref})

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.responses) == 0 {
		return mergeability.Detail{}, nil
	}
	r := m.responses[min(m.next, len(m.responses)-1)]
	m.next++
	return r.Detail, r.Err
}

// Ensure DetailFetcher implements mergeability.Fetcher interface.
var _ mergeability.Fetcher = (*DetailFetcher)(nil)
