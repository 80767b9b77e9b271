package match

import "time"

// SearchMonitor receives pipeline stage notifications during a search.
// Implementations must be cheap; callbacks run inline on the search path.
type SearchMonitor interface {
	// QueryEmbedded is called after the query vector is generated.
	QueryEmbedded(elapsed time.Duration)

	// CandidatesFound is called with the raw similarity hit count.
	CandidatesFound(count int)

	// CandidatesFiltered is called after visibility filtering.
	CandidatesFiltered(before, after int)

	// ResultsRanked is called with the final result count. degraded is true
	// when re-ranking failed and results carry similarity order only.
	ResultsRanked(count int, degraded bool)
}

// noopMonitor discards all notifications.
type noopMonitor struct{}

func (noopMonitor) QueryEmbedded(time.Duration) {}
func (noopMonitor) CandidatesFound(int)         {}
func (noopMonitor) CandidatesFiltered(int, int) {}
func (noopMonitor) ResultsRanked(int, bool)     {}
