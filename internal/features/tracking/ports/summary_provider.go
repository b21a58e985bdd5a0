package ports

import (
	"context"

	"github.com/mm6683/Bpost-Tracker/internal/features/tracking/domain"
)

// SummaryProvider defines the interface for sources that can resolve a
// tracking query into a parcel summary.
type SummaryProvider interface {
	// FetchSummary retrieves the summary for the given query. Implementations
	// return an error when the upstream is unreachable, answers with a
	// non-200 status, or the payload cannot be interpreted.
	FetchSummary(ctx context.Context, query domain.TrackingQuery) (*domain.TrackingSummary, error)
}
