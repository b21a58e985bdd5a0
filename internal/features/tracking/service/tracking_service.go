package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mm6683/Bpost-Tracker/internal/core/logger"
	"github.com/mm6683/Bpost-Tracker/internal/core/metrics"
	"github.com/mm6683/Bpost-Tracker/internal/features/tracking/domain"
	"github.com/mm6683/Bpost-Tracker/internal/features/tracking/ports"
)

// TrackingService resolves parcel summaries for the page and card renderers.
// Its contract is that rendering never fails because of the upstream: any
// lookup problem degrades to the default summary.
type TrackingService struct {
	provider ports.SummaryProvider
	logger   *zap.Logger
}

// NewTrackingService creates a service backed by the given provider.
func NewTrackingService(provider ports.SummaryProvider) *TrackingService {
	return &TrackingService{
		provider: provider,
		logger:   logger.Get(),
	}
}

// Summary returns the live summary for the query, or the default summary
// when the lookup fails for any reason. The failure is logged and counted,
// never propagated.
func (s *TrackingService) Summary(ctx context.Context, query domain.TrackingQuery) *domain.TrackingSummary {
	summary, err := s.provider.FetchSummary(ctx, query)
	if err != nil {
		s.logger.Warn("Tracking lookup degraded to default summary",
			zap.String("item_identifier", query.ItemIdentifier),
			zap.Error(err),
		)
		metrics.UpstreamLookupsTotal.WithLabelValues(metrics.ResultDegraded).Inc()
		return domain.DefaultSummary()
	}

	metrics.UpstreamLookupsTotal.WithLabelValues(metrics.ResultOK).Inc()
	return summary
}
