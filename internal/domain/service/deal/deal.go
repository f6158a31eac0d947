package deal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"dealfinder/internal/domain"
	"dealfinder/internal/domain/entity"
	"dealfinder/pkg/contextx"
	"dealfinder/pkg/errcodes"
	"dealfinder/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type ListingSource interface {
	Listings(ctx context.Context, query entity.SearchQuery) ([]entity.RawListing, error)
}

type Scorer interface {
	Score(ctx context.Context, listings []entity.RawListing) []entity.Deal
}

type Service struct {
	source  ListingSource
	scorer  Scorer
	metrics *Metrics
}

func NewService(source ListingSource, scorer Scorer) *Service {
	return &Service{
		source: source,
		scorer: scorer,
	}
}

func (s *Service) WithMetrics(metrics *Metrics) *Service {
	s.metrics = metrics
	return s
}

// FindDeals runs a search through the listing source and ranks what comes
// back. It either returns the full ranked list, possibly empty, or an error.
func (s *Service) FindDeals(ctx context.Context, query entity.SearchQuery) ([]entity.Deal, error) {
	if strings.TrimSpace(query.Query) == "" {
		s.metrics.searchDone(outcomeInvalid)
		return nil, domain.NewError(errcodes.InvalidSearchQuery, "Query is required")
	}

	listings, err := s.source.Listings(ctx, query)
	if err != nil {
		s.metrics.searchDone(outcomeSourceError)
		return nil, domain.WrapError(
			fmt.Errorf("source.Listings: %w", err),
			errcodes.DataSourceUnavailable,
			"Failed to find deals",
		)
	}

	deals := s.scorer.Score(ctx, listings)

	s.metrics.searchDone(outcomeOK)
	s.metrics.observe(listings, deals)

	logger(ctx).Info("deals found",
		slog.String(logx.FieldQuery, query.Query),
		slog.Int(logx.FieldListings, len(listings)),
		slog.Int(logx.FieldDeals, len(deals)),
	)

	return deals, nil
}
