package scoring

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/rs/xid"
	"github.com/samber/lo"

	"dealfinder/internal/domain/entity"
	"dealfinder/pkg/contextx"
	"dealfinder/pkg/logx"
)

const (
	BaseScore = 5
	MinScore  = 0
	MaxScore  = 10

	DefaultLimit       = 5
	DefaultItemBaseURL = "https://www.facebook.com/marketplace/item/"

	priceUnavailable = "Price unavailable - unable to compare with market value."
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Assessment is the outcome of running the rules over one listing.
type Assessment struct {
	Score     int
	Reasoning string
}

// Scorer turns a batch of raw listings into ranked deals. It keeps no state
// between calls.
type Scorer struct {
	rules  []Rule
	limit  int
	newURL func() string
}

func NewScorer() *Scorer {
	return &Scorer{
		rules:  DefaultRules(),
		limit:  DefaultLimit,
		newURL: ItemURL(DefaultItemBaseURL),
	}
}

func (s *Scorer) WithRules(rules ...Rule) *Scorer {
	s.rules = rules
	return s
}

func (s *Scorer) WithLimit(limit int) *Scorer {
	if limit > 0 {
		s.limit = limit
	}
	return s
}

func (s *Scorer) WithURLFactory(newURL func() string) *Scorer {
	s.newURL = newURL
	return s
}

// ItemURL mints detail URLs under baseURL with a fresh random identifier.
func ItemURL(baseURL string) func() string {
	return func() string {
		return baseURL + xid.New().String()
	}
}

// Score rates every listing against the batch average, then returns the best
// ones. Listings with equal scores keep their input order.
func (s *Scorer) Score(ctx context.Context, listings []entity.RawListing) []entity.Deal {
	if len(listings) == 0 {
		return []entity.Deal{}
	}

	market := MarketOf(listings)

	deals := lo.Map(listings, func(listing entity.RawListing, _ int) entity.Deal {
		if !listing.Price.Valid() {
			logger(ctx).Warn("listing has no usable price, scoring it neutral",
				slog.String(logx.FieldTitle, listing.Title),
				slog.Int64("price", int64(listing.Price)),
			)
		}

		assessment := s.Assess(listing, market)

		return entity.Deal{
			Title:     listing.Title,
			Price:     listing.Price,
			Location:  listing.Location,
			Condition: listing.Condition,
			DealScore: assessment.Score,
			Reasoning: assessment.Reasoning,
			URL:       s.newURL(),
		}
	})

	slices.SortStableFunc(deals, func(a, b entity.Deal) int {
		return cmp.Compare(b.DealScore, a.DealScore)
	})

	return lo.Slice(deals, 0, s.limit)
}

// Assess applies the rules to a single listing. A listing without a usable
// price gets the base score and nothing else.
func (s *Scorer) Assess(listing entity.RawListing, market Market) Assessment {
	if !listing.Price.Valid() {
		return Assessment{Score: BaseScore, Reasoning: priceUnavailable}
	}

	score := BaseScore
	reasons := make([]string, 0, len(s.rules))

	for _, rule := range s.rules {
		delta, reason := rule.Apply(listing, market)

		score += delta

		if reason != "" {
			reasons = append(reasons, reason)
		}
	}

	return Assessment{
		Score:     min(max(score, MinScore), MaxScore),
		Reasoning: strings.TrimSpace(strings.Join(reasons, " ")),
	}
}

// MarketOf averages the usable prices of the batch.
func MarketOf(listings []entity.RawListing) Market {
	priced := lo.Filter(listings, func(listing entity.RawListing, _ int) bool {
		return listing.Price.Valid()
	})

	if len(priced) == 0 {
		return Market{}
	}

	total := lo.SumBy(priced, func(listing entity.RawListing) float64 {
		return float64(listing.Price)
	})

	return Market{AveragePrice: total / float64(len(priced))}
}
