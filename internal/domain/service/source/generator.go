package source

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/samber/lo"

	"dealfinder/internal/domain/entity"
	"dealfinder/internal/domain/value"
	"dealfinder/pkg/contextx"
	"dealfinder/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// template describes one synthetic listing. The rotation covers every branch
// of the deal scorer: like new and very good items, motivated sellers, boxed
// extras, fresh and stale listings.
type template struct {
	titleFormat   string
	minPrice      value.Price
	priceSpan     int
	location      string
	condition     value.Condition
	description   string
	listedDaysAgo int
}

//nolint:gochecknoglobals,mnd
var templates = []template{
	{
		titleFormat:   "%s - Excellent Condition",
		minPrice:      100,
		priceSpan:     500,
		location:      "San Francisco, CA",
		condition:     value.ConditionLikeNew,
		description:   "Barely used, no scratches, comes with original box and accessories",
		listedDaysAgo: 2,
	},
	{
		titleFormat:   "%s - Great Deal!",
		minPrice:      50,
		priceSpan:     300,
		location:      "Oakland, CA",
		condition:     value.ConditionGood,
		description:   "Works perfectly, minor cosmetic wear, great price",
		listedDaysAgo: 1,
	},
	{
		titleFormat:   "%s Bundle - Must Sell",
		minPrice:      150,
		priceSpan:     400,
		location:      "Berkeley, CA",
		condition:     value.ConditionVeryGood,
		description:   "Moving sale, includes extras, quick pickup needed",
		listedDaysAgo: 5,
	},
	{
		titleFormat:   "Premium %s",
		minPrice:      200,
		priceSpan:     600,
		location:      "San Jose, CA",
		condition:     value.ConditionExcellent,
		description:   "Top condition, well maintained, all original parts",
		listedDaysAgo: 7,
	},
	{
		titleFormat:   "%s - Price Reduced!",
		minPrice:      75,
		priceSpan:     250,
		location:      "Palo Alto, CA",
		condition:     value.ConditionFair,
		description:   "Some wear and tear, fully functional, motivated seller",
		listedDaysAgo: 10,
	},
}

func (t template) listing(query entity.SearchQuery, offset int) entity.RawListing {
	return entity.RawListing{
		Title:         fmt.Sprintf(t.titleFormat, query.Query),
		Price:         t.minPrice + value.Price(offset),
		Location:      lo.CoalesceOrEmpty(query.Location, t.location),
		Condition:     t.condition,
		Description:   t.description,
		ListedDaysAgo: t.listedDaysAgo,
	}
}

// Generator is the synthetic listing source. It does no I/O; the only thing
// it consumes is randomness.
type Generator struct {
	intN func(n int) int
}

func NewGenerator() *Generator {
	return &Generator{
		intN: rand.IntN,
	}
}

// WithSeed makes prices reproducible across runs.
func (g *Generator) WithSeed(seed uint64) *Generator {
	seeded := &lockedRand{r: rand.New(rand.NewPCG(seed, seed))} //nolint:gosec // not for crypto
	g.intN = seeded.IntN

	return g
}

// WithRandom replaces the random source. intN must return a value in [0, n).
func (g *Generator) WithRandom(intN func(n int) int) *Generator {
	g.intN = intN
	return g
}

// Listings returns one candidate per template, dropping the ones priced over
// the query's ceiling.
func (g *Generator) Listings(ctx context.Context, query entity.SearchQuery) ([]entity.RawListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generate listings: %w", err)
	}

	candidates := lo.Map(templates, func(t template, _ int) entity.RawListing {
		return t.listing(query, g.intN(t.priceSpan))
	})

	listings := lo.Filter(candidates, func(l entity.RawListing, _ int) bool {
		return query.MaxPrice.Allows(l.Price)
	})

	logger(ctx).Debug("listings generated",
		slog.String(logx.FieldQuery, query.Query),
		slog.String(logx.FieldMaxPrice, query.MaxPrice.String()),
		slog.Int("candidates", len(candidates)),
		slog.Int(logx.FieldListings, len(listings)),
	)

	return listings, nil
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.r.IntN(n)
}
