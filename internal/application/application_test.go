package application_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"dealfinder/internal/application"
	"dealfinder/internal/config"
	"dealfinder/internal/domain/entity"
	"dealfinder/internal/domain/value"
)

func testConfig() config.Config {
	return config.Config{
		HTTP: config.HTTP{
			LogFieldMaxLen:    1024,
			MaskSensitiveData: true,
		},
		Source: config.Source{
			Seed:                 7,
			CacheCleanupInterval: time.Minute,
		},
		Scoring: config.Scoring{
			Limit:       3,
			ItemBaseURL: "https://market.test/item/",
		},
	}
}

func prices(deals []entity.Deal) []value.Price {
	return lo.Map(deals, func(d entity.Deal, _ int) value.Price { return d.Price })
}

func TestNewDealService(t *testing.T) {
	ctx := context.Background()
	query := entity.SearchQuery{Query: "camera"}

	t.Run("limit and item urls", func(t *testing.T) {
		rq := require.New(t)

		deals, err := application.NewDealService(testConfig(), nil).FindDeals(ctx, query)
		rq.NoError(err)
		rq.Len(deals, 3)

		for _, d := range deals {
			rq.True(strings.HasPrefix(d.URL, "https://market.test/item/"))
		}
	})

	t.Run("same seed gives same prices", func(t *testing.T) {
		rq := require.New(t)

		first, err := application.NewDealService(testConfig(), nil).FindDeals(ctx, query)
		rq.NoError(err)

		second, err := application.NewDealService(testConfig(), nil).FindDeals(ctx, query)
		rq.NoError(err)

		rq.Equal(prices(first), prices(second))
	})

	t.Run("cache repeats listings", func(t *testing.T) {
		rq := require.New(t)

		cfg := testConfig()
		cfg.Source.CacheTTL = time.Minute
		svc := application.NewDealService(cfg, nil)

		first, err := svc.FindDeals(ctx, query)
		rq.NoError(err)

		second, err := svc.FindDeals(ctx, entity.SearchQuery{Query: "  camera "})
		rq.NoError(err)

		rq.Equal(prices(first), prices(second))
	})
}

func TestNewHandler(t *testing.T) {
	rq := require.New(t)

	cfg := testConfig()

	handler, err := application.NewHandler(cfg, application.NewDealService(cfg, nil))
	rq.NoError(err)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/find-deals",
		strings.NewReader(`{"query":"camera"}`)))

	rq.Equal(http.StatusOK, w.Code)
	rq.NotEmpty(w.Header().Get("X-Trace-Id"))
	rq.Contains(w.Body.String(), `"deals":[`)
}
