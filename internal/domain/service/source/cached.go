package source

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"dealfinder/internal/domain/entity"
)

type ListingSource interface {
	Listings(ctx context.Context, query entity.SearchQuery) ([]entity.RawListing, error)
}

// Cached remembers what the wrapped source returned for a search for a while,
// so identical searches inside the window see the same candidates.
type Cached struct {
	next  ListingSource
	cache *cache.Cache
}

func NewCached(next ListingSource, ttl, cleanupInterval time.Duration) *Cached {
	return &Cached{
		next:  next,
		cache: cache.New(ttl, cleanupInterval),
	}
}

func (c *Cached) Listings(ctx context.Context, query entity.SearchQuery) ([]entity.RawListing, error) {
	key := cacheKey(query)

	if cached, found := c.cache.Get(key); found {
		if listings, ok := cached.([]entity.RawListing); ok {
			logger(ctx).Debug("listings served from cache", "key", key)
			return slices.Clone(listings), nil
		}
	}

	listings, err := c.next.Listings(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("next.Listings: %w", err)
	}

	c.cache.Set(key, slices.Clone(listings), cache.DefaultExpiration)

	return listings, nil
}

// Len reports how many searches are currently cached.
func (c *Cached) Len() int {
	return c.cache.ItemCount()
}

// cacheKey keeps the case of query and location: cached titles and locations
// are built from them verbatim.
func cacheKey(query entity.SearchQuery) string {
	return strings.Join([]string{
		strings.TrimSpace(query.Query),
		strings.TrimSpace(query.Location),
		query.MaxPrice.String(),
	}, "|")
}
