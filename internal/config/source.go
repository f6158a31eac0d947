package config

import "time"

type Source struct {
	// Seed fixes generated prices; zero keeps them random.
	Seed uint64 `env:"SOURCE_SEED" envDefault:"0"`
	// CacheTTL of zero disables the search cache.
	CacheTTL             time.Duration `env:"SOURCE_CACHE_TTL" envDefault:"0s"`
	CacheCleanupInterval time.Duration `env:"SOURCE_CACHE_CLEANUP_INTERVAL" envDefault:"10m"`
}

type Scoring struct {
	Limit       int    `env:"SCORING_LIMIT" envDefault:"5"`
	ItemBaseURL string `env:"SCORING_ITEM_BASE_URL" envDefault:"https://www.facebook.com/marketplace/item/"`
}
