// Command finddeals runs one search against the built-in listing generator and
// prints the ranked deals as JSON, the same body the HTTP API returns.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	jsoniter "github.com/json-iterator/go"

	"dealfinder/internal/application"
	"dealfinder/internal/config"
	"dealfinder/internal/domain/entity"
	"dealfinder/internal/domain/value"
	"dealfinder/internal/server"
	"dealfinder/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func main() {
	query := flag.String("query", "", "product to search for (required)")
	location := flag.String("location", "", "override the listing location")
	maxPrice := flag.String("max-price", "", "skip listings above this price")
	seed := flag.Uint64("seed", 0, "fix generated prices; 0 keeps them random")
	flag.Parse()

	log := logx.NewLogger(os.Stderr, slog.LevelWarn)
	slog.SetDefault(log)

	if strings.TrimSpace(*query) == "" {
		flag.Usage()
		os.Exit(2) //nolint:mnd
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Error("config.Load", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	if *seed != 0 {
		cfg.Source.Seed = *seed
	}

	deals, err := application.NewDealService(cfg, nil).FindDeals(ctx, entity.SearchQuery{
		Query:    strings.TrimSpace(*query),
		Location: strings.TrimSpace(*location),
		MaxPrice: value.ParsePriceCeiling(*maxPrice),
	})
	if err != nil {
		log.Error("FindDeals", logx.Error(err))
		os.Exit(1)
	}

	response := server.NewFindDealsResponse(deals)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(response); err != nil {
		log.Error("json.Encode", logx.Error(err))
		os.Exit(1)
	}
}
