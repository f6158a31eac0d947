package entity

import "dealfinder/internal/domain/value"

type SearchQuery struct {
	Query    string
	Location string
	MaxPrice value.PriceCeiling
}
