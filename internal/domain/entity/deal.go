package entity

import "dealfinder/internal/domain/value"

// Deal is a listing after scoring: what the caller gets back.
type Deal struct {
	Title     string
	Price     value.Price
	Location  string
	Condition value.Condition

	// DealScore is in [0, 10], higher is better.
	DealScore int
	Reasoning string

	// URL points at the listing details. It is synthesized per request and
	// carries no identity between requests.
	URL string
}
