package entity

import "dealfinder/internal/domain/value"

// RawListing is an unscored candidate item produced by a listing source.
type RawListing struct {
	Title         string
	Price         value.Price
	Location      string
	Condition     value.Condition
	Description   string
	ListedDaysAgo int
}
