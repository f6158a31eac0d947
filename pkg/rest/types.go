// Package rest holds the wire types of the deals API, mirrored in api/api.yaml.
package rest

// FindDealsRequest Search request
type FindDealsRequest struct {
	// Query What the caller is looking for, e.g. "iPhone 13"
	Query string `json:"query" validate:"required,max=200"`

	// Location Free text; listings fall back to their own area when empty
	Location string `json:"location" validate:"max=200"`

	// MaxPrice Decimal integer text; anything else means no ceiling
	MaxPrice string `json:"maxPrice" validate:"max=32"`
}

type FindDealsResponse struct {
	Deals []Deal `json:"deals"`
}

type Deal struct {
	Title     string `json:"title"`
	Price     string `json:"price"`
	Location  string `json:"location"`
	Condition string `json:"condition"`
	DealScore int    `json:"dealScore"`
	Reasoning string `json:"reasoning"`
	URL       string `json:"url"`
}

// Error Error model
type Error struct {
	// Code Error code
	Code ErrorCode `json:"code"`

	// Message Message for display in the UI
	Message string `json:"message"`

	// SupportID Trace id to quote when reporting a problem
	SupportID string `json:"supportId"`
}

// ErrorCode Error code
type ErrorCode string
