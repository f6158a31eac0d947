package server

import (
	"strings"

	"dealfinder/internal/domain/entity"
	"dealfinder/internal/domain/value"
	"dealfinder/pkg/lox"
	"dealfinder/pkg/rest"
)

// NewFindDealsResponse renders ranked deals in their wire form.
func NewFindDealsResponse(deals []entity.Deal) rest.FindDealsResponse {
	return rest.FindDealsResponse{
		Deals: lox.Map(deals, newRESTDeal),
	}
}

func newRESTDeal(deal entity.Deal) rest.Deal {
	return rest.Deal{
		Title:     deal.Title,
		Price:     deal.Price.String(),
		Location:  deal.Location,
		Condition: deal.Condition.String(),
		DealScore: deal.DealScore,
		Reasoning: deal.Reasoning,
		URL:       deal.URL,
	}
}

func newDomainSearchQuery(request rest.FindDealsRequest) entity.SearchQuery {
	return entity.SearchQuery{
		Query:    strings.TrimSpace(request.Query),
		Location: strings.TrimSpace(request.Location),
		MaxPrice: value.ParsePriceCeiling(request.MaxPrice),
	}
}
