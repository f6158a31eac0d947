package server

import (
	"context"
	"fmt"
	"net/http"

	"dealfinder/internal/domain/entity"
	"dealfinder/pkg/httpx/reply"
	"dealfinder/pkg/httpx/req"
	"dealfinder/pkg/rest"
)

type dealService interface {
	FindDeals(ctx context.Context, query entity.SearchQuery) ([]entity.Deal, error)
}

type DealServer struct {
	dealService dealService
}

func NewDealServer(dealService dealService) DealServer {
	return DealServer{
		dealService: dealService,
	}
}

func (s DealServer) postFindDeals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.FindDealsRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	deals, err := s.dealService.FindDeals(ctx, newDomainSearchQuery(request))
	if err != nil {
		return fmt.Errorf("dealService.FindDeals: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, NewFindDealsResponse(deals))

	return nil
}
