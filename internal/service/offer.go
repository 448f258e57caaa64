package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ridesmart/backend/internal/domain"
	"github.com/ridesmart/backend/internal/repo"
)

// OfferService manages promotional offers.
type OfferService struct {
	offers repo.OfferRepo
}

// NewOfferService constructs an OfferService backed by the provided OfferRepo.
func NewOfferService(r repo.OfferRepo) *OfferService {
	return &OfferService{offers: r}
}

// Create validates and persists a new offer.
func (s *OfferService) Create(ctx context.Context, offer domain.Offer) (domain.Offer, error) {
	offer.Company = strings.TrimSpace(offer.Company)
	offer.Description = strings.TrimSpace(offer.Description)
	if offer.Company == "" {
		return domain.Offer{}, fmt.Errorf("%w: company is required", domain.ErrValidation)
	}
	if offer.Description == "" {
		return domain.Offer{}, fmt.Errorf("%w: offer_description is required", domain.ErrValidation)
	}

	created, err := s.offers.Create(ctx, offer)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("service.OfferService.Create: %w", err)
	}
	return created, nil
}

// List returns one page of offers and the total count.
func (s *OfferService) List(ctx context.Context, p domain.PaginationParams) ([]domain.Offer, int64, error) {
	offers, total, err := s.offers.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.OfferService.List: %w", err)
	}
	return offers, total, nil
}
