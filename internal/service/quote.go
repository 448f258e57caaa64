// Package service contains the business logic for the RideSmart API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"sync"

	"github.com/ridesmart/backend/internal/domain"
)

// Per-kilometre rate bounds, in SAR, for synthetic quotes.
const (
	MinRate = 3.0
	MaxRate = 5.0
)

// quoteOrder is the order quotes are generated and returned in.
var quoteOrder = []domain.Provider{
	domain.ProviderUber,
	domain.ProviderBolt,
	domain.ProviderJeeny,
	domain.ProviderCareem,
}

// RateSource draws a number uniformly from [min, max).
// *gofakeit.Faker satisfies it.
type RateSource interface {
	Float64Range(min, max float64) float64
}

// QuoteService produces synthetic per-provider price quotes.
// It holds no state besides the random source, which is not safe for
// concurrent use and is therefore guarded by mu.
type QuoteService struct {
	mu    sync.Mutex
	rates RateSource
}

// NewQuoteService constructs a QuoteService drawing rates from rates.
func NewQuoteService(rates RateSource) *QuoteService {
	return &QuoteService{rates: rates}
}

// Quotes returns one quote per provider for the given distance. Each provider
// gets an independently drawn rate in [MinRate, MaxRate].
// Negative distances are not rejected; callers enforce their own bounds.
func (s *QuoteService) Quotes(distance float64, userID string) []domain.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()

	quotes := make([]domain.Quote, 0, len(quoteOrder))
	for _, p := range quoteOrder {
		rate := s.rates.Float64Range(MinRate, MaxRate)
		quotes = append(quotes, domain.Quote{
			Provider: p,
			Amount:   distance * rate,
			UserID:   userID,
		})
	}
	return quotes
}

// Compare returns fresh quotes together with the cheapest of them.
// Ties are broken by domain.CanonicalProviders order, the same rule used for
// stored rides.
func (s *QuoteService) Compare(distance float64, userID string) domain.QuoteComparison {
	quotes := s.Quotes(distance, userID)

	byProvider := make(map[domain.Provider]domain.Quote, len(quotes))
	for _, q := range quotes {
		byProvider[q.Provider] = q
	}

	prices := make([]domain.ProviderPrice, 0, len(quotes))
	for _, p := range domain.CanonicalProviders {
		if q, ok := byProvider[p]; ok {
			prices = append(prices, domain.ProviderPrice{Provider: p, Price: q.Amount})
		}
	}

	best, _ := domain.Cheapest(prices)
	return domain.QuoteComparison{Quotes: quotes, Cheapest: byProvider[best.Provider]}
}
