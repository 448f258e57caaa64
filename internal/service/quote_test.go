package service_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridesmart/backend/internal/domain"
	"github.com/ridesmart/backend/internal/service"
)

// fixedRates returns the given rates in order, cycling when exhausted.
type fixedRates struct {
	rates []float64
	next  int
}

func (f *fixedRates) Float64Range(_, _ float64) float64 {
	r := f.rates[f.next%len(f.rates)]
	f.next++
	return r
}

func TestQuoteService_Quotes_EveryProviderOnce(t *testing.T) {
	svc := service.NewQuoteService(gofakeit.New(42))

	for _, distance := range []float64{0, 0.5, 1, 12.5, 300} {
		quotes := svc.Quotes(distance, "7")

		require.Len(t, quotes, 4)
		seen := map[domain.Provider]int{}
		for _, q := range quotes {
			seen[q.Provider]++
			assert.Equal(t, "7", q.UserID)
			if distance > 0 {
				rate := q.Amount / distance
				assert.GreaterOrEqual(t, rate, service.MinRate, "provider %s", q.Provider)
				assert.LessOrEqual(t, rate, service.MaxRate, "provider %s", q.Provider)
			}
		}
		for _, p := range domain.CanonicalProviders {
			assert.Equal(t, 1, seen[p], "provider %s should appear exactly once", p)
		}
	}
}

func TestQuoteService_Quotes_Order(t *testing.T) {
	svc := service.NewQuoteService(&fixedRates{rates: []float64{3}})

	quotes := svc.Quotes(10, "u")

	var got []domain.Provider
	for _, q := range quotes {
		got = append(got, q.Provider)
	}
	assert.Equal(t, []domain.Provider{
		domain.ProviderUber, domain.ProviderBolt, domain.ProviderJeeny, domain.ProviderCareem,
	}, got)
}

func TestQuoteService_Quotes_ZeroDistance(t *testing.T) {
	svc := service.NewQuoteService(gofakeit.New(1))

	for _, q := range svc.Quotes(0, "u") {
		assert.Equal(t, "0.00 SAR", q.FormattedPrice())
	}
}

func TestQuoteService_Quotes_AmountIsDistanceTimesRate(t *testing.T) {
	svc := service.NewQuoteService(&fixedRates{rates: []float64{3.0, 4.0, 4.5, 5.0}})

	quotes := svc.Quotes(10, "u")

	assert.Equal(t, "30.00 SAR", quotes[0].FormattedPrice()) // Uber
	assert.Equal(t, "40.00 SAR", quotes[1].FormattedPrice()) // Bolt
	assert.Equal(t, "45.00 SAR", quotes[2].FormattedPrice()) // Jeeny
	assert.Equal(t, "50.00 SAR", quotes[3].FormattedPrice()) // Careem
}

func TestQuoteService_Quotes_NegativeDistanceNotRejected(t *testing.T) {
	svc := service.NewQuoteService(&fixedRates{rates: []float64{4}})

	quotes := svc.Quotes(-2, "u")

	require.Len(t, quotes, 4)
	assert.Equal(t, "-8.00 SAR", quotes[0].FormattedPrice())
}

func TestQuoteService_Compare_PicksCheapest(t *testing.T) {
	// Generation order: Uber, Bolt, Jeeny, Careem.
	svc := service.NewQuoteService(&fixedRates{rates: []float64{4.0, 4.5, 3.2, 3.9}})

	got := svc.Compare(10, "u")

	require.Len(t, got.Quotes, 4)
	assert.Equal(t, domain.ProviderJeeny, got.Cheapest.Provider)
	assert.InDelta(t, 32.0, got.Cheapest.Amount, 1e-9)
}

func TestQuoteService_Compare_TieUsesCanonicalOrder(t *testing.T) {
	// Bolt is generated before Careem, but Careem precedes Bolt canonically.
	svc := service.NewQuoteService(&fixedRates{rates: []float64{5.0, 3.0, 5.0, 3.0}})

	got := svc.Compare(10, "u")

	assert.Equal(t, domain.ProviderCareem, got.Cheapest.Provider)
}
