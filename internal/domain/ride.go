package domain

// Provider names a ride-hailing app whose prices are compared.
type Provider string

const (
	ProviderUber   Provider = "Uber"
	ProviderCareem Provider = "Careem"
	ProviderBolt   Provider = "Bolt"
	ProviderJeeny  Provider = "Jeeny"
)

// CanonicalProviders is the order in which stored ride prices are compared.
// Cheapest breaks ties in favour of the earlier entry.
var CanonicalProviders = []Provider{ProviderUber, ProviderCareem, ProviderBolt, ProviderJeeny}

// Ride is one stored price-comparison snapshot across all four providers.
// Rides are immutable once created; prices default to zero.
type Ride struct {
	ID          int64
	StartPoint  string
	Destination string
	PriceUber   float64
	PriceCareem float64
	PriceBolt   float64
	PriceJeeny  float64
	DistanceKm  float64
}

// ProviderPrice pairs a provider with a single price.
type ProviderPrice struct {
	Provider Provider
	Price    float64
}

// Prices returns the ride's four prices in CanonicalProviders order.
func (r Ride) Prices() []ProviderPrice {
	return []ProviderPrice{
		{Provider: ProviderUber, Price: r.PriceUber},
		{Provider: ProviderCareem, Price: r.PriceCareem},
		{Provider: ProviderBolt, Price: r.PriceBolt},
		{Provider: ProviderJeeny, Price: r.PriceJeeny},
	}
}

// Cheapest returns the entry with the strictly lowest price.
// On ties the first entry encountered wins, so the result depends on the order
// of prices. The boolean is false when prices is empty.
func Cheapest(prices []ProviderPrice) (ProviderPrice, bool) {
	if len(prices) == 0 {
		return ProviderPrice{}, false
	}
	best := prices[0]
	for _, p := range prices[1:] {
		if p.Price < best.Price {
			best = p
		}
	}
	return best, true
}
