package domain

import "fmt"

// Currency is appended to every formatted price.
const Currency = "SAR"

// Quote is a synthetic price estimate from one provider for a requested distance.
// UserID is opaque and echoed back to the caller unchanged.
type Quote struct {
	Provider Provider
	Amount   float64
	UserID   string
}

// FormattedPrice renders the amount with two decimals and the currency suffix,
// e.g. "42.17 SAR".
func (q Quote) FormattedPrice() string {
	return fmt.Sprintf("%.2f %s", q.Amount, Currency)
}

// QuoteComparison is the result of a live quote request: one quote per provider
// plus the cheapest of them.
type QuoteComparison struct {
	Quotes   []Quote
	Cheapest Quote
}
