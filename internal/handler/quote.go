package handler

import (
	"net/http"

	"github.com/ridesmart/backend/internal/domain"
)

type getPricesRequest struct {
	UserID   flexibleID    `json:"user_id" validate:"required"`
	Distance flexibleFloat `json:"distance"`
}

type quoteResponse struct {
	App    string `json:"app"`
	Price  string `json:"price"`
	UserID string `json:"user_id"`
}

type getPricesResponse struct {
	Results  []quoteResponse `json:"results"`
	Cheapest quoteResponse   `json:"cheapest"`
}

// GetPrices handles POST /get_prices.
// It returns one synthetic quote per provider plus the cheapest of them.
func (s *Server) GetPrices(w http.ResponseWriter, r *http.Request) {
	var req getPricesRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	cmp := s.quotes.Compare(float64(req.Distance), string(req.UserID))

	resp := getPricesResponse{
		Results:  make([]quoteResponse, 0, len(cmp.Quotes)),
		Cheapest: quoteToResponse(cmp.Cheapest),
	}
	for _, q := range cmp.Quotes {
		resp.Results = append(resp.Results, quoteToResponse(q))
	}
	writeJSON(w, http.StatusOK, resp)
}

func quoteToResponse(q domain.Quote) quoteResponse {
	return quoteResponse{App: string(q.Provider), Price: q.FormattedPrice(), UserID: q.UserID}
}
