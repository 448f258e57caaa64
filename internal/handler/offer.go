package handler

import (
	"net/http"

	"github.com/ridesmart/backend/internal/domain"
)

type createOfferRequest struct {
	Company     string `json:"company" validate:"required"`
	Description string `json:"offer_description" validate:"required"`
}

type offerResponse struct {
	Number      int64  `json:"number"`
	Company     string `json:"company"`
	Description string `json:"offer_description"`
}

type pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type listOffersResponse struct {
	Data       []offerResponse `json:"data"`
	Pagination pagination      `json:"pagination"`
}

// ListOffers handles GET /offers.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListOffers(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	if err := queryParam(r, "page", &page); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if err := queryParam(r, "limit", &limit); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	params := domain.NewPaginationParams(page, limit)
	offers, total, err := s.offers.List(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	data := make([]offerResponse, len(offers))
	for i, o := range offers {
		data[i] = offerToResponse(o)
	}
	writeJSON(w, http.StatusOK, listOffersResponse{
		Data:       data,
		Pagination: pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// CreateOffer handles POST /offers.
func (s *Server) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var req createOfferRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	created, err := s.offers.Create(r.Context(), domain.Offer{Company: req.Company, Description: req.Description})
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, offerToResponse(created))
}

func offerToResponse(o domain.Offer) offerResponse {
	return offerResponse{Number: o.Number, Company: o.Company, Description: o.Description}
}
