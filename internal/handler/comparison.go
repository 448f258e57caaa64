package handler

import (
	"net/http"

	"github.com/ridesmart/backend/internal/domain"
)

type saveRideAndTripRequest struct {
	UserID      flexibleInt64 `json:"user_id" validate:"required"`
	StartPoint  string        `json:"start_point" validate:"required"`
	Destination string        `json:"destination" validate:"required"`
	PriceUber   float64       `json:"price_uber"`
	PriceCareem float64       `json:"price_careem"`
	PriceBolt   float64       `json:"price_bolt"`
	PriceJeeny  float64       `json:"price_jeeny"`
	DistanceKm  float64       `json:"distance_km"`
	Date        string        `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string        `json:"time" validate:"required,datetime=15:04"`
}

type saveRideAndTripResponse struct {
	Message string `json:"message"`
	RideID  int64  `json:"ride_id"`
	TripID  int64  `json:"trip_id"`
}

type comparisonResponse struct {
	Destination string  `json:"destination"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	App         string  `json:"app"`
	Price       float64 `json:"price"`
}

// SaveRideAndTrip handles POST /save_ride_and_trip.
// The ride snapshot and the trip are written atomically.
func (s *Server) SaveRideAndTrip(w http.ResponseWriter, r *http.Request) {
	var req saveRideAndTripRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	ride := domain.Ride{
		StartPoint:  req.StartPoint,
		Destination: req.Destination,
		PriceUber:   req.PriceUber,
		PriceCareem: req.PriceCareem,
		PriceBolt:   req.PriceBolt,
		PriceJeeny:  req.PriceJeeny,
		DistanceKm:  req.DistanceKm,
	}
	trip := domain.Trip{UserID: int64(req.UserID), Date: req.Date, Time: req.Time}

	savedRide, savedTrip, err := s.comparisons.SaveRideAndTrip(r.Context(), ride, trip)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, saveRideAndTripResponse{
		Message: "Ride and trip saved successfully",
		RideID:  savedRide.ID,
		TripID:  savedTrip.ID,
	})
}

// PastComparisons handles GET /past_comparisons/{user_id}.
// By default it returns the most recent trips only; ?all=true returns the
// full history. An unknown user simply has no history.
func (s *Server) PastComparisons(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	var all *bool
	if err := queryParam(r, "all", &all); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	var comparisons []domain.Comparison
	if all != nil && *all {
		comparisons, err = s.comparisons.History(r.Context(), userID)
	} else {
		comparisons, err = s.comparisons.Recent(r.Context(), userID)
	}
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	out := make([]comparisonResponse, 0, len(comparisons))
	for _, c := range comparisons {
		out = append(out, comparisonResponse{
			Destination: c.Destination,
			Date:        c.Date,
			Time:        c.Time,
			App:         string(c.Provider),
			Price:       c.Price,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
