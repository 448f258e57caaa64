// Package handler implements the HTTP handlers for the RideSmart API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, quote.go, user.go, ...) but share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ridesmart/backend/api"
	"github.com/ridesmart/backend/internal/domain"
	"github.com/ridesmart/backend/internal/service"
)

// The interfaces below are defined in the consumer package so handler tests
// can inject a mock without touching the database or service layer.

// QuoteServicer produces live price comparisons.
type QuoteServicer interface {
	Compare(distance float64, userID string) domain.QuoteComparison
}

// ComparisonServicer saves rides with their trip and reads trip history.
type ComparisonServicer interface {
	SaveRideAndTrip(ctx context.Context, ride domain.Ride, trip domain.Trip) (domain.Ride, domain.Trip, error)
	Recent(ctx context.Context, userID int64) ([]domain.Comparison, error)
	History(ctx context.Context, userID int64) ([]domain.Comparison, error)
}

// UserServicer covers registration, login and profile management.
type UserServicer interface {
	Register(ctx context.Context, reg service.Registration) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
}

// OfferServicer manages promotional offers.
type OfferServicer interface {
	Create(ctx context.Context, offer domain.Offer) (domain.Offer, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Offer, int64, error)
}

// Server holds the dependencies of every endpoint.
type Server struct {
	quotes      QuoteServicer
	comparisons ComparisonServicer
	users       UserServicer
	offers      OfferServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(quotes QuoteServicer, comparisons ComparisonServicer, users UserServicer, offers OfferServicer) *Server {
	return &Server{quotes: quotes, comparisons: comparisons, users: users, offers: offers}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}

// Handler returns a chi router with every API route registered.
// Mount it under "/" in main.go after the global middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Post("/get_prices", s.GetPrices)

	r.Post("/register", s.Register)
	r.Post("/login", s.Login)
	r.Get("/user/{id}", s.GetUser)
	r.Put("/user/{id}", s.UpdateUser)

	r.Post("/save_ride_and_trip", s.SaveRideAndTrip)
	r.Get("/past_comparisons/{user_id}", s.PastComparisons)

	r.Get("/offers", s.ListOffers)
	r.Post("/offers", s.CreateOffer)

	return r
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(api.OpenAPI)
}
