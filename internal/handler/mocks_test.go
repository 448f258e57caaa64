package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ridesmart/backend/internal/domain"
	"github.com/ridesmart/backend/internal/handler"
	"github.com/ridesmart/backend/internal/service"
)

type mockQuoteServicer struct {
	compare func(distance float64, userID string) domain.QuoteComparison
}

func (m *mockQuoteServicer) Compare(distance float64, userID string) domain.QuoteComparison {
	return m.compare(distance, userID)
}

type mockComparisonServicer struct {
	saveRideAndTrip func(ctx context.Context, ride domain.Ride, trip domain.Trip) (domain.Ride, domain.Trip, error)
	recent          func(ctx context.Context, userID int64) ([]domain.Comparison, error)
	history         func(ctx context.Context, userID int64) ([]domain.Comparison, error)
}

func (m *mockComparisonServicer) SaveRideAndTrip(ctx context.Context, ride domain.Ride, trip domain.Trip) (domain.Ride, domain.Trip, error) {
	return m.saveRideAndTrip(ctx, ride, trip)
}
func (m *mockComparisonServicer) Recent(ctx context.Context, userID int64) ([]domain.Comparison, error) {
	return m.recent(ctx, userID)
}
func (m *mockComparisonServicer) History(ctx context.Context, userID int64) ([]domain.Comparison, error) {
	return m.history(ctx, userID)
}

type mockUserServicer struct {
	register func(ctx context.Context, reg service.Registration) (domain.User, error)
	login    func(ctx context.Context, email, password string) (domain.User, error)
	getByID  func(ctx context.Context, id int64) (domain.User, error)
	update   func(ctx context.Context, user domain.User) (domain.User, error)
}

func (m *mockUserServicer) Register(ctx context.Context, reg service.Registration) (domain.User, error) {
	return m.register(ctx, reg)
}
func (m *mockUserServicer) Login(ctx context.Context, email, password string) (domain.User, error) {
	return m.login(ctx, email, password)
}
func (m *mockUserServicer) GetByID(ctx context.Context, id int64) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserServicer) Update(ctx context.Context, user domain.User) (domain.User, error) {
	return m.update(ctx, user)
}

type mockOfferServicer struct {
	create func(ctx context.Context, offer domain.Offer) (domain.Offer, error)
	list   func(ctx context.Context, p domain.PaginationParams) ([]domain.Offer, int64, error)
}

func (m *mockOfferServicer) Create(ctx context.Context, offer domain.Offer) (domain.Offer, error) {
	return m.create(ctx, offer)
}
func (m *mockOfferServicer) List(ctx context.Context, p domain.PaginationParams) ([]domain.Offer, int64, error) {
	return m.list(ctx, p)
}

// compile-time checks: the doubles must satisfy the handler interfaces.
var (
	_ handler.QuoteServicer      = (*mockQuoteServicer)(nil)
	_ handler.ComparisonServicer = (*mockComparisonServicer)(nil)
	_ handler.UserServicer       = (*mockUserServicer)(nil)
	_ handler.OfferServicer      = (*mockOfferServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// serve sends one request through the full router, the same one main.go mounts.
func serve(t *testing.T, srv *handler.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}
