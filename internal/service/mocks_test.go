package service_test

import (
	"context"

	"github.com/ridesmart/backend/internal/domain"
	"github.com/ridesmart/backend/internal/repo"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones a test needs.

type mockUserRepo struct {
	create        func(ctx context.Context, u domain.User) (domain.User, error)
	getByID       func(ctx context.Context, id int64) (domain.User, error)
	getByEmail    func(ctx context.Context, email string) (domain.User, error)
	existsByEmail func(ctx context.Context, email string) (bool, error)
	update        func(ctx context.Context, u domain.User) (domain.User, error)
	delete        func(ctx context.Context, id int64) error
}

func (m *mockUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	return m.create(ctx, u)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.getByEmail(ctx, email)
}
func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.existsByEmail(ctx, email)
}
func (m *mockUserRepo) Update(ctx context.Context, u domain.User) (domain.User, error) {
	return m.update(ctx, u)
}
func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockRideRepo struct {
	create  func(ctx context.Context, r domain.Ride) (domain.Ride, error)
	getByID func(ctx context.Context, id int64) (domain.Ride, error)
	delete  func(ctx context.Context, id int64) error
}

func (m *mockRideRepo) Create(ctx context.Context, r domain.Ride) (domain.Ride, error) {
	return m.create(ctx, r)
}
func (m *mockRideRepo) GetByID(ctx context.Context, id int64) (domain.Ride, error) {
	return m.getByID(ctx, id)
}
func (m *mockRideRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockTripRepo struct {
	create           func(ctx context.Context, t domain.Trip) (domain.Trip, error)
	listRecentByUser func(ctx context.Context, userID int64, limit int) ([]domain.Trip, error)
}

func (m *mockTripRepo) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripRepo) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]domain.Trip, error) {
	return m.listRecentByUser(ctx, userID, limit)
}

type mockOfferRepo struct {
	create    func(ctx context.Context, o domain.Offer) (domain.Offer, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Offer, int64, error)
}

func (m *mockOfferRepo) Create(ctx context.Context, o domain.Offer) (domain.Offer, error) {
	return m.create(ctx, o)
}
func (m *mockOfferRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Offer, int64, error) {
	return m.listPaged(ctx, p)
}

// fakeTransactor runs fn directly against the given repos and records whether
// it was asked to commit or roll back.
type fakeTransactor struct {
	repos      repo.Repos
	calls      int
	rolledBack bool
}

func (f *fakeTransactor) WithinTx(_ context.Context, fn func(repo.Repos) error) error {
	f.calls++
	if err := fn(f.repos); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

// compile-time checks: the doubles must satisfy the repo interfaces.
var (
	_ repo.UserRepo   = (*mockUserRepo)(nil)
	_ repo.RideRepo   = (*mockRideRepo)(nil)
	_ repo.TripRepo   = (*mockTripRepo)(nil)
	_ repo.OfferRepo  = (*mockOfferRepo)(nil)
	_ repo.Transactor = (*fakeTransactor)(nil)
)
