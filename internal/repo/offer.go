package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ridesmart/backend/internal/domain"
)

// OfferRepo defines the persistence operations for promotional Offers.
type OfferRepo interface {
	// Create inserts an offer and returns it with the DB-generated number.
	Create(ctx context.Context, offer domain.Offer) (domain.Offer, error)

	// ListPaged returns one page of offers ordered by number descending
	// (newest first) and the total number of offers.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Offer, int64, error)
}

type pgOfferRepo struct {
	db db
}

// NewOfferRepo constructs an OfferRepo backed by the provided db connection.
func NewOfferRepo(db db) OfferRepo {
	return &pgOfferRepo{db: db}
}

func (r *pgOfferRepo) Create(ctx context.Context, offer domain.Offer) (domain.Offer, error) {
	const q = `
		INSERT INTO offers (company, offer_description)
		VALUES (@company, @offer_description)
		RETURNING number, company, offer_description`

	args := pgx.NamedArgs{
		"company":           offer.Company,
		"offer_description": offer.Description,
	}

	result, err := scanOffer(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Offer{}, fmt.Errorf("repo.OfferRepo.Create: %w", err)
	}
	return result, nil
}

// ListPaged uses a window function so the page and the total come back in one
// round trip. An empty page still needs the total, hence the separate count
// when no rows are returned.
func (r *pgOfferRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Offer, int64, error) {
	const q = `
		SELECT number, company, offer_description, count(*) OVER () AS total
		FROM offers
		ORDER BY number DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.OfferRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	var total int64
	offers := []domain.Offer{}
	for rows.Next() {
		var o domain.Offer
		if err := rows.Scan(&o.Number, &o.Company, &o.Description, &total); err != nil {
			return nil, 0, fmt.Errorf("repo.OfferRepo.ListPaged: scan: %w", err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.OfferRepo.ListPaged: rows: %w", err)
	}

	if len(offers) == 0 {
		if err := r.db.QueryRow(ctx, `SELECT count(*) FROM offers`).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("repo.OfferRepo.ListPaged: count: %w", err)
		}
	}
	return offers, total, nil
}

func scanOffer(s scanner) (domain.Offer, error) {
	var o domain.Offer
	if err := s.Scan(&o.Number, &o.Company, &o.Description); err != nil {
		return domain.Offer{}, translate(err)
	}
	return o, nil
}
