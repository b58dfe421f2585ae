package repositories

import (
	"context"
	"database/sql"
	"errors"

	"fixuBack/internal/fsm"
	"fixuBack/internal/models"
)

type OfferRepository struct {
	DB *sql.DB
}

func (r *OfferRepository) CreateOffer(ctx context.Context, offer models.Offer) (models.Offer, error) {
	query := `
INSERT INTO offers (item_id, fixer_id, bid_price, message, status, created_at)
VALUES ($1, $2, $3, $4, $5, NOW())
RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		offer.ItemID, offer.FixerID, offer.BidPrice, offer.Message, fsm.OfferPending,
	).Scan(&offer.ID, &offer.CreatedAt)
	if err != nil {
		return models.Offer{}, err
	}
	offer.Status = fsm.OfferPending
	return offer, nil
}

func (r *OfferRepository) GetOfferByID(ctx context.Context, id int) (models.Offer, error) {
	query := `
		SELECT id, item_id, fixer_id, bid_price, message, status, created_at
		FROM offers
		WHERE id = $1
	`
	var offer models.Offer
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&offer.ID, &offer.ItemID, &offer.FixerID, &offer.BidPrice,
		&offer.Message, &offer.Status, &offer.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Offer{}, models.ErrOfferNotFound
	}
	if err != nil {
		return models.Offer{}, err
	}
	return offer, nil
}

func (r *OfferRepository) GetOffersByItemID(ctx context.Context, itemID int) ([]models.Offer, error) {
	query := `
		SELECT id, item_id, fixer_id, bid_price, message, status, created_at
		FROM offers
		WHERE item_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := []models.Offer{}
	for rows.Next() {
		var offer models.Offer
		err := rows.Scan(&offer.ID, &offer.ItemID, &offer.FixerID, &offer.BidPrice,
			&offer.Message, &offer.Status, &offer.CreatedAt)
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}

// AcceptOffer marks the target offer accepted and rejects every sibling
// pending offer on the same item in one transaction. The row lock on the
// target serializes competing acceptances; no intermediate state is visible.
func (r *OfferRepository) AcceptOffer(ctx context.Context, id int) (models.Offer, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Offer{}, err
	}
	defer tx.Rollback()

	var offer models.Offer
	err = tx.QueryRowContext(ctx, `
		SELECT id, item_id, fixer_id, bid_price, message, status, created_at
		FROM offers
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(
		&offer.ID, &offer.ItemID, &offer.FixerID, &offer.BidPrice,
		&offer.Message, &offer.Status, &offer.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Offer{}, models.ErrOfferNotFound
	}
	if err != nil {
		return models.Offer{}, err
	}
	if offer.Status != fsm.OfferPending {
		return models.Offer{}, models.ErrInvalidOfferState
	}

	if _, err := tx.ExecContext(ctx, `UPDATE offers SET status = $1 WHERE id = $2`, fsm.OfferAccepted, id); err != nil {
		return models.Offer{}, err
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE offers SET status = $1
		WHERE item_id = $2 AND id <> $3 AND status = $4
	`, fsm.OfferRejected, offer.ItemID, id, fsm.OfferPending); err != nil {
		return models.Offer{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Offer{}, err
	}
	offer.Status = fsm.OfferAccepted
	return offer, nil
}

// ResolveIfPending moves a pending offer to the given terminal status. The
// UPDATE is guarded by the pending status, so a stale call leaves the row
// untouched and the current row is returned as-is.
func (r *OfferRepository) ResolveIfPending(ctx context.Context, id int, status string) (models.Offer, error) {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE offers SET status = $1 WHERE id = $2 AND status = $3
	`, status, id, fsm.OfferPending)
	if err != nil {
		return models.Offer{}, err
	}
	return r.GetOfferByID(ctx, id)
}
