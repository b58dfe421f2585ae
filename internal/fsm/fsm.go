package fsm

import (
	"context"
	"database/sql"
	"errors"
)

// Status constants for the item repair lifecycle.
const (
	ItemOpen       = "open"
	ItemPending    = "pending"
	ItemInProgress = "in_progress"
	ItemFixed      = "fixed"
	ItemUnfixable  = "unfixable"
	ItemArchived   = "archived"
)

// Status constants for price offers.
const (
	OfferPending   = "pending"
	OfferAccepted  = "accepted"
	OfferRejected  = "rejected"
	OfferWithdrawn = "withdrawn"
)

// Status constants for jobs.
const (
	JobActive    = "active"
	JobCompleted = "completed"
	JobVerified  = "verified"
	JobDisputed  = "disputed"
	JobCancelled = "cancelled"
)

// Items only move forward along the repair lifecycle.
var itemTransitions = map[string]map[string]struct{}{
	ItemOpen:       {ItemPending: {}, ItemInProgress: {}, ItemArchived: {}},
	ItemPending:    {ItemInProgress: {}, ItemArchived: {}},
	ItemInProgress: {ItemFixed: {}, ItemUnfixable: {}},
	ItemFixed:      {ItemArchived: {}},
	ItemUnfixable:  {ItemArchived: {}},
	ItemArchived:   {},
}

// A pending offer resolves exactly once; resolved offers are terminal.
var offerTransitions = map[string]map[string]struct{}{
	OfferPending:   {OfferAccepted: {}, OfferRejected: {}, OfferWithdrawn: {}},
	OfferAccepted:  {},
	OfferRejected:  {},
	OfferWithdrawn: {},
}

// Completion is terminal unless the job is later disputed.
var jobTransitions = map[string]map[string]struct{}{
	JobActive:    {JobCompleted: {}, JobDisputed: {}, JobCancelled: {}},
	JobCompleted: {JobVerified: {}, JobDisputed: {}},
	JobDisputed:  {JobCompleted: {}, JobCancelled: {}},
	JobVerified:  {},
	JobCancelled: {},
}

func canTransition(table map[string]map[string]struct{}, from, to string) bool {
	if from == to {
		return true
	}
	allowed, ok := table[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// ItemCanTransition reports whether an item may move from one status to another.
func ItemCanTransition(from, to string) bool {
	return canTransition(itemTransitions, from, to)
}

// OfferCanTransition reports whether an offer may move from one status to another.
func OfferCanTransition(from, to string) bool {
	return canTransition(offerTransitions, from, to)
}

// JobCanTransition reports whether a job may move from one status to another.
func JobCanTransition(from, to string) bool {
	return canTransition(jobTransitions, from, to)
}

// ItemAcceptsOffers reports whether new offers may be created against an item.
func ItemAcceptsOffers(status string) bool {
	return status == ItemOpen || status == ItemPending
}

// ApplyItem updates an item status using optimistic validation: the UPDATE is
// guarded by the expected current status so concurrent writers cannot race
// past each other.
func ApplyItem(ctx context.Context, tx *sql.Tx, itemID int, fromStatus, toStatus string) error {
	if !ItemCanTransition(fromStatus, toStatus) {
		return errors.New("invalid item status transition")
	}
	res, err := tx.ExecContext(ctx, `UPDATE items SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`, toStatus, itemID, fromStatus)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
