package models

import (
	"errors"
)

var ErrItemNotFound = errors.New("models: item not found")
var ErrItemNotAcceptingOffers = errors.New("models: item is no longer accepting offers")

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrOfferNotFound      = errors.New("models: offer not found")
	ErrInvalidOfferState  = errors.New("models: offer is not pending")
	ErrInvalidBidPrice    = errors.New("models: bid price must be positive")
	ErrJobNotFound        = errors.New("models: job not found")
	ErrInvalidAgreedPrice = errors.New("models: agreed price must be positive")
	ErrBadgeNotFound      = errors.New("models: badge not found")
	ErrInvalidRating      = errors.New("models: rating must be between 1 and 5")
	ErrInvalidStatus      = errors.New("models: invalid status transition")
	ErrAlreadyReviewed    = errors.New("models: job already reviewed by this user")
)
