package services

import "errors"

var (
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInvalidLimit      = errors.New("limit must be between 1 and 100")
)
