package warehouse

import "errors"

// Validation failures abort the operation with state unchanged. The API
// layer maps these onto 4xx statuses.
var (
	ErrEmptyName          = errors.New("warehouse name must not be empty")
	ErrDuplicateWarehouse = errors.New("warehouse already exists")
	ErrUnknownWarehouse   = errors.New("unknown warehouse")
	ErrUnknownProduct     = errors.New("unknown product")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrNoEmptySlot        = errors.New("no empty slot available")
)
