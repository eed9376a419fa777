package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a duplicate identifier.
	ErrConflict = errors.New("already exists")
	// ErrInsufficientStock indicates a bill was rejected for overselling
	// under the reject stock policy.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrUnknownProduct indicates a bill line referenced a product that
	// does not exist, under the reject orphan-line policy.
	ErrUnknownProduct = errors.New("unknown product")
)
