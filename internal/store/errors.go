package store

import "errors"

// Sentinel errors returned by the store and query layers. Handlers match
// them with errors.Is and translate them to HTTP status codes; anything
// else is a storage failure and bubbles up unchanged.
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")

	// ErrAssociationNotFound reports removal of a product that is not in
	// the order. Removing something never added usually means a caller
	// bug, so it is surfaced rather than treated as a no-op.
	ErrAssociationNotFound = errors.New("product not in order")

	// ErrAssociationExists reports an add of an (order, product) pair that
	// is already linked. It is a benign outcome, not a fault: the pair is
	// in the requested state.
	ErrAssociationExists = errors.New("product already in order")

	ErrDuplicateEmail = errors.New("email already in use")
	ErrInvalidPrice   = errors.New("price must not be negative")
)
