package ticketing

import "errors"

// Caller-facing error taxonomy. Callers classify with errors.Is; the
// service wraps each sentinel with request detail. Every failure is
// terminal for the operation that raised it — nothing here is retried
// internally.
var (
	// ErrInvalidArgument covers malformed input: empty email, non-positive
	// seat count, a request for the whole venue or more, non-positive hold id.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientInventory means fewer seats are available right now
	// than the request asks for. A later, smaller request may succeed.
	ErrInsufficientInventory = errors.New("not enough seats available")

	// ErrInventoryFragmented means capacity looked sufficient but no
	// combination of contiguous blocks could assemble the full request.
	ErrInventoryFragmented = errors.New("available seats are too fragmented to satisfy the request")

	// ErrUnknownHold means the hold id is not in the active set: it never
	// existed, was already reserved, or was reaped after expiring.
	ErrUnknownHold = errors.New("seat hold is unknown or no longer active")

	// ErrHoldOwnershipMismatch means the hold exists but belongs to a
	// different customer email.
	ErrHoldOwnershipMismatch = errors.New("seat hold belongs to a different customer")

	// ErrHoldExpired means the hold's deadline passed before the customer
	// reserved; its seats have already returned to the open pool.
	ErrHoldExpired = errors.New("seat hold has expired")
)
