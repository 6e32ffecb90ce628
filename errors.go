package papertrade

import "errors"

// Accounting errors. Mutating operations report these before any state
// change: a failed call leaves balance and holdings untouched.
var (
	// ErrInsufficientFunds indicates a withdraw or buy larger than the cash balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientShares indicates a sell larger than the held quantity.
	ErrInsufficientShares = errors.New("insufficient shares")

	// ErrNoSuchPosition indicates a sell of a ticker that is not held.
	ErrNoSuchPosition = errors.New("no such position")

	// ErrInvalidArgument indicates a non-positive amount, price or quantity.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Collaborator errors.
var (
	// ErrQuoteUnavailable indicates the quote provider could not resolve a
	// price for one ticker. It is non-fatal to aggregate computations.
	ErrQuoteUnavailable = errors.New("quote unavailable")

	// ErrInvalidState indicates a malformed or corrupt persisted portfolio.
	ErrInvalidState = errors.New("invalid portfolio state")
)
