package ledger

import "errors"

// ErrUserNotFound is returned when a user has no ledger record
var ErrUserNotFound = errors.New("user not found")

// ErrInsufficientFunds is returned when a debit exceeds the user's balance
var ErrInsufficientFunds = errors.New("insufficient funds")

// TouchInput holds the parameters for a Touch call
type TouchInput struct {
	// UserID is the Discord user ID to credit
	UserID string
}

// GetUserInput holds the parameters for a GetUser call
type GetUserInput struct {
	// UserID is the Discord user ID to look up
	UserID string
}

// DebitInput holds the parameters for a Debit call
type DebitInput struct {
	// UserID is the Discord user ID to charge
	UserID string

	// Amount is the number of coins to remove
	Amount int
}
