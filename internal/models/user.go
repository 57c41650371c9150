package models

// User represents a member's accumulated activity stats
type User struct {
	// ID is the Discord user ID
	ID string

	// Experience is the number of messages the user has sent
	Experience int

	// Coins is the user's spendable balance
	Coins int
}
