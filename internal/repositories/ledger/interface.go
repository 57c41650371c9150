package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/tlowery/flint/internal/repositories/ledger Repository

import (
	"context"

	"github.com/tlowery/flint/internal/models"
)

// Repository defines the interface for user ledger storage
type Repository interface {
	// Touch ensures a user record exists and credits one experience point
	// and one coin for a message
	Touch(ctx context.Context, input *TouchInput) error

	// GetUser retrieves a user's current record
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// Debit removes coins from a user's balance, failing without mutation
	// if the balance is insufficient
	Debit(ctx context.Context, input *DebitInput) error
}
