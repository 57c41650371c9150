package ledger

import (
	"context"
	"errors"
	"sync"

	"github.com/tlowery/flint/internal/models"
)

// memoryRepository implements the Repository interface with an in-process map.
// Records live for the process lifetime and reset on restart.
type memoryRepository struct {
	mu    sync.Mutex
	users map[string]*models.User
}

// NewMemory creates an empty in-memory ledger repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		users: make(map[string]*models.User),
	}
}

// Touch credits one experience point and one coin, creating the record if needed
func (r *memoryRepository) Touch(_ context.Context, input *TouchInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[input.UserID]
	if !ok {
		user = &models.User{ID: input.UserID}
		r.users[input.UserID] = user
	}

	user.Experience++
	user.Coins++

	return nil
}

// GetUser retrieves a user's record
func (r *memoryRepository) GetUser(_ context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[input.UserID]
	if !ok {
		return nil, ErrUserNotFound
	}

	// Return a copy so callers cannot mutate the stored record
	copied := *user
	return &copied, nil
}

// Debit removes coins from a user's balance
func (r *memoryRepository) Debit(_ context.Context, input *DebitInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	if input.Amount < 0 {
		return errors.New("amount cannot be negative")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[input.UserID]
	if !ok || user.Coins < input.Amount {
		return ErrInsufficientFunds
	}

	user.Coins -= input.Amount

	return nil
}
