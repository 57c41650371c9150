package economy

import (
	"context"
	"errors"
	"fmt"

	"github.com/tlowery/flint/internal/models"
	ledgerRepo "github.com/tlowery/flint/internal/repositories/ledger"
)

// defaultCatalog matches the original shop: VIP for 100 coins, a custom
// role for 200.
var defaultCatalog = []models.ShopItem{
	{Key: "vip", Name: "VIP", Price: 100},
	{Key: "custom", Name: "Custom", Price: 200},
}

// service implements the Service interface
type service struct {
	ledgerRepo ledgerRepo.Repository
	catalog    []models.ShopItem
}

// New creates a new economy service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}

	catalog := cfg.Catalog
	if len(catalog) == 0 {
		catalog = defaultCatalog
	}

	return &service{
		ledgerRepo: cfg.LedgerRepo,
		catalog:    catalog,
	}, nil
}

// Touch credits a user for one inbound message
func (s *service) Touch(ctx context.Context, input *TouchInput) error {
	return s.ledgerRepo.Touch(ctx, &ledgerRepo.TouchInput{
		UserID: input.UserID,
	})
}

// GetProfile returns a user's experience and balance, defaulting to zero
// for users who have never sent a message
func (s *service) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	user, err := s.ledgerRepo.GetUser(ctx, &ledgerRepo.GetUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, ledgerRepo.ErrUserNotFound) {
			return &GetProfileOutput{}, nil
		}
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	return &GetProfileOutput{
		Experience: user.Experience,
		Coins:      user.Coins,
	}, nil
}

// Purchase buys a shop item with the user's coin balance
func (s *service) Purchase(ctx context.Context, input *PurchaseInput) (*PurchaseOutput, error) {
	item, ok := s.findItem(input.ItemKey)
	if !ok {
		return nil, ErrUnknownItem
	}

	err := s.ledgerRepo.Debit(ctx, &ledgerRepo.DebitInput{
		UserID: input.UserID,
		Amount: item.Price,
	})
	if err != nil {
		if errors.Is(err, ledgerRepo.ErrInsufficientFunds) {
			return nil, ErrInsufficientFunds
		}
		return nil, fmt.Errorf("failed to debit ledger: %w", err)
	}

	return &PurchaseOutput{Item: item}, nil
}

// GetCatalog lists the purchasable shop items
func (s *service) GetCatalog(_ context.Context, _ *GetCatalogInput) (*GetCatalogOutput, error) {
	items := make([]models.ShopItem, len(s.catalog))
	copy(items, s.catalog)

	return &GetCatalogOutput{Items: items}, nil
}

func (s *service) findItem(key string) (models.ShopItem, bool) {
	for _, item := range s.catalog {
		if item.Key == key {
			return item, true
		}
	}
	return models.ShopItem{}, false
}
