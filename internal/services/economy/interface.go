package economy

import "context"

// Service defines the interface for ledger and shop operations
type Service interface {
	// Touch credits a user for one inbound message
	Touch(ctx context.Context, input *TouchInput) error

	// GetProfile returns a user's experience and balance
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	// Purchase buys a shop item with the user's coin balance
	Purchase(ctx context.Context, input *PurchaseInput) (*PurchaseOutput, error)

	// GetCatalog lists the purchasable shop items
	GetCatalog(ctx context.Context, input *GetCatalogInput) (*GetCatalogOutput, error)
}
