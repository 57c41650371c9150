package economy

import (
	"github.com/tlowery/flint/internal/models"
	ledgerRepo "github.com/tlowery/flint/internal/repositories/ledger"
)

// Config holds configuration for the economy service
type Config struct {
	// LedgerRepo stores user experience and balances
	LedgerRepo ledgerRepo.Repository

	// Catalog overrides the default shop items
	Catalog []models.ShopItem
}

// TouchInput holds the parameters for a Touch call
type TouchInput struct {
	// UserID is the author of the inbound message
	UserID string
}

// GetProfileInput holds the parameters for a GetProfile call
type GetProfileInput struct {
	// UserID is the user to look up
	UserID string
}

// GetProfileOutput holds the result of a GetProfile call
type GetProfileOutput struct {
	// Experience is the user's accumulated experience points
	Experience int

	// Coins is the user's spendable balance
	Coins int
}

// PurchaseInput holds the parameters for a Purchase call
type PurchaseInput struct {
	// UserID is the buyer
	UserID string

	// ItemKey identifies the shop item to buy
	ItemKey string
}

// PurchaseOutput holds the result of a Purchase call
type PurchaseOutput struct {
	// Item is the purchased shop item
	Item models.ShopItem
}

// GetCatalogInput holds the parameters for a GetCatalog call
type GetCatalogInput struct{}

// GetCatalogOutput holds the result of a GetCatalog call
type GetCatalogOutput struct {
	// Items are the purchasable shop items in display order
	Items []models.ShopItem
}
