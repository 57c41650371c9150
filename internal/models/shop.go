package models

// ShopItem represents a purchasable item in the coin shop
type ShopItem struct {
	// Key is the identifier users pass to buy the item
	Key string

	// Name is the display name of the item
	Name string

	// Price is the coin cost of the item
	Price int
}
