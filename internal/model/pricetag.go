package model

import (
	"github.com/shopspring/decimal"
)

// PriceTag is a priced element on the page: a product amount in its source
// currency, displayed to the user in their selected currency. Tags are
// re-read from the board on every conversion pass rather than cached.
type PriceTag struct {
	ID       string
	Name     string
	Amount   decimal.Decimal
	Currency string // ISO 4217 source code
}

// DefaultCatalog returns the showcase product list rendered on the
// collections section. Amounts are the page's authored prices.
func DefaultCatalog() []PriceTag {
	return []PriceTag{
		{ID: "atelier-tee", Name: "Atelier Tee", Amount: decimal.NewFromFloat(39.00), Currency: "USD"},
		{ID: "lookbook-scarf", Name: "Lookbook Scarf", Amount: decimal.NewFromFloat(54.50), Currency: "USD"},
		{ID: "studio-tote", Name: "Studio Tote", Amount: decimal.NewFromFloat(89.00), Currency: "USD"},
		{ID: "signature-jacket", Name: "Signature Jacket", Amount: decimal.NewFromFloat(240.00), Currency: "USD"},
		{ID: "archive-print", Name: "Archive Print", Amount: decimal.NewFromFloat(125.00), Currency: "EUR"},
		{ID: "hanoi-capsule", Name: "Hanoi Capsule Set", Amount: decimal.NewFromInt(1850000), Currency: "VND"},
	}
}
