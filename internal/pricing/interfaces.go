package pricing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/showkit/showcase-kiosk/internal/model"
)

// PriceBoard exposes the page's priced elements. Tags are re-read on every
// pass rather than cached. The UI layer implements it over price labels.
type PriceBoard interface {
	Tags() []model.PriceTag
	SetPrice(id string, text string)
}

// Converter performs a remote currency conversion. *api.Client implements it.
type Converter interface {
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error)
}

// CurrencyStore persists the selected display currency across restarts.
// *config.Settings implements it.
type CurrencyStore interface {
	GetDisplayCurrency() string
	SetDisplayCurrency(code string)
}

// CurrencySelector is the optional drop-down the user picks a currency with.
// Pages without one leave the updater uninitialized.
type CurrencySelector interface {
	SetSelected(code string)
	OnChanged(handler func(code string))
}
