package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// CurrencySelect wraps the currency drop-down behind the pricing package's
// selector contract. The change handler is registered after the initial
// selection is applied, so restoring the persisted choice fires no pass of
// its own.
type CurrencySelect struct {
	sel     *widget.Select
	handler func(code string)
}

// NewCurrencySelect creates the drop-down with the given currency codes.
func NewCurrencySelect(options []string) *CurrencySelect {
	cs := &CurrencySelect{}
	cs.sel = widget.NewSelect(options, func(code string) {
		if cs.handler != nil {
			cs.handler(code)
		}
	})
	cs.sel.PlaceHolder = "Select currency"
	return cs
}

// SetSelected applies a selection to the control. Callable from any
// goroutine; the updater restores the persisted choice off the UI thread.
func (cs *CurrencySelect) SetSelected(code string) {
	fyne.Do(func() {
		cs.sel.SetSelected(code)
	})
}

// OnChanged registers the handler invoked on user selection changes.
func (cs *CurrencySelect) OnChanged(handler func(code string)) {
	cs.handler = handler
}

// Widget returns the underlying drop-down for layout.
func (cs *CurrencySelect) Widget() *widget.Select {
	return cs.sel
}
