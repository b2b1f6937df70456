package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/showkit/showcase-kiosk/internal/model"
)

// PriceBoardView lists catalog entries with their formatted prices. It is
// the pricing updater's PriceBoard: tags are served fresh on every pass and
// price text is written back per element.
type PriceBoardView struct {
	mu     sync.Mutex
	tags   []model.PriceTag
	labels map[string]*widget.Label
	box    *fyne.Container
}

// NewPriceBoardView builds rows for the given catalog.
func NewPriceBoardView(tags []model.PriceTag) *PriceBoardView {
	board := &PriceBoardView{
		tags:   tags,
		labels: make(map[string]*widget.Label, len(tags)),
	}

	rows := container.NewVBox()
	for _, tag := range tags {
		name := widget.NewLabel(tag.Name)

		price := widget.NewLabel(DashPlaceholder)
		price.TextStyle = fyne.TextStyle{Bold: true}
		price.Alignment = fyne.TextAlignTrailing

		board.labels[tag.ID] = price
		rows.Add(container.NewBorder(nil, nil, name, price))
		rows.Add(widget.NewSeparator())
	}
	board.box = rows

	return board
}

// Tags returns the priced elements in display order.
func (b *PriceBoardView) Tags() []model.PriceTag {
	b.mu.Lock()
	defer b.mu.Unlock()

	tags := make([]model.PriceTag, len(b.tags))
	copy(tags, b.tags)
	return tags
}

// SetPrice writes the formatted price for one element. Unknown IDs are
// ignored; the element may have been removed between passes.
func (b *PriceBoardView) SetPrice(id, text string) {
	b.mu.Lock()
	label, ok := b.labels[id]
	b.mu.Unlock()
	if !ok {
		return
	}

	fyne.Do(func() {
		label.SetText(text)
	})
}

// CanvasObject returns the scrollable board for layout.
func (b *PriceBoardView) CanvasObject() fyne.CanvasObject {
	return container.NewVScroll(b.box)
}
