package pricing

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/showkit/showcase-kiosk/internal/model"
)

// fakeBoard serves canned tags and records prices written back to it.
type fakeBoard struct {
	mu     sync.Mutex
	tags   []model.PriceTag
	prices map[string]string
	order  []string
}

func newFakeBoard(tags ...model.PriceTag) *fakeBoard {
	return &fakeBoard{tags: tags, prices: make(map[string]string)}
}

func (b *fakeBoard) Tags() []model.PriceTag {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tags
}

func (b *fakeBoard) SetPrice(id, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.prices[id] = text
	b.order = append(b.order, id)
}

func (b *fakeBoard) price(id string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.prices[id]
}

// fakeConverter delegates to a function and counts calls.
type fakeConverter struct {
	mu    sync.Mutex
	calls int
	fn    func(amount decimal.Decimal, from, to string) (decimal.Decimal, error)
}

func (c *fakeConverter) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.fn(amount, from, to)
}

func (c *fakeConverter) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// fakeStore is an in-memory currency preference.
type fakeStore struct {
	code string
}

func (s *fakeStore) GetDisplayCurrency() string {
	if s.code == "" {
		return "USD"
	}
	return s.code
}

func (s *fakeStore) SetDisplayCurrency(code string) { s.code = code }

// fakeSelector records the applied selection and exposes the change handler.
type fakeSelector struct {
	selected string
	handler  func(string)
}

func (s *fakeSelector) SetSelected(code string)        { s.selected = code }
func (s *fakeSelector) OnChanged(handler func(string)) { s.handler = handler }

func usdTag(id string, amount float64) model.PriceTag {
	return model.PriceTag{ID: id, Amount: decimal.NewFromFloat(amount), Currency: "USD"}
}

func TestSameCurrencySkipsConversion(t *testing.T) {
	board := newFakeBoard(usdTag("tee", 9.5))
	converter := &fakeConverter{fn: func(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
		return decimal.Zero, errors.New("should not be called")
	}}
	u := NewUpdater(board, converter, &fakeStore{})

	u.UpdateAll(context.Background(), "USD")

	if converter.callCount() != 0 {
		t.Errorf("Expected no conversion calls for same currency, got %d", converter.callCount())
	}
	if board.price("tee") != "$9.50" {
		t.Errorf("Expected locally formatted '$9.50', got '%s'", board.price("tee"))
	}
}

func TestConversionSuccess(t *testing.T) {
	board := newFakeBoard(usdTag("tee", 39))
	converter := &fakeConverter{fn: func(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
		if from != "USD" || to != "EUR" {
			t.Errorf("Unexpected conversion %s to %s", from, to)
		}
		return decimal.NewFromFloat(35.72), nil
	}}
	u := NewUpdater(board, converter, &fakeStore{})

	u.UpdateAll(context.Background(), "EUR")

	if board.price("tee") != "€35.72" {
		t.Errorf("Expected '€35.72', got '%s'", board.price("tee"))
	}
}

func TestConversionFailureKeepsOriginalCurrency(t *testing.T) {
	board := newFakeBoard(usdTag("tee", 9.5))
	converter := &fakeConverter{fn: func(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
		return decimal.Zero, errors.New("rates unavailable")
	}}
	u := NewUpdater(board, converter, &fakeStore{})

	u.UpdateAll(context.Background(), "EUR")

	// The fallback stays labeled in the source currency, never the target
	if board.price("tee") != "$9.50" {
		t.Errorf("Expected original '$9.50' on failure, got '%s'", board.price("tee"))
	}
}

func TestOneFailureDoesNotAbortOthers(t *testing.T) {
	board := newFakeBoard(usdTag("first", 10), usdTag("second", 20), usdTag("third", 30))
	converter := &fakeConverter{fn: func(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
		if amount.Equal(decimal.NewFromInt(20)) {
			return decimal.Zero, errors.New("boom")
		}
		return amount.Mul(decimal.NewFromInt(2)), nil
	}}
	u := NewUpdater(board, converter, &fakeStore{})

	u.UpdateAll(context.Background(), "EUR")

	if board.price("first") != "€20.00" {
		t.Errorf("Expected '€20.00' for first, got '%s'", board.price("first"))
	}
	if board.price("second") != "$20.00" {
		t.Errorf("Expected fallback '$20.00' for second, got '%s'", board.price("second"))
	}
	if board.price("third") != "€60.00" {
		t.Errorf("Expected '€60.00' for third, got '%s'", board.price("third"))
	}

	// Elements are processed in board order
	expected := []string{"first", "second", "third"}
	board.mu.Lock()
	defer board.mu.Unlock()
	for i, id := range expected {
		if board.order[i] != id {
			t.Errorf("Expected write %d to be %s, got %s", i, id, board.order[i])
		}
	}
}

func TestStalePassDiscarded(t *testing.T) {
	board := newFakeBoard(usdTag("tee", 10))

	release := make(chan struct{})
	entered := make(chan struct{})
	converter := &fakeConverter{fn: func(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
		if to == "EUR" {
			close(entered)
			<-release // slow response for the first pass
			return decimal.NewFromInt(999), nil
		}
		return decimal.NewFromInt(11), nil
	}}
	u := NewUpdater(board, converter, &fakeStore{})

	done := make(chan struct{})
	go func() {
		u.UpdateAll(context.Background(), "EUR")
		close(done)
	}()

	<-entered
	// A newer selection supersedes the in-flight EUR pass
	u.UpdateAll(context.Background(), "GBP")
	close(release)
	<-done

	if board.price("tee") != "£11.00" {
		t.Errorf("Expected the newer pass to win with '£11.00', got '%s'", board.price("tee"))
	}
}

func TestInitializeWithoutSelectorIsNoop(t *testing.T) {
	board := newFakeBoard(usdTag("tee", 10))
	converter := &fakeConverter{fn: func(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
		return decimal.Zero, errors.New("should not be called")
	}}
	u := NewUpdater(board, converter, &fakeStore{})

	u.Initialize(context.Background(), nil)

	if u.State().IsReady() {
		t.Error("Expected updater to stay uninitialized without a selector")
	}
	if board.price("tee") != "" {
		t.Errorf("Expected no formatting pass, got '%s'", board.price("tee"))
	}
}

func TestInitializeAppliesPreferenceAndPersistsChanges(t *testing.T) {
	board := newFakeBoard(usdTag("tee", 9.5))
	converter := &fakeConverter{fn: func(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
		return amount, nil
	}}
	store := &fakeStore{code: "USD"}
	selector := &fakeSelector{}
	u := NewUpdater(board, converter, store)

	u.Initialize(context.Background(), selector)

	if selector.selected != "USD" {
		t.Errorf("Expected selector set to persisted 'USD', got '%s'", selector.selected)
	}
	if board.price("tee") != "$9.50" {
		t.Errorf("Expected initial pass to format '$9.50', got '%s'", board.price("tee"))
	}

	// A selection change persists before re-running the pass
	selector.handler("EUR")
	if store.code != "EUR" {
		t.Errorf("Expected 'EUR' persisted, got '%s'", store.code)
	}
}
