package pricing

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/showkit/showcase-kiosk/internal/model"
)

var log = logrus.WithField("component", "pricing")

// Updater reformats every priced element into the selected display currency.
type Updater struct {
	mu        sync.Mutex
	board     PriceBoard
	converter Converter
	store     CurrencyStore
	state     model.ControllerState

	// passToken identifies the newest update pass; writes carrying an
	// older token are stale and dropped.
	passToken string
}

// NewUpdater creates a price display updater over the given board.
func NewUpdater(board PriceBoard, converter Converter, store CurrencyStore) *Updater {
	return &Updater{
		board:     board,
		converter: converter,
		store:     store,
	}
}

// Initialize reads the persisted currency preference, applies it to the
// selector, runs one formatting pass, and registers the change handler that
// persists new selections and re-runs the pass. Pages without a selector
// leave the updater untouched.
func (u *Updater) Initialize(ctx context.Context, selector CurrencySelector) {
	if selector == nil {
		return
	}

	u.mu.Lock()
	if u.state.IsReady() {
		u.mu.Unlock()
		return
	}
	u.state = model.StateReady
	u.mu.Unlock()

	current := u.store.GetDisplayCurrency()
	selector.SetSelected(current)

	selector.OnChanged(func(code string) {
		u.store.SetDisplayCurrency(code)
		go u.UpdateAll(ctx, code)
	})

	u.UpdateAll(ctx, current)
}

// State returns the updater's initialization state.
func (u *Updater) State() model.ControllerState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// UpdateAll reformats every priced element into the target currency.
// Elements are processed sequentially and independently: one element's
// failed conversion falls back to its original amount in its original
// currency and the pass continues. The pass carries a fresh generation
// token so results from a superseded pass are discarded.
func (u *Updater) UpdateAll(ctx context.Context, target string) {
	u.mu.Lock()
	token := newPassToken()
	u.passToken = token
	u.mu.Unlock()

	for _, tag := range u.board.Tags() {
		u.updateOne(ctx, token, tag, target)
	}
}

func (u *Updater) updateOne(ctx context.Context, token string, tag model.PriceTag, target string) {
	// Same currency needs no remote call
	if strings.EqualFold(tag.Currency, target) {
		u.apply(token, tag.ID, FormatCurrency(tag.Amount, tag.Currency))
		return
	}

	converted, err := u.converter.Convert(ctx, tag.Amount, tag.Currency, target)
	if err != nil {
		// Degrade to the correctly-labeled original, never an
		// unconverted amount dressed up as the target currency.
		log.WithError(err).Warnf("conversion failed for %s, keeping %s amount", tag.ID, tag.Currency)
		u.apply(token, tag.ID, FormatCurrency(tag.Amount, tag.Currency))
		return
	}

	u.apply(token, tag.ID, FormatCurrency(converted, target))
}

// apply writes a formatted price unless a newer pass superseded this one.
func (u *Updater) apply(token, id, text string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if token != u.passToken {
		log.Debugf("discarding stale price for %s", id)
		return
	}
	u.board.SetPrice(id, text)
}

func newPassToken() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
