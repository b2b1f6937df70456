package slideshow

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/showkit/showcase-kiosk/internal/model"
)

var log = logrus.WithField("component", "slideshow")

// Controller owns the slideshow state: the gallery, the current position,
// the playing flag, and the recurring cycle timer. All mutation goes through
// the mutex; the ticker goroutine and UI callbacks never overlap.
type Controller struct {
	mu      sync.Mutex
	surface DisplaySurface
	source  GallerySource

	gallery  *model.Gallery
	index    int
	playing  bool
	state    model.ControllerState
	interval time.Duration

	// ticker is non-nil iff cycling is active
	ticker *time.Ticker
	done   chan struct{}

	onPlayState func(playing bool) // callback for UI control sync
}

// NewController creates a slideshow controller driving the given surface.
func NewController(surface DisplaySurface, source GallerySource, interval time.Duration) *Controller {
	return &Controller{
		surface:  surface,
		source:   source,
		interval: interval,
	}
}

// SetPlayStateCallback registers a callback invoked when the playing flag
// changes without a direct user action, such as autoplay starting once the
// playlist has loaded.
func (c *Controller) SetPlayStateCallback(callback func(playing bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onPlayState = callback
}

// Load fetches the remote playlist and initializes the slideshow. Any fetch
// failure, malformed payload, or empty list substitutes the built-in gallery
// so the widget always has something to cycle.
func (c *Controller) Load(ctx context.Context) {
	images, err := c.source.FetchPlaylist(ctx)

	c.mu.Lock()

	switch {
	case err != nil:
		log.WithError(err).Warn("playlist fetch failed, using built-in gallery")
		c.gallery = model.DefaultGallery()
	case len(images) == 0:
		log.Warn("playlist fetch returned no images, using built-in gallery")
		c.gallery = model.DefaultGallery()
	default:
		c.gallery = model.NewGallery(images)
	}

	c.initializeLocked()
	c.mu.Unlock()

	c.notifyPlayState()
}

// Initialize runs one-shot setup against the current gallery: show the first
// image and start cycling. Calling it again is a no-op.
func (c *Controller) Initialize() {
	c.mu.Lock()
	c.initializeLocked()
	c.mu.Unlock()

	c.notifyPlayState()
}

// notifyPlayState reports the current flag to the registered callback.
// Called without the mutex held so the callback can query the controller.
func (c *Controller) notifyPlayState() {
	c.mu.Lock()
	callback := c.onPlayState
	playing := c.playing
	c.mu.Unlock()

	if callback != nil {
		callback(playing)
	}
}

func (c *Controller) initializeLocked() {
	if c.state.IsReady() {
		return
	}
	if c.gallery == nil || c.gallery.IsEmpty() {
		log.Warn("initialize skipped: gallery is empty")
		return
	}

	c.state = model.StateReady
	c.index = 0
	c.playing = true
	c.displayLocked(0)
	c.startTimerLocked()
}

// DisplayAt shows the image at the given gallery index, selecting contain or
// cover treatment per the image's orientation.
func (c *Controller) DisplayAt(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.displayLocked(index)
}

func (c *Controller) displayLocked(index int) {
	if c.gallery == nil {
		return
	}
	ref, ok := c.gallery.ImageAt(index)
	if !ok {
		log.Warnf("display index %d out of range", index)
		return
	}
	c.index = index
	c.surface.ShowImage(ref, model.FitFor(ref))
}

// Advance moves to the next image, wrapping at the end of the gallery.
func (c *Controller) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advanceLocked()
}

func (c *Controller) advanceLocked() {
	if !c.state.IsReady() {
		return
	}
	c.displayLocked((c.index + 1) % c.gallery.Len())
}

// Retreat moves to the previous image, wrapping at the start of the gallery.
func (c *Controller) Retreat() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.IsReady() {
		return
	}
	c.displayLocked((c.index - 1 + c.gallery.Len()) % c.gallery.Len())
}

// TogglePlay flips the playing flag, starts or stops the timer to match, and
// returns the new flag so callers can sync their controls to it.
func (c *Controller) TogglePlay() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.playing = !c.playing
	if c.playing {
		c.startTimerLocked()
	} else {
		c.stopTimerLocked()
	}
	return c.playing
}

// Playing reports whether the slideshow is currently auto-cycling.
func (c *Controller) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Index returns the current gallery position.
func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Gallery returns the gallery currently being cycled.
func (c *Controller) Gallery() *model.Gallery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gallery
}

// StartTimer installs the cycle timer. Any prior timer is cleared first so
// two tickers can never run concurrently.
func (c *Controller) StartTimer() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startTimerLocked()
}

// StopTimer clears the cycle timer. Safe to call when no timer is running.
func (c *Controller) StopTimer() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimerLocked()
}

func (c *Controller) startTimerLocked() {
	c.stopTimerLocked()

	c.ticker = time.NewTicker(c.interval)
	c.done = make(chan struct{})

	go func(ticker *time.Ticker, done chan struct{}) {
		for {
			select {
			case <-ticker.C:
				c.tick()
			case <-done:
				return
			}
		}
	}(c.ticker, c.done)
}

func (c *Controller) stopTimerLocked() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	close(c.done)
	c.ticker = nil
	c.done = nil
}

// tick advances the slideshow on a timer fire, but only while playing.
func (c *Controller) tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.playing || !c.state.IsReady() {
		return
	}
	c.advanceLocked()
}

// Close stops the timer. Called on window shutdown.
func (c *Controller) Close() {
	c.StopTimer()
}
