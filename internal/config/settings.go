package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyDisplayCurrency = "display_currency"
	KeyCycleIntervalMS = "cycle_interval_ms"
	KeyAPIBaseURL      = "api_base_url"
)

// Default values
const (
	DefaultDisplayCurrency = "USD"
	DefaultCycleIntervalMS = 500
	DefaultAPIBaseURL      = "http://localhost:8080"

	MinCycleIntervalMS = 100
	MaxCycleIntervalMS = 60000
)

// Settings manages application configuration. The preference store doubles
// as the persisted currency choice that survives restarts.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDisplayCurrency returns the persisted display currency code
func (s *Settings) GetDisplayCurrency() string {
	code := s.app.Preferences().String(KeyDisplayCurrency)
	if code == "" {
		s.SetDisplayCurrency(DefaultDisplayCurrency)
		return DefaultDisplayCurrency
	}
	return code
}

// SetDisplayCurrency persists the display currency code
func (s *Settings) SetDisplayCurrency(code string) {
	if code == "" {
		code = DefaultDisplayCurrency
	}
	s.app.Preferences().SetString(KeyDisplayCurrency, code)
}

// GetCycleInterval returns the slideshow cycle interval
func (s *Settings) GetCycleInterval() time.Duration {
	ms := s.app.Preferences().Int(KeyCycleIntervalMS)
	if ms <= 0 {
		s.SetCycleIntervalMS(DefaultCycleIntervalMS)
		return DefaultCycleIntervalMS * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}

// SetCycleIntervalMS sets the slideshow cycle interval in milliseconds
func (s *Settings) SetCycleIntervalMS(ms int) {
	if ms < MinCycleIntervalMS {
		ms = MinCycleIntervalMS
	}
	if ms > MaxCycleIntervalMS {
		ms = MaxCycleIntervalMS
	}
	s.app.Preferences().SetInt(KeyCycleIntervalMS, ms)
}

// GetAPIBaseURL returns the showcase backend base URL
func (s *Settings) GetAPIBaseURL() string {
	url := s.app.Preferences().String(KeyAPIBaseURL)
	if url == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return url
}

// SetAPIBaseURL sets the showcase backend base URL
func (s *Settings) SetAPIBaseURL(url string) {
	if url == "" {
		url = DefaultAPIBaseURL
	}
	s.app.Preferences().SetString(KeyAPIBaseURL, url)
}
