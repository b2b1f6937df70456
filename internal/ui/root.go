package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/showkit/showcase-kiosk/internal/config"
	"github.com/showkit/showcase-kiosk/internal/model"
	"github.com/showkit/showcase-kiosk/internal/pricing"
	"github.com/showkit/showcase-kiosk/internal/slideshow"
)

// RootUI represents the main UI structure. It owns the display collaborators
// (slideshow surface, price board, currency selector) and hands them to the
// widget controllers through Bind.
type RootUI struct {
	window   fyne.Window
	settings *config.Settings

	slideshowView  *SlideshowView
	priceBoard     *PriceBoardView
	currencySelect *CurrencySelect

	controller *slideshow.Controller
	updater    *pricing.Updater

	playBtn *widget.Button
	prevBtn *widget.Button
	nextBtn *widget.Button
}

// NewRootUI creates and arranges the main UI. Controllers are attached
// afterwards via Bind, once they have been constructed over the surfaces
// this UI exposes.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings) *RootUI {
	ui := &RootUI{
		window:   window,
		settings: settings,

		slideshowView:  NewSlideshowView(),
		priceBoard:     NewPriceBoardView(model.DefaultCatalog()),
		currencySelect: NewCurrencySelect(pricing.KnownCurrencies()),
	}

	ui.setupUI()
	return ui
}

// Surface returns the slideshow's display surface.
func (ui *RootUI) Surface() slideshow.DisplaySurface {
	return ui.slideshowView
}

// PriceBoard returns the priced-element board.
func (ui *RootUI) PriceBoard() pricing.PriceBoard {
	return ui.priceBoard
}

// CurrencySelector returns the currency drop-down.
func (ui *RootUI) CurrencySelector() pricing.CurrencySelector {
	return ui.currencySelect
}

// Bind attaches the widget controllers and syncs the transport controls to
// their state. The play-state callback fires from the loader goroutine, so
// it hops onto the UI thread before touching widgets.
func (ui *RootUI) Bind(controller *slideshow.Controller, updater *pricing.Updater) {
	ui.controller = controller
	ui.updater = updater

	controller.SetPlayStateCallback(func(playing bool) {
		fyne.Do(func() {
			ui.syncPlayButton(playing)
		})
	})

	ui.syncPlayButton(controller.Playing())
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Slideshow transport controls
	ui.prevBtn = widget.NewButton(IconPrev, ui.onPrev)
	ui.playBtn = widget.NewButton(IconPause+" "+LabelPause, ui.onTogglePlay)
	ui.nextBtn = widget.NewButton(IconNext, ui.onNext)

	transport := container.NewHBox(
		layout.NewSpacer(),
		ui.prevBtn,
		ui.playBtn,
		ui.nextBtn,
		layout.NewSpacer(),
	)

	showcase := container.NewBorder(nil, transport, nil, nil, ui.slideshowView.CanvasObject())

	// Collections section: currency picker above the price board
	currencyRow := container.NewHBox(
		widget.NewLabel(LabelCurrency),
		ui.currencySelect.Widget(),
		layout.NewSpacer(),
	)
	collections := container.NewBorder(currencyRow, nil, nil, nil, ui.priceBoard.CanvasObject())

	tabs := container.NewAppTabs(
		container.NewTabItem(TabShowcase, showcase),
		container.NewTabItem(TabCollections, collections),
	)

	supportBtn := widget.NewButton(LabelSupport, ui.onShowSupport)
	header := container.NewHBox(layout.NewSpacer(), supportBtn)

	ui.window.SetContent(container.NewBorder(header, nil, nil, nil, tabs))
}

// onTogglePlay flips play/pause and syncs the button to the new state.
func (ui *RootUI) onTogglePlay() {
	if ui.controller == nil {
		return
	}
	ui.syncPlayButton(ui.controller.TogglePlay())
}

// syncPlayButton derives both the label and the pressed styling from the
// playing flag, keeping the two from ever disagreeing.
func (ui *RootUI) syncPlayButton(playing bool) {
	if playing {
		ui.playBtn.SetText(IconPause + " " + LabelPause)
		ui.playBtn.Importance = widget.HighImportance
	} else {
		ui.playBtn.SetText(IconPlay + " " + LabelPlay)
		ui.playBtn.Importance = widget.MediumImportance
	}
	ui.playBtn.Refresh()
}

// onNext advances manually; works whether or not the slideshow is playing.
func (ui *RootUI) onNext() {
	if ui.controller == nil {
		return
	}
	ui.controller.Advance()
}

// onPrev steps back manually.
func (ui *RootUI) onPrev() {
	if ui.controller == nil {
		return
	}
	ui.controller.Retreat()
}

// onShowSupport opens the support contact dialog.
func (ui *RootUI) onShowSupport() {
	body := widget.NewLabel(SupportBody)
	body.Wrapping = fyne.TextWrapWord

	dialog.NewCustom(SupportTitle, "Close", body, ui.window).Show()
}
