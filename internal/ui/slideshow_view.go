package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/showkit/showcase-kiosk/internal/model"
)

// SlideshowView is the single display surface the slideshow controller
// drives. Image swaps arrive from the cycle timer goroutine, so every
// mutation is funneled through fyne.Do.
type SlideshowView struct {
	image *canvas.Image
}

// NewSlideshowView creates an empty display surface.
func NewSlideshowView() *SlideshowView {
	img := canvas.NewImageFromFile("")
	img.FillMode = canvas.ImageFillCover
	img.SetMinSize(fyne.NewSize(SlideMinWidth, SlideMinHeight))

	return &SlideshowView{image: img}
}

// ShowImage swaps the displayed image and its scaling treatment.
func (v *SlideshowView) ShowImage(ref string, fit model.ImageFit) {
	fyne.Do(func() {
		if fit == model.FitContain {
			v.image.FillMode = canvas.ImageFillContain
		} else {
			v.image.FillMode = canvas.ImageFillCover
		}
		v.image.File = ref
		v.image.Refresh()
	})
}

// CanvasObject returns the renderable surface for layout.
func (v *SlideshowView) CanvasObject() fyne.CanvasObject {
	return v.image
}
