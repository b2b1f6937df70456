package model

// ImageFit selects how an image is scaled onto the display surface.
type ImageFit string

const (
	// FitCover crops the image so it fills the surface completely.
	FitCover ImageFit = "cover"

	// FitContain letterboxes the image so nothing is cropped. Used for
	// portrait shots that would lose their subject under FitCover.
	FitContain ImageFit = "contain"
)

// verticalImages lists the portrait references that need FitContain
// treatment. Everything else renders with FitCover.
var verticalImages = map[string]bool{
	"/images/slideshow/atelier-04.jpg":  true,
	"/images/slideshow/atelier-09.jpg":  true,
	"/images/slideshow/lookbook-02.jpg": true,
	"/images/slideshow/lookbook-11.jpg": true,
}

// Gallery is the ordered set of showcase images cycled by the slideshow.
type Gallery struct {
	Images []string
}

// NewGallery creates a gallery from an ordered list of image references.
func NewGallery(images []string) *Gallery {
	return &Gallery{Images: images}
}

// DefaultGallery returns the built-in showcase sequence used whenever the
// remote playlist is unavailable or malformed.
func DefaultGallery() *Gallery {
	return NewGallery([]string{
		"/images/slideshow/atelier-01.jpg",
		"/images/slideshow/atelier-02.jpg",
		"/images/slideshow/atelier-03.jpg",
		"/images/slideshow/atelier-04.jpg",
		"/images/slideshow/atelier-05.jpg",
		"/images/slideshow/atelier-06.jpg",
		"/images/slideshow/atelier-07.jpg",
		"/images/slideshow/atelier-08.jpg",
		"/images/slideshow/atelier-09.jpg",
		"/images/slideshow/atelier-10.jpg",
		"/images/slideshow/lookbook-01.jpg",
		"/images/slideshow/lookbook-02.jpg",
		"/images/slideshow/lookbook-03.jpg",
		"/images/slideshow/lookbook-04.jpg",
		"/images/slideshow/lookbook-05.jpg",
	})
}

// Len returns the number of images in the gallery.
func (g *Gallery) Len() int {
	return len(g.Images)
}

// IsEmpty reports whether the gallery has no images.
func (g *Gallery) IsEmpty() bool {
	return len(g.Images) == 0
}

// ImageAt returns the image reference at the given index and whether the
// index was in range.
func (g *Gallery) ImageAt(index int) (string, bool) {
	if index < 0 || index >= len(g.Images) {
		return "", false
	}
	return g.Images[index], true
}

// FitFor returns the display treatment for an image reference.
func FitFor(ref string) ImageFit {
	if verticalImages[ref] {
		return FitContain
	}
	return FitCover
}
