package slideshow

import (
	"context"

	"github.com/showkit/showcase-kiosk/internal/model"
)

// DisplaySurface is the single image surface the slideshow drives.
// The UI layer implements it over a canvas image; tests use a fake.
type DisplaySurface interface {
	ShowImage(ref string, fit model.ImageFit)
}

// GallerySource fetches the remote playlist. *api.Client implements it.
type GallerySource interface {
	FetchPlaylist(ctx context.Context) ([]string, error)
}
