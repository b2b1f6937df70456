package api

import (
	"context"

	"github.com/pkg/errors"
)

// ErrBadShape is returned when the playlist response decodes but is missing
// the expected array field.
var ErrBadShape = errors.New("playlist response missing playlist array")

// playlistResponse mirrors GET /api/playlist.
type playlistResponse struct {
	Playlist []string `json:"playlist"`
}

// FetchPlaylist retrieves the ordered slideshow image references. Any
// transport error, non-2xx status, or unexpected payload shape is an error;
// the slideshow substitutes its built-in gallery in that case.
func (c *Client) FetchPlaylist(ctx context.Context) ([]string, error) {
	var out playlistResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/playlist")
	if err != nil {
		return nil, errors.Wrap(err, "fetch playlist")
	}
	if !resp.IsSuccess() {
		return nil, errors.Errorf("fetch playlist: unexpected status %s", resp.Status())
	}
	if out.Playlist == nil {
		return nil, ErrBadShape
	}

	return out.Playlist, nil
}
