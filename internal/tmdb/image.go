package tmdb

import "strings"

const (
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"

	// PlaceholderImage is served for movies without artwork.
	PlaceholderImage = "/static/placeholder.svg"
)

type ImageSize string

const (
	SizeW500     ImageSize = "w500"
	SizeOriginal ImageSize = "original"
)

// ImagePath builds the CDN URL of an image path returned by the API. The
// size defaults to original. An empty path yields the placeholder image.
func ImagePath(path string, size ...ImageSize) string {
	return imagePath(DefaultImageBaseURL, path, size...)
}

// ImagePath builds image URLs against the client's configured CDN host.
func (c *Client) ImagePath(path string, size ...ImageSize) string {
	return imagePath(c.imageBaseURL, path, size...)
}

func imagePath(base, path string, size ...ImageSize) string {
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	if path == "" {
		return PlaceholderImage
	}

	tier := SizeOriginal
	if len(size) > 0 && size[0] != "" {
		tier = size[0]
	}

	return strings.TrimRight(base, "/") + "/" + string(tier) + "/" + path
}
