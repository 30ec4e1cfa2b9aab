package domain

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryNowPlaying Category = "now_playing"
	CategoryTopRated   Category = "top_rated"
	CategoryUpcoming   Category = "upcoming"
)

// Categories lists the carousels in the order they are displayed.
var Categories = []Category{CategoryNowPlaying, CategoryTopRated, CategoryUpcoming}

func (c Category) String() string {
	return string(c)
}

// Title is the heading shown above the category's carousel.
func (c Category) Title() string {
	switch c {
	case CategoryNowPlaying:
		return "Now Playing"
	case CategoryTopRated:
		return "Top Rated"
	case CategoryUpcoming:
		return "Upcoming"
	default:
		return string(c)
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryNowPlaying, CategoryTopRated, CategoryUpcoming:
		return true
	}

	return false
}

// ParseCategory accepts the canonical tokens ("now_playing", "top_rated",
// "upcoming") and the display-name forms ("nowPlaying", "Top Rated", ...).
// Anything else is rejected with ErrUnknownCategory.
func ParseCategory(s string) (Category, error) {
	if c := Category(s); c.Valid() {
		return c, nil
	}

	switch normalizeCategory(s) {
	case "nowplaying":
		return CategoryNowPlaying, nil
	case "toprated":
		return CategoryTopRated, nil
	case "upcoming":
		return CategoryUpcoming, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// CategoryOrDefault keeps the loose matching of the legacy query parameter:
// anything containing "Now" is now playing, anything containing "Top" is top
// rated, and everything else, typos included, falls back to upcoming.
func CategoryOrDefault(s string) Category {
	switch {
	case strings.Contains(s, "Now"):
		return CategoryNowPlaying
	case strings.Contains(s, "Top"):
		return CategoryTopRated
	default:
		return CategoryUpcoming
	}
}

func normalizeCategory(s string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(s) {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
