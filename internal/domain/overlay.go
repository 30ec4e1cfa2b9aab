package domain

type OverlayState string

const (
	OverlayList   OverlayState = "list"
	OverlayDetail OverlayState = "detail"
)

// Overlay is the details card derived from the route. It has no lifecycle
// of its own: it exists only while the route carries a movie id.
type Overlay struct {
	State   OverlayState
	MovieID string
	Movie   *Movie
}

// ResolveOverlay derives the overlay for a route movie id against the loaded
// category pages. An id that matches nothing yields an empty details card.
func ResolveOverlay(movieID string, pages ...*CategoryPage) Overlay {
	if movieID == "" {
		return Overlay{State: OverlayList}
	}

	overlay := Overlay{State: OverlayDetail, MovieID: movieID}

	if movie, ok := FindMovie(movieID, pages...); ok {
		overlay.Movie = &movie
	}

	return overlay
}

func (o Overlay) Open() bool {
	return o.State == OverlayDetail
}
