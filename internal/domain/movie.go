package domain

import (
	"context"
	"strconv"
	"time"
)

type Movie struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Overview     string `json:"overview"`
	PosterPath   string `json:"poster_path"`
	BackdropPath string `json:"backdrop_path"`
	ReleaseDate  string `json:"release_date,omitempty"`
}

// Year returns the release year, or 0 when the release date is missing or malformed.
func (m Movie) Year() int {
	t, err := time.Parse(time.DateOnly, m.ReleaseDate)
	if err != nil {
		return 0
	}

	return t.Year()
}

// Dates is the release window TMDB attaches to now playing and upcoming lists.
type Dates struct {
	Maximum string `json:"maximum"`
	Minimum string `json:"minimum"`
}

// CategoryPage is one result envelope of a category query. Results keep the
// order the server returned them in.
type CategoryPage struct {
	Dates        *Dates  `json:"dates,omitempty"`
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Banner returns the first movie of the page, which is reserved for the hero banner.
func (p *CategoryPage) Banner() (Movie, bool) {
	if p == nil || len(p.Results) == 0 {
		return Movie{}, false
	}

	return p.Results[0], true
}

// Count returns the number of movies in the page, banner included.
func (p *CategoryPage) Count() int {
	if p == nil {
		return 0
	}

	return len(p.Results)
}

// FindMovie looks up a movie by its route id across the given pages in
// order. The id is compared in its string form, like a route parameter.
func FindMovie(id string, pages ...*CategoryPage) (Movie, bool) {
	if id == "" {
		return Movie{}, false
	}

	for _, page := range pages {
		if page == nil {
			continue
		}

		for _, movie := range page.Results {
			if strconv.Itoa(movie.ID) == id {
				return movie, true
			}
		}
	}

	return Movie{}, false
}

type MovieRepository interface {
	GetByCategory(ctx context.Context, category Category) (*CategoryPage, error)
	Search(ctx context.Context, keyword string, page int) (*CategoryPage, error)
}
