package app

import (
	"time"

	"github.com/metinatakli/movie-discovery/internal/domain"
	"github.com/metinatakli/movie-discovery/internal/tmdb"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type MovieCard struct {
	Id          int    `json:"id"`
	Title       string `json:"title"`
	Overview    string `json:"overview"`
	PosterUrl   string `json:"posterUrl"`
	BackdropUrl string `json:"backdropUrl"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	Href        string `json:"href"`
}

type CarouselResponse struct {
	Category   string                 `json:"category"`
	Index      int                    `json:"index"`
	MaxIndex   int                    `json:"maxIndex"`
	State      domain.TransitionState `json:"state"`
	Transition string                 `json:"transition,omitempty"`
	Dropped    bool                   `json:"dropped"`
	Loading    bool                   `json:"loading"`
	Window     []MovieCard            `json:"window"`
}

type CompleteTransitionRequest struct {
	Transition string `json:"transition" validate:"required,uuid"`
}

type NavResponse struct {
	Variant         domain.NavVariant `json:"variant"`
	BackgroundColor string            `json:"backgroundColor"`
	Threshold       int               `json:"threshold"`
}

type SearchToggleResponse struct {
	Open        bool `json:"open"`
	InputScaleX int  `json:"inputScaleX"`
	IconOffsetX int  `json:"iconOffsetX"`
}

func (app *Application) toMovieCards(movies []domain.Movie) []MovieCard {
	cards := make([]MovieCard, len(movies))

	for i, movie := range movies {
		cards[i] = app.toMovieCard(movie)
	}

	return cards
}

func (app *Application) toMovieCard(movie domain.Movie) MovieCard {
	return MovieCard{
		Id:          movie.ID,
		Title:       movie.Title,
		Overview:    movie.Overview,
		PosterUrl:   app.images(movie.PosterPath, tmdb.SizeW500),
		BackdropUrl: app.images(movie.BackdropPath, tmdb.SizeW500),
		ReleaseDate: movie.ReleaseDate,
		Href:        movieHref(movie.ID),
	}
}
