package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/movie-discovery/internal/domain"
)

type categoryParams struct {
	Category string `validate:"required,category"`
}

// categoryParam validates the {category} route parameter. It writes the
// error response itself and reports false when the parameter is unusable.
func (app *Application) categoryParam(w http.ResponseWriter, r *http.Request) (domain.Category, bool) {
	params := categoryParams{Category: chi.URLParam(r, "category")}

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return "", false
	}

	// The category tag accepted the value, so parsing cannot fail here.
	category, _ := domain.ParseCategory(params.Category)

	return category, true
}

func (app *Application) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, ok := app.categoryParam(w, r)
	if !ok {
		return
	}

	app.writeCategory(w, r, category)
}

// GetCategoryByTitle serves the legacy ?category= lookup, which matches on
// the display title and never rejects a value.
func (app *Application) GetCategoryByTitle(w http.ResponseWriter, r *http.Request) {
	app.writeCategory(w, r, domain.CategoryOrDefault(r.URL.Query().Get("category")))
}

func (app *Application) writeCategory(w http.ResponseWriter, r *http.Request, category domain.Category) {
	page, err := app.movieRepo.GetByCategory(r.Context(), category)
	if err != nil {
		app.upstreamUnavailableResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, page, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetCarousel(w http.ResponseWriter, r *http.Request) {
	category, ok := app.categoryParam(w, r)
	if !ok {
		return
	}

	page := app.loadCategory(r, category)

	cursor, err := app.loadCursor(r.Context(), category)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeCarousel(w, r, category, page, domain.StepResult{Cursor: cursor})
}

func (app *Application) AdvanceCarousel(w http.ResponseWriter, r *http.Request) {
	app.stepCarousel(w, r, "advance", (*domain.Cursor).Advance)
}

func (app *Application) RetreatCarousel(w http.ResponseWriter, r *http.Request) {
	app.stepCarousel(w, r, "retreat", (*domain.Cursor).Retreat)
}

// stepCarousel moves the category's cursor unless a transition holds the
// lock. The check and the move happen in one repository update, so of
// several concurrent steps only one is accepted.
func (app *Application) stepCarousel(
	w http.ResponseWriter,
	r *http.Request,
	direction string,
	step func(*domain.Cursor, int) domain.StepResult,
) {
	category, ok := app.categoryParam(w, r)
	if !ok {
		return
	}

	page := app.loadCategory(r, category)

	var result domain.StepResult

	_, err := app.updateCursor(r.Context(), category, func(c *domain.Cursor) (bool, error) {
		if page != nil && !c.Transitioning() {
			c.Clamp(page.Count())
		}

		result = step(c, page.Count())

		return !result.Dropped, nil
	})
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.metrics.carouselStep(r.Context(), category, direction, result.Dropped)

	if result.Dropped {
		app.contextGetLogger(r).Debug("carousel step dropped",
			"category", category, "direction", direction, "state", result.State, "loading", page == nil)
	}

	app.writeCarousel(w, r, category, page, result)
}

func (app *Application) CompleteCarouselTransition(w http.ResponseWriter, r *http.Request) {
	category, ok := app.categoryParam(w, r)
	if !ok {
		return
	}

	var input CompleteTransitionRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	cursor, err := app.updateCursor(r.Context(), category, func(c *domain.Cursor) (bool, error) {
		wasTransitioning := c.Transitioning()

		err := c.Complete(input.Transition)
		if err != nil {
			return false, err
		}

		return wasTransitioning, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTransitionMismatch):
			app.contextGetLogger(r).Warn("stale carousel transition completion", "category", category)
			app.editConflictResponseWithErr(w, r, fmt.Errorf("transition %s is not in flight", input.Transition))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	page := app.loadCategory(r, category)
	app.writeCarousel(w, r, category, page, domain.StepResult{Cursor: cursor})
}

// loadCategory returns nil while the category cannot be loaded, which the
// carousel treats as still loading.
func (app *Application) loadCategory(r *http.Request, category domain.Category) *domain.CategoryPage {
	page, err := app.movieRepo.GetByCategory(r.Context(), category)
	if err != nil {
		app.contextGetLogger(r).Warn("failed to load category", "category", category, "error", err)
		return nil
	}

	return page
}

func (app *Application) writeCarousel(
	w http.ResponseWriter,
	r *http.Request,
	category domain.Category,
	page *domain.CategoryPage,
	result domain.StepResult,
) {
	resp := CarouselResponse{
		Category:   category.String(),
		Index:      result.Index,
		State:      result.State,
		Transition: result.Transition,
		Dropped:    result.Dropped,
		Loading:    page == nil,
		Window:     []MovieCard{},
	}

	if page != nil {
		resp.MaxIndex = domain.MaxIndex(page.Count())
		resp.Window = app.toMovieCards(domain.Window(page.Results, result.Index))
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
