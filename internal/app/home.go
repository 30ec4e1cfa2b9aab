package app

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/movie-discovery/internal/domain"
)

func (app *Application) showHome(w http.ResponseWriter, r *http.Request) {
	app.renderHome(w, r, "")
}

func (app *Application) showMovie(w http.ResponseWriter, r *http.Request) {
	app.renderHome(w, r, chi.URLParam(r, "movieId"))
}

func (app *Application) renderHome(w http.ResponseWriter, r *http.Request, movieID string) {
	pages := app.fetchCategories(r.Context(), domain.Categories)
	carousel := app.settleCarousel(r.Context())

	data := homePage{
		layoutData: app.newLayoutData(r, "Home", app.loadHeader(r.Context())),
		Sliders:    make([]sliderView, 0, len(domain.Categories)),
	}

	if banner, ok := pages[domain.CategoryNowPlaying].Banner(); ok {
		data.Banner = &banner
	}

	loaded := make([]*domain.CategoryPage, 0, len(domain.Categories))

	for _, category := range domain.Categories {
		page := pages[category]
		data.Sliders = append(data.Sliders, newSliderView(category, page, carousel.Cursor(category)))

		if page != nil {
			loaded = append(loaded, page)
		}
	}

	data.Overlay = domain.ResolveOverlay(movieID, loaded...)
	if data.Overlay.Open() {
		data.Title = "Details"
		if data.Overlay.Movie != nil {
			data.Title = data.Overlay.Movie.Title
		}
	}

	app.render(w, r, http.StatusOK, "home.html", data)
}

// fetchCategories loads the categories concurrently. Each fetch stands on its
// own: a failure is logged and leaves that category out of the result, which
// the page renders as a loading section.
func (app *Application) fetchCategories(ctx context.Context, categories []domain.Category) map[domain.Category]*domain.CategoryPage {
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		pages = make(map[domain.Category]*domain.CategoryPage, len(categories))
	)

	for _, category := range categories {
		wg.Add(1)

		go func(category domain.Category) {
			defer wg.Done()

			page, err := app.movieRepo.GetByCategory(ctx, category)
			if err != nil {
				app.logger.Warn("failed to load category", "category", category, "error", err)
				return
			}

			mu.Lock()
			pages[category] = page
			mu.Unlock()
		}(category)
	}

	wg.Wait()

	return pages
}
