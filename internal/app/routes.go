package app

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(otelchi.Middleware("movie-discovery", otelchi.WithChiRoutes(r)))
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)

	r.NotFound(app.notFoundPage)

	staticSub, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	r.Get("/v1/healthcheck", app.GetHealth)
	r.Get("/v1/readiness", app.GetReadiness)

	r.Group(func(r chi.Router) {
		r.Use(app.sessionManager.LoadAndSave)

		r.Get("/", app.showHome)
		r.Get("/movies/{movieId}", app.showMovie)
		r.Get("/tv", app.showTV)
		r.Get("/search", app.showSearch)

		r.Route("/api", func(r chi.Router) {
			r.Get("/categories", app.GetCategoryByTitle)
			r.Get("/categories/{category}", app.GetCategory)

			r.Route("/carousels/{category}", func(r chi.Router) {
				r.Get("/", app.GetCarousel)
				r.Post("/advance", app.AdvanceCarousel)
				r.Post("/retreat", app.RetreatCarousel)
				r.Post("/complete", app.CompleteCarouselTransition)
			})

			r.Get("/header/nav", app.GetNavVariant)
			r.Post("/header/search/toggle", app.ToggleSearch)
		})
	})

	return r
}
