package app

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/metinatakli/movie-discovery/internal/domain"
)

func (app *Application) showTV(w http.ResponseWriter, r *http.Request) {
	data := tvPage{
		layoutData: app.newLayoutData(r, "TV Shows", app.loadHeader(r.Context())),
	}

	app.render(w, r, http.StatusOK, "tv.html", data)
}

func (app *Application) showSearch(w http.ResponseWriter, r *http.Request) {
	filters := domain.SearchFilters{
		Keyword: strings.TrimSpace(r.URL.Query().Get("keyword")),
		Page:    1,
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			app.errorPage(w, r, http.StatusBadRequest, "The page number must be an integer.")
			return
		}
		filters.Page = page
	}

	err := app.validator.Struct(filters)
	if err != nil {
		app.errorPage(w, r, http.StatusUnprocessableEntity, "The search keyword must be at most 100 characters and the page between 1 and 500.")
		return
	}

	data := searchPage{
		layoutData: app.newLayoutData(r, "Search", app.loadHeader(r.Context())),
		Results:    []domain.Movie{},
	}
	data.Keyword = filters.Keyword

	if filters.Keyword != "" {
		page, err := app.movieRepo.Search(r.Context(), filters.Keyword, filters.Page)
		if err != nil {
			app.contextGetLogger(r).Warn("movie search failed", "keyword", filters.Keyword, "error", err)
			data.Loading = true
		} else {
			data.Results = page.Results
			data.Metadata = page.Metadata()
		}
	}

	app.render(w, r, http.StatusOK, "search.html", data)
}
