package app

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/metinatakli/movie-discovery/internal/domain"
	"github.com/metinatakli/movie-discovery/internal/tmdb"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

type layoutData struct {
	Title           string
	Path            string
	Active          domain.NavItem
	Header          domain.Header
	Nav             domain.NavVariant
	ScrollThreshold int
	Keyword         string
}

type sliderView struct {
	Category domain.Category
	Title    string
	Loading  bool
	Cursor   domain.Cursor
	MaxIndex int
	Window   []domain.Movie
}

type homePage struct {
	layoutData
	Banner  *domain.Movie
	Sliders []sliderView
	Overlay domain.Overlay
}

type tvPage struct {
	layoutData
}

type searchPage struct {
	layoutData
	Loading  bool
	Results  []domain.Movie
	Metadata *domain.Metadata
}

type errorPageData struct {
	layoutData
	Status  int
	Message string
}

func (app *Application) parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"imagePath": func(path string, size string) string {
			return app.images(path, tmdb.ImageSize(size))
		},
		"movieHref": movieHref,
		"add": func(a, b int) int {
			return a + b
		},
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return tmpl, nil
}

func (app *Application) newLayoutData(r *http.Request, title string, header domain.Header) layoutData {
	return layoutData{
		Title:           title,
		Path:            r.URL.Path,
		Active:          domain.ActiveNav(r.URL.Path),
		Header:          header,
		Nav:             domain.NavTop,
		ScrollThreshold: domain.ScrollThreshold,
	}
}

func newSliderView(category domain.Category, page *domain.CategoryPage, cursor domain.Cursor) sliderView {
	view := sliderView{
		Category: category,
		Title:    category.Title(),
		Loading:  page == nil,
		Cursor:   cursor,
	}

	if page == nil {
		return view
	}

	view.Cursor.Clamp(page.Count())
	view.MaxIndex = domain.MaxIndex(page.Count())
	view.Window = domain.Window(page.Results, view.Cursor.Index)

	return view
}
