package app

import (
	"net/http"
	"strconv"

	"github.com/metinatakli/movie-discovery/internal/domain"
)

type navParams struct {
	ScrollY float64 `validate:"min=0"`
}

func (app *Application) GetNavVariant(w http.ResponseWriter, r *http.Request) {
	var params navParams

	if raw := r.URL.Query().Get("scrollY"); raw != "" {
		scrollY, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		params.ScrollY = scrollY
	}

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	variant := domain.NavVariantFor(params.ScrollY)

	resp := NavResponse{
		Variant:         variant,
		BackgroundColor: variant.BackgroundColor(),
		Threshold:       domain.ScrollThreshold,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ToggleSearch(w http.ResponseWriter, r *http.Request) {
	header := app.loadHeader(r.Context())
	header.ToggleSearch()
	app.saveHeader(r.Context(), header)

	resp := SearchToggleResponse{
		Open:        header.SearchOpen,
		InputScaleX: header.InputScaleX(),
		IconOffsetX: header.IconOffsetX(),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
