package app

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movie-discovery/internal/domain"
	appvalidator "github.com/metinatakli/movie-discovery/internal/validator"
)

const (
	ErrInternalServer      = "The server encountered a problem and could not process your request"
	ErrNotFound            = "The requested resource not found"
	ErrFailedValidation    = "One or more fields failed validation"
	ErrUpstreamUnavailable = "The movie catalog is not available right now"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.contextGetLogger(r).Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) editConflictResponseWithErr(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusConflict, err.Error())
}

func (app *Application) upstreamUnavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.contextGetLogger(r).Warn("movie catalog request failed", "error", err)
	app.errorResponse(w, r, http.StatusServiceUnavailable, ErrUpstreamUnavailable)
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := ValidationErrorResponse{
		Message:          ErrFailedValidation,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: make([]ValidationError, 0, len(validationErrors)),
	}

	for _, fe := range validationErrors {
		resp.ValidationErrors = append(resp.ValidationErrors, ValidationError{
			Field: fe.Field(),
			Issue: appvalidator.ValidationMessage(fe),
		})
	}

	err = app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

// notFoundPage answers unknown API paths with JSON and everything else with
// the HTML error page.
func (app *Application) notFoundPage(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		app.notFoundResponse(w, r)
		return
	}

	app.errorPage(w, r, http.StatusNotFound, "This page could not be found.")
}

func (app *Application) errorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	data := errorPageData{
		layoutData: app.newLayoutData(r, http.StatusText(status), domain.Header{}),
		Status:     status,
		Message:    message,
	}

	app.render(w, r, status, "error.html", data)
}
