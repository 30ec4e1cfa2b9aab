package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/alexedwards/scs/v2"
	"github.com/metinatakli/movie-discovery/internal/domain"
	"github.com/metinatakli/movie-discovery/internal/mocks"
	"github.com/metinatakli/movie-discovery/internal/repository"
	"github.com/metinatakli/movie-discovery/internal/tmdb"
	"github.com/metinatakli/movie-discovery/internal/validator"
)

var errUpstream = errors.New("tmdb: unexpected status 503")

func newTestApplication(t *testing.T, repo domain.MovieRepository) *Application {
	t.Helper()

	app, err := NewApp(
		Config{Env: "test"},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		nil,
		validator.NewValidator(),
		scs.New(),
		repo,
		repository.NewMemoryCarouselRepository(time.Minute),
		nil,
		tmdb.ImagePath,
	)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	return app
}

// newTestServer serves the application routes and returns a client that keeps
// the session cookie between requests.
func newTestServer(t *testing.T, app *Application) (*httptest.Server, *http.Client) {
	t.Helper()

	srv := httptest.NewServer(app.Routes())
	t.Cleanup(srv.Close)

	return srv, newSessionClient(t)
}

func newSessionClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}

	return &http.Client{Jar: jar}
}

// fixturePage builds a category page of n movies with ids starting at base.
func fixturePage(base, n int) *domain.CategoryPage {
	results := make([]domain.Movie, n)
	for i := range results {
		results[i] = domain.Movie{
			ID:           base + i,
			Title:        "Movie " + string(rune('A'+i%26)),
			Overview:     "Overview",
			PosterPath:   "/poster.jpg",
			BackdropPath: "/backdrop.jpg",
			ReleaseDate:  "2024-05-01",
		}
	}

	return &domain.CategoryPage{Page: 1, Results: results, TotalPages: 1, TotalResults: n}
}

// newCategoryRepo serves the given pages and fails every category that has
// no page.
func newCategoryRepo(pages map[domain.Category]*domain.CategoryPage) *mocks.MockMovieRepo {
	return &mocks.MockMovieRepo{
		GetByCategoryFunc: func(ctx context.Context, category domain.Category) (*domain.CategoryPage, error) {
			page, ok := pages[category]
			if !ok {
				return nil, errUpstream
			}
			return page, nil
		},
		SearchFunc: func(ctx context.Context, keyword string, page int) (*domain.CategoryPage, error) {
			return nil, errUpstream
		},
	}
}

func defaultPages() map[domain.Category]*domain.CategoryPage {
	return map[domain.Category]*domain.CategoryPage{
		domain.CategoryNowPlaying: fixturePage(1000, 20),
		domain.CategoryTopRated:   fixturePage(2000, 20),
		domain.CategoryUpcoming:   fixturePage(3000, 20),
	}
}

func getDocument(t *testing.T, client *http.Client, url string) (*goquery.Document, int) {
	t.Helper()

	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		t.Fatalf("parse %s: %v", url, err)
	}

	return doc, resp.StatusCode
}

func doJSON[T any](t *testing.T, client *http.Client, method, url string, body any) (T, int) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatal(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var dst T
	if err := json.NewDecoder(resp.Body).Decode(&dst); err != nil {
		t.Fatalf("decode %s %s: %v", method, url, err)
	}

	return dst, resp.StatusCode
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	t.Helper()

	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}
