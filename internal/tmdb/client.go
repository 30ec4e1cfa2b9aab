// Package tmdb is a thin client for The Movie Database v3 API.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/metinatakli/movie-discovery/internal/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL  = "https://api.themoviedb.org/3"
	DefaultLanguage = "en-US"
	DefaultTimeout  = 10 * time.Second
)

type Config struct {
	BaseURL      string
	ImageBaseURL string
	APIKey       string
	Language     string
	Timeout      time.Duration
}

// Client issues one GET per query and hands back the decoded envelope. It
// never retries; failures surface to the caller as errors.
type Client struct {
	baseURL      string
	imageBaseURL string
	apiKey       string
	language     string
	http         *http.Client
	logger       *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ImageBaseURL == "" {
		cfg.ImageBaseURL = DefaultImageBaseURL
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		imageBaseURL: cfg.ImageBaseURL,
		apiKey:       cfg.APIKey,
		language:     cfg.Language,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
}

// GetByCategory fetches the first page of a category listing.
func (c *Client) GetByCategory(ctx context.Context, category domain.Category) (*domain.CategoryPage, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}

	query := url.Values{}
	query.Set("page", "1")

	var page domain.CategoryPage

	err := c.get(ctx, "/movie/"+category.String(), query, &page)
	if err != nil {
		return nil, fmt.Errorf("get %s movies: %w", category, err)
	}

	c.logger.Debug("fetched category", "category", category, "results", len(page.Results))

	return &page, nil
}

// Search runs a movie title search.
func (c *Client) Search(ctx context.Context, keyword string, page int) (*domain.CategoryPage, error) {
	if page < 1 {
		page = 1
	}

	query := url.Values{}
	query.Set("query", keyword)
	query.Set("page", strconv.Itoa(page))
	query.Set("include_adult", "false")

	var result domain.CategoryPage

	err := c.get(ctx, "/search/movie", query, &result)
	if err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}

	return &result, nil
}

// Ping checks that the API is reachable and accepts the configured key.
func (c *Client) Ping(ctx context.Context) error {
	var discard json.RawMessage

	return c.get(ctx, "/configuration", url.Values{}, &discard)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dst any) error {
	query.Set("api_key", c.apiKey)
	query.Set("language", c.language)

	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// keep the api key out of logs
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = endpoint
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: endpoint, StatusCode: resp.StatusCode}
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}
