package integration_test

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/metinatakli/movie-discovery/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

// fakeTMDB serves canned API responses and counts the requests per path.
type fakeTMDB struct {
	mu     sync.Mutex
	hits   map[string]int
	fail   map[string]bool
	bodies map[string]string
}

func newFakeTMDB() *fakeTMDB {
	f := &fakeTMDB{
		bodies: map[string]string{
			"/movie/now_playing": nowPlayingJSON,
			"/movie/top_rated":   topRatedJSON,
			"/movie/upcoming":    upcomingJSON,
			"/search/movie":      searchJSON,
			"/configuration":     `{"images": {}}`,
		},
	}
	f.Reset()

	return f
}

func (f *fakeTMDB) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.hits[r.URL.Path]++
	fail := f.fail[r.URL.Path]
	body, ok := f.bodies[r.URL.Path]
	f.mu.Unlock()

	if r.URL.Query().Get("api_key") != tmdbAPIKey {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if !ok {
		http.NotFound(w, r)
		return
	}

	if fail {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, body)
}

func (f *fakeTMDB) Hits(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

func (f *fakeTMDB) SetFailing(path string, failing bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[path] = failing
}

func (f *fakeTMDB) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hits = make(map[string]int)
	f.fail = make(map[string]bool)
}

type BaseSuite struct {
	suite.Suite
	app            *TestApp
	cacheContainer *RedisContainer
	tmdb           *fakeTMDB
	tmdbServer     *httptest.Server
	server         *httptest.Server
}

func (s *BaseSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()

	redisContainer, err := getCacheContainer(ctx)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		s.T().FailNow()
	}

	s.cacheContainer = redisContainer
	s.tmdb = newFakeTMDB()
	s.tmdbServer = httptest.NewServer(s.tmdb)

	cfg := app.Config{
		Port: 3000,
		Env:  "test",
		TMDB: app.TMDBConfig{
			APIKey:       tmdbAPIKey,
			BaseURL:      s.tmdbServer.URL,
			ImageBaseURL: "http://images.test/t/p",
			Timeout:      5 * time.Second,
		},
		Redis: app.RedisConfig{
			URL:          redisContainer.ConnectionString,
			MaxOpenConns: 10,
			MaxIdleConns: 10,
			MaxIdleTime:  2 * time.Minute,
		},
		Cache:   app.CacheConfig{TTL: time.Minute},
		Session: app.SessionConfig{IdleTimeout: 5 * time.Minute},
	}

	testApp, err := newTestApp(cfg)
	if err != nil {
		log.Printf("cannot initialize app: %s", err)
		s.T().FailNow()
	}

	s.app = testApp
	s.server = httptest.NewServer(testApp.App.Routes())
}

func (s *BaseSuite) SetupTest() {
	s.tmdb.Reset()
	s.Require().NoError(s.app.Redis.FlushAll(context.Background()).Err())
}

func (s *BaseSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.tmdbServer != nil {
		s.tmdbServer.Close()
	}
	if s.app != nil {
		s.app.Redis.Close()
	}
	if s.cacheContainer != nil {
		if err := testcontainers.TerminateContainer(s.cacheContainer.Container); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
}

type Scenario struct {
	Name             string
	Method           string
	URL              string
	Body             io.Reader
	Headers          map[string]string
	Cookies          []http.Cookie
	ExpectedStatus   int
	ExpectedResponse string
	BeforeTestFunc   func(t testing.TB, app *TestApp)
	AfterTestFunc    func(t testing.TB, app *TestApp, res *http.Response)
}

func (s Scenario) Run(t *testing.T, testApp *TestApp) {
	t.Run(s.Name, func(t *testing.T) {
		req, err := prepareRequest(s.Method, s.URL, s.Body, s.Headers, s.Cookies)
		require.NoError(t, err)

		if s.BeforeTestFunc != nil {
			s.BeforeTestFunc(t, testApp)
		}

		rec := httptest.NewRecorder()
		testApp.App.Routes().ServeHTTP(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		assert.Equal(t, s.ExpectedStatus, res.StatusCode)

		if s.ExpectedResponse != "" {
			compareResponse(t, res.Body, s.ExpectedResponse)
		}

		if s.AfterTestFunc != nil {
			s.AfterTestFunc(t, testApp, res)
		}
	})
}
