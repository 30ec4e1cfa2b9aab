package app

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movie-discovery/internal/domain"
	"github.com/metinatakli/movie-discovery/internal/repository"
	"github.com/metinatakli/movie-discovery/internal/tmdb"
	appvalidator "github.com/metinatakli/movie-discovery/internal/validator"
	"github.com/metinatakli/movie-discovery/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
)

var (
	version = vcs.Version()
)

// ImageResolver turns an API image path into a displayable URL.
type ImageResolver func(path string, size ...tmdb.ImageSize) string

// Pinger reports whether an upstream dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Application struct {
	config         Config
	logger         *slog.Logger
	redis          redis.UniversalClient
	validator      *validator.Validate
	sessionManager *scs.SessionManager
	templates      *template.Template
	images         ImageResolver

	movieRepo domain.MovieRepository
	carousels domain.CarouselRepository
	catalog   Pinger
	metrics   *appMetrics
}

type Config struct {
	Port             int    `mapstructure:"port" validate:"min=1,max=65535"`
	Env              string `mapstructure:"env" validate:"oneof=dev staging prod test"`
	OtelCollectorUrl string `mapstructure:"otel_collector_url"`

	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Session SessionConfig `mapstructure:"session"`
}

type TMDBConfig struct {
	APIKey       string        `mapstructure:"api_key" validate:"required"`
	BaseURL      string        `mapstructure:"base_url" validate:"omitempty,url"`
	ImageBaseURL string        `mapstructure:"image_base_url" validate:"omitempty,url"`
	Language     string        `mapstructure:"language"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

type RedisConfig struct {
	URL          string        `mapstructure:"url" validate:"required"`
	MaxOpenConns int           `mapstructure:"max_open_conns" validate:"min=1"`
	MaxIdleConns int           `mapstructure:"max_idle_conns" validate:"min=0"`
	MaxIdleTime  time.Duration `mapstructure:"max_idle_time"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type SessionConfig struct {
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	redisClient redis.UniversalClient,
	validator *validator.Validate,
	sessionManager *scs.SessionManager,
	movieRepo domain.MovieRepository,
	carousels domain.CarouselRepository,
	catalog Pinger,
	images ImageResolver,
) (*Application, error) {
	if images == nil {
		images = tmdb.ImagePath
	}

	metrics, err := newAppMetrics(otel.Meter(instrumentationName))
	if err != nil {
		return nil, err
	}

	app := &Application{
		config:         cfg,
		logger:         logger,
		redis:          redisClient,
		validator:      validator,
		sessionManager: sessionManager,
		images:         images,
		movieRepo:      movieRepo,
		carousels:      carousels,
		catalog:        catalog,
		metrics:        metrics,
	}

	tmpl, err := app.parseTemplates()
	if err != nil {
		return nil, err
	}
	app.templates = tmpl

	return app, nil
}

// Run wires the application from cfg and serves it until SIGINT or SIGTERM.
func Run(cfg Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	validator := appvalidator.NewValidator()

	err := validator.Struct(cfg)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	bootstrap := &Application{config: cfg, logger: logger}

	shutdownTelemetry, err := bootstrap.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(NewMultiHandler(
			logger.Handler(),
			otelslog.NewHandler("movie-discovery"),
		))
	}

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	tmdbClient := tmdb.NewClient(tmdb.Config{
		BaseURL:      cfg.TMDB.BaseURL,
		ImageBaseURL: cfg.TMDB.ImageBaseURL,
		APIKey:       cfg.TMDB.APIKey,
		Language:     cfg.TMDB.Language,
		Timeout:      cfg.TMDB.Timeout,
	}, logger)

	movieRepo := repository.NewRedisCachedMovieRepository(tmdbClient, redisClient, cfg.Cache.TTL, logger)
	sessionManager := NewSessionManager(redisClient, cfg.Session)

	app, err := NewApp(
		cfg,
		logger,
		redisClient,
		validator,
		sessionManager,
		movieRepo,
		repository.NewRedisCarouselRepository(redisClient, sessionManager.Lifetime),
		tmdbClient,
		tmdbClient.ImagePath,
	)
	if err != nil {
		return err
	}

	return app.serve()
}

func NewSessionManager(client *redis.Client, cfg SessionConfig) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	if cfg.IdleTimeout > 0 {
		sessionManager.IdleTimeout = cfg.IdleTimeout
	}
	sessionManager.Cookie.Name = "session_id"
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode

	return sessionManager
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
	if err != nil {
		rdb.Close()
		return nil, fmt.Errorf("instrument redis client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "version", version)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
