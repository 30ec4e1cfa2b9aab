package integration_test

import (
	"log/slog"
	"os"

	"github.com/metinatakli/movie-discovery/internal/app"
	"github.com/metinatakli/movie-discovery/internal/repository"
	"github.com/metinatakli/movie-discovery/internal/tmdb"
	appvalidator "github.com/metinatakli/movie-discovery/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App       *app.Application
	Redis     *redis.Client
	MovieRepo *repository.RedisCachedMovieRepository
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient, cfg.Session)

	tmdbClient := tmdb.NewClient(tmdb.Config{
		BaseURL:      cfg.TMDB.BaseURL,
		ImageBaseURL: cfg.TMDB.ImageBaseURL,
		APIKey:       cfg.TMDB.APIKey,
		Timeout:      cfg.TMDB.Timeout,
	}, logger)

	movieRepo := repository.NewRedisCachedMovieRepository(tmdbClient, redisClient, cfg.Cache.TTL, logger)

	application, err := app.NewApp(
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
		redisClient.Close()
		return nil, err
	}

	return &TestApp{
		App:       application,
		Redis:     redisClient,
		MovieRepo: movieRepo,
	}, nil
}
