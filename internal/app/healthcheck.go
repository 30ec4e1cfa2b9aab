package app

import (
	"context"
	"net/http"
	"time"

	"github.com/metinatakli/movie-discovery/internal/vcs"
)

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := "UP"
	systemInfo := SystemInfo{
		Version:     vcs.Version(),
		Environment: app.config.Env,
	}

	resp := HealthcheckResponse{
		Status:     status,
		SystemInfo: systemInfo,
	}

	app.writeJSON(w, http.StatusOK, resp, nil)
}

// GetReadiness reports whether redis and the movie catalog can be reached.
// Dependencies that are not configured are skipped.
func (app *Application) GetReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	resp := ReadinessResponse{
		Status: "UP",
		Checks: make(map[string]string),
	}

	check := func(name string, ping func(context.Context) error) {
		err := ping(ctx)
		if err != nil {
			app.contextGetLogger(r).Warn("readiness check failed", "dependency", name, "error", err)
			resp.Status = "DOWN"
			resp.Checks[name] = "DOWN"
			return
		}
		resp.Checks[name] = "UP"
	}

	if app.redis != nil {
		check("redis", func(ctx context.Context) error {
			return app.redis.Ping(ctx).Err()
		})
	}

	if app.catalog != nil {
		check("tmdb", app.catalog.Ping)
	}

	status := http.StatusOK
	if resp.Status != "UP" {
		status = http.StatusServiceUnavailable
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
