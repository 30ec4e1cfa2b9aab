package app

import (
	"context"

	"github.com/google/uuid"
	"github.com/metinatakli/movie-discovery/internal/domain"
)

type sessionKey string

const (
	SessionKeyVisitor    = sessionKey("visitor")
	SessionKeySearchOpen = sessionKey("header:search_open")
)

func (s sessionKey) String() string {
	return string(s)
}

// visitorID returns the id carousel cursors are stored under, creating one
// on the visitor's first request.
func (app *Application) visitorID(ctx context.Context) string {
	id := app.sessionManager.GetString(ctx, SessionKeyVisitor.String())
	if id == "" {
		id = uuid.NewString()
		app.sessionManager.Put(ctx, SessionKeyVisitor.String(), id)
	}

	return id
}

func (app *Application) loadCursor(ctx context.Context, category domain.Category) (domain.Cursor, error) {
	return app.carousels.Get(ctx, app.visitorID(ctx), category)
}

func (app *Application) updateCursor(
	ctx context.Context,
	category domain.Category,
	fn func(*domain.Cursor) (bool, error),
) (domain.Cursor, error) {
	return app.carousels.Update(ctx, app.visitorID(ctx), category, fn)
}

// settleCarousel reads every category's cursor for a page render. Rendering
// replaces the page whose slides were animating, so a transition still in
// flight is settled and a late completion for it becomes a no-op.
func (app *Application) settleCarousel(ctx context.Context) domain.Carousel {
	carousel := domain.NewCarousel()

	for _, category := range domain.Categories {
		var settled bool

		cursor, err := app.updateCursor(ctx, category, func(c *domain.Cursor) (bool, error) {
			settled = c.Transitioning()
			if settled {
				c.Settle()
			}

			return settled, nil
		})
		if err != nil {
			app.logger.Warn("failed to load carousel cursor", "category", category, "error", err)
			continue
		}

		if settled {
			app.metrics.settledTransition(ctx, category)
		}

		carousel[category] = cursor
	}

	return carousel
}

func (app *Application) loadHeader(ctx context.Context) domain.Header {
	return domain.Header{
		SearchOpen: app.sessionManager.GetBool(ctx, SessionKeySearchOpen.String()),
	}
}

func (app *Application) saveHeader(ctx context.Context, header domain.Header) {
	app.sessionManager.Put(ctx, SessionKeySearchOpen.String(), header.SearchOpen)
}
