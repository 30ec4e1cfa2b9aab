package domain

import (
	"context"

	"github.com/google/uuid"
)

// WindowSize is the number of cards a carousel shows at once.
const WindowSize = 6

type TransitionState string

const (
	StateIdle          TransitionState = "idle"
	StateTransitioning TransitionState = "transitioning"
)

// Window returns the cards visible at the given index. The first result is
// reserved for the banner and never appears in a window.
func Window(results []Movie, index int) []Movie {
	if len(results) <= 1 || index < 0 {
		return []Movie{}
	}

	list := results[1:]

	start := index * WindowSize
	if start >= len(list) {
		return []Movie{}
	}

	end := min(start+WindowSize, len(list))

	return list[start:end]
}

// MaxIndex returns floor((count-1)/WindowSize) - 1. It is negative when the
// list is too short to fill a single window.
func MaxIndex(count int) int {
	n := count - 1
	q := n / WindowSize
	if n < 0 && n%WindowSize != 0 {
		q--
	}

	return q - 1
}

// lastIndex is the highest index a cursor may hold for count results.
func lastIndex(count int) int {
	return max(MaxIndex(count), 0)
}

// Cursor is the pagination position of one category's carousel together
// with its slide transition lock.
type Cursor struct {
	Index      int             `json:"index"`
	State      TransitionState `json:"state"`
	Transition string          `json:"transition,omitempty"`
}

// StepResult reports the outcome of an Advance or Retreat request.
type StepResult struct {
	Cursor
	Dropped bool `json:"dropped"`
}

func (c Cursor) Transitioning() bool {
	return c.State == StateTransitioning
}

// Advance moves to the next window, wrapping to 0 once the last window was
// shown. Requests arriving while a transition is in flight, or before the
// category has any results, are dropped.
func (c *Cursor) Advance(count int) StepResult {
	if c.Transitioning() || count == 0 {
		return StepResult{Cursor: *c, Dropped: true}
	}

	if c.Index >= lastIndex(count) {
		c.Index = 0
	} else {
		c.Index++
	}

	c.begin()

	return StepResult{Cursor: *c}
}

// Retreat moves to the previous window, wrapping to the last window when it
// would go below 0.
func (c *Cursor) Retreat(count int) StepResult {
	if c.Transitioning() || count == 0 {
		return StepResult{Cursor: *c, Dropped: true}
	}

	if c.Index <= 0 {
		c.Index = lastIndex(count)
	} else {
		c.Index--
	}

	c.begin()

	return StepResult{Cursor: *c}
}

// Complete releases the transition lock once the outgoing slide finished its
// exit animation. Completing an idle cursor does nothing.
func (c *Cursor) Complete(transition string) error {
	if !c.Transitioning() {
		return nil
	}

	if transition != c.Transition {
		return ErrTransitionMismatch
	}

	c.State = StateIdle
	c.Transition = ""

	return nil
}

// Settle drops an unfinished transition and keeps the window it was moving
// to. A freshly rendered page has no slide left to finish.
func (c *Cursor) Settle() {
	c.State = StateIdle
	c.Transition = ""
}

// Clamp pulls the index back into range after the result count shrank.
func (c *Cursor) Clamp(count int) {
	if c.Index < 0 || c.Index > lastIndex(count) {
		c.Index = 0
	}
	if c.State == "" {
		c.State = StateIdle
	}
}

func (c *Cursor) begin() {
	c.State = StateTransitioning
	c.Transition = uuid.NewString()
}

// Carousel holds an independent cursor for every category.
type Carousel map[Category]Cursor

func NewCarousel() Carousel {
	carousel := make(Carousel, len(Categories))

	for _, category := range Categories {
		carousel[category] = Cursor{State: StateIdle}
	}

	return carousel
}

// Cursor returns the category's cursor, idle at index 0 if none is stored.
func (c Carousel) Cursor(category Category) Cursor {
	cursor, ok := c[category]
	if !ok || cursor.State == "" {
		cursor.State = StateIdle
	}

	return cursor
}

// CarouselRepository stores each visitor's cursors. Update loads a cursor,
// hands it to fn and saves it when fn reports a change; concurrent updates of
// the same cursor never interleave. An error from fn is returned unchanged
// and nothing is saved.
type CarouselRepository interface {
	Get(ctx context.Context, visitor string, category Category) (Cursor, error)
	Update(ctx context.Context, visitor string, category Category, fn func(*Cursor) (bool, error)) (Cursor, error)
}
