// Package muon builds HTML documents from Go values.
//
// Callers compose a tree of elements with the constructors in package el and
// hand the root to an Engine, which serializes it into one HTML-safe string:
//
//	import (
//	    "github.com/sortiz4/muon"
//	    . "github.com/sortiz4/muon/el"
//	)
//
//	page := muon.Document(
//	    Title("Example"),
//	    Heading(1, "Hello"),
//	    Lang("en"),
//	)
//	html, err := muon.New(muon.Config{}).Render(ctx, page)
//
// Render and RenderString implement the caller-facing shortcut: invoke a
// constructor, stringify the element, and pass the string through an
// Adapter that may turn it into a host framework's response type.
//
// Engines run a chain of Middleware around every render. Package
// pkg/middleware provides Prometheus and OpenTelemetry middleware.
package muon

import (
	"context"
	"log/slog"
	"time"

	"github.com/sortiz4/muon/pkg/markup"
)

// Config configures an Engine.
type Config struct {
	// Logger is the structured logger for render events.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Middleware wraps every render. The first entry is the outermost.
	Middleware []Middleware

	// MaxDepth rejects trees nested deeper than this many levels.
	// Zero means no limit.
	MaxDepth int
}

// Engine renders elements to strings through a middleware chain.
// An Engine is safe for concurrent use.
type Engine struct {
	logger *slog.Logger
	render RenderFunc
}

// New creates an Engine with the given configuration.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	renderer := markup.Renderer{MaxDepth: cfg.MaxDepth}
	base := func(ctx context.Context, e markup.Element) (string, error) {
		return renderer.Stringify(e)
	}

	e := &Engine{logger: logger}
	e.render = Chain(cfg.Middleware...)(e.logged(base))
	return e
}

var defaultEngine = New(Config{})

// Default returns the Engine used by RenderString.
func Default() *Engine {
	return defaultEngine
}

// Logger returns the engine's logger.
func (e *Engine) Logger() *slog.Logger {
	return e.logger
}

// Render returns the string form of el.
func (e *Engine) Render(ctx context.Context, el markup.Element) (string, error) {
	return e.render(ctx, el)
}

// logged records each render at debug level and failures at error level.
func (e *Engine) logged(next RenderFunc) RenderFunc {
	return func(ctx context.Context, el markup.Element) (string, error) {
		start := time.Now()
		out, err := next(ctx, el)
		elapsed := time.Since(start)

		if err != nil {
			e.logger.ErrorContext(ctx, "render failed",
				"element", ElementName(el),
				"error", err,
			)
			return "", err
		}

		e.logger.DebugContext(ctx, "rendered",
			"element", ElementName(el),
			"bytes", len(out),
			"duration", elapsed,
		)
		return out, nil
	}
}
