package muon

import (
	"context"
	"fmt"

	"github.com/sortiz4/muon/pkg/markup"
)

// RenderFunc renders an element to a string.
type RenderFunc func(ctx context.Context, el markup.Element) (string, error)

// Middleware wraps a RenderFunc.
type Middleware func(next RenderFunc) RenderFunc

// Chain composes middleware so the first one runs outermost.
func Chain(mw ...Middleware) Middleware {
	return func(next RenderFunc) RenderFunc {
		for i := len(mw) - 1; i >= 0; i-- {
			if mw[i] != nil {
				next = mw[i](next)
			}
		}
		return next
	}
}

// ElementName describes el for logs, metrics and traces: the tag name for
// HTML elements and the Go type otherwise.
func ElementName(el markup.Element) string {
	switch v := el.(type) {
	case nil:
		return "nil"
	case *markup.HTMLElement:
		if v == nil {
			return "nil"
		}
		return v.Tag()
	case markup.DocType:
		return "!doctype"
	default:
		return fmt.Sprintf("%T", el)
	}
}
