package muon

import (
	"context"

	"github.com/sortiz4/muon/internal/errors"
	"github.com/sortiz4/muon/pkg/markup"
)

// Adapter converts a rendered document into a host response type.
type Adapter[T any] func(html string) (T, error)

// Identity is the default Adapter. It returns the string unchanged.
func Identity(html string) (string, error) {
	return html, nil
}

// Render invokes ctor with args, renders the element with engine, and hands
// the string to adapt. A nil engine means Default(); a nil adapter means
// Identity when T is string.
func Render[E markup.Element, T any](ctx context.Context, engine *Engine, ctor func(args ...any) E, adapt Adapter[T], args ...any) (T, error) {
	var zero T
	if engine == nil {
		engine = defaultEngine
	}
	if adapt == nil {
		identity, ok := any(Adapter[string](Identity)).(Adapter[T])
		if !ok {
			return zero, errors.New("E003").WithDetail("nil adapter for a non-string response type")
		}
		adapt = identity
	}

	html, err := engine.Render(ctx, ctor(args...))
	if err != nil {
		return zero, err
	}

	out, err := adapt(html)
	if err != nil {
		return zero, errors.New("E003").Wrap(err)
	}
	return out, nil
}

// RenderString invokes ctor with args and returns the rendered string.
func RenderString[E markup.Element](ctor func(args ...any) E, args ...any) (string, error) {
	return Render(context.Background(), nil, ctor, Identity, args...)
}
