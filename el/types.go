package el

import "github.com/sortiz4/muon/pkg/markup"

// Type aliases for the markup primitives used by the DSL.
type (
	Element     = markup.Element
	HTMLElement = markup.HTMLElement
	Renderable  = markup.Renderable
	Attr        = markup.Attr
	Attrs       = markup.Attrs
	StyleProp   = markup.StyleProp
)

// Constructor builds an element from variadic arguments.
type Constructor func(args ...any) *markup.HTMLElement
