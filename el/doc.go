// Package el provides the HTML element DSL for muon.
//
// Every known HTML tag has a named constructor bound to a static descriptor
// table (tag name and void flag). Constructors take variadic arguments:
// markup.Attr and markup.Attrs values set attributes, nil is ignored, and
// everything else becomes a child.
//
// Typical usage:
//
//	import . "github.com/sortiz4/muon/el"
//
//	page := Block(Class("card", "wide"),
//	    Heading(1, "Title"),
//	    Input(Type("text"), Required(), StyleAttr(Prop("font_size", "20px"))),
//	    Raw("<hr/>"),
//	)
//
// Names follow the descriptive spelling of the tag: Anchor for a, Block for
// div, Inline for span, Paragraph for p, and so on.
package el
