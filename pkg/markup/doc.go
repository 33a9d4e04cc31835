// Package markup is the rendering engine behind muon.
//
// Callers compose a tree of typed values and the package serializes the tree
// into a single HTML-safe string.
//
// # Core Types
//
// Renderable is the closed set of values a tree position may hold: Empty,
// Text, Markup, Node and Sequence. Text is escaped when it is rendered as
// HTML; Markup is emitted verbatim no matter how deeply it is nested.
//
// Element is anything that can produce a Renderable. HTMLElement is the
// concrete element that owns a tag, a void flag, children and attributes:
//
//	input := markup.NewElement("input", true, nil, markup.Attrs{
//	    {Key: "required", Value: true},
//	    {Key: "style", Value: markup.Style{{Key: "font_size", Value: "20px"}}},
//	})
//	html, err := markup.Stringify(input)
//	// <input required style="font-size:20px"/>
//
// # Render Modes
//
// RenderCore concatenates text verbatim. RenderSafe escapes Text and relies on
// HTMLElement results already being Markup. Both walk the tree in document
// order; nothing is reordered or deduplicated.
//
// # Attributes
//
// RenderAttributes resolves aliases (classes and class_name become class),
// hyphenates snake_case keys, joins class lists, serializes inline style
// mappings, and reduces booleans: true emits a bare key, false drops the
// attribute.
//
// # Trees
//
// Rendering is recursive and performs no cycle detection by default. Build
// only acyclic trees, or use a Renderer with MaxDepth set to reject runaway
// nesting with an E002 error.
package markup
