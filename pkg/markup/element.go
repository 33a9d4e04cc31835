package markup

import (
	"fmt"

	"github.com/sortiz4/muon/internal/errors"
)

// ErrNotImplemented matches, via errors.Is, the failure returned by an
// element that has no Render implementation of its own.
var ErrNotImplemented = errors.New("E001")

// Element is anything that can produce a Renderable.
type Element interface {
	Render() (Renderable, error)
}

// SafeElement is an Element whose string form is already escaped HTML.
// Renderers emit the HTML result verbatim and do not descend into it.
type SafeElement interface {
	Element
	HTML() (string, error)
}

// Base is the abstract element. Embed it and override Render; calling the
// inherited Render fails with E001.
type Base struct{}

// Render always fails. Types embedding Base must provide their own.
func (Base) Render() (Renderable, error) {
	return nil, errors.New("E001").
		WithSuggestion("Define a Render method on the type embedding markup.Base")
}

// ElementFunc adapts a function to an Element rendered in core mode.
type ElementFunc func() (Renderable, error)

// Render calls f.
func (f ElementFunc) Render() (Renderable, error) {
	return f()
}

// HTMLFunc adapts a function to an Element whose result is rendered in safe
// mode and marked as Markup.
type HTMLFunc func() (Renderable, error)

// Render calls f and returns its safe rendering as Markup.
func (f HTMLFunc) Render() (Renderable, error) {
	s, err := f.HTML()
	if err != nil {
		return nil, err
	}
	return Markup(s), nil
}

// HTML calls f and renders its result in safe mode.
func (f HTMLFunc) HTML() (string, error) {
	out, err := f()
	if err != nil {
		return "", err
	}
	return RenderSafe(out)
}

// HTMLElement is an HTML tag with attributes and children.
// It is immutable once constructed and safe to render concurrently.
type HTMLElement struct {
	tag      string
	void     bool
	children Renderable
	attrs    Attrs
}

// NewElement creates an HTMLElement. Attributes are copied.
func NewElement(tag string, void bool, children Renderable, attrs Attrs) *HTMLElement {
	if children == nil {
		children = Empty{}
	}
	return &HTMLElement{
		tag:      tag,
		void:     void,
		children: children,
		attrs:    attrs.Clone(),
	}
}

// Tag returns the tag name.
func (e *HTMLElement) Tag() string { return e.tag }

// Void reports whether the element renders as a self-closing tag.
func (e *HTMLElement) Void() bool { return e.void }

// Children returns the child tree.
func (e *HTMLElement) Children() Renderable { return e.children }

// Attributes returns a copy of the attributes.
func (e *HTMLElement) Attributes() Attrs { return e.attrs.Clone() }

// Render returns the element's markup.
func (e *HTMLElement) Render() (Renderable, error) {
	s, err := e.HTML()
	if err != nil {
		return nil, err
	}
	return Markup(s), nil
}

// HTML returns the element's markup as a string. It renders e on its own
// with no depth limit. Inside a tree, a Renderer renders HTMLElements itself
// and applies its own MaxDepth.
func (e *HTMLElement) HTML() (string, error) {
	if e == nil {
		return "", nil
	}
	return defaultRenderer.Stringify(e)
}

// GoString describes the element for debugging.
func (e *HTMLElement) GoString() string {
	return fmt.Sprintf("markup.HTMLElement{tag: %q, void: %t, attrs: %d}", e.tag, e.void, len(e.attrs))
}

// DocType is the <!DOCTYPE> declaration. An empty DTD means html.
type DocType struct {
	DTD string
}

// HTML5 is the default document type.
const HTML5 = "html"

// Render returns <!DOCTYPE dtd>.
func (d DocType) Render() (Renderable, error) {
	dtd := HTML5
	if d.DTD != "" {
		dtd = EscapeText(d.DTD)
	}
	return Markup("<!DOCTYPE " + dtd + ">"), nil
}
