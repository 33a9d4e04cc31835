package markup

import (
	"fmt"
	"strings"

	"github.com/sortiz4/muon/internal/errors"
)

// Renderer walks Renderable trees. The zero value has no depth limit.
type Renderer struct {
	// MaxDepth rejects trees nested deeper than this many levels with E002.
	// Zero disables the check. It covers every level the renderer walks:
	// HTMLElements, ElementFuncs, HTMLFuncs and plain Elements. A SafeElement
	// other than *HTMLElement produces its own string through HTML(), so the
	// limit stops at that element and its HTML method must bound itself.
	MaxDepth int
}

var defaultRenderer Renderer

// RenderCore renders node with text emitted verbatim.
func RenderCore(node Renderable) (string, error) {
	return defaultRenderer.Core(node)
}

// RenderSafe renders node with text escaped for HTML.
func RenderSafe(node Renderable) (string, error) {
	return defaultRenderer.Safe(node)
}

// Stringify returns the string form of e.
//
// Elements that implement SafeElement are rendered in safe mode. Other
// elements render their Render result in core mode.
func Stringify(e Element) (string, error) {
	return defaultRenderer.Stringify(e)
}

// Core renders node with text emitted verbatim.
func (r Renderer) Core(node Renderable) (string, error) {
	var b strings.Builder
	if err := r.write(&b, node, false, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Safe renders node with text escaped for HTML.
func (r Renderer) Safe(node Renderable) (string, error) {
	var b strings.Builder
	if err := r.write(&b, node, true, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Stringify returns the string form of e.
func (r Renderer) Stringify(e Element) (string, error) {
	var b strings.Builder
	if err := r.writeElement(&b, e, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (r Renderer) write(b *strings.Builder, node Renderable, safe bool, depth int) error {
	if r.MaxDepth > 0 && depth > r.MaxDepth {
		return errors.New("E002").WithDetail(fmt.Sprintf("tree deeper than %d levels", r.MaxDepth))
	}

	switch v := node.(type) {
	case nil, Empty:
		return nil
	case Text:
		if safe {
			b.WriteString(EscapeText(string(v)))
		} else {
			b.WriteString(string(v))
		}
		return nil
	case Markup:
		b.WriteString(string(v))
		return nil
	case Sequence:
		for _, child := range v {
			if err := r.write(b, child, safe, depth+1); err != nil {
				return err
			}
		}
		return nil
	case Node:
		return r.writeElement(b, v.Element, depth+1)
	default:
		return fmt.Errorf("unknown renderable kind: %s", node.Kind())
	}
}

// writeElement writes the string form of e. The result is never escaped
// again by the caller, whatever the mode.
func (r Renderer) writeElement(b *strings.Builder, e Element, depth int) error {
	switch v := e.(type) {
	case nil:
		return nil
	case *HTMLElement:
		if v == nil {
			return nil
		}
		return r.writeHTML(b, v, depth)
	case HTMLFunc:
		out, err := v()
		if err != nil {
			return err
		}
		return r.write(b, out, true, depth)
	case SafeElement:
		html, err := v.HTML()
		if err != nil {
			return err
		}
		b.WriteString(html)
		return nil
	}

	out, err := e.Render()
	if err != nil {
		return err
	}
	return r.write(b, out, false, depth)
}

// writeHTML writes <tag attrs/> for void elements and
// <tag attrs>children</tag> otherwise, even when children is empty.
func (r Renderer) writeHTML(b *strings.Builder, e *HTMLElement, depth int) error {
	attrs := RenderAttributes(e.attrs)

	if e.void {
		b.WriteString("<" + e.tag + attrs + "/>")
		return nil
	}

	b.WriteString("<" + e.tag + attrs + ">")
	if err := r.write(b, e.children, true, depth+1); err != nil {
		return err
	}
	b.WriteString("</" + e.tag + ">")
	return nil
}
