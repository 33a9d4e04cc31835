package el

import (
	"fmt"

	"github.com/sortiz4/muon/pkg/markup"
)

// Text creates a text child. It is escaped when rendered.
func Text(content string) markup.Text {
	return markup.Text(content)
}

// Textf creates a formatted text child.
func Textf(format string, args ...any) markup.Text {
	return markup.Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML child.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) markup.Markup {
	return markup.Markup(html)
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) markup.Sequence {
	return markup.Join(children...)
}

// ClassNames joins the string arguments with spaces, dropping everything else.
func ClassNames(names ...any) string {
	return markup.ClassNames(names...)
}

// If returns v if condition is true, nil otherwise.
func If(condition bool, v any) any {
	if condition {
		return v
	}
	return nil
}

// IfElse returns the first value if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse any) any {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() any) any {
	if condition {
		return fn()
	}
	return nil
}

// Range maps a slice to children.
func Range[T any](items []T, fn func(item T, index int) any) markup.Sequence {
	result := make(markup.Sequence, 0, len(items))
	for i, item := range items {
		if child := fn(item, i); child != nil {
			result = append(result, markup.From(child))
		}
	}
	return result
}

// Func wraps a render function as an element rendered in safe mode.
func Func(render func() any) markup.HTMLFunc {
	return func() (markup.Renderable, error) {
		return markup.From(render()), nil
	}
}
