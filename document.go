package muon

import (
	"github.com/sortiz4/muon/el"
	"github.com/sortiz4/muon/pkg/markup"
)

// Document builds a complete page: the html doctype followed by an html
// element holding head and body. Extra args (typically attributes such as
// el.Lang("en")) go on the html element.
func Document(head, body any, args ...any) markup.Element {
	return markup.ElementFunc(func() (markup.Renderable, error) {
		root := append(append([]any{}, args...), el.Head(head), el.Body(body))
		return markup.Sequence{
			markup.Node{Element: el.DocType()},
			markup.Node{Element: el.HTML(root...)},
		}, nil
	})
}
