package el

import (
	"github.com/sortiz4/muon/internal/errors"
	"github.com/sortiz4/muon/pkg/markup"
)

// Descriptor binds a tag name to its constructor name and void flag.
type Descriptor struct {
	Tag  string
	Name string
	Void bool
}

// New builds an element for the descriptor's tag.
func (d Descriptor) New(args ...any) *markup.HTMLElement {
	return build(d.Tag, d.Void, args)
}

var tags = []Descriptor{
	{"a", "Anchor", false},
	{"abbr", "Abbreviation", false},
	{"address", "Address", false},
	{"area", "Area", true},
	{"article", "Article", false},
	{"aside", "Aside", false},
	{"audio", "Audio", false},
	{"b", "Bold", false},
	{"base", "Base", true},
	{"bdi", "BidirectionalIsolate", false},
	{"bdo", "BidirectionalOverride", false},
	{"blockquote", "BlockQuote", false},
	{"body", "Body", false},
	{"br", "Break", true},
	{"button", "Button", false},
	{"canvas", "Canvas", false},
	{"caption", "Caption", false},
	{"cite", "Cite", false},
	{"code", "Code", false},
	{"col", "Column", true},
	{"colgroup", "ColumnGroup", false},
	{"data", "Data", false},
	{"datalist", "DataList", false},
	{"dd", "DescriptionItem", false},
	{"del", "Deleted", false},
	{"details", "Details", false},
	{"dfn", "Definition", false},
	{"dialog", "Dialog", false},
	{"div", "Block", false},
	{"dl", "DescriptionList", false},
	{"dt", "DescriptionTerm", false},
	{"em", "Emphasis", false},
	{"embed", "Embed", true},
	{"fieldset", "FieldSet", false},
	{"figcaption", "FigureCaption", false},
	{"figure", "Figure", false},
	{"footer", "Footer", false},
	{"form", "Form", false},
	{"h1", "Heading", false},
	{"h2", "Heading", false},
	{"h3", "Heading", false},
	{"h4", "Heading", false},
	{"h5", "Heading", false},
	{"h6", "Heading", false},
	{"head", "Head", false},
	{"header", "Header", false},
	{"hgroup", "HeaderGroup", false},
	{"hr", "Rule", true},
	{"html", "HTML", false},
	{"i", "Italic", false},
	{"iframe", "Iframe", false},
	{"img", "Image", true},
	{"input", "Input", true},
	{"ins", "Inserted", false},
	{"kbd", "Keyboard", false},
	{"label", "Label", false},
	{"legend", "Legend", false},
	{"li", "ListItem", false},
	{"link", "Link", true},
	{"main", "Main", false},
	{"map", "Map", false},
	{"mark", "Mark", false},
	{"menu", "Menu", false},
	{"meta", "Meta", true},
	{"meter", "Meter", false},
	{"nav", "Navigation", false},
	{"noscript", "NoScript", false},
	{"object", "Object", false},
	{"ol", "OrderedList", false},
	{"optgroup", "OptionGroup", false},
	{"option", "Option", false},
	{"output", "Output", false},
	{"p", "Paragraph", false},
	{"param", "Parameter", true},
	{"picture", "Picture", false},
	{"pre", "Preformatted", false},
	{"progress", "Progress", false},
	{"q", "Quote", false},
	{"rb", "RubyBase", false},
	{"rp", "RubyParenthesis", false},
	{"rt", "RubyText", false},
	{"rtc", "RubyTextContainer", false},
	{"ruby", "Ruby", false},
	{"s", "Strikethrough", false},
	{"samp", "Sample", false},
	{"script", "Script", false},
	{"section", "Section", false},
	{"select", "Select", false},
	{"slot", "Slot", false},
	{"small", "Small", false},
	{"source", "Source", true},
	{"span", "Inline", false},
	{"strong", "Strong", false},
	{"style", "Style", false},
	{"sub", "Subscript", false},
	{"summary", "Summary", false},
	{"sup", "Superscript", false},
	{"table", "Table", false},
	{"tbody", "TableBody", false},
	{"td", "TableCell", false},
	{"template", "Template", false},
	{"textarea", "TextArea", false},
	{"tfoot", "TableFoot", false},
	{"th", "TableHeadCell", false},
	{"thead", "TableHead", false},
	{"time", "Time", false},
	{"title", "Title", false},
	{"tr", "TableRow", false},
	{"track", "Track", true},
	{"u", "Underline", false},
	{"ul", "UnorderedList", false},
	{"var", "Variable", false},
	{"video", "Video", false},
	{"wbr", "WordBreak", true},
}

// byTag indexes tags. It is built once at package init and only read after.
var byTag = func() map[string]Descriptor {
	m := make(map[string]Descriptor, len(tags))
	for _, d := range tags {
		m[d.Tag] = d
	}
	return m
}()

// Tags returns a copy of the descriptor table in tag order.
func Tags() []Descriptor {
	out := make([]Descriptor, len(tags))
	copy(out, tags)
	return out
}

// Lookup returns the descriptor registered for tag.
func Lookup(tag string) (Descriptor, bool) {
	d, ok := byTag[tag]
	return d, ok
}

// IsVoid reports whether tag is a registered void element.
func IsVoid(tag string) bool {
	return byTag[tag].Void
}

// Make builds an element for a registered tag.
func Make(tag string, args ...any) (*markup.HTMLElement, error) {
	d, ok := byTag[tag]
	if !ok {
		return nil, errors.New("E180").WithDetail("tag " + tag)
	}
	return d.New(args...), nil
}

// Custom builds an element for any tag name. Nothing is validated.
func Custom(tag string, void bool, args ...any) *markup.HTMLElement {
	return build(tag, void, args)
}

// create builds an element for a tag known to be in the table.
func create(tag string, args []any) *markup.HTMLElement {
	return build(tag, byTag[tag].Void, args)
}

// build splits args into attributes and children.
// Arguments can be: nil, markup.Attr, markup.Attrs, []markup.Attr, or any child accepted by markup.From.
func build(tag string, void bool, args []any) *markup.HTMLElement {
	var attrs markup.Attrs
	children := make(markup.Sequence, 0, len(args))

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional arguments)
			continue

		case markup.Attr:
			if v.Key != "" {
				attrs = attrs.Set(v.Key, v.Value)
			}

		case markup.Attrs:
			for _, a := range v {
				if a.Key != "" {
					attrs = attrs.Set(a.Key, a.Value)
				}
			}

		case []markup.Attr:
			for _, a := range v {
				if a.Key != "" {
					attrs = attrs.Set(a.Key, a.Value)
				}
			}

		default:
			children = append(children, markup.From(v))
		}
	}

	var kids markup.Renderable = markup.Empty{}
	switch len(children) {
	case 0:
	case 1:
		kids = children[0]
	default:
		kids = children
	}

	return markup.NewElement(tag, void, kids, attrs)
}
