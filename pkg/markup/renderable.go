package markup

import "fmt"

// Kind is the Renderable variant discriminator.
type Kind uint8

const (
	KindEmpty    Kind = iota // Absent value
	KindText                 // Plain text, escaped in safe mode
	KindMarkup               // Pre-escaped HTML
	KindNode                 // Element
	KindSequence             // Ordered list of Renderables
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindText:
		return "Text"
	case KindMarkup:
		return "Markup"
	case KindNode:
		return "Node"
	case KindSequence:
		return "Sequence"
	default:
		return "Unknown"
	}
}

// Renderable is a value a position in the tree may hold.
// The set of implementations is closed to this package.
type Renderable interface {
	Kind() Kind
	renderable()
}

// Empty is the absent value. It renders to the empty string.
type Empty struct{}

// Text is plain text. It is escaped whenever it is rendered as HTML.
type Text string

// Markup is text that is already safe HTML and is never escaped again.
type Markup string

// Node wraps an Element so it can sit in a tree.
type Node struct {
	Element Element
}

// Sequence is an ordered list of Renderables rendered back to back.
type Sequence []Renderable

func (Empty) Kind() Kind    { return KindEmpty }
func (Text) Kind() Kind     { return KindText }
func (Markup) Kind() Kind   { return KindMarkup }
func (Node) Kind() Kind     { return KindNode }
func (Sequence) Kind() Kind { return KindSequence }

func (Empty) renderable()    {}
func (Text) renderable()     {}
func (Markup) renderable()   {}
func (Node) renderable()     {}
func (Sequence) renderable() {}

// From converts a loosely typed child into a Renderable.
//
// nil becomes Empty, strings become Text, Elements become Nodes, and slices
// become Sequences with each item converted in order. Renderables are
// returned unchanged. Any other value becomes the Text of its string form.
func From(v any) Renderable {
	switch v := v.(type) {
	case nil:
		return Empty{}
	case Renderable:
		return v
	case string:
		return Text(v)
	case Element:
		return Node{Element: v}
	case []any:
		seq := make(Sequence, 0, len(v))
		for _, item := range v {
			seq = append(seq, From(item))
		}
		return seq
	case []Renderable:
		return Sequence(v)
	case []Element:
		seq := make(Sequence, 0, len(v))
		for _, e := range v {
			seq = append(seq, Node{Element: e})
		}
		return seq
	case []*HTMLElement:
		seq := make(Sequence, 0, len(v))
		for _, e := range v {
			seq = append(seq, Node{Element: e})
		}
		return seq
	case []string:
		seq := make(Sequence, 0, len(v))
		for _, s := range v {
			seq = append(seq, Text(s))
		}
		return seq
	case fmt.Stringer:
		return Text(v.String())
	default:
		return Text(fmt.Sprint(v))
	}
}

// Join flattens children into one Sequence, converting each with From.
func Join(children ...any) Sequence {
	seq := make(Sequence, 0, len(children))
	for _, c := range children {
		seq = append(seq, From(c))
	}
	return seq
}
