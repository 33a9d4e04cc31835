package markup

import (
	stderrors "errors"
	"strings"
	"sync"
	"testing"
	"testing/quick"

	"github.com/sortiz4/muon/internal/errors"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindEmpty, "Empty"},
		{KindText, "Text"},
		{KindMarkup, "Markup"},
		{KindNode, "Node"},
		{KindSequence, "Sequence"},
		{Kind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrom(t *testing.T) {
	div := NewElement("div", false, nil, nil)

	tests := []struct {
		name  string
		input any
		want  Kind
	}{
		{"nil", nil, KindEmpty},
		{"string", "hi", KindText},
		{"markup", Markup("<b>"), KindMarkup},
		{"element", div, KindNode},
		{"any slice", []any{"a", div}, KindSequence},
		{"string slice", []string{"a", "b"}, KindSequence},
		{"element slice", []*HTMLElement{div}, KindSequence},
		{"int", 7, KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := From(tt.input).Kind(); got != tt.want {
				t.Errorf("From(%v).Kind() = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderModes(t *testing.T) {
	tree := Sequence{
		Text("<a & 'b'>"),
		Empty{},
		Markup("<i>"),
		Sequence{Text(`"q"`)},
	}

	core, err := RenderCore(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if core != `<a & 'b'><i>"q"` {
		t.Errorf("core = %q", core)
	}

	safe, err := RenderSafe(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if safe != `&lt;a &amp; 'b'&gt;<i>"q"` {
		t.Errorf("safe = %q", safe)
	}
}

func TestMarkupNeverReEscaped(t *testing.T) {
	inputs := []string{"", "plain", `</BAD"'>`, "&amp;", "<script>alert(1)</script>"}

	for _, s := range inputs {
		div := NewElement("div", false, Markup(s), nil)
		outer := NewElement("section", false, Sequence{Node{div}, Sequence{Markup(s)}}, nil)

		got, err := Stringify(outer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "<section><div>" + s + "</div>" + s + "</section>"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestMarkupVerbatimForAllStrings(t *testing.T) {
	f := func(s string, raw []byte) bool {
		for _, m := range []string{s, string(raw)} {
			div := NewElement("div", false, Markup(m), nil)
			got, err := RenderSafe(Sequence{Node{div}, Markup(m)})
			if err != nil || got != "<div>"+m+"</div>"+m {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestTextModesForAllStrings(t *testing.T) {
	f := func(s string) bool {
		core, err := RenderCore(Text(s))
		if err != nil || core != s {
			return false
		}
		safe, err := RenderSafe(Sequence{Text(s)})
		return err == nil && safe == EscapeText(s) && !strings.ContainsAny(safe, "<>")
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestTextEscapedInElements(t *testing.T) {
	p := NewElement("p", false, Text(`</BAD"'>`), nil)
	got, err := Stringify(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `<p>&lt;/BAD"'&gt;</p>` {
		t.Errorf("got %q", got)
	}
}

func TestCoreModeUnwrapsNodes(t *testing.T) {
	plain := ElementFunc(func() (Renderable, error) {
		return Sequence{Text("a<"), Node{NewElement("b", false, Text("<"), nil)}}, nil
	})

	got, err := RenderCore(Node{plain})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a<<b>&lt;</b>" {
		t.Errorf("got %q", got)
	}

	// Safe mode uses the element's own string form, which for a plain
	// element is its core rendering.
	got, err = RenderSafe(Node{plain})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a<<b>&lt;</b>" {
		t.Errorf("safe got %q", got)
	}
}

func TestNilNodes(t *testing.T) {
	var nilElem *HTMLElement
	got, err := RenderSafe(Sequence{Node{}, Node{nilElem}, nil})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestRenderErrorPropagates(t *testing.T) {
	boom := stderrors.New("boom")
	failing := ElementFunc(func() (Renderable, error) { return nil, boom })
	tree := NewElement("div", false, Sequence{Text("ok"), Node{failing}}, nil)

	_, err := Stringify(tree)
	if !stderrors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestRendererMaxDepth(t *testing.T) {
	var node Renderable = Text("leaf")
	for i := 0; i < 10; i++ {
		node = Node{NewElement("div", false, node, nil)}
	}

	if _, err := (Renderer{MaxDepth: 100}).Safe(node); err != nil {
		t.Fatalf("unexpected error under the limit: %v", err)
	}

	_, err := (Renderer{MaxDepth: 5}).Safe(node)
	if !errors.HasCode(err, "E002") {
		t.Errorf("err = %v, want E002", err)
	}

	if _, err := RenderSafe(node); err != nil {
		t.Errorf("default renderer should not limit depth: %v", err)
	}
}

// opaqueHTML is a SafeElement that writes its own markup.
type opaqueHTML struct{ inner *HTMLElement }

func (o opaqueHTML) Render() (Renderable, error) { return Node{o.inner}, nil }
func (o opaqueHTML) HTML() (string, error)       { return o.inner.HTML() }

func TestRendererMaxDepthThroughFunctionalElements(t *testing.T) {
	var node Renderable = Text("leaf")
	for i := 0; i < 10; i++ {
		inner := node
		if i%2 == 0 {
			node = Node{HTMLFunc(func() (Renderable, error) { return Node{NewElement("b", false, inner, nil)}, nil })}
		} else {
			node = Node{ElementFunc(func() (Renderable, error) { return inner, nil })}
		}
	}

	_, err := (Renderer{MaxDepth: 5}).Safe(node)
	if !errors.HasCode(err, "E002") {
		t.Errorf("err = %v, want E002 through functional elements", err)
	}
}

func TestRendererMaxDepthStopsAtSafeElement(t *testing.T) {
	var deep Renderable = Text("leaf")
	for i := 0; i < 10; i++ {
		deep = Node{NewElement("div", false, deep, nil)}
	}
	opaque := opaqueHTML{inner: NewElement("section", false, deep, nil)}

	got, err := (Renderer{MaxDepth: 3}).Safe(Node{opaque})
	if err != nil {
		t.Fatalf("SafeElement output is opaque to the limit, got %v", err)
	}
	if !strings.HasPrefix(got, "<section><div>") {
		t.Errorf("got %q", got)
	}
}

func TestRenderIdempotentAndConcurrent(t *testing.T) {
	shared := NewElement("li", false, Text("x & y"), Attrs{{Key: "class", Value: []string{"a", "b"}}})
	list := NewElement("ul", false, Sequence{Node{shared}, Node{shared}}, nil)

	want := `<ul><li class="a b">x &amp; y</li><li class="a b">x &amp; y</li></ul>`

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Stringify(list)
			if err != nil || got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("got %q, want %q", got, want)
	}
}

func BenchmarkRenderSafe(b *testing.B) {
	items := make(Sequence, 0, 100)
	for i := 0; i < 100; i++ {
		items = append(items, Node{NewElement("li", false, Text("item <"+strings.Repeat("x", i%7)+">"), Attrs{
			{Key: "class", Value: []string{"item", "row"}},
		})})
	}
	list := NewElement("ul", false, items, nil)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Stringify(list); err != nil {
			b.Fatal(err)
		}
	}
}
