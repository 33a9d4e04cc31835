package markup

import (
	"html"
	"strings"
	"testing"
	"testing/quick"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text",
			input:    "Hello, World!",
			expected: "Hello, World!",
		},
		{
			name:     "ampersand",
			input:    "Tom & Jerry",
			expected: "Tom &amp; Jerry",
		},
		{
			name:     "angle brackets",
			input:    "a < b > c",
			expected: "a &lt; b &gt; c",
		},
		{
			name:     "quotes untouched",
			input:    `say "it's"`,
			expected: `say "it's"`,
		},
		{
			name:     "script tag",
			input:    "</BAD\"'>",
			expected: "&lt;/BAD\"'&gt;",
		},
		{
			name:     "unicode preserved",
			input:    "Hello 世界 🌍",
			expected: "Hello 世界 🌍",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EscapeText(tt.input)
			if result != tt.expected {
				t.Errorf("EscapeText(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestEscapeAttribute(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text",
			input:    "hello",
			expected: "hello",
		},
		{
			name:     "double quote",
			input:    `value="test"`,
			expected: "value=&quot;test&quot;",
		},
		{
			name:     "single quote",
			input:    "it's",
			expected: "it&#x27;s",
		},
		{
			name:     "all special chars",
			input:    `<>&"'`,
			expected: "&lt;&gt;&amp;&quot;&#x27;",
		},
		{
			name:     "whitespace preserved",
			input:    "a\tb\nc",
			expected: "a\tb\nc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EscapeAttribute(tt.input)
			if result != tt.expected {
				t.Errorf("EscapeAttribute(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestEscapeValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		quote bool
		want  string
	}{
		{"markup verbatim", Markup(`<b class="x">`), true, `<b class="x">`},
		{"string escaped", `<"`, true, "&lt;&quot;"},
		{"text escaped without quotes", Text(`<"`), false, `&lt;"`},
		{"int stringified", 30, true, "30"},
		{"nil empty", nil, true, ""},
		{"stringer escaped", stringer("a&b"), true, "a&amp;b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeValue(tt.value, tt.quote); got != tt.want {
				t.Errorf("EscapeValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestEscapePreservesInvalidUTF8(t *testing.T) {
	tests := []struct {
		name     string
		escape   func(string) string
		input    string
		expected string
	}{
		{"text alone", EscapeText, "\xff", "\xff"},
		{"text beside special", EscapeText, "\xff<", "\xff&lt;"},
		{"truncated rune", EscapeText, "a\xe2\x82&b", "a\xe2\x82&amp;b"},
		{"attribute beside quote", EscapeAttribute, "\"\xc3'", "&quot;\xc3&#x27;"},
		{"valid multibyte", EscapeAttribute, "é<ü", "é&lt;ü"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.escape(tt.input)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	attr := func(b []byte) bool {
		s := string(b)
		out := EscapeAttribute(s)
		return !strings.ContainsAny(out, "<>\"'") && html.UnescapeString(out) == s
	}
	if err := quick.Check(attr, nil); err != nil {
		t.Errorf("EscapeAttribute: %v", err)
	}

	text := func(b []byte) bool {
		s := string(b)
		out := EscapeText(s)
		return !strings.ContainsAny(out, "<>") && html.UnescapeString(out) == s
	}
	if err := quick.Check(text, nil); err != nil {
		t.Errorf("EscapeText: %v", err)
	}
}

func TestEscapeMatchesPerByte(t *testing.T) {
	entities := map[byte]string{'&': "&amp;", '<': "&lt;", '>': "&gt;", '"': "&quot;", '\'': "&#x27;"}

	f := func(b []byte) bool {
		// A trailing special byte forces the copying path.
		s := string(b) + "<"
		var want strings.Builder
		for i := 0; i < len(s); i++ {
			if e, ok := entities[s[i]]; ok {
				want.WriteString(e)
			} else {
				want.WriteByte(s[i])
			}
		}
		return EscapeAttribute(s) == want.String()
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

type stringer string

func (s stringer) String() string { return string(s) }

func BenchmarkEscapeText(b *testing.B) {
	b.Run("plain text", func(b *testing.B) {
		s := "Hello, World! This is a plain text string without special characters."
		for i := 0; i < b.N; i++ {
			EscapeText(s)
		}
	})

	b.Run("with special chars", func(b *testing.B) {
		s := `<script>alert("xss")</script> & more content here`
		for i := 0; i < b.N; i++ {
			EscapeText(s)
		}
	})
}
