package markup

import (
	"fmt"
	"strings"
)

// Escape replaces &, < and > with their HTML entities. When quote is set,
// " and ' are replaced as well.
func Escape(s string, quote bool) string {
	special := "&<>"
	if quote {
		special = "&<>\"'"
	}
	if !strings.ContainsAny(s, special) {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 16)

	// Every special character is ASCII, so bytes are copied as is and
	// invalid UTF-8 survives untouched.
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '&':
			buf.WriteString("&amp;")
		case c == '<':
			buf.WriteString("&lt;")
		case c == '>':
			buf.WriteString("&gt;")
		case c == '"' && quote:
			buf.WriteString("&quot;")
		case c == '\'' && quote:
			buf.WriteString("&#x27;")
		default:
			buf.WriteByte(c)
		}
	}

	return buf.String()
}

// EscapeAttribute escapes an attribute name or value, quotes included.
func EscapeAttribute(s string) string {
	return Escape(s, true)
}

// EscapeText escapes text child content. Quotes are left alone.
func EscapeText(s string) string {
	return Escape(s, false)
}

// EscapeValue escapes the string form of v. Markup is returned verbatim.
func EscapeValue(v any, quote bool) string {
	switch v := v.(type) {
	case Markup:
		return string(v)
	case Text:
		return Escape(string(v), quote)
	case string:
		return Escape(v, quote)
	case nil:
		return ""
	default:
		return Escape(fmt.Sprint(v), quote)
	}
}
