package markup

import (
	"fmt"
	"sort"
	"strings"
)

// Well-known attribute keys.
const (
	ClassKey = "class"
	StyleKey = "style"
)

// aliases maps input keys to their canonical HTML name.
var aliases = map[string]string{
	"classes":    ClassKey,
	"class_name": ClassKey,
}

// Attr is a single attribute. Value is one of string, bool, nil (bare key),
// Style or map[string]string (style only), []string or []any (class
// only). Other values are stringified and escaped.
type Attr struct {
	Key   string
	Value any
}

// Attrs is an ordered attribute list. Insertion order is serialization order.
type Attrs []Attr

// Get returns the value stored under key.
func (a Attrs) Get(key string) (any, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return nil, false
}

// Set stores value under key. An existing key keeps its position.
func (a Attrs) Set(key string, value any) Attrs {
	for i := range a {
		if a[i].Key == key {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attr{Key: key, Value: value})
}

// Clone returns a copy that shares no backing array with a.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	copy(out, a)
	return out
}

// StyleProp is one inline style declaration.
type StyleProp struct {
	Key   string
	Value string
}

// Style is an ordered inline style mapping.
type Style []StyleProp

// Hyphenate lower-cases key and turns underscores into hyphens.
func Hyphenate(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "_", "-")
}

// CanonicalKey resolves aliases and hyphenates key.
func CanonicalKey(key string) string {
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	return Hyphenate(key)
}

// ClassNames joins the string arguments with a space. Other values are dropped.
func ClassNames(names ...any) string {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		switch n := name.(type) {
		case string:
			kept = append(kept, n)
		case Text:
			kept = append(kept, string(n))
		}
	}
	return strings.Join(kept, " ")
}

// RenderStyle serializes inline style declarations as key:value pairs joined
// by semicolons. Keys are hyphenated.
func RenderStyle(style Style) string {
	pairs := make([]string, 0, len(style))
	for _, p := range style {
		pairs = append(pairs, Hyphenate(p.Key)+":"+p.Value)
	}
	return strings.Join(pairs, ";")
}

// styleFromMap orders a Go map by key, since maps carry no insertion order.
func styleFromMap[V any](m map[string]V) Style {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	style := make(Style, 0, len(keys))
	for _, k := range keys {
		style = append(style, StyleProp{Key: k, Value: fmt.Sprint(m[k])})
	}
	return style
}

// reduceValue applies the class and style reductions for the canonical key.
func reduceValue(key string, value any) any {
	switch key {
	case ClassKey:
		switch v := value.(type) {
		case []string:
			return strings.Join(v, " ")
		case []any:
			return ClassNames(v...)
		}
	case StyleKey:
		switch v := value.(type) {
		case Style:
			return RenderStyle(v)
		case []StyleProp:
			return RenderStyle(v)
		case map[string]string:
			return RenderStyle(styleFromMap(v))
		case map[string]any:
			return RenderStyle(styleFromMap(v))
		}
	}
	return value
}

// RenderAttribute formats one canonical attribute. A nil value emits a bare
// key; anything else emits key="value" with both sides escaped.
func RenderAttribute(key string, value any) string {
	if value == nil {
		return EscapeAttribute(key)
	}
	return EscapeAttribute(key) + `="` + EscapeValue(value, true) + `"`
}

// RenderAttributes serializes attrs in order. The result starts with a space
// so it can follow a tag name directly, or is empty when nothing is emitted.
func RenderAttributes(attrs Attrs) string {
	if len(attrs) == 0 {
		return ""
	}

	var b strings.Builder
	for _, attr := range attrs {
		key := CanonicalKey(attr.Key)
		value := reduceValue(key, attr.Value)

		if flag, ok := value.(bool); ok {
			if !flag {
				continue
			}
			value = nil
		}

		b.WriteByte(' ')
		b.WriteString(RenderAttribute(key, value))
	}
	return b.String()
}
