package el

import "github.com/sortiz4/muon/pkg/markup"

// Attribute creates an Attr with the given key and value.
// Snake case keys are hyphenated when rendered.
func Attribute(key string, value any) markup.Attr {
	return markup.Attr{Key: key, Value: value}
}

func attr(key string, value any) markup.Attr {
	return markup.Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) markup.Attr { return attr("id", id) }

// Class sets the class attribute from a list of names.
func Class(names ...string) markup.Attr { return attr("class", names) }

// Classes sets the class attribute from mixed values. Only strings are kept,
// which allows inline conditionals such as Classes("btn", If(active, "on")).
func Classes(names ...any) markup.Attr { return attr("class", names) }

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(props ...markup.StyleProp) markup.Attr { return attr("style", markup.Style(props)) }

// Prop creates one inline style declaration for StyleAttr.
func Prop(key, value string) markup.StyleProp { return markup.StyleProp{Key: key, Value: value} }

// DataAttr creates a data-* attribute.
func DataAttr(key, value string) markup.Attr { return attr("data-"+key, value) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) markup.Attr { return attr("title", title) }

// Link and resource attributes

func Href(url string) markup.Attr   { return attr("href", url) }
func Src(url string) markup.Attr    { return attr("src", url) }
func Rel(rel string) markup.Attr    { return attr("rel", rel) }
func Type(t string) markup.Attr     { return attr("type", t) }
func Target(t string) markup.Attr   { return attr("target", t) }
func Lang(lang string) markup.Attr  { return attr("lang", lang) }
func Charset(cs string) markup.Attr { return attr("charset", cs) }

// Form attributes

func Name(name string) markup.Attr       { return attr("name", name) }
func Value(value string) markup.Attr     { return attr("value", value) }
func Placeholder(p string) markup.Attr   { return attr("placeholder", p) }
func MaxLength(n int) markup.Attr        { return attr("maxlength", n) }
func Content(content string) markup.Attr { return attr("content", content) }

// Boolean attributes

func Required() markup.Attr  { return attr("required", true) }
func Readonly() markup.Attr  { return attr("readonly", true) }
func Disabled() markup.Attr  { return attr("disabled", true) }
func Checked() markup.Attr   { return attr("checked", true) }
func Defer() markup.Attr     { return attr("defer", true) }
func Hidden() markup.Attr    { return attr("hidden", true) }
func Autofocus() markup.Attr { return attr("autofocus", true) }

// Toggle sets a boolean attribute that is omitted when on is false.
func Toggle(key string, on bool) markup.Attr { return attr(key, on) }
