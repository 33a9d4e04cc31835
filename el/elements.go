package el

import (
	"strconv"

	"github.com/sortiz4/muon/pkg/markup"
)

// Element constructors, one per entry in the tag table.

func Anchor(args ...any) *markup.HTMLElement                { return create("a", args) }
func Abbreviation(args ...any) *markup.HTMLElement          { return create("abbr", args) }
func Address(args ...any) *markup.HTMLElement               { return create("address", args) }
func Area(args ...any) *markup.HTMLElement                  { return create("area", args) }
func Article(args ...any) *markup.HTMLElement               { return create("article", args) }
func Aside(args ...any) *markup.HTMLElement                 { return create("aside", args) }
func Audio(args ...any) *markup.HTMLElement                 { return create("audio", args) }
func Bold(args ...any) *markup.HTMLElement                  { return create("b", args) }
func Base(args ...any) *markup.HTMLElement                  { return create("base", args) }
func BidirectionalIsolate(args ...any) *markup.HTMLElement  { return create("bdi", args) }
func BidirectionalOverride(args ...any) *markup.HTMLElement { return create("bdo", args) }
func BlockQuote(args ...any) *markup.HTMLElement            { return create("blockquote", args) }
func Body(args ...any) *markup.HTMLElement                  { return create("body", args) }
func Break(args ...any) *markup.HTMLElement                 { return create("br", args) }
func Button(args ...any) *markup.HTMLElement                { return create("button", args) }
func Canvas(args ...any) *markup.HTMLElement                { return create("canvas", args) }
func Caption(args ...any) *markup.HTMLElement               { return create("caption", args) }
func Cite(args ...any) *markup.HTMLElement                  { return create("cite", args) }
func Code(args ...any) *markup.HTMLElement                  { return create("code", args) }
func Column(args ...any) *markup.HTMLElement                { return create("col", args) }
func ColumnGroup(args ...any) *markup.HTMLElement           { return create("colgroup", args) }
func Data(args ...any) *markup.HTMLElement                  { return create("data", args) }
func DataList(args ...any) *markup.HTMLElement              { return create("datalist", args) }
func DescriptionItem(args ...any) *markup.HTMLElement       { return create("dd", args) }
func Deleted(args ...any) *markup.HTMLElement               { return create("del", args) }
func Details(args ...any) *markup.HTMLElement               { return create("details", args) }
func Definition(args ...any) *markup.HTMLElement            { return create("dfn", args) }
func Dialog(args ...any) *markup.HTMLElement                { return create("dialog", args) }
func Block(args ...any) *markup.HTMLElement                 { return create("div", args) }
func DescriptionList(args ...any) *markup.HTMLElement       { return create("dl", args) }
func DescriptionTerm(args ...any) *markup.HTMLElement       { return create("dt", args) }
func Emphasis(args ...any) *markup.HTMLElement              { return create("em", args) }
func Embed(args ...any) *markup.HTMLElement                 { return create("embed", args) }
func FieldSet(args ...any) *markup.HTMLElement              { return create("fieldset", args) }
func FigureCaption(args ...any) *markup.HTMLElement         { return create("figcaption", args) }
func Figure(args ...any) *markup.HTMLElement                { return create("figure", args) }
func Footer(args ...any) *markup.HTMLElement                { return create("footer", args) }
func Form(args ...any) *markup.HTMLElement                  { return create("form", args) }
func Head(args ...any) *markup.HTMLElement                  { return create("head", args) }
func Header(args ...any) *markup.HTMLElement                { return create("header", args) }
func HeaderGroup(args ...any) *markup.HTMLElement           { return create("hgroup", args) }
func Rule(args ...any) *markup.HTMLElement                  { return create("hr", args) }
func HTML(args ...any) *markup.HTMLElement                  { return create("html", args) }
func Italic(args ...any) *markup.HTMLElement                { return create("i", args) }
func Iframe(args ...any) *markup.HTMLElement                { return create("iframe", args) }
func Image(args ...any) *markup.HTMLElement                 { return create("img", args) }
func Input(args ...any) *markup.HTMLElement                 { return create("input", args) }
func Inserted(args ...any) *markup.HTMLElement              { return create("ins", args) }
func Keyboard(args ...any) *markup.HTMLElement              { return create("kbd", args) }
func Label(args ...any) *markup.HTMLElement                 { return create("label", args) }
func Legend(args ...any) *markup.HTMLElement                { return create("legend", args) }
func ListItem(args ...any) *markup.HTMLElement              { return create("li", args) }
func Link(args ...any) *markup.HTMLElement                  { return create("link", args) }
func Main(args ...any) *markup.HTMLElement                  { return create("main", args) }
func Map(args ...any) *markup.HTMLElement                   { return create("map", args) }
func Mark(args ...any) *markup.HTMLElement                  { return create("mark", args) }
func Menu(args ...any) *markup.HTMLElement                  { return create("menu", args) }
func Meta(args ...any) *markup.HTMLElement                  { return create("meta", args) }
func Meter(args ...any) *markup.HTMLElement                 { return create("meter", args) }
func Navigation(args ...any) *markup.HTMLElement            { return create("nav", args) }
func NoScript(args ...any) *markup.HTMLElement              { return create("noscript", args) }
func Object(args ...any) *markup.HTMLElement                { return create("object", args) }
func OrderedList(args ...any) *markup.HTMLElement           { return create("ol", args) }
func OptionGroup(args ...any) *markup.HTMLElement           { return create("optgroup", args) }
func Option(args ...any) *markup.HTMLElement                { return create("option", args) }
func Output(args ...any) *markup.HTMLElement                { return create("output", args) }
func Paragraph(args ...any) *markup.HTMLElement             { return create("p", args) }
func Parameter(args ...any) *markup.HTMLElement             { return create("param", args) }
func Picture(args ...any) *markup.HTMLElement               { return create("picture", args) }
func Preformatted(args ...any) *markup.HTMLElement          { return create("pre", args) }
func Progress(args ...any) *markup.HTMLElement              { return create("progress", args) }
func Quote(args ...any) *markup.HTMLElement                 { return create("q", args) }
func RubyBase(args ...any) *markup.HTMLElement              { return create("rb", args) }
func RubyParenthesis(args ...any) *markup.HTMLElement       { return create("rp", args) }
func RubyText(args ...any) *markup.HTMLElement              { return create("rt", args) }
func RubyTextContainer(args ...any) *markup.HTMLElement     { return create("rtc", args) }
func Ruby(args ...any) *markup.HTMLElement                  { return create("ruby", args) }
func Strikethrough(args ...any) *markup.HTMLElement         { return create("s", args) }
func Sample(args ...any) *markup.HTMLElement                { return create("samp", args) }
func Script(args ...any) *markup.HTMLElement                { return create("script", args) }
func Section(args ...any) *markup.HTMLElement               { return create("section", args) }
func Select(args ...any) *markup.HTMLElement                { return create("select", args) }
func Slot(args ...any) *markup.HTMLElement                  { return create("slot", args) }
func Small(args ...any) *markup.HTMLElement                 { return create("small", args) }
func Source(args ...any) *markup.HTMLElement                { return create("source", args) }
func Inline(args ...any) *markup.HTMLElement                { return create("span", args) }
func Strong(args ...any) *markup.HTMLElement                { return create("strong", args) }
func Style(args ...any) *markup.HTMLElement                 { return create("style", args) }
func Subscript(args ...any) *markup.HTMLElement             { return create("sub", args) }
func Summary(args ...any) *markup.HTMLElement               { return create("summary", args) }
func Superscript(args ...any) *markup.HTMLElement           { return create("sup", args) }
func Table(args ...any) *markup.HTMLElement                 { return create("table", args) }
func TableBody(args ...any) *markup.HTMLElement             { return create("tbody", args) }
func TableCell(args ...any) *markup.HTMLElement             { return create("td", args) }
func Template(args ...any) *markup.HTMLElement              { return create("template", args) }
func TextArea(args ...any) *markup.HTMLElement              { return create("textarea", args) }
func TableFoot(args ...any) *markup.HTMLElement             { return create("tfoot", args) }
func TableHeadCell(args ...any) *markup.HTMLElement         { return create("th", args) }
func TableHead(args ...any) *markup.HTMLElement             { return create("thead", args) }
func Time(args ...any) *markup.HTMLElement                  { return create("time", args) }
func Title(args ...any) *markup.HTMLElement                 { return create("title", args) }
func TableRow(args ...any) *markup.HTMLElement              { return create("tr", args) }
func Track(args ...any) *markup.HTMLElement                 { return create("track", args) }
func Underline(args ...any) *markup.HTMLElement             { return create("u", args) }
func UnorderedList(args ...any) *markup.HTMLElement         { return create("ul", args) }
func Variable(args ...any) *markup.HTMLElement              { return create("var", args) }
func Video(args ...any) *markup.HTMLElement                 { return create("video", args) }
func WordBreak(args ...any) *markup.HTMLElement             { return create("wbr", args) }

// Heading builds the h<level> element. The level is not checked, so
// Heading(7) yields an unregistered h7 tag.
func Heading(level int, args ...any) *markup.HTMLElement {
	return create("h"+strconv.Itoa(level), args)
}

// DocType builds the <!DOCTYPE> declaration, html unless dtd is given.
func DocType(dtd ...string) markup.DocType {
	if len(dtd) > 0 {
		return markup.DocType{DTD: dtd[0]}
	}
	return markup.DocType{}
}
