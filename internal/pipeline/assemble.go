package pipeline

import (
	"html"
	"strings"
)

// DefaultTitle is the <title> of assembled HTML documents.
const DefaultTitle = "Unicode Palette"

// AssembleOptions selects the document skeleton.
type AssembleOptions struct {
	HTML         bool
	Title        string // Empty = DefaultTitle
	NameFontSize string // CSS length, inserted verbatim
}

// Assembler accumulates fragments into one output document.
// Fragments are kept in the order they are added.
type Assembler struct {
	opts  AssembleOptions
	body  strings.Builder
	count int
}

// NewAssembler returns an empty Assembler.
func NewAssembler(opts AssembleOptions) *Assembler {
	return &Assembler{opts: opts}
}

// Add appends a fragment. Plain-text fragments are separated by a
// zero-width space; HTML fragments are concatenated directly.
func (a *Assembler) Add(fragment string) {
	if !a.opts.HTML && a.count > 0 {
		a.body.WriteString(ZeroWidthSpace)
	}
	a.body.WriteString(fragment)
	a.count++
}

// Len returns the number of fragments added.
func (a *Assembler) Len() int {
	return a.count
}

// Document returns the assembled document.
func (a *Assembler) Document() string {
	if !a.opts.HTML {
		return a.body.String()
	}

	title := a.opts.Title
	if title == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	b.Grow(a.body.Len() + 160)
	b.WriteString("<html><head><meta charset='UTF-8'><title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title><style>")
	b.WriteString(sanitizeCSS(buildNameCSS(a.opts.NameFontSize)))
	b.WriteString("</style></head><body>")
	b.WriteString(a.body.String())
	b.WriteString("</body></html>")
	return b.String()
}

// Assemble joins fragments into a document in one call.
func Assemble(opts AssembleOptions, fragments []string) string {
	a := NewAssembler(opts)
	for _, f := range fragments {
		a.Add(f)
	}
	return a.Document()
}

// buildNameCSS generates the rule for name-label containers.
// The size is inserted verbatim, except that sanitizeCSS later rewrites any
// "</" to "<\/". It is not validated; an invalid length yields an ignored
// declaration.
func buildNameCSS(fontSize string) string {
	return "." + nameClass + "{font-size:" + fontSize + "}"
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
