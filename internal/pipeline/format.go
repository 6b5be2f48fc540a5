package pipeline

import (
	"html"
	"iter"
	"strings"
)

// ZeroWidthSpace separates characters and names in plain-text output.
const ZeroWidthSpace = "\u200b"

// nameClass is the CSS class of name-label containers.
const nameClass = "n"

// Record is one matched code point and, when requested, its display name.
type Record struct {
	Rune rune
	Name string
}

// FormatOptions selects the shape of each fragment.
type FormatOptions struct {
	HTML     bool
	AddName  bool
	AddHover bool
}

// needsName reports whether fragments reference the display name.
// Hover titles only exist in HTML output.
func (o FormatOptions) needsName() bool {
	return o.AddName || (o.HTML && o.AddHover)
}

// Records pairs each code point of set with its display name when opts
// needs one. A failed name lookup is yielded once and ends the sequence.
func Records(set CategorySet, opts FormatOptions) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		var namer *Namer
		if opts.needsName() {
			namer = NewNamer()
		}
		for r := range Filter(set) {
			rec := Record{Rune: r}
			if namer != nil {
				name, err := namer.DisplayName(r)
				if err != nil {
					yield(Record{}, err)
					return
				}
				rec.Name = name
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Formatter converts records into document fragments.
type Formatter struct {
	opts FormatOptions
}

// NewFormatter returns a Formatter for opts.
func NewFormatter(opts FormatOptions) *Formatter {
	return &Formatter{opts: opts}
}

// Format returns the fragment for rec.
func (f *Formatter) Format(rec Record) string {
	if f.opts.HTML {
		return f.formatHTML(rec)
	}
	return f.formatText(rec)
}

func (f *Formatter) formatText(rec Record) string {
	if !f.opts.AddName {
		return string(rec.Rune)
	}
	return string(rec.Rune) + ZeroWidthSpace + rec.Name
}

// formatHTML escapes the character and its name, so <, >, &, ' and " in
// Sm and Po palettes render as themselves instead of being parsed as markup.
// Decoding the data URL still returns the escaped document unchanged.
func (f *Formatter) formatHTML(rec Record) string {
	char := html.EscapeString(string(rec.Rune))
	if !f.opts.AddName && !f.opts.AddHover {
		return char
	}

	var b strings.Builder
	b.WriteString("<span")
	if f.opts.AddHover {
		b.WriteString(" title='")
		b.WriteString(html.EscapeString(rec.Name))
		b.WriteString("'")
	}
	b.WriteString(">")
	b.WriteString(char)
	b.WriteString("</span>")

	if f.opts.AddName {
		b.WriteString("<span class='")
		b.WriteString(nameClass)
		b.WriteString("'>")
		b.WriteString(html.EscapeString(rec.Name))
		b.WriteString("</span>")
	}
	return b.String()
}
