package unipalette

import "github.com/alnah/go-unipalette/internal/pipeline"

// Default option values.
const (
	DefaultCategory     = "So"
	DefaultNameFontSize = "6"
	DefaultTitle        = pipeline.DefaultTitle
)

// Options controls which characters are emitted and the output shape.
// No cross-option validation is performed: AddHover without HTML is
// accepted and has no effect.
type Options struct {
	Categories   []string // General category labels, e.g. "So", "Zs"
	AddName      bool     // Append the title-cased character name
	AddHover     bool     // HTML only: show the name as a hover tooltip
	HTML         bool     // text/html document instead of text/plain
	Base64       bool     // base64 payload instead of percent-encoding
	NameFontSize string   // CSS length for name labels, inserted verbatim
	Title        string   // HTML <title>; empty = "Unicode Palette"
}

// DefaultOptions returns the options of a bare invocation: Symbol, Other
// characters as a base64 plain-text URL.
func DefaultOptions() Options {
	return Options{
		Categories:   []string{DefaultCategory},
		Base64:       true,
		NameFontSize: DefaultNameFontSize,
	}
}

// MIMEType returns the media type of the generated document.
func (o Options) MIMEType() string {
	if o.HTML {
		return pipeline.MIMEHTML
	}
	return pipeline.MIMEPlain
}

func (o Options) formatOptions() pipeline.FormatOptions {
	return pipeline.FormatOptions{HTML: o.HTML, AddName: o.AddName, AddHover: o.AddHover}
}

func (o Options) assembleOptions() pipeline.AssembleOptions {
	return pipeline.AssembleOptions{HTML: o.HTML, Title: o.Title, NameFontSize: o.NameFontSize}
}

func (o Options) encodeOptions() pipeline.EncodeOptions {
	return pipeline.EncodeOptions{HTML: o.HTML, Base64: o.Base64}
}

// Result holds the output of a generation.
type Result struct {
	URL      string // data: URL
	Document string // Document before transport encoding
	Matched  int    // Number of code points in the document
}

// Payload is a decoded data URL.
type Payload = pipeline.Payload

// CategoryCount is the number of code points in one general category.
type CategoryCount struct {
	Label string
	Count int
}
