package unipalette

import "github.com/alnah/go-unipalette/internal/pipeline"

// Sentinel errors for library operations.
var (
	// ErrUnnamedCodePoint is returned when names are requested and a matched
	// code point has no character name.
	ErrUnnamedCodePoint = pipeline.ErrUnnamedCodePoint

	// ErrMalformedDataURL is returned by Decode for input that is not a
	// palette data URL.
	ErrMalformedDataURL = pipeline.ErrMalformedDataURL
)
