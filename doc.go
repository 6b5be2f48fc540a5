// Package unipalette builds palettes of Unicode characters and emits them as
// data URLs that can be pasted into a browser address bar or shared as links.
//
// # Quick Start
//
//	opts := unipalette.DefaultOptions() // "So" (Symbol, Other), base64, plain text
//	result, err := unipalette.Generate(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.URL)
//
// The result contains both the data URL (result.URL) and the document it
// encodes (result.Document) for debugging.
//
// # Generation Pipeline
//
// The generation process follows these stages:
//
//  1. Category filtering over the whole code space (U+0000 to U+10FFFF)
//  2. Fragment formatting, optionally with title-cased character names
//  3. Document assembly (zero-width-space joined text or an HTML skeleton)
//  4. data: URL encoding (base64 or form-style percent-encoding)
//
// # Names
//
// With AddName (or AddHover in HTML mode) every matched code point must have
// a character name. Control characters, private-use, surrogate and
// unassigned code points have none, and the whole generation fails with
// ErrUnnamedCodePoint; no partial document is produced.
//
// # Decoding
//
// Decode reverses the encoding of a generated URL and returns the document:
//
//	payload, err := unipalette.Decode(result.URL)
package unipalette
