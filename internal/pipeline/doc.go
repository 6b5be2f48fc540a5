// Package pipeline implements the stages that turn Unicode general
// categories into a data URL:
//   - Category filtering over the full code space (0 to U+10FFFF)
//   - Display name resolution via the Unicode character database
//   - Fragment formatting (plain text or HTML)
//   - Document assembly (zero-width-space joined text or an HTML skeleton)
//   - data: URL encoding (base64 or form-style percent-encoding)
//
// Each stage is a pure function of the previous stage's output and its
// options. Orchestration lives in the root unipalette package, which also
// checks for cancellation between records. Tally takes a context of its own
// since it scans the whole code space in one call.
package pipeline
