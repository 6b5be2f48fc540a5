package pipeline

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// MIME types of assembled documents.
const (
	MIMEPlain = "text/plain"
	MIMEHTML  = "text/html"
)

const (
	dataScheme   = "data:"
	charsetParam = ";charset=UTF-8;"
	base64Marker = "base64,"
)

// ErrMalformedDataURL is returned by Decode for input it did not produce.
var ErrMalformedDataURL = errors.New("malformed data URL")

// EncodeOptions selects the MIME type and transfer encoding.
type EncodeOptions struct {
	HTML   bool
	Base64 bool
}

func (o EncodeOptions) mimeType() string {
	if o.HTML {
		return MIMEHTML
	}
	return MIMEPlain
}

// Prefix returns the data URL prefix up to the payload, e.g.
// "data:text/plain;charset=UTF-8;base64,".
func Prefix(opts EncodeOptions) string {
	p := dataScheme + opts.mimeType() + charsetParam
	if opts.Base64 {
		p += base64Marker
	}
	return p
}

// Encode writes doc to w as a data URL. With Base64 unset the document is
// form-encoded (space as '+') and appended directly after the prefix.
func Encode(w io.Writer, doc string, opts EncodeOptions) error {
	if _, err := io.WriteString(w, Prefix(opts)); err != nil {
		return fmt.Errorf("writing data URL prefix: %w", err)
	}

	if opts.Base64 {
		enc := base64.NewEncoder(base64.StdEncoding, w)
		if _, err := io.WriteString(enc, doc); err != nil {
			return fmt.Errorf("writing base64 payload: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("flushing base64 payload: %w", err)
		}
		return nil
	}

	if _, err := io.WriteString(w, url.QueryEscape(doc)); err != nil {
		return fmt.Errorf("writing percent-encoded payload: %w", err)
	}
	return nil
}

// EncodeString returns doc encoded as a data URL.
func EncodeString(doc string, opts EncodeOptions) string {
	var b strings.Builder
	_ = Encode(&b, doc, opts) // strings.Builder never fails
	return b.String()
}

// Payload is a decoded data URL.
type Payload struct {
	MIMEType string
	Base64   bool
	Document string
}

// Decode reverses Encode.
func Decode(dataURL string) (*Payload, error) {
	rest, ok := strings.CutPrefix(dataURL, dataScheme)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q scheme", ErrMalformedDataURL, dataScheme)
	}

	mime, rest, ok := strings.Cut(rest, charsetParam)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q parameter", ErrMalformedDataURL, charsetParam)
	}
	if mime != MIMEPlain && mime != MIMEHTML {
		return nil, fmt.Errorf("%w: unsupported MIME type %q", ErrMalformedDataURL, mime)
	}

	p := &Payload{MIMEType: mime}
	if data, isBase64 := strings.CutPrefix(rest, base64Marker); isBase64 {
		raw, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDataURL, err)
		}
		p.Base64 = true
		p.Document = string(raw)
		return p, nil
	}

	doc, err := url.QueryUnescape(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDataURL, err)
	}
	p.Document = doc
	return p, nil
}
