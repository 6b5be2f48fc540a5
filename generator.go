package unipalette

import (
	"context"
	"fmt"
	"io"

	"github.com/alnah/go-unipalette/internal/pipeline"
)

// ctxCheckInterval is how many records are processed between context checks.
const ctxCheckInterval = 1024

// Document runs the filter, format and assembly stages and returns the
// unencoded document with the number of matched code points.
// A name lookup failure aborts the whole run.
func Document(ctx context.Context, opts Options) (string, int, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	formatter := pipeline.NewFormatter(opts.formatOptions())
	assembler := pipeline.NewAssembler(opts.assembleOptions())

	for rec, err := range pipeline.Records(pipeline.Categories(opts.Categories...), opts.formatOptions()) {
		if err != nil {
			return "", 0, fmt.Errorf("resolving names: %w", err)
		}
		assembler.Add(formatter.Format(rec))
		if assembler.Len()%ctxCheckInterval == 0 && ctx.Err() != nil {
			return "", 0, ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	return assembler.Document(), assembler.Len(), nil
}

// Generate runs the full pipeline and returns the data URL.
func Generate(ctx context.Context, opts Options) (*Result, error) {
	doc, matched, err := Document(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Result{
		URL:      pipeline.EncodeString(doc, opts.encodeOptions()),
		Document: doc,
		Matched:  matched,
	}, nil
}

// WriteTo generates the document and writes its data URL to w.
// Nothing is written unless the whole document was produced. The returned
// Result has an empty URL since the URL went to w.
func WriteTo(ctx context.Context, w io.Writer, opts Options) (*Result, error) {
	doc, matched, err := Document(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := pipeline.Encode(w, doc, opts.encodeOptions()); err != nil {
		return nil, err
	}
	return &Result{Document: doc, Matched: matched}, nil
}

// Decode parses a data URL produced by Generate and returns its document.
func Decode(dataURL string) (*Payload, error) {
	return pipeline.Decode(dataURL)
}

// Categories returns the general category labels a code point can have.
func Categories() []string {
	return pipeline.GeneralCategories()
}

// CategoryOf returns the general category of r.
func CategoryOf(r rune) string {
	return pipeline.CategoryOf(r)
}

// CountCategories returns the size of every general category, in label order.
func CountCategories(ctx context.Context) ([]CategoryCount, error) {
	tally, err := pipeline.Tally(ctx)
	if err != nil {
		return nil, err
	}
	labels := pipeline.GeneralCategories()
	out := make([]CategoryCount, 0, len(labels))
	for _, label := range labels {
		out = append(out, CategoryCount{Label: label, Count: tally[label]})
	}
	return out, nil
}
