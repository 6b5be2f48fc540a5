package unipalette

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"unicode"
)

// otherSymbols returns every So code point using the standard range table
// directly, independent of the pipeline.
func otherSymbols() []string {
	var out []string
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if unicode.Is(unicode.So, r) {
			out = append(out, string(r))
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// TestDefaultOptions - Bare invocation defaults
// ---------------------------------------------------------------------------

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	if len(opts.Categories) != 1 || opts.Categories[0] != "So" {
		t.Errorf("Categories = %v, want [So]", opts.Categories)
	}
	if !opts.Base64 {
		t.Error("Base64 = false, want true")
	}
	if opts.HTML || opts.AddName || opts.AddHover {
		t.Errorf("HTML/AddName/AddHover should default to false, got %+v", opts)
	}
	if opts.NameFontSize != "6" {
		t.Errorf("NameFontSize = %q, want %q", opts.NameFontSize, "6")
	}
	if opts.MIMEType() != "text/plain" {
		t.Errorf("MIMEType() = %q, want text/plain", opts.MIMEType())
	}
}

// ---------------------------------------------------------------------------
// TestGenerate - End-to-end scenarios
// ---------------------------------------------------------------------------

func TestGenerate_OtherSymbolsPlainBase64(t *testing.T) {
	t.Parallel()

	opts := Options{Categories: []string{"So"}, Base64: true, NameFontSize: "6"}
	result, err := Generate(context.Background(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const prefix = "data:text/plain;charset=UTF-8;base64,"
	if !strings.HasPrefix(result.URL, prefix) {
		t.Fatalf("URL does not start with %q", prefix)
	}

	want := strings.Join(otherSymbols(), "\u200b")
	if result.Document != want {
		t.Errorf("Document differs from zero-width-space joined So characters (len %d, want %d)",
			len(result.Document), len(want))
	}
	if result.Matched != len(otherSymbols()) {
		t.Errorf("Matched = %d, want %d", result.Matched, len(otherSymbols()))
	}

	payload, err := Decode(result.URL)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if payload.Document != result.Document {
		t.Error("decoded payload differs from document")
	}
}

func TestGenerate_SpaceSeparatorsHTMLPercent(t *testing.T) {
	t.Parallel()

	opts := Options{Categories: []string{"Zs"}, AddName: true, HTML: true, NameFontSize: "6"}
	result, err := Generate(context.Background(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const prefix = "data:text/html;charset=UTF-8;"
	if !strings.HasPrefix(result.URL, prefix) {
		t.Fatalf("URL %q does not start with %q", result.URL, prefix)
	}
	if strings.HasPrefix(result.URL, prefix+"base64,") {
		t.Fatal("URL should be percent-encoded, not base64")
	}

	payload, err := Decode(result.URL)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	doc := payload.Document
	if doc != result.Document {
		t.Fatal("decoded payload differs from document")
	}

	if got := strings.Count(doc, "<span>"); got != 17 {
		t.Errorf("character spans = %d, want 17", got)
	}
	if got := strings.Count(doc, "<span class='n'>"); got != 17 {
		t.Errorf("name spans = %d, want 17", got)
	}
	for _, want := range []string{
		".n{font-size:6}",
		"<span class='n'>Space</span>",
		"<span class='n'>Em Space</span>",
		"<span class='n'>Ideographic Space</span>",
		"<title>Unicode Palette</title>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestGenerate_UnknownCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "plain base64",
			opts: Options{Categories: []string{"ThisIsNotARealCategory"}, Base64: true},
			want: "data:text/plain;charset=UTF-8;base64,",
		},
		{
			name: "plain percent",
			opts: Options{Categories: []string{"ThisIsNotARealCategory"}},
			want: "data:text/plain;charset=UTF-8;",
		},
		{
			name: "empty category list",
			opts: Options{Base64: true},
			want: "data:text/plain;charset=UTF-8;base64,",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, err := Generate(context.Background(), tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.URL != tt.want {
				t.Errorf("URL = %q, want %q", result.URL, tt.want)
			}
			if result.Matched != 0 {
				t.Errorf("Matched = %d, want 0", result.Matched)
			}
		})
	}
}

func TestGenerate_EmptyHTMLSkeleton(t *testing.T) {
	t.Parallel()

	opts := Options{Categories: []string{"nope"}, HTML: true, NameFontSize: "6"}
	result, err := Generate(context.Background(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.Document, "<body></body>") {
		t.Errorf("Document = %q, want empty body", result.Document)
	}
}

func TestGenerate_UnnamedCodePointFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
	}{
		{"unassigned with names", Options{Categories: []string{"Cn"}, AddName: true}},
		{"controls with names", Options{Categories: []string{"Cc"}, AddName: true, HTML: true}},
		{"controls with html hover", Options{Categories: []string{"Cc"}, AddHover: true, HTML: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Generate(context.Background(), tt.opts)
			if !errors.Is(err, ErrUnnamedCodePoint) {
				t.Fatalf("error = %v, want ErrUnnamedCodePoint", err)
			}
			if result != nil {
				t.Error("result should be nil on failure")
			}
		})
	}
}

func TestGenerate_HoverIgnoredInText(t *testing.T) {
	t.Parallel()

	// Controls have no names, but text mode never looks hover names up.
	opts := Options{Categories: []string{"Cc"}, AddHover: true, Base64: true}
	result, err := Generate(context.Background(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Matched != 65 {
		t.Errorf("Matched = %d, want 65", result.Matched)
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	t.Parallel()

	opts := Options{Categories: []string{"Sc", "Zs"}, AddName: true, HTML: true, AddHover: true, NameFontSize: "8px"}
	first, err := Generate(context.Background(), opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := Generate(context.Background(), opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first.URL != second.URL {
		t.Error("two runs with identical options produced different URLs")
	}
}

func TestGenerate_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Generate(ctx, DefaultOptions())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestWriteTo - Streaming the URL to a writer
// ---------------------------------------------------------------------------

func TestWriteTo(t *testing.T) {
	t.Parallel()

	opts := Options{Categories: []string{"Zl", "Zp"}, Base64: true}
	var buf bytes.Buffer
	result, err := WriteTo(context.Background(), &buf, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	generated, err := Generate(context.Background(), opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if buf.String() != generated.URL {
		t.Errorf("WriteTo wrote %q, want %q", buf.String(), generated.URL)
	}
	if result.Matched != 2 {
		t.Errorf("Matched = %d, want 2", result.Matched)
	}
}

func TestWriteTo_NoPartialOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := WriteTo(context.Background(), &buf, Options{Categories: []string{"Zs", "Cc"}, AddName: true})
	if !errors.Is(err, ErrUnnamedCodePoint) {
		t.Fatalf("error = %v, want ErrUnnamedCodePoint", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes on failure, want 0", buf.Len())
	}
}

// ---------------------------------------------------------------------------
// TestCountCategories - Category census
// ---------------------------------------------------------------------------

func TestCountCategories(t *testing.T) {
	t.Parallel()

	counts, err := CountCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != len(Categories()) {
		t.Fatalf("len = %d, want %d", len(counts), len(Categories()))
	}

	byLabel := make(map[string]int, len(counts))
	total := 0
	for _, c := range counts {
		byLabel[c.Label] = c.Count
		total += c.Count
	}
	if total != unicode.MaxRune+1 {
		t.Errorf("total = %d, want %d", total, unicode.MaxRune+1)
	}
	if byLabel["Zs"] != 17 {
		t.Errorf("Zs = %d, want 17", byLabel["Zs"])
	}
	if byLabel["Cc"] != 65 {
		t.Errorf("Cc = %d, want 65", byLabel["Cc"])
	}
}

func TestCountCategories_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := CountCategories(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestGenerate_Surrogates - Unencodable code points
// ---------------------------------------------------------------------------

func TestGenerate_Surrogates(t *testing.T) {
	t.Parallel()

	result, err := Generate(context.Background(), Options{Categories: []string{"Cs"}, Base64: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Matched != 2048 {
		t.Errorf("Matched = %d, want 2048", result.Matched)
	}

	chars := strings.Split(result.Document, "\u200b")
	if len(chars) != 2048 {
		t.Fatalf("fragments = %d, want 2048", len(chars))
	}
	for i, c := range chars {
		if c != "\uFFFD" {
			t.Fatalf("fragment %d = %q, want U+FFFD", i, c)
		}
	}
}

func TestCategoryOf(t *testing.T) {
	t.Parallel()

	if got := CategoryOf(0x263A); got != "So" {
		t.Errorf("CategoryOf(U+263A) = %q, want So", got)
	}
}
