package pipeline

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestFormatter_Format - Fragment shapes
// ---------------------------------------------------------------------------

func TestFormatter_Format(t *testing.T) {
	t.Parallel()

	space := Record{Rune: 0x2003, Name: "Em Space"}
	lt := Record{Rune: '<', Name: "Less-Than Sign"}
	quote := Record{Rune: '\'', Name: "Apostrophe"}

	tests := []struct {
		name string
		opts FormatOptions
		rec  Record
		want string
	}{
		{
			name: "text bare",
			opts: FormatOptions{},
			rec:  space,
			want: "\u2003",
		},
		{
			name: "text with name",
			opts: FormatOptions{AddName: true},
			rec:  space,
			want: "\u2003" + ZeroWidthSpace + "Em Space",
		},
		{
			name: "text ignores hover",
			opts: FormatOptions{AddHover: true},
			rec:  space,
			want: "\u2003",
		},
		{
			name: "html bare",
			opts: FormatOptions{HTML: true},
			rec:  space,
			want: "\u2003",
		},
		{
			name: "html escapes character",
			opts: FormatOptions{HTML: true},
			rec:  lt,
			want: "&lt;",
		},
		{
			name: "html with name",
			opts: FormatOptions{HTML: true, AddName: true},
			rec:  space,
			want: "<span>\u2003</span><span class='n'>Em Space</span>",
		},
		{
			name: "html with hover",
			opts: FormatOptions{HTML: true, AddHover: true},
			rec:  space,
			want: "<span title='Em Space'>\u2003</span>",
		},
		{
			name: "html with hover and name",
			opts: FormatOptions{HTML: true, AddHover: true, AddName: true},
			rec:  lt,
			want: "<span title='Less-Than Sign'>&lt;</span><span class='n'>Less-Than Sign</span>",
		},
		{
			name: "html hover escapes apostrophe",
			opts: FormatOptions{HTML: true, AddHover: true},
			rec:  quote,
			want: "<span title='Apostrophe'>&#39;</span>",
		},
		{
			name: "html hover escapes name",
			opts: FormatOptions{HTML: true, AddHover: true},
			rec:  Record{Rune: 'x', Name: "It's"},
			want: "<span title='It&#39;s'>x</span>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NewFormatter(tt.opts).Format(tt.rec)
			if got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRecords - Filter plus name resolution
// ---------------------------------------------------------------------------

func TestRecords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts FormatOptions
		want []Record
	}{
		{
			name: "no names requested",
			opts: FormatOptions{},
			want: []Record{{Rune: 0x2028}, {Rune: 0x2029}},
		},
		{
			name: "hover in text mode needs no name",
			opts: FormatOptions{AddHover: true},
			want: []Record{{Rune: 0x2028}, {Rune: 0x2029}},
		},
		{
			name: "names requested",
			opts: FormatOptions{AddName: true},
			want: []Record{
				{Rune: 0x2028, Name: "Line Separator"},
				{Rune: 0x2029, Name: "Paragraph Separator"},
			},
		},
		{
			name: "hover in html mode needs names",
			opts: FormatOptions{HTML: true, AddHover: true},
			want: []Record{
				{Rune: 0x2028, Name: "Line Separator"},
				{Rune: 0x2029, Name: "Paragraph Separator"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []Record
			for rec, err := range Records(Categories("Zl", "Zp"), tt.opts) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				got = append(got, rec)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Records() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecords_UnnamedStopsSequence(t *testing.T) {
	t.Parallel()

	var errs []error
	records := 0
	for _, err := range Records(Categories("Cc"), FormatOptions{AddName: true}) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		records++
	}

	if records != 0 {
		t.Errorf("got %d records before failure, want 0", records)
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want exactly 1", len(errs))
	}
	if !errors.Is(errs[0], ErrUnnamedCodePoint) {
		t.Errorf("error = %v, want ErrUnnamedCodePoint", errs[0])
	}
}
