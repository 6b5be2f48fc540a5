package pipeline

import (
	"context"
	"iter"
	"unicode"
)

// MaxCodePoint is the last code point of the Unicode code space.
const MaxCodePoint rune = unicode.MaxRune

// Unassigned is the general category of code points no other category covers.
const Unassigned = "Cn"

// generalCategories lists the two-letter general categories in UCD order.
// Cn has no range table and is derived from the absence of all others.
var generalCategories = []string{
	"Cc", "Cf", "Cn", "Co", "Cs",
	"Ll", "Lm", "Lo", "Lt", "Lu",
	"Mc", "Me", "Mn",
	"Nd", "Nl", "No",
	"Pc", "Pd", "Pe", "Pf", "Pi", "Po", "Ps",
	"Sc", "Sk", "Sm", "So",
	"Zl", "Zp", "Zs",
}

// GeneralCategories returns the two-letter general category labels.
func GeneralCategories() []string {
	out := make([]string, len(generalCategories))
	copy(out, generalCategories)
	return out
}

// CategorySet is a membership filter over general category labels.
// Labels are matched exactly; unknown labels match nothing.
type CategorySet map[string]struct{}

// Categories builds a CategorySet from labels.
func Categories(labels ...string) CategorySet {
	set := make(CategorySet, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	return set
}

// Has reports whether label is in the set.
func (s CategorySet) Has(label string) bool {
	_, ok := s[label]
	return ok
}

// tableFor returns the range table of a two-letter category, or nil for Cn.
// Callers only pass labels from generalCategories, so group tables such as
// "L" are never consulted.
func tableFor(label string) *unicode.RangeTable {
	return unicode.Categories[label]
}

// CategoryOf returns the two-letter general category of r.
func CategoryOf(r rune) string {
	for _, label := range generalCategories {
		if t := tableFor(label); t != nil && unicode.Is(t, r) {
			return label
		}
	}
	return Unassigned
}

// matcher is the compiled form of a CategorySet.
type matcher struct {
	tables     []*unicode.RangeTable
	unassigned bool
}

func compile(set CategorySet) matcher {
	var m matcher
	for _, label := range generalCategories {
		if !set.Has(label) {
			continue
		}
		if label == Unassigned {
			m.unassigned = true
			continue
		}
		if t := tableFor(label); t != nil {
			m.tables = append(m.tables, t)
		}
	}
	return m
}

func (m matcher) empty() bool {
	return len(m.tables) == 0 && !m.unassigned
}

func (m matcher) match(r rune) bool {
	for _, t := range m.tables {
		if unicode.Is(t, r) {
			return true
		}
	}
	return m.unassigned && CategoryOf(r) == Unassigned
}

// Filter yields, in ascending order, every code point in [0, MaxCodePoint]
// whose general category is in set. Each call starts a fresh scan.
func Filter(set CategorySet) iter.Seq[rune] {
	m := compile(set)
	return func(yield func(rune) bool) {
		if m.empty() {
			return
		}
		for r := rune(0); r <= MaxCodePoint; r++ {
			if m.match(r) && !yield(r) {
				return
			}
		}
	}
}

// tallyCheckInterval is how many code points Tally scans between context
// checks.
const tallyCheckInterval = 1024

// Tally counts every code point of the code space by general category in
// a single scan. Every label of GeneralCategories is present in the result.
// The scan stops with ctx's error once ctx is done.
func Tally(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(generalCategories))
	for _, label := range generalCategories {
		counts[label] = 0
	}
	for r := rune(0); r <= MaxCodePoint; r++ {
		if r%tallyCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		counts[CategoryOf(r)]++
	}
	return counts, nil
}

// Count returns the number of code points Filter(set) yields.
func Count(set CategorySet) int {
	n := 0
	for range Filter(set) {
		n++
	}
	return n
}
