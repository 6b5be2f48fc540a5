package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/runenames"
)

// ErrUnnamedCodePoint is returned when a code point has no character name.
var ErrUnnamedCodePoint = errors.New("code point has no name")

// Hangul syllable composition constants (Unicode 3.12).
const (
	hangulBase  = 0xAC00
	hangulLast  = 0xD7A3
	hangulVowel = 21
	hangulTrail = 28
	hangulBlock = hangulVowel * hangulTrail
)

var (
	jamoLead = []string{
		"G", "GG", "N", "D", "DD", "R", "M", "B", "BB", "S",
		"SS", "", "J", "JJ", "C", "K", "T", "P", "H",
	}
	jamoVowel = []string{
		"A", "AE", "YA", "YAE", "EO", "E", "YEO", "YE", "O", "WA",
		"WAE", "OE", "YO", "U", "WEO", "WE", "WI", "YU", "EU", "YI", "I",
	}
	jamoTrail = []string{
		"", "G", "GG", "GS", "N", "NJ", "NH", "D", "L", "LG",
		"LM", "LB", "LS", "LT", "LP", "LH", "M", "B", "BS", "S",
		"SS", "NG", "J", "C", "K", "T", "P", "H",
	}
)

// derivedPrefixes maps UnicodeData range labels to the name prefix of their
// derived names (Unicode 4.8, rule NR2).
var derivedPrefixes = []struct {
	label  string
	prefix string
}{
	{"<CJK Ideograph", "CJK UNIFIED IDEOGRAPH-"},
	{"<Tangut Ideograph", "TANGUT IDEOGRAPH-"},
	{"<Khitan Small Script", "KHITAN SMALL SCRIPT CHARACTER-"},
	{"<Nushu Character", "NUSHU CHARACTER-"},
}

// Name returns the Unicode character name of r.
// Code points whose database entry is a range or control label without a
// derivable name return ErrUnnamedCodePoint.
func Name(r rune) (string, error) {
	if r >= hangulBase && r <= hangulLast {
		return hangulName(r), nil
	}

	name := runenames.Name(r)
	if name == "" {
		return "", unnamed(r)
	}
	if !strings.HasPrefix(name, "<") {
		return name, nil
	}

	for _, d := range derivedPrefixes {
		if strings.HasPrefix(name, d.label) {
			return fmt.Sprintf("%s%04X", d.prefix, r), nil
		}
	}
	return "", unnamed(r)
}

func unnamed(r rune) error {
	return fmt.Errorf("%w: %U", ErrUnnamedCodePoint, r)
}

func hangulName(r rune) string {
	s := int(r - hangulBase)
	l := s / hangulBlock
	v := (s % hangulBlock) / hangulTrail
	t := s % hangulTrail
	return "HANGUL SYLLABLE " + jamoLead[l] + jamoVowel[v] + jamoTrail[t]
}

// Namer resolves title-cased display names. A Namer is not safe for
// concurrent use.
type Namer struct {
	caser cases.Caser
}

// NewNamer returns a Namer that title-cases with language-neutral rules.
func NewNamer() *Namer {
	return &Namer{caser: cases.Title(language.Und)}
}

// DisplayName returns the name of r with each word capitalized and the rest
// lowercased, e.g. "Latin Small Letter A".
func (n *Namer) DisplayName(r rune) (string, error) {
	name, err := Name(r)
	if err != nil {
		return "", err
	}
	return n.caser.String(name), nil
}
