package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"

	unipalette "github.com/alnah/go-unipalette"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	verbose bool
}

// paletteFlags holds the flags that shape the palette.
type paletteFlags struct {
	categories   []string
	addName      bool
	addHover     bool
	html         bool
	base64       bool
	nameFontSize string
	title        string

	noAddName  bool
	noAddHover bool
	noHTML     bool
	noBase64   bool
}

// negatableFlags are the palette booleans that also accept a separate
// true/false word and a hidden --no-<name> negation.
var negatableFlags = []string{"add-name", "add-hover", "html", "base64"}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common  commonFlags
	output  string
	version bool
	palette paletteFlags

	// changed reports whether a flag was given on the command line.
	changed func(name string) bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show settings and timing on stderr")
}

// addPaletteFlags adds palette flags to a FlagSet.
func addPaletteFlags(fs *flag.FlagSet, f *paletteFlags) {
	fs.StringSliceVar(&f.categories, "category", []string{unipalette.DefaultCategory}, "general category label, repeatable or comma-separated")
	fs.BoolVar(&f.addName, "add-name", false, "append each character's name")
	fs.BoolVar(&f.addHover, "add-hover", false, "show names as hover tooltips (HTML only)")
	fs.BoolVar(&f.html, "html", false, "emit text/html instead of text/plain")
	fs.BoolVar(&f.base64, "base64", true, "base64 payload (--no-base64 to percent-encode)")
	fs.StringVar(&f.nameFontSize, "name-font-size", unipalette.DefaultNameFontSize, "CSS font size of name labels")
	fs.StringVar(&f.title, "title", "", "HTML document title")

	fs.BoolVar(&f.noAddName, "no-add-name", false, "disable --add-name")
	fs.BoolVar(&f.noAddHover, "no-add-hover", false, "disable --add-hover")
	fs.BoolVar(&f.noHTML, "no-html", false, "disable --html")
	fs.BoolVar(&f.noBase64, "no-base64", false, "percent-encode the payload")
	for _, name := range negatableFlags {
		// Error ignored: the flag was registered just above.
		_ = fs.MarkHidden("no-" + name)
	}
}

// joinBoolValues rewrites "--flag true" and "--flag false" into
// "--flag=true" and "--flag=false" for negatable flags and their --no-
// forms, so a boolean given as a separate word is not taken for a
// positional argument. Arguments after "--" are left alone.
func joinBoolValues(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		name, ok := strings.CutPrefix(arg, "--")
		if ok && slices.Contains(negatableFlags, strings.TrimPrefix(name, "no-")) && i+1 < len(args) && isBoolWord(args[i+1]) {
			out = append(out, arg+"="+strings.ToLower(args[i+1]))
			i++
			continue
		}
		out = append(out, arg)
	}
	return out
}

func isBoolWord(s string) bool {
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "false")
}

// newGenerateFlagSet registers every generate flag on a new FlagSet.
// Shared by parseGenerateFlags and shell completion.
func newGenerateFlagSet(f *generateFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: standard output)")
	fs.BoolVar(&f.version, "version", false, "show version information")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addPaletteFlags(fs, &f.palette)

	return fs
}

// parseGenerateFlags parses generate command flags and returns positional args.
// Usage is printed to w on -h or a parse error.
func parseGenerateFlags(args []string, w io.Writer) (*generateFlags, []string, error) {
	f := &generateFlags{}
	fs := newGenerateFlagSet(f)
	fs.SetOutput(w)
	fs.Usage = func() { printGenerateUsage(w) }

	if err := fs.Parse(joinBoolValues(args)); err != nil {
		return nil, nil, usageError(err)
	}

	f.changed = fs.Changed
	return f, fs.Args(), nil
}

// parseNoFlags parses the flags of a command that only takes -h.
func parseNoFlags(name string, args []string, w io.Writer, usage func(io.Writer)) ([]string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, usageError(err)
	}
	return fs.Args(), nil
}

// usageError classifies a pflag parse error. flag.ErrHelp passes through.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
