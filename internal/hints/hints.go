// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"slices"
	"strings"
)

// nameless lists the general categories whose code points never have names.
var nameless = []string{"Cc", "Cn", "Co", "Cs"}

// ForUnnamedCodePoint returns hints for name lookups that failed.
// When the requested categories include a nameless one, it is named.
func ForUnnamedCodePoint(categories []string) string {
	var found []string
	for _, c := range categories {
		if slices.Contains(nameless, c) && !slices.Contains(found, c) {
			found = append(found, c)
		}
	}

	hints := []string{"drop --add-name (and --add-hover with --html)"}
	if len(found) > 0 {
		hints = append(hints, "categories without names: "+strings.Join(found, ", "))
	}
	return formatHints(hints)
}

// ForUnknownCategories returns a hint listing valid labels when any of
// categories is not one of known.
func ForUnknownCategories(categories, known []string) string {
	var unknown []string
	for _, c := range categories {
		if !slices.Contains(known, c) {
			unknown = append(unknown, c)
		}
	}
	if len(unknown) == 0 {
		return ""
	}
	return format("unknown categories " + strings.Join(unknown, ", ") +
		" match nothing; valid: " + strings.Join(known, ", "))
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-unipalette") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputFile returns hints for output file write errors.
func ForOutputFile() string {
	return format("check parent directory exists and is writable, or omit --output to print")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
