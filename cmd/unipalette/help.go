package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: unipalette [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate     Generate a palette data URL (default)")
	fmt.Fprintln(w, "  categories   List general categories with their sizes")
	fmt.Fprintln(w, "  decode       Print the document inside a data URL")
	fmt.Fprintln(w, "  completion   Generate shell completion script")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'unipalette help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: unipalette [generate] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Emit every code point of the selected general categories as a data: URL.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Selection:")
	fmt.Fprintln(w, "      --category <label>    General category, repeatable or comma-separated")
	fmt.Fprintln(w, "                            (default: So). Run 'unipalette categories' for labels")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Format:")
	fmt.Fprintln(w, "      --html                Emit text/html instead of text/plain")
	fmt.Fprintln(w, "      --add-name            Append each character's name")
	fmt.Fprintln(w, "      --add-hover           Show names as hover tooltips (HTML only)")
	fmt.Fprintln(w, "      --name-font-size <s>  CSS font size of name labels (default: 6)")
	fmt.Fprintln(w, "      --title <s>           HTML document title (default: Unicode Palette)")
	fmt.Fprintln(w, "      --base64              Base64 payload (default: true, --no-base64")
	fmt.Fprintln(w, "                            to percent-encode)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Boolean flags also take a value word (--html false) and a --no- form")
	fmt.Fprintln(w, "(--no-html).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: standard output)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -v, --verbose             Show settings and timing on stderr")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  UNIPALETTE_CONFIG, UNIPALETTE_CATEGORIES, UNIPALETTE_HTML,")
	fmt.Fprintln(w, "  UNIPALETTE_BASE64, UNIPALETTE_ADD_NAME, UNIPALETTE_ADD_HOVER,")
	fmt.Fprintln(w, "  UNIPALETTE_NAME_FONT_SIZE, UNIPALETTE_TITLE, UNIPALETTE_OUTPUT")
	fmt.Fprintln(w, "  are read from the environment and ./.env; flags take precedence.")
}

// printCategoriesUsage prints usage for the categories command.
func printCategoriesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: unipalette categories [label...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List general categories with the number of code points in each.")
	fmt.Fprintln(w, "With labels, list only those.")
}

// printDecodeUsage prints usage for the decode command.
func printDecodeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: unipalette decode [data-url | -]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the document inside a palette data URL.")
	fmt.Fprintln(w, "Reads the URL from standard input when omitted or \"-\".")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "categories":
		printCategoriesUsage(env.Stdout)
	case "decode":
		printDecodeUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: unipalette version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: unipalette help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
