package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	unipalette "github.com/alnah/go-unipalette"
	"github.com/alnah/go-unipalette/internal/config"
	"github.com/alnah/go-unipalette/internal/fileutil"
	"github.com/alnah/go-unipalette/internal/hints"
)

// stdioPath names standard output for -o and standard input for decode.
const stdioPath = "-"

// runGenerate handles the generate command.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if flags.version {
		printVersion(env)
		return nil
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected arguments: %s", ErrUsage, strings.Join(positional, " "))
	}

	vars, err := environMap(env)
	if err != nil {
		return err
	}
	warnUnknownEnvVars(env.Stderr, vars)
	envCfg, err := loadEnvConfig(vars)
	if err != nil {
		return err
	}

	cfg, err := loadFileConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}

	opts := resolveOptions(cfg, envCfg, flags)
	output := resolveOutput(cfg, envCfg, flags)
	verbose := flags.common.verbose

	if verbose {
		printSettings(env.Stderr, opts, output)
		if hint := hints.ForUnknownCategories(opts.Categories, unipalette.Categories()); hint != "" {
			fmt.Fprintf(env.Stderr, "warning: no effect%s\n", hint)
		}
	}

	start := env.Now()
	result, err := writePalette(ctx, env.Stdout, opts, output)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(env.Stderr, "Matched %d code points in %v\n",
			result.Matched, env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// loadFileConfig loads the config named by the flag, else by the
// environment. With neither, every value falls through to the defaults.
func loadFileConfig(flagPath, envPath string) (*config.Config, error) {
	nameOrPath := flagPath
	if nameOrPath == "" {
		nameOrPath = envPath
	}
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		hint := ""
		if errors.Is(err, config.ErrConfigNotFound) {
			var searched []string
			if !fileutil.IsFilePath(nameOrPath) {
				searched = config.SearchPaths(nameOrPath)
			}
			hint = hints.ForConfigNotFound(searched)
		}
		return nil, fmt.Errorf("loading config: %w%s", err, hint)
	}
	return cfg, nil
}

// resolveOptions merges every source into library options.
// Priority: CLI flags > env vars > config file > defaults.
func resolveOptions(cfg *config.Config, env *envConfig, flags *generateFlags) unipalette.Options {
	opts := unipalette.DefaultOptions()
	applyFileConfig(cfg, &opts)
	applyEnvConfig(env, &opts)
	mergeFlags(flags, &opts)
	opts.Categories = normalizeCategories(opts.Categories)
	return opts
}

// applyFileConfig overrides opts with every value the config file sets.
func applyFileConfig(cfg *config.Config, opts *unipalette.Options) {
	p := cfg.Palette
	if len(p.Categories) > 0 {
		opts.Categories = p.Categories
	}
	if p.AddName != nil {
		opts.AddName = *p.AddName
	}
	if p.AddHover != nil {
		opts.AddHover = *p.AddHover
	}
	if p.HTML != nil {
		opts.HTML = *p.HTML
	}
	if p.Base64 != nil {
		opts.Base64 = *p.Base64
	}
	if p.NameFontSize != "" {
		opts.NameFontSize = p.NameFontSize
	}
	if p.Title != "" {
		opts.Title = p.Title
	}
}

// mergeFlags overrides opts with flags given on the command line.
// Flag defaults never override lower-priority sources.
func mergeFlags(flags *generateFlags, opts *unipalette.Options) {
	f := flags.palette
	if flags.changed("category") {
		opts.Categories = f.categories
	}
	if flags.changed("add-name") {
		opts.AddName = f.addName
	}
	if flags.changed("add-hover") {
		opts.AddHover = f.addHover
	}
	if flags.changed("html") {
		opts.HTML = f.html
	}
	if flags.changed("base64") {
		opts.Base64 = f.base64
	}
	// A negation wins over its positive flag when both are given.
	if flags.changed("no-add-name") && f.noAddName {
		opts.AddName = false
	}
	if flags.changed("no-add-hover") && f.noAddHover {
		opts.AddHover = false
	}
	if flags.changed("no-html") && f.noHTML {
		opts.HTML = false
	}
	if flags.changed("no-base64") && f.noBase64 {
		opts.Base64 = false
	}
	if flags.changed("name-font-size") {
		opts.NameFontSize = f.nameFontSize
	}
	if flags.changed("title") {
		opts.Title = f.title
	}
}

// normalizeCategories trims labels and drops empty ones, keeping order.
func normalizeCategories(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// resolveOutput returns the output file, or "" for standard output.
func resolveOutput(cfg *config.Config, env *envConfig, flags *generateFlags) string {
	output := cfg.Output.Path
	if env.Output != "" {
		output = env.Output
	}
	if flags.changed("output") {
		output = flags.output
	}
	if output == stdioPath {
		return ""
	}
	return output
}

// writePalette generates the data URL and writes it to stdout, or
// atomically to output when set. On failure nothing is written.
func writePalette(ctx context.Context, stdout io.Writer, opts unipalette.Options, output string) (*unipalette.Result, error) {
	if output == "" {
		result, err := unipalette.WriteTo(ctx, stdout, opts)
		if err != nil {
			return nil, classifyGenerateError(err, opts)
		}
		return result, nil
	}

	result, err := unipalette.Generate(ctx, opts)
	if err != nil {
		return nil, classifyGenerateError(err, opts)
	}
	if err := fileutil.WriteFileAtomic(output, result.URL, 0o644); err != nil {
		return nil, fmt.Errorf("%w: %s: %w%s", ErrWriteOutput, output, err, hints.ForOutputFile())
	}
	return result, nil
}

// classifyGenerateError attaches hints to name failures and marks every
// other non-cancellation failure as an output write error.
func classifyGenerateError(err error, opts unipalette.Options) error {
	switch {
	case errors.Is(err, unipalette.ErrUnnamedCodePoint):
		return fmt.Errorf("generating palette: %w%s", err, hints.ForUnnamedCodePoint(opts.Categories))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("generating palette: %w", err)
	default:
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
}

// printSettings writes the resolved options for --verbose.
func printSettings(w io.Writer, opts unipalette.Options, output string) {
	encoding := "percent"
	if opts.Base64 {
		encoding = "base64"
	}
	if output == "" {
		output = "stdout"
	}

	fmt.Fprintf(w, "Categories: %s\n", strings.Join(opts.Categories, ", "))
	fmt.Fprintf(w, "Format:     %s, %s\n", opts.MIMEType(), encoding)
	fmt.Fprintf(w, "Names:      add=%t hover=%t\n", opts.AddName, opts.AddHover)
	fmt.Fprintf(w, "Output:     %s\n", output)
}
