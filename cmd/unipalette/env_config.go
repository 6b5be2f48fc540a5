package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"slices"
	"strings"

	envparse "github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	unipalette "github.com/alnah/go-unipalette"
)

// envPrefix is the prefix shared by every recognized variable.
const envPrefix = "UNIPALETTE_"

// envValues holds configuration from UNIPALETTE_* environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envValues struct {
	ConfigPath   string   `env:"CONFIG"`                      // config file name or path
	Categories   []string `env:"CATEGORIES" envSeparator:","` // comma-separated labels
	AddName      bool     `env:"ADD_NAME"`                    // append names
	AddHover     bool     `env:"ADD_HOVER"`                   // hover tooltips
	HTML         bool     `env:"HTML"`                        // text/html output
	Base64       bool     `env:"BASE64"`                      // base64 payload
	NameFontSize string   `env:"NAME_FONT_SIZE"`              // CSS length
	Title        string   `env:"TITLE"`                       // HTML <title>
	Output       string   `env:"OUTPUT"`                      // output file
}

// envConfig is envValues plus which variables were set to a non-empty value.
// Booleans need it: an unset UNIPALETTE_BASE64 must not override true.
type envConfig struct {
	envValues
	set map[string]bool
}

// knownEnvVars lists valid UNIPALETTE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"UNIPALETTE_CONFIG":         true,
	"UNIPALETTE_CATEGORIES":     true,
	"UNIPALETTE_ADD_NAME":       true,
	"UNIPALETTE_ADD_HOVER":      true,
	"UNIPALETTE_HTML":           true,
	"UNIPALETTE_BASE64":         true,
	"UNIPALETTE_NAME_FONT_SIZE": true,
	"UNIPALETTE_TITLE":          true,
	"UNIPALETTE_OUTPUT":         true,
}

// environMap merges the .env file and the process environment. Process
// variables win, matching godotenv.Load. A missing .env file is ignored.
func environMap(env *Environment) (map[string]string, error) {
	vars := make(map[string]string)

	if env.DotEnv != "" {
		dot, err := godotenv.Read(env.DotEnv)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidEnv, env.DotEnv, err)
		default:
			maps.Copy(vars, dot)
		}
	}

	if env.Environ != nil {
		for _, kv := range env.Environ() {
			if k, v, ok := strings.Cut(kv, "="); ok {
				vars[k] = v
			}
		}
	}
	return vars, nil
}

// loadEnvConfig parses UNIPALETTE_* variables from vars.
func loadEnvConfig(vars map[string]string) (*envConfig, error) {
	cfg := &envConfig{set: make(map[string]bool)}
	if vars == nil {
		vars = map[string]string{} // nil makes envparse read os.Environ
	}

	opts := envparse.Options{
		Environment: vars,
		Prefix:      envPrefix,
	}
	if err := envparse.ParseWithOptions(&cfg.envValues, opts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnv, err)
	}

	for k, v := range vars {
		if name, ok := strings.CutPrefix(k, envPrefix); ok && v != "" {
			cfg.set[name] = true
		}
	}
	return cfg, nil
}

// warnUnknownEnvVars logs warnings for unrecognized UNIPALETTE_* variables.
// Helps catch typos like UNIPALETTE_CATEGORY instead of UNIPALETTE_CATEGORIES.
func warnUnknownEnvVars(w io.Writer, vars map[string]string) {
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides opts with every variable that was set.
// Called after the config file and before flags, so:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, opts *unipalette.Options) {
	if env.set["CATEGORIES"] {
		opts.Categories = env.Categories
	}
	if env.set["ADD_NAME"] {
		opts.AddName = env.AddName
	}
	if env.set["ADD_HOVER"] {
		opts.AddHover = env.AddHover
	}
	if env.set["HTML"] {
		opts.HTML = env.HTML
	}
	if env.set["BASE64"] {
		opts.Base64 = env.Base64
	}
	if env.NameFontSize != "" {
		opts.NameFontSize = env.NameFontSize
	}
	if env.Title != "" {
		opts.Title = env.Title
	}
}
