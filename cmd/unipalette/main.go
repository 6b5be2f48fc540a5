package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if slices.ContainsFunc(os.Args[1:], isVerboseFlag) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := splitCommand(args)

	var err error
	switch cmd {
	case "generate":
		err = runGenerate(ctx, rest, env)
	case "categories":
		err = runCategories(ctx, rest, env)
	case "decode":
		err = runDecode(rest, env)
	case "completion":
		err = runCompletion(rest, env)
	case "version":
		printVersion(env)
	case "help":
		runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// splitCommand returns the command name and its arguments. args[0] is the
// program name. With no arguments, or a flag first, the command is generate.
func splitCommand(args []string) (string, []string) {
	if len(args) < 2 {
		return "generate", nil
	}
	if strings.HasPrefix(args[1], "-") {
		return "generate", args[1:]
	}
	return args[1], args[2:]
}

// isVerboseFlag reports whether arg turns on verbose output, including -v
// inside a shorthand cluster such as -vc. A value-taking shorthand ends the
// cluster, so the "v" in -cv is a config name.
func isVerboseFlag(arg string) bool {
	if arg == "--verbose" || arg == "--verbose=true" {
		return true
	}
	cluster, ok := strings.CutPrefix(arg, "-")
	if !ok || strings.HasPrefix(cluster, "-") {
		return false
	}
	for _, c := range cluster {
		switch c {
		case 'v':
			return true
		case 'c', 'o':
			return false
		}
	}
	return false
}

func printVersion(env *Environment) {
	fmt.Fprintf(env.Stdout, "unipalette %s\n", Version)
}
