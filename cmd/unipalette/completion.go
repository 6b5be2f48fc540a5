package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	unipalette "github.com/alnah/go-unipalette"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// supportedShells lists shells in help order.
var supportedShells = []Shell{ShellBash, ShellZsh, ShellFish, ShellPowerShell}

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagEnum // has predefined values
	flagFile // file path
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long   string   // --output
	Short  string   // -o (empty if none)
	Type   flagType // completion type
	Desc   string   // help text
	Values []string // for enum flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name   string
	Desc   string
	Flags  []flagDef
	Values []string // positional argument candidates
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values []string // enum values
	IsFile bool     // file completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"category": {Values: unipalette.Categories()},
	"config":   {IsFile: true},
	"output":   {IsFile: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		if f.Hidden {
			return
		}
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if len(meta.Values) > 0 {
				fd.Type = flagEnum
				fd.Values = meta.Values
			} else if meta.IsFile {
				fd.Type = flagFile
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSet - single source of truth.
func getCommands() []commandDef {
	generateFlags := extractFlagsFromFlagSet(newGenerateFlagSet(&generateFlags{}))

	shells := make([]string, len(supportedShells))
	for i, s := range supportedShells {
		shells[i] = string(s)
	}

	return []commandDef{
		{Name: "generate", Desc: "Generate a palette data URL", Flags: generateFlags},
		{Name: "categories", Desc: "List general categories with their sizes", Values: unipalette.Categories()},
		{Name: "decode", Desc: "Print the document inside a data URL"},
		{Name: "completion", Desc: "Generate shell completion script", Values: shells},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// commandNames returns the names of cmds.
func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

// flagWords returns every spelling of the flags, long first.
func flagWords(flags []flagDef) []string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	cmds := getCommands()

	var b strings.Builder
	switch shell {
	case ShellBash:
		writeBash(&b, cmds)
	case ShellZsh:
		writeZsh(&b, cmds)
	case ShellFish:
		writeFish(&b, cmds)
	case ShellPowerShell:
		writePowerShell(&b, cmds)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

func writeBash(b *strings.Builder, cmds []commandDef) {
	flags := cmds[0].Flags

	b.WriteString("# bash completion for unipalette\n")
	b.WriteString("_unipalette_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"generate\"\n")
	b.WriteString("    if [[ ${COMP_CWORD} -gt 1 && ${COMP_WORDS[1]} != -* ]]; then\n")
	b.WriteString("        cmd=\"${COMP_WORDS[1]}\"\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 && ${cur} != -* ]]; then\n")
	fmt.Fprintf(b, "        COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", strings.Join(commandNames(cmds), " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"${prev}\" in\n")
	for _, f := range flags {
		pattern := "--" + f.Long
		if f.Short != "" {
			pattern = "-" + f.Short + "|" + pattern
		}
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(b, "        %s)\n            COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n            return ;;\n",
				pattern, strings.Join(f.Values, " "))
		case flagFile:
			fmt.Fprintf(b, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return ;;\n", pattern)
		}
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    case \"${cmd}\" in\n")
	for _, c := range cmds {
		words := append(flagWords(c.Flags), c.Values...)
		if c.Name == "help" {
			words = commandNames(cmds)
		}
		if len(words) == 0 {
			continue
		}
		fmt.Fprintf(b, "        %s)\n            COMPREPLY=( $(compgen -W %q -- \"${cur}\") ) ;;\n",
			c.Name, strings.Join(words, " "))
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -F _unipalette_completions unipalette\n")
}

// zshEscape escapes a description for an _arguments or _describe spec.
func zshEscape(s string) string {
	r := strings.NewReplacer(`'`, `'\''`, `[`, `\[`, `]`, `\]`, `:`, `\:`)
	return r.Replace(s)
}

func writeZsh(b *strings.Builder, cmds []commandDef) {
	b.WriteString("#compdef unipalette\n\n")
	b.WriteString("_unipalette() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")

	b.WriteString("    if (( CURRENT == 2 )) && [[ ${words[2]} != -* ]]; then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case ${words[2]} in\n")
	for _, c := range cmds[1:] {
		switch {
		case c.Name == "help":
			b.WriteString("        help)\n            _describe 'command' commands ;;\n")
		case len(c.Values) > 0:
			fmt.Fprintf(b, "        %s)\n            _values '%s' %s ;;\n", c.Name, c.Name, strings.Join(c.Values, " "))
		}
	}
	b.WriteString("        *)\n")
	b.WriteString("            _arguments \\\n")
	for _, f := range cmds[0].Flags {
		names := []string{"--" + f.Long}
		if f.Short != "" {
			names = append(names, "-"+f.Short)
		}
		for _, name := range names {
			spec := fmt.Sprintf("'%s[%s]", name, zshEscape(f.Desc))
			switch f.Type {
			case flagEnum:
				spec += fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
			case flagFile:
				spec += ":file:_files"
			case flagString:
				spec += ":" + f.Long + ":"
			}
			fmt.Fprintf(b, "                %s' \\\n", spec)
		}
	}
	b.WriteString("                ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _unipalette unipalette\n")
}

// fishQuote single-quotes s for fish.
func fishQuote(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s) + "'"
}

func writeFish(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# fish completion for unipalette\n")
	b.WriteString("function __fish_unipalette_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_unipalette_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c unipalette -f\n")

	for _, c := range cmds {
		fmt.Fprintf(b, "complete -c unipalette -n __fish_unipalette_needs_command -a %s -d %s\n", c.Name, fishQuote(c.Desc))
	}

	cond := fishQuote("__fish_unipalette_needs_command; or __fish_unipalette_using_command generate")
	for _, f := range cmds[0].Flags {
		line := fmt.Sprintf("complete -c unipalette -n %s -l %s", cond, f.Long)
		if f.Short != "" {
			line += " -s " + f.Short
		}
		switch f.Type {
		case flagEnum:
			line += " -x -a " + fishQuote(strings.Join(f.Values, " "))
		case flagFile:
			line += " -r -F"
		case flagString:
			line += " -r"
		}
		fmt.Fprintf(b, "%s -d %s\n", line, fishQuote(f.Desc))
	}

	for _, c := range cmds[1:] {
		values := c.Values
		if c.Name == "help" {
			values = commandNames(cmds)
		}
		if len(values) == 0 {
			continue
		}
		fmt.Fprintf(b, "complete -c unipalette -n %s -a %s\n",
			fishQuote("__fish_unipalette_using_command "+c.Name), fishQuote(strings.Join(values, " ")))
	}
}

// psList renders words as a PowerShell array literal.
func psList(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = "'" + strings.ReplaceAll(w, "'", "''") + "'"
	}
	return "@(" + strings.Join(quoted, ", ") + ")"
}

func writePowerShell(b *strings.Builder, cmds []commandDef) {
	b.WriteString("Register-ArgumentCompleter -Native -CommandName unipalette -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n")
	fmt.Fprintf(b, "    $commands = %s\n", psList(commandNames(cmds)))
	fmt.Fprintf(b, "    $flags = %s\n", psList(flagWords(cmds[0].Flags)))
	b.WriteString("    $elements = $commandAst.CommandElements\n")
	b.WriteString("    if ($elements.Count -le 2 -and -not $wordToComplete.StartsWith('-')) {\n")
	b.WriteString("        $candidates = $commands\n")
	b.WriteString("    } else {\n")
	b.WriteString("        $candidates = $flags\n")
	b.WriteString("    }\n")
	b.WriteString("    $candidates | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	positional, err := parseNoFlags("completion", args, env.Stderr, printCompletionUsage)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	return GenerateCompletion(env.Stdout, Shell(positional[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: unipalette completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(unipalette completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(unipalette completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    unipalette completion fish > ~/.config/fish/completions/unipalette.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    unipalette completion powershell | Out-String | Invoke-Expression")
}
