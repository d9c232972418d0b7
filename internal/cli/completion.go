package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/fibtime/internal/config"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "h")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "duration")
	IsFile    bool     // true if the flag takes a file path
	IsAlgo    bool     // true if values come from algorithm list (dynamic)
}

// CompletionShells lists the shells GenerateCompletion supports.
var CompletionShells = []string{"bash", "zsh", "fish"}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Short: "n", Help: "Fibonacci index to calculate", ValueName: "number"},
	{Long: "variant", Help: "Prompt and ceiling preset", Values: config.VariantNames(), ValueName: "variant"},
	{Long: "max-n", Help: "Override the ceiling", ValueName: "number"},
	{Long: "no-limit", Help: "Do not enforce the ceiling"},
	{Long: "algo", Help: "Algorithm to use", IsAlgo: true, ValueName: "algorithm"},
	{Long: "timeout", Help: "Maximum calculation time", Values: []string{"10s", "1m", "5m", "10m"}, ValueName: "duration"},
	{Long: "quiet", Short: "q", Help: "Print only the value"},
	{Long: "details", Short: "d", Help: "Show calculation and system details"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "log-level", Help: "Diagnostic log level", Values: []string{"debug", "info", "warn", "error", "disabled"}, ValueName: "level"},
	{Long: "log-format", Help: "Diagnostic log format", Values: []string{"json", "text"}, ValueName: "format"},
	{Long: "metrics-file", Help: "Prometheus textfile output", IsFile: true, ValueName: "file"},
	{Long: "completion", Help: "Generate completion script", Values: CompletionShells, ValueName: "shell"},
}

// zshHelpOverrides provides shell-specific help text overrides for zsh.
var zshHelpOverrides = map[string]string{
	"n": "Index n of Fibonacci number",
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish").
//   - algorithms: List of available algorithm names.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, algorithms []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, algorithms)
	case "zsh":
		return generateZshCompletion(out, algorithms)
	case "fish":
		return generateFishCompletion(out, algorithms)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: %s)", shell, strings.Join(CompletionShells, ", "))
	}
}

// formatAlgoList joins algorithm names with space separators.
func formatAlgoList(algorithms []string) string {
	return strings.Join(algorithms, " ")
}

// flagKey returns the identifier used for lookups: Long name if present, else Short.
func flagKey(f FlagCompletion) string {
	if f.Long != "" {
		return f.Long
	}
	return f.Short
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, algorithms []string) error {
	var opts []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}

	// Order: algo, files, then flags with static values.
	var caseBody strings.Builder
	writeCase := func(patterns []string, body string) {
		caseBody.WriteString("        ")
		caseBody.WriteString(strings.Join(patterns, "|"))
		caseBody.WriteString(")\n            ")
		caseBody.WriteString(body)
		caseBody.WriteString("\n            return 0\n            ;;\n")
	}

	for _, f := range flagRegistry {
		if f.IsAlgo {
			writeCase([]string{"--" + f.Long, "-" + f.Long}, `COMPREPLY=( $(compgen -W "${algorithms}" -- "${cur}") )`)
		}
	}
	for _, f := range flagRegistry {
		if f.IsFile {
			writeCase([]string{"--" + f.Long, "-" + f.Long}, `COMPREPLY=( $(compgen -f -- "${cur}") )`)
		}
	}
	for _, f := range flagRegistry {
		if !f.IsAlgo && !f.IsFile && len(f.Values) > 0 {
			writeCase([]string{"--" + f.Long, "-" + f.Long},
				fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " ")))
		}
	}

	script := fmt.Sprintf(`# Bash completion script for fibtime
# Add this to your ~/.bashrc or ~/.bash_completion

_fibtime_completions() {
    local cur prev opts algorithms
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main options
    opts="%s"

    # Available algorithms
    algorithms="%s all"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _fibtime_completions fibtime
`, strings.Join(opts, " "), formatAlgoList(algorithms), caseBody.String())

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, algorithms []string) error {
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	script := fmt.Sprintf(`#compdef fibtime

# Zsh completion script for fibtime
# Add this to your ~/.zshrc or place in $fpath

_fibtime() {
    local -a algorithms
    algorithms=(%s all)

    _arguments -s \
%s
}

_fibtime "$@"
`, formatAlgoList(algorithms), strings.Join(args, " \\\n"))

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshHelp returns the help text for a flag in zsh, using an override if available.
func zshHelp(f FlagCompletion) string {
	if override, ok := zshHelpOverrides[flagKey(f)]; ok {
		return override
	}
	return f.Help
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	help := zshHelp(f)

	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case f.IsAlgo:
		valueSuffix = fmt.Sprintf(":%s:($algorithms)", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Long != "" && f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, help, valueSuffix)
	}
	if f.Long != "" {
		return fmt.Sprintf("        '--%s[%s]%s'", f.Long, help, valueSuffix)
	}
	return fmt.Sprintf("        '-%s[%s]%s'", f.Short, help, valueSuffix)
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer, algorithms []string) error {
	lines := []string{
		"# Fish completion script for fibtime",
		"# Add this to ~/.config/fish/completions/fibtime.fish",
		"",
		"# Disable file completion by default",
		"complete -c fibtime -f",
		"",
	}

	sections := []struct {
		comment string
		flags   []FlagCompletion
	}{
		{comment: "# Help and version", flags: filterFlags("help", "version")},
		{comment: "# Input", flags: filterFlags("n_short", "variant", "max-n", "no-limit")},
		{comment: "# Calculation", flags: filterFlags("algo", "timeout")},
		{comment: "# Output options", flags: filterFlags("quiet", "details", "no-color", "log-level", "log-format", "metrics-file")},
		{comment: "# Completion", flags: filterFlags("completion")},
	}

	algoList := formatAlgoList(algorithms)
	for _, sec := range sections {
		lines = append(lines, sec.comment)
		for _, f := range sec.flags {
			lines = append(lines, fishCompleteLine(f, algoList))
		}
		lines = append(lines, "")
	}

	if _, err := fmt.Fprint(out, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// filterFlags returns flags from the registry matching the given identifiers.
// An identifier is a Long name, or "X_short" to match a flag by Short name only.
func filterFlags(ids ...string) []FlagCompletion {
	var result []FlagCompletion
	for _, id := range ids {
		short, shortOnly := strings.CutSuffix(id, "_short")
		for _, f := range flagRegistry {
			if (shortOnly && f.Short == short && f.Long == "") || (!shortOnly && f.Long == id) {
				result = append(result, f)
				break
			}
		}
	}
	return result
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion, algoList string) string {
	parts := []string{"complete -c fibtime"}

	if f.Short != "" {
		parts = append(parts, fmt.Sprintf("-s %s", f.Short))
	}
	if f.Long != "" {
		parts = append(parts, fmt.Sprintf("-l %s", f.Long))
	}

	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case f.IsAlgo:
		parts = append(parts, fmt.Sprintf("-xa '%s all'", algoList))
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}

	return strings.Join(parts, " ")
}
