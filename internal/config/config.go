// Package config builds the application configuration from command-line
// flags and FIBTIME_* environment variables.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/agbru/fibtime/internal/bounds"
	apperrors "github.com/agbru/fibtime/internal/errors"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "FIBTIME_"

// Defaults.
const (
	DefaultAlgo      = "naive"
	DefaultTimeout   = 5 * time.Minute
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "json"
	DefaultVariant   = VariantBounded
)

// AppConfig aggregates all runtime settings.
type AppConfig struct {
	// N is the index supplied with -n or FIBTIME_N. Only meaningful when HasN.
	N    int64
	HasN bool

	// Variant selects the prompt text and ceiling preset.
	Variant string
	// MaxN overrides the preset ceiling when non-zero.
	MaxN int64
	// maxNSet is true when --max-n or FIBTIME_MAX_N supplied MaxN.
	maxNSet bool
	// NoLimit disables ceiling enforcement.
	NoLimit bool

	Algo        string
	Timeout     time.Duration
	Quiet       bool
	Details     bool
	NoColor     bool
	LogLevel    string
	LogFormat   string
	MetricsFile string
	Completion  string

	// EnvWarnings lists FIBTIME_* values that were ignored.
	EnvWarnings []EnvWarning
}

// Ceiling resolves the effective bounds from the variant preset and the
// --max-n / --no-limit overrides.
func (c AppConfig) Ceiling() bounds.Ceiling {
	preset := Presets[c.Variant]
	ceiling := bounds.Ceiling{Max: preset.Max, Enforce: preset.Enforce}
	if c.MaxN != 0 {
		ceiling.Max = c.MaxN
	}
	if c.NoLimit {
		ceiling.Enforce = false
	}
	return ceiling
}

// Prompt returns the prompt text for the configured variant and ceiling.
func (c AppConfig) Prompt() string {
	return PromptFor(c.Ceiling())
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Priority is: flags > environment > defaults. Returns flag.ErrHelp when
// -h/--help is requested, or a ConfigError for invalid values.
//
// Parameters:
//   - programName: Name shown in usage output.
//   - args: Command-line arguments.
//   - errWriter: Destination for usage and flag errors.
//   - availableAlgos: Registered calculator names.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp, a ConfigError, or nil.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	config := AppConfig{}
	var n int64
	fs.Int64Var(&n, "n", 0, "Fibonacci index to calculate (skips the prompt).")
	fs.StringVar(&config.Variant, "variant", DefaultVariant, "Prompt and ceiling preset ("+strings.Join(VariantNames(), ", ")+").")
	fs.Int64Var(&config.MaxN, "max-n", 0, "Override the ceiling of the selected variant.")
	fs.BoolVar(&config.NoLimit, "no-limit", false, "Do not enforce the ceiling.")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, "Algorithm to use ("+strings.Join(availableAlgos, ", ")+", all).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum calculation time.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the result value.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Details, "details", false, "Show calculation and system details.")
	fs.BoolVar(&config.Details, "d", false, "Shorthand for --details.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Diagnostic log level on stderr (debug, info, warn, error, disabled).")
	fs.StringVar(&config.LogFormat, "log-format", DefaultLogFormat, "Diagnostic log format (json, text).")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile.")
	fs.StringVar(&config.Completion, "completion", "", "Print a shell completion script (bash, zsh, fish).")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintf(errWriter, "Computes Fibonacci(n) by naive recursion and reports the elapsed time.\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if isFlagSet(fs, "n") {
		config.N, config.HasN = n, true
	}
	config.maxNSet = isFlagSet(fs, "max-n")

	applyEnvOverrides(&config, fs)
	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errWriter, "Error:", err)
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks semantic constraints that the flag package cannot express.
func (c AppConfig) Validate(availableAlgos []string) error {
	if _, ok := Presets[c.Variant]; !ok {
		return apperrors.NewConfigError("unknown variant %q (accepted values: %s)", c.Variant, strings.Join(VariantNames(), ", "))
	}
	if c.MaxN < 0 || (c.maxNSet && c.MaxN == 0) {
		return apperrors.NewConfigError("--max-n must be positive, got %d", c.MaxN)
	}
	if c.Algo != "all" && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unknown algorithm %q (accepted values: %s, all)", c.Algo, strings.Join(availableAlgos, ", "))
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("--timeout must be positive, got %s", c.Timeout)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error", "disabled":
	default:
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return apperrors.NewConfigError("unknown log format %q (accepted values: json, text)", c.LogFormat)
	}
	switch c.Completion {
	case "", "bash", "zsh", "fish":
	default:
		return apperrors.NewConfigError("unsupported shell %q (accepted values: bash, zsh, fish)", c.Completion)
	}
	return nil
}
