// Package config provides the configuration management for the kmul
// application. It defines the configuration structure, parses command-line
// flags, applies KMUL_* environment overrides and validates the result.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/kmul/internal/errors"
	"github.com/agbru/kmul/internal/logging"
	"github.com/agbru/kmul/internal/reference"
	"github.com/agbru/kmul/internal/words"
)

const (
	// EnvPrefix is the prefix for all environment variables used by kmul.
	EnvPrefix = "KMUL_"
)

// Default configuration values.
const (
	// DefaultWords is the default random operand length in words.
	DefaultWords = 1024
	// DefaultTimeout is the default run timeout.
	DefaultTimeout = time.Minute
	// DefaultAlgo is the default multiplier selection.
	DefaultAlgo = "all"
	// DefaultLogLevel is the default zerolog level.
	DefaultLogLevel = "info"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// A and B are hexadecimal operands. When empty, random operands of WA
	// and WB words are generated.
	A, B string
	// WA and WB are the random operand lengths in words.
	WA, WB int
	// Seed seeds the operand generator. Zero picks a time-based seed.
	Seed uint64
	// Algo selects the multiplier ("all", "karatsuba", "schoolbook", ...).
	Algo string
	// Threshold is the Karatsuba base-case threshold in words. Zero means
	// resolve it from the calibration profile or the hardware estimate.
	Threshold int
	// Timeout sets the maximum duration of the run.
	Timeout time.Duration
	// Verbose displays the full product.
	Verbose bool
	// Details displays recursion statistics and memory usage.
	Details bool
	// Quiet prints only the product, for scripting.
	Quiet bool
	// OutputFile, if set, receives the product in hexadecimal.
	OutputFile string
	// Calibrate runs the threshold sweep instead of a multiplication.
	Calibrate bool
	// CalibrationWords is the operand length used by the calibration sweep.
	CalibrationWords int
	// CalibrationProfile is the profile path (default ~/.kmul_calibration.json).
	CalibrationProfile string
	// MetricsAddr, if set, serves Prometheus metrics on this address.
	MetricsAddr string
	// NoColor disables colored output. NO_COLOR is also respected.
	NoColor bool
	// LogLevel is the zerolog level name.
	LogLevel string
}

// ToMultiplyOptions converts the configuration into reference.Options.
func (c AppConfig) ToMultiplyOptions() reference.Options {
	return reference.Options{Threshold: c.Threshold}
}

// HasExplicitOperands reports whether the operands come from -a and -b.
func (c AppConfig) HasExplicitOperands() bool {
	return c.A != "" || c.B != ""
}

// Validate checks the semantic consistency of the configuration. It
// returns a ConfigError describing the first problem found.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Threshold < 0 || (c.Threshold > 0 && c.Threshold < words.MinKaratsubaThreshold) {
		return apperrors.NewConfigError("threshold must be 0 (auto) or at least %d words: %d", words.MinKaratsubaThreshold, c.Threshold)
	}
	if (c.A == "") != (c.B == "") {
		return apperrors.NewConfigError("operands -a and -b must be given together")
	}
	if !c.HasExplicitOperands() && !c.Calibrate && (c.WA <= 0 || c.WB <= 0) {
		return apperrors.NewConfigError("operand lengths must be positive: wa=%d, wb=%d", c.WA, c.WB)
	}
	if c.Calibrate && c.CalibrationWords <= 0 {
		return apperrors.NewConfigError("calibration operand length must be positive: %d", c.CalibrationWords)
	}
	if c.Algo != "all" && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: 'all' or [%s]", c.Algo, strings.Join(availableAlgos, ", "))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseConfig parses the command-line arguments into an AppConfig, applies
// environment overrides for flags not set explicitly, and validates the
// result. Parse errors and usage go to errorWriter.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	algoHelp := fmt.Sprintf("Multiplier to use: 'all' (default) or one of [%s].", strings.Join(availableAlgos, ", "))

	config := AppConfig{}
	fs.StringVar(&config.A, "a", "", "First operand in hexadecimal (requires -b).")
	fs.StringVar(&config.B, "b", "", "Second operand in hexadecimal (requires -a).")
	fs.IntVar(&config.WA, "wa", DefaultWords, "Length in words of the random first operand.")
	fs.IntVar(&config.WB, "wb", DefaultWords, "Length in words of the random second operand.")
	fs.Uint64Var(&config.Seed, "seed", 0, "Seed for random operands (0 picks one from the clock).")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, algoHelp)
	fs.IntVar(&config.Threshold, "threshold", 0, "Karatsuba base-case threshold in words (0 = calibrated or estimated).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time.")
	fs.BoolVar(&config.Verbose, "v", false, "Display the full product.")
	fs.BoolVar(&config.Details, "d", false, "Display recursion statistics and memory usage.")
	fs.BoolVar(&config.Details, "details", false, "Alias for -d.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - print only the product.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the product.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.BoolVar(&config.Calibrate, "calibrate", false, "Sweep Karatsuba thresholds and save the fastest.")
	fs.IntVar(&config.CalibrationWords, "calibration-words", DefaultWords, "Operand length in words used by -calibrate.")
	fs.StringVar(&config.CalibrationProfile, "calibration-profile", "", "Path to calibration profile file (default: ~/.kmul_calibration.json).")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn, error.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	config.Algo = strings.ToLower(config.Algo)
	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.Join(errors.New("invalid configuration"), err)
	}
	return config, nil
}
