// Package calibration finds the fastest Karatsuba threshold for the
// current machine and persists it as a profile.
package calibration

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/agbru/kmul/internal/cli"
	"github.com/agbru/kmul/internal/config"
	apperrors "github.com/agbru/kmul/internal/errors"
	"github.com/agbru/kmul/internal/orchestration"
	"github.com/agbru/kmul/internal/reference"
	"github.com/agbru/kmul/internal/ui"
)

// DefaultRounds is the number of timed repetitions per threshold.
const DefaultRounds = 3

// CalibrationOptions configures the calibration process.
type CalibrationOptions struct {
	// ProfilePath is the path to save the calibration profile.
	// If empty, uses the default path.
	ProfilePath string
	// SaveProfile indicates whether to save the calibration results.
	SaveProfile bool
	// OperandWords is the length of both random operands.
	OperandWords int
	// Rounds is the number of timed repetitions per threshold; the fastest
	// is kept.
	Rounds int
	// Thresholds overrides the swept thresholds. Nil uses GenerateThresholds.
	Thresholds []int
}

// calibrationResult holds the result of a single threshold test.
type calibrationResult struct {
	Threshold int
	Duration  time.Duration
	Err       error
}

// RunCalibration sweeps Karatsuba thresholds on random operands of
// opts.OperandWords words, prints a summary and saves the fastest
// threshold as a profile. The "karatsuba" multiplier must be registered.
// It returns an exit code.
func RunCalibration(ctx context.Context, out io.Writer, multipliers map[string]reference.Multiplier, opts CalibrationOptions) int {
	fmt.Fprintf(out, "--- Calibration Mode: Finding the Optimal Karatsuba Threshold ---\n")

	multiplier := multipliers["karatsuba"]
	if multiplier == nil {
		fmt.Fprintf(out, "%sCritical error: the 'karatsuba' algorithm is required for calibration but was not found.%s\n", ui.ColorRed(), ui.ColorReset())
		return apperrors.ExitErrorGeneric
	}
	if opts.OperandWords <= 0 {
		opts.OperandWords = config.DefaultWords
	}
	if opts.Rounds <= 0 {
		opts.Rounds = DefaultRounds
	}
	thresholds := opts.Thresholds
	if thresholds == nil {
		thresholds = GenerateThresholds()
	}

	fmt.Fprintf(out, "%sSweeping %d thresholds on %d-word operands (%d CPU cores)%s\n",
		ui.ColorCyan(), len(thresholds), opts.OperandWords, runtime.NumCPU(), ui.ColorReset())

	runner := newCalibrationRunner(multiplier, opts.OperandWords, opts.Rounds)
	results := make([]calibrationResult, 0, len(thresholds))
	bestDuration := time.Duration(1<<63 - 1)
	bestThreshold := 0
	calibrationStart := time.Now()

	var wg sync.WaitGroup
	progressChan := make(chan orchestration.ProgressUpdate, len(thresholds)*orchestration.ProgressBufferMultiplier)
	wg.Add(1)
	go cli.DisplayProgress(&wg, progressChan, len(thresholds), out)
	finish := func() {
		close(progressChan)
		wg.Wait()
	}

	for i, threshold := range thresholds {
		if ctx.Err() != nil {
			finish()
			fmt.Fprintf(out, "\n%sCalibration interrupted.%s\n", ui.ColorYellow(), ui.ColorReset())
			return apperrors.ExitErrorCanceled
		}

		name := fmt.Sprintf("t=%d", threshold)
		progressChan <- orchestration.ProgressUpdate{CalculatorIndex: i, Name: name, Value: 0}
		duration, err := runner.runTrial(ctx, threshold)
		progressChan <- orchestration.ProgressUpdate{CalculatorIndex: i, Name: name, Value: 1}

		results = append(results, calibrationResult{threshold, duration, err})
		if err != nil {
			log.Warn().Err(err).Int("threshold", threshold).Msg("calibration trial failed")
			if apperrors.IsContextError(err) {
				finish()
				return apperrors.HandleCalculationError(err, time.Since(calibrationStart), out, cli.CLIColorProvider{})
			}
			continue
		}
		if duration < bestDuration {
			bestDuration, bestThreshold = duration, threshold
		}
	}
	finish()

	if bestThreshold == 0 {
		fmt.Fprintf(out, "\n%sCalibration failed: no valid results obtained.%s\n", ui.ColorRed(), ui.ColorReset())
		return apperrors.ExitErrorGeneric
	}

	printCalibrationResults(out, results, bestThreshold)
	fmt.Fprintf(out, "\n%s✅ Recommendation for this machine: %s--threshold %d%s\n",
		ui.ColorGreen(), ui.ColorYellow(), bestThreshold, ui.ColorReset())

	if opts.SaveProfile {
		profile := NewProfile()
		profile.Threshold = bestThreshold
		profile.OperandWords = opts.OperandWords
		profile.CalibrationTime = time.Since(calibrationStart).String()

		path := opts.ProfilePath
		if path == "" {
			path = GetDefaultProfilePath()
		}
		if err := profile.SaveProfile(path); err != nil {
			fmt.Fprintf(out, "%sWarning: failed to save profile: %v%s\n", ui.ColorYellow(), err, ui.ColorReset())
		} else {
			fmt.Fprintf(out, "%sCalibration profile saved to %s%s\n", ui.ColorGreen(), path, ui.ColorReset())
		}
	}

	return apperrors.ExitSuccess
}

// LoadCachedCalibration applies the threshold of a valid cached profile to
// cfg when no threshold was configured. It reports whether the profile
// was used.
func LoadCachedCalibration(cfg config.AppConfig, profilePath string) (config.AppConfig, bool) {
	if cfg.Threshold != 0 {
		return cfg, false
	}
	profile, loaded := LoadOrCreateProfile(profilePath)
	if !loaded {
		return cfg, false
	}
	cfg.Threshold = ValidateThreshold(profile.Threshold)
	log.Debug().Str("profile", profile.String()).Msg("using cached calibration")
	return cfg, true
}
