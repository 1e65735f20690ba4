package app

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/agbru/kmul/internal/cli"
	apperrors "github.com/agbru/kmul/internal/errors"
	"github.com/agbru/kmul/internal/metrics"
	"github.com/agbru/kmul/internal/orchestration"
	"github.com/agbru/kmul/internal/sysmon"
	"github.com/agbru/kmul/internal/ui"
	"github.com/agbru/kmul/internal/words"
)

// runMultiply builds the operands, runs the selected multipliers and
// presents the comparison.
func (a *Application) runMultiply(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	x, y, seed, err := a.buildOperands()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	multipliers := orchestration.GetMultipliersToRun(a.Config.Algo, a.Factory)
	if len(multipliers) == 0 {
		fmt.Fprintf(a.ErrWriter, "Error: no multiplier available for %q\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, len(x), len(y), out)
		if seed != 0 {
			fmt.Fprintf(out, "Random operands, seed %s%d%s.\n", ui.ColorCyan(), seed, ui.ColorReset())
		}
		cli.PrintExecutionMode(multipliers, out)
	}

	var progressReporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		progressReporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	if a.Config.Details {
		// Primes the CPU counters so the post-run sample covers the run.
		sysmon.Sample()
	}
	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	results := orchestration.ExecuteMultiplications(ctx, multipliers, x, y, a.Config.ToMultiplyOptions(), progressReporter, progressOut)
	after := collector.Snapshot()

	presOpts := orchestration.PresentationOptions{
		OperandWords: [2]int{len(x), len(y)},
		Verbose:      a.Config.Verbose,
		Details:      a.Config.Details,
		Quiet:        a.Config.Quiet,
	}
	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, cli.CLIResultPresenter{}, out)
	if exitCode != apperrors.ExitSuccess {
		return exitCode
	}

	if a.Config.Details && !a.Config.Quiet {
		a.printRecursionStats(x, y, out)
		cli.DisplayMemoryStats(after.Since(before), after, out)
		cli.DisplaySystemStats(sysmon.Sample(), out)
	}

	// Results are sorted fastest success first.
	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}
	if err := cli.DisplayResultWithConfig(out, x, y, results[0], outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// buildOperands parses -a/-b, or generates random operands of WA and WB
// words. The returned seed is 0 for explicit operands.
func (a *Application) buildOperands() (x, y words.Nat, seed uint64, err error) {
	if a.Config.HasExplicitOperands() {
		if x, err = words.ParseHex(a.Config.A); err != nil {
			return nil, nil, 0, apperrors.ValidationError{Field: "a", Message: err.Error()}
		}
		if y, err = words.ParseHex(a.Config.B); err != nil {
			return nil, nil, 0, apperrors.ValidationError{Field: "b", Message: err.Error()}
		}
		return x, y, 0, nil
	}

	seed = a.Config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) | 1
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1))
	x = words.Random(rng, a.Config.WA)
	y = words.Random(rng, a.Config.WB)
	log.Debug().Uint64("seed", seed).Int("wa", len(x)).Int("wb", len(y)).Msg("generated random operands")
	return x, y, seed, nil
}

// printRecursionStats reruns the Karatsuba multiplication with statistics
// at the configured threshold.
func (a *Application) printRecursionStats(x, y words.Nat, out io.Writer) {
	m := words.Multiplier{}
	if a.Config.Threshold > 0 {
		m = words.NewMultiplier(a.Config.Threshold)
	}
	_, _, st := m.MulWithStats(x, y)
	fmt.Fprintf(out, "\nKaratsuba Stats (threshold %d words):\n", m.Threshold())
	fmt.Fprintf(out, "  Recursion depth:  %d\n", st.MaxDepth)
	fmt.Fprintf(out, "  Karatsuba calls:  %d\n", st.KaratsubaCalls)
	fmt.Fprintf(out, "  Schoolbook calls: %d\n", st.SchoolbookCalls)
	fmt.Fprintf(out, "  Scratch words:    %d\n", st.ScratchWords)
}
