package orchestration

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/kmul/internal/errors"
	"github.com/agbru/kmul/internal/metrics"
	"github.com/agbru/kmul/internal/reference"
	"github.com/agbru/kmul/internal/words"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. Each multiplier sends two updates.
const ProgressBufferMultiplier = 2

// ExecuteMultiplications runs every multiplier on a and b in its own
// goroutine and collects the results in input order. Each multiplication
// is itself sequential. Failures are recorded per result, never aborting
// the other runs.
func ExecuteMultiplications(ctx context.Context, multipliers []reference.Multiplier, a, b words.Nat, opts reference.Options, progressReporter ProgressReporter, out io.Writer) []MultiplicationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]MultiplicationResult, len(multipliers))
	progressChan := make(chan ProgressUpdate, len(multipliers)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(multipliers), out)

	for i, m := range multipliers {
		idx, multiplier := i, m
		g.Go(func() error {
			name := multiplier.Name()
			progressChan <- ProgressUpdate{CalculatorIndex: idx, Name: name, Value: 0}
			startTime := time.Now()
			product, err := multiplier.Multiply(ctx, a, b, opts)
			results[idx] = MultiplicationResult{
				Name: name, Product: product, Duration: time.Since(startTime), Err: err,
			}
			progressChan <- ProgressUpdate{CalculatorIndex: idx, Name: name, Value: 1}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults sorts results (successes first, then by
// duration), presents the comparison table, and checks that every
// successful product agrees word for word. It returns ExitSuccess,
// ExitErrorMismatch, or the presenter's exit code when nothing succeeded.
func AnalyzeComparisonResults(results []MultiplicationResult, opts PresentationOptions, presenter ResultPresenter, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *MultiplicationResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	if !opts.Quiet {
		presenter.PresentComparisonTable(results, out)
	}

	if successCount == 0 {
		if !opts.Quiet {
			fmt.Fprintf(out, "\nGlobal Status: Failure. No multiplier could complete the product.\n")
		}
		return presenter.HandleError(firstError, 0, out)
	}

	for _, res := range results {
		if res.Err == nil && !slices.Equal(res.Product.Trim(), firstValidResult.Product.Trim()) {
			metrics.RecordMismatch()
			err := apperrors.MismatchError{Reference: firstValidResult.Name, Candidate: res.Name}
			log.Error().Err(err).Msg("product mismatch")
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the products of the multipliers.\n")
			return apperrors.ExitErrorMismatch
		}
	}

	if !opts.Quiet && len(results) > 1 {
		fmt.Fprintf(out, "\nGlobal Status: Success. All valid products are consistent.\n")
	}
	presenter.PresentResult(*firstValidResult, opts, out)
	return apperrors.ExitSuccess
}
