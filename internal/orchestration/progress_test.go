package orchestration

import (
	"math"
	"testing"
)

func TestNewProgressAggregator(t *testing.T) {
	t.Parallel()
	if NewProgressAggregator(0) != nil {
		t.Error("expected nil aggregator for zero multipliers")
	}
	agg := NewProgressAggregator(3)
	if agg.NumCalculators() != 3 || !agg.IsMultiCalculator() {
		t.Errorf("NumCalculators = %d, IsMultiCalculator = %v", agg.NumCalculators(), agg.IsMultiCalculator())
	}
}

func TestProgressAggregatorUpdate(t *testing.T) {
	t.Parallel()
	agg := NewProgressAggregator(2)

	got := agg.Update(ProgressUpdate{CalculatorIndex: 0, Name: "Karatsuba", Value: 0})
	if got.Completed != 0 || got.AverageProgress != 0 {
		t.Errorf("after start: %+v", got)
	}
	if running := agg.Running(); len(running) != 1 || running[0] != "Karatsuba" {
		t.Errorf("Running() = %v", running)
	}

	got = agg.Update(ProgressUpdate{CalculatorIndex: 0, Name: "Karatsuba", Value: 1})
	if got.Completed != 1 || math.Abs(got.AverageProgress-0.5) > 1e-9 {
		t.Errorf("after finish: %+v", got)
	}
	if running := agg.Running(); len(running) != 0 {
		t.Errorf("Running() = %v, want none", running)
	}

	// Out-of-range indices are reported but not aggregated.
	got = agg.Update(ProgressUpdate{CalculatorIndex: 7, Value: 1})
	if got.Completed != 1 {
		t.Errorf("out-of-range update changed aggregation: %+v", got)
	}
}

func TestDrainChannel(t *testing.T) {
	t.Parallel()
	ch := make(chan ProgressUpdate, 3)
	for i := range 3 {
		ch <- ProgressUpdate{CalculatorIndex: i}
	}
	close(ch)
	DrainChannel(ch)
	if len(ch) != 0 {
		t.Errorf("channel not drained: %d left", len(ch))
	}
}
