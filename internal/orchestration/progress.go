package orchestration

// ProgressAggregator tracks which multipliers have finished. The CLI
// spinner uses it to render "k/n" style progress.
type ProgressAggregator struct {
	progresses []float64
	names      []string
}

// NewProgressAggregator creates an aggregator for numCalculators
// multipliers. Returns nil if numCalculators <= 0.
func NewProgressAggregator(numCalculators int) *ProgressAggregator {
	if numCalculators <= 0 {
		return nil
	}
	return &ProgressAggregator{
		progresses: make([]float64, numCalculators),
		names:      make([]string, numCalculators),
	}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	// CalculatorIndex is the index of the multiplier that sent the update.
	CalculatorIndex int
	// Name is the multiplier name.
	Name string
	// Value is the raw progress value from the update.
	Value float64
	// AverageProgress is the average across all multipliers.
	AverageProgress float64
	// Completed is the number of multipliers that have finished.
	Completed int
}

// Update records an update and returns the aggregated progress. Updates
// with an out-of-range index are ignored for aggregation.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	if i := update.CalculatorIndex; i >= 0 && i < len(a.progresses) {
		a.progresses[i] = update.Value
		a.names[i] = update.Name
	}
	return AggregatedProgress{
		CalculatorIndex: update.CalculatorIndex,
		Name:            update.Name,
		Value:           update.Value,
		AverageProgress: a.CalculateAverage(),
		Completed:       a.Completed(),
	}
}

// CalculateAverage returns the current average progress.
func (a *ProgressAggregator) CalculateAverage() float64 {
	var total float64
	for _, p := range a.progresses {
		total += p
	}
	return total / float64(len(a.progresses))
}

// Completed returns the number of multipliers that reported 1.0.
func (a *ProgressAggregator) Completed() int {
	n := 0
	for _, p := range a.progresses {
		if p >= 1 {
			n++
		}
	}
	return n
}

// Running returns the names of started multipliers that have not finished.
func (a *ProgressAggregator) Running() []string {
	var running []string
	for i, p := range a.progresses {
		if p < 1 && a.names[i] != "" {
			running = append(running, a.names[i])
		}
	}
	return running
}

// NumCalculators returns the number of multipliers being tracked.
func (a *ProgressAggregator) NumCalculators() int {
	return len(a.progresses)
}

// IsMultiCalculator returns true if tracking more than one multiplier.
func (a *ProgressAggregator) IsMultiCalculator() bool {
	return len(a.progresses) > 1
}

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
