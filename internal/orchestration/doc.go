// Package orchestration runs several multipliers concurrently on the same
// operands and aggregates their results for comparison. It decouples the
// harness from presentation via ProgressReporter and ResultPresenter.
package orchestration
