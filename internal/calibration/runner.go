package calibration

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/agbru/kmul/internal/reference"
	"github.com/agbru/kmul/internal/words"
)

// calibrationSeed makes every calibration multiply the same operands.
const calibrationSeed = 0x6b6d756c

// calibrationRunner times one multiplier on fixed random operands.
type calibrationRunner struct {
	multiplier reference.Multiplier
	a, b       words.Nat
	rounds     int
	want       words.Nat
}

// newCalibrationRunner creates a runner for operands of size words. The
// reference product is computed once with the schoolbook algorithm.
func newCalibrationRunner(m reference.Multiplier, size, rounds int) *calibrationRunner {
	rng := rand.New(rand.NewPCG(calibrationSeed, uint64(size)))
	a := words.Random(rng, size)
	b := words.Random(rng, size)
	want, _ := words.MulSchoolbook(a, b)
	return &calibrationRunner{multiplier: m, a: a, b: b, rounds: max(rounds, 1), want: want}
}

// runTrial multiplies the operands rounds times with threshold and
// returns the fastest duration. A product that disagrees with the
// reference fails the trial.
func (r *calibrationRunner) runTrial(ctx context.Context, threshold int) (time.Duration, error) {
	best := time.Duration(1<<63 - 1)
	for range r.rounds {
		start := time.Now()
		product, err := r.multiplier.Multiply(ctx, r.a, r.b, reference.Options{Threshold: threshold})
		d := time.Since(start)
		if err != nil {
			return 0, err
		}
		if !slices.Equal(product, r.want) {
			return 0, fmt.Errorf("threshold %d: product differs from schoolbook reference", threshold)
		}
		best = min(best, d)
	}
	return best, nil
}
