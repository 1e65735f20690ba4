// This file implements adaptive threshold generation based on hardware characteristics.

package calibration

import (
	"slices"

	"github.com/agbru/kmul/internal/config"
	"github.com/agbru/kmul/internal/words"
)

// MaxThreshold bounds calibrated thresholds. Above it Karatsuba degrades to
// schoolbook for every practical operand.
const MaxThreshold = 4096

// GenerateThresholds returns the Karatsuba thresholds swept by a full
// calibration, in ascending order. The reference threshold and the
// hardware estimate are always included.
func GenerateThresholds() []int {
	thresholds := []int{8, 12, 16, 20, 24, 28, 32, 40, 48, 64, 80, 96, 128}
	return withReferencePoints(thresholds)
}

// GenerateQuickThresholds returns a smaller sweep for quick calibration.
func GenerateQuickThresholds() []int {
	return withReferencePoints([]int{16, 24, 48, 64})
}

func withReferencePoints(thresholds []int) []int {
	thresholds = append(thresholds, words.KaratsubaThreshold, EstimateOptimalThreshold())
	slices.Sort(thresholds)
	return slices.Compact(thresholds)
}

// EstimateOptimalThreshold delegates to config.EstimateKaratsubaThreshold.
func EstimateOptimalThreshold() int { return config.EstimateKaratsubaThreshold() }

// ValidateThreshold clamps t to [words.MinKaratsubaThreshold, MaxThreshold].
func ValidateThreshold(t int) int {
	return min(max(t, words.MinKaratsubaThreshold), MaxThreshold)
}
