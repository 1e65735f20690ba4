package config

import (
	"runtime"

	"github.com/agbru/kmul/internal/words"
)

// Threshold resolution chain (highest priority first):
//   1. CLI flag --threshold
//   2. Environment variable KMUL_THRESHOLD
//   3. Cached calibration profile (~/.kmul_calibration.json)
//   4. Hardware estimation (this file)

// ApplyAdaptiveThreshold sets an estimated Karatsuba threshold when none
// was configured.
func ApplyAdaptiveThreshold(cfg AppConfig) AppConfig {
	if cfg.Threshold == 0 {
		cfg.Threshold = EstimateKaratsubaThreshold()
	}
	return cfg
}

// EstimateKaratsubaThreshold provides a heuristic threshold without
// running benchmarks. 64-bit targets, where a DoubleWord product is one
// instruction, get a higher crossover.
func EstimateKaratsubaThreshold() int {
	return estimateThreshold(runtime.GOARCH)
}

func estimateThreshold(goarch string) int {
	switch goarch {
	case "amd64", "arm64", "ppc64", "ppc64le", "s390x", "riscv64", "loong64", "mips64", "mips64le":
		return 40
	default:
		return words.KaratsubaThreshold
	}
}
