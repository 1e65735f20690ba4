package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/agbru/kmul/internal/config"
	"github.com/agbru/kmul/internal/reference"
	"github.com/agbru/kmul/internal/ui"
	"github.com/agbru/kmul/internal/words"
)

// PrintExecutionConfig displays the operand sizes, timeout, environment and
// Karatsuba threshold of the run.
func PrintExecutionConfig(cfg config.AppConfig, wa, wb int, out io.Writer) {
	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = words.KaratsubaThreshold
	}
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Multiplying %s%d%s × %s%d%s words (%d-bit words) with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), wa, ui.ColorReset(), ui.ColorMagenta(), wb, ui.ColorReset(),
		words.WordBits, ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s, %s/%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset(),
		runtime.GOOS, runtime.GOARCH)
	if features := CPUFeatures(); len(features) > 0 {
		fmt.Fprintf(out, "CPU features: %s%s%s.\n", ui.ColorCyan(), strings.Join(features, " "), ui.ColorReset())
	}
	fmt.Fprintf(out, "Karatsuba threshold: %s%d%s words.\n", ui.ColorCyan(), threshold, ui.ColorReset())
}

// CPUFeatures lists the detected instruction set extensions relevant to
// word multiplication.
func CPUFeatures() []string {
	var features []string
	add := func(ok bool, name string) {
		if ok {
			features = append(features, name)
		}
	}
	add(cpu.X86.HasBMI2, "bmi2")
	add(cpu.X86.HasADX, "adx")
	add(cpu.X86.HasAVX2, "avx2")
	add(cpu.X86.HasAVX512F, "avx512f")
	add(cpu.ARM64.HasASIMD, "asimd")
	add(cpu.ARM64.HasPMULL, "pmull")
	return features
}

// PrintExecutionMode displays the execution mode (single algorithm vs comparison).
func PrintExecutionMode(multipliers []reference.Multiplier, out io.Writer) {
	var modeDesc string
	if len(multipliers) > 1 {
		names := make([]string, len(multipliers))
		for i, m := range multipliers {
			names[i] = m.Name()
		}
		modeDesc = fmt.Sprintf("Parallel comparison of %s", strings.Join(names, ", "))
	} else {
		modeDesc = fmt.Sprintf("Single multiplication with the %s%s%s algorithm",
			ui.ColorGreen(), multipliers[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
