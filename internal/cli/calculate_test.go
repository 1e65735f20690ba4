package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/agbru/kmul/internal/config"
	"github.com/agbru/kmul/internal/orchestration"
	"github.com/agbru/kmul/internal/reference"
)

func TestPrintExecutionConfig(t *testing.T) {
	useNoColor(t)

	tests := []struct {
		name      string
		threshold int
		want      string
	}{
		{"default threshold", 0, "Karatsuba threshold: 35 words."},
		{"explicit threshold", 48, "Karatsuba threshold: 48 words."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintExecutionConfig(config.AppConfig{Threshold: tt.threshold, Timeout: time.Minute}, 100, 60, &buf)
			output := buf.String()
			for _, want := range []string{"Multiplying 100 × 60 words (32-bit words)", "1m0s", tt.want} {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q:\n%s", want, output)
				}
			}
		})
	}
}

func TestCPUFeatures(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for _, f := range CPUFeatures() {
		if seen[f] {
			t.Errorf("duplicate feature %q", f)
		}
		seen[f] = true
	}
}

func TestPrintExecutionMode(t *testing.T) {
	t.Parallel()
	factory := reference.NewDefaultFactory()

	t.Run("Single multiplier mode", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		PrintExecutionMode(orchestration.GetMultipliersToRun("karatsuba", factory), &buf)
		if !strings.Contains(buf.String(), "Single multiplication") || !strings.Contains(buf.String(), "Karatsuba") {
			t.Errorf("unexpected output: %q", buf.String())
		}
	})

	t.Run("Multiple multipliers mode", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		PrintExecutionMode(orchestration.GetMultipliersToRun("all", factory), &buf)
		if !strings.Contains(buf.String(), "Parallel comparison of Karatsuba, math/big, Schoolbook") {
			t.Errorf("unexpected output: %q", buf.String())
		}
	})
}
