package config

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/kmul/internal/errors"
)

var availableAlgos = []string{"karatsuba", "mathbig", "schoolbook"}

func TestParseConfig(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		t.Parallel()
		cfg, err := ParseConfig("kmul", []string{}, io.Discard, availableAlgos)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.WA != DefaultWords || cfg.WB != DefaultWords {
			t.Errorf("Expected default operand lengths %d, got %d and %d", DefaultWords, cfg.WA, cfg.WB)
		}
		if cfg.Algo != "all" {
			t.Errorf("Expected default Algo 'all', got %s", cfg.Algo)
		}
		if cfg.Timeout != time.Minute {
			t.Errorf("Expected default Timeout 1m, got %v", cfg.Timeout)
		}
		if cfg.Threshold != 0 {
			t.Errorf("Expected auto threshold 0, got %d", cfg.Threshold)
		}
	})

	t.Run("ValidFlags", func(t *testing.T) {
		t.Parallel()
		args := []string{
			"-a", "ffffffff_ffffffff",
			"-b", "2",
			"-algo", "KARATSUBA",
			"-threshold", "48",
			"-timeout", "10s",
			"-v", "-d", "-q",
			"-o", "out.hex",
			"-metrics-addr", ":9100",
			"-log-level", "debug",
		}
		cfg, err := ParseConfig("kmul", args, io.Discard, availableAlgos)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.A != "ffffffff_ffffffff" || cfg.B != "2" {
			t.Errorf("operands = %q, %q", cfg.A, cfg.B)
		}
		if cfg.Algo != "karatsuba" {
			t.Errorf("Expected Algo 'karatsuba', got %s", cfg.Algo)
		}
		if cfg.Threshold != 48 {
			t.Errorf("Expected Threshold 48, got %d", cfg.Threshold)
		}
		if cfg.Timeout != 10*time.Second {
			t.Errorf("Expected Timeout 10s, got %v", cfg.Timeout)
		}
		if !cfg.Verbose || !cfg.Details || !cfg.Quiet {
			t.Error("Expected Verbose, Details and Quiet to be set")
		}
		if cfg.OutputFile != "out.hex" || cfg.MetricsAddr != ":9100" || cfg.LogLevel != "debug" {
			t.Errorf("unexpected string flags: %+v", cfg)
		}
		if got := cfg.ToMultiplyOptions().Threshold; got != 48 {
			t.Errorf("ToMultiplyOptions().Threshold = %d, want 48", got)
		}
	})

	t.Run("InvalidConfigurations", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name string
			args []string
		}{
			{"unknown algorithm", []string{"-algo", "fft"}},
			{"zero timeout", []string{"-timeout", "0s"}},
			{"threshold below minimum", []string{"-threshold", "2"}},
			{"negative threshold", []string{"-threshold", "-1"}},
			{"single operand", []string{"-a", "ff"}},
			{"zero operand length", []string{"-wa", "0"}},
			{"bad log level", []string{"-log-level", "loud"}},
			{"unknown flag", []string{"-n", "10"}},
		}
		for _, tt := range tests {
			if _, err := ParseConfig("kmul", tt.args, io.Discard, availableAlgos); err == nil {
				t.Errorf("%s: expected an error", tt.name)
			}
		}
	})

	t.Run("ValidationErrorIsConfigError", func(t *testing.T) {
		t.Parallel()
		var sb strings.Builder
		_, err := ParseConfig("kmul", []string{"-algo", "fft"}, &sb, availableAlgos)
		var cfgErr apperrors.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("error %v should wrap a ConfigError", err)
		}
		if !strings.Contains(sb.String(), "Configuration error") || !strings.Contains(sb.String(), "-threshold") {
			t.Error("usage with the error should be printed")
		}
	})

	t.Run("CalibrateNeedsNoOperands", func(t *testing.T) {
		t.Parallel()
		cfg, err := ParseConfig("kmul", []string{"-calibrate", "-wa", "0", "-calibration-words", "256"}, io.Discard, availableAlgos)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !cfg.Calibrate || cfg.CalibrationWords != 256 {
			t.Errorf("unexpected calibration config: %+v", cfg)
		}
	})
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	env := map[string]string{
		"KMUL_WA":        "64",
		"KMUL_WB":        "32",
		"KMUL_SEED":      "7",
		"KMUL_ALGO":      "schoolbook",
		"KMUL_THRESHOLD": "20",
		"KMUL_TIMEOUT":   "2m",
		"KMUL_DETAILS":   "yes",
		"KMUL_LOG_LEVEL": "warn",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg, err := ParseConfig("kmul", []string{"-threshold", "50"}, io.Discard, availableAlgos)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.WA != 64 || cfg.WB != 32 || cfg.Seed != 7 {
		t.Errorf("operand overrides not applied: %+v", cfg)
	}
	if cfg.Algo != "schoolbook" || cfg.Timeout != 2*time.Minute || !cfg.Details || cfg.LogLevel != "warn" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Threshold != 50 {
		t.Errorf("explicit flag must win over env: Threshold = %d, want 50", cfg.Threshold)
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"1", false, true},
		{"no", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}

func TestEstimateThreshold(t *testing.T) {
	t.Parallel()
	if got := estimateThreshold("amd64"); got != 40 {
		t.Errorf("amd64 = %d, want 40", got)
	}
	if got := estimateThreshold("386"); got != 35 {
		t.Errorf("386 = %d, want 35", got)
	}
	if got := EstimateKaratsubaThreshold(); got < 3 {
		t.Errorf("EstimateKaratsubaThreshold() = %d, below the minimum", got)
	}
}

func TestApplyAdaptiveThreshold(t *testing.T) {
	t.Parallel()
	if got := ApplyAdaptiveThreshold(AppConfig{Threshold: 64}).Threshold; got != 64 {
		t.Errorf("explicit threshold changed to %d", got)
	}
	if got := ApplyAdaptiveThreshold(AppConfig{}).Threshold; got != EstimateKaratsubaThreshold() {
		t.Errorf("auto threshold = %d, want estimate", got)
	}
}
