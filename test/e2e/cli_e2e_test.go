package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the kmul binary and checks its output and exit codes.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e build in short mode")
	}

	tmpDir := t.TempDir()
	binName := "kmul"
	if runtime.GOOS == "windows" {
		binName = "kmul.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs in test/e2e; build from the module root.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/kmul")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build kmul: %v", err)
	}

	profile := filepath.Join(tmpDir, "profile.json")

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Quiet Explicit Operands",
			args:     []string{"-a", "ffffffffffffffff", "-b", "ffffffffffffffff", "-q"},
			wantOut:  "fffffffffffffffe0000000000000001",
			wantCode: 0,
		},
		{
			name:     "All Algorithms Comparison",
			args:     []string{"-wa", "200", "-wb", "150", "-seed", "1"},
			wantOut:  "All valid products are consistent",
			wantCode: 0,
		},
		{
			name:     "Single Algorithm",
			args:     []string{"-wa", "64", "-wb", "64", "-algo", "karatsuba"},
			wantOut:  "Single multiplication",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Unknown Algorithm",
			args:     []string{"-algo", "toom3"},
			wantOut:  "unrecognized algorithm",
			wantCode: 4,
		},
		{
			name:     "Very Short Timeout",
			args:     []string{"-wa", "4096", "-wb", "4096", "-timeout", "1ns"},
			wantCode: 2,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "kmul",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-calibration-profile", profile}, tt.args...)
			cmd := exec.Command(binPath, args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("command failed to run: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}
			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
