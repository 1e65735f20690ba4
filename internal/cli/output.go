// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult], [FormatExecutionDuration].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/kmul/internal/orchestration"
	"github.com/agbru/kmul/internal/ui"
	"github.com/agbru/kmul/internal/words"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows the full product.
	Verbose bool
}

// TruncateHex shortens hex strings longer than HexTruncationLimit to their
// first and last HexDisplayEdges digits.
func TruncateHex(hex string) string {
	if len(hex) <= HexTruncationLimit {
		return hex
	}
	return fmt.Sprintf("%s...%s (%d hex digits)", hex[:HexDisplayEdges], hex[len(hex)-HexDisplayEdges:], len(hex))
}

// WriteResultToFile writes the operands and their product to
// config.OutputFile as hexadecimal. It does nothing when no file is set.
func WriteResultToFile(a, b words.Nat, result orchestration.MultiplicationResult, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Karatsuba Multiplication Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Algorithm: %s\n", result.Name)
	fmt.Fprintf(file, "# Duration: %s\n", result.Duration)
	fmt.Fprintf(file, "# Words: %d x %d -> %d\n", len(a), len(b), len(result.Product))
	fmt.Fprintf(file, "# Bits: %d\n", result.Product.BitLen())
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "A = %s\nB = %s\nA*B = %s\n", a, b, result.Product)

	return file.Close()
}

// FormatQuietResult formats a product for quiet mode: the bare hex value.
func FormatQuietResult(product words.Nat) string {
	return product.Hex()
}

// DisplayQuietResult outputs a product in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, product words.Nat) {
	fmt.Fprintln(out, FormatQuietResult(product))
}

// DisplayResultWithConfig saves the result when an output file is
// configured and reports where it was written.
func DisplayResultWithConfig(out io.Writer, a, b words.Nat, result orchestration.MultiplicationResult, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}
	if err := WriteResultToFile(a, b, result, config); err != nil {
		return err
	}
	if !config.Quiet {
		fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
	}
	return nil
}
