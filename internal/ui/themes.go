package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for UI output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Info is used for informational messages.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Underline is the escape code for underlined text.
	Underline string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;141m", // Purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // Dark blue
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Info:      "\033[38;5;54m",  // Dark purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color flag is provided.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// Palette holds the lipgloss colors matching a Theme.
type Palette struct {
	Accent  lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
}

var (
	darkPalette = Palette{
		Accent:  lipgloss.Color("39"),
		Dim:     lipgloss.Color("245"),
		Success: lipgloss.Color("82"),
		Warning: lipgloss.Color("220"),
		Error:   lipgloss.Color("196"),
	}
	lightPalette = Palette{
		Accent:  lipgloss.Color("27"),
		Dim:     lipgloss.Color("240"),
		Success: lipgloss.Color("28"),
		Warning: lipgloss.Color("130"),
		Error:   lipgloss.Color("124"),
	}
	noColorPalette = Palette{
		Accent:  lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
	}
)

// Styles are the lipgloss styles used to render the comparison table and
// the result summary.
type Styles struct {
	Header   lipgloss.Style
	Name     lipgloss.Style
	Duration lipgloss.Style
	OK       lipgloss.Style
	Fail     lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
}

// CurrentStyles returns the styles for the active theme.
func CurrentStyles() Styles {
	p := paletteFor(GetCurrentTheme())
	s := Styles{
		Header:   lipgloss.NewStyle().Foreground(p.Accent),
		Name:     lipgloss.NewStyle().Foreground(p.Accent),
		Duration: lipgloss.NewStyle().Foreground(p.Warning),
		OK:       lipgloss.NewStyle().Foreground(p.Success),
		Fail:     lipgloss.NewStyle().Foreground(p.Error),
		Label:    lipgloss.NewStyle().Foreground(p.Dim),
		Value:    lipgloss.NewStyle(),
	}
	if GetCurrentTheme().Name != NoColorTheme.Name {
		s.Header = s.Header.Bold(true).Underline(true)
		s.Value = s.Value.Bold(true)
	}
	return s
}

func paletteFor(t Theme) Palette {
	switch t.Name {
	case LightTheme.Name:
		return lightPalette
	case NoColorTheme.Name:
		return noColorPalette
	default:
		return darkPalette
	}
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name: "dark", "light" or "none".
// Unknown names default to dark theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "light":
		currentTheme = LightTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/).
// KMUL_THEME selects "light" when colors are enabled.
func InitTheme(noColor bool) {
	if _, exists := os.LookupEnv("NO_COLOR"); noColor || exists {
		SetTheme("none")
		return
	}
	SetTheme(os.Getenv("KMUL_THEME"))
}
