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
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	// Uses bright, vibrant colors for good contrast.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set in the environment.
	NoColorTheme = Theme{Name: "none"}

	// currentTheme is the active theme used throughout the application.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// Lipgloss styles for the comparison table and banner. They follow the
// active ANSI theme only in the coarse sense of color on or off; callers
// that need exact theme colors should use the Theme escape codes directly.
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	WarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

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

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/) for
// accessibility. If noColor is true or NO_COLOR is set, colors are disabled.
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}

	// Any non-empty value disables colors (per no-color.org spec)
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}

	currentTheme = DarkTheme
}
