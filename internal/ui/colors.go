package ui

// Color accessor functions return the escape code for the active theme.
// They exist so callers never cache a code across a theme change.

// ColorPrimary returns the primary accent escape code.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the secondary escape code.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorGreen returns the success escape code.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning escape code.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the error escape code.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset returns the reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }
