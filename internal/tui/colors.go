package tui

// Color constants for tgeld TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#132A1E" // Dark green
	ColorBorder         = "#3A5546" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E8F2EA" // Primary text (field labels, user input, titles)
	ColorSecondaryText = "#B1C7B8" // Secondary text - subtle green-tinted grey
	ColorDisabledText  = "#6D8376" // Disabled/muted text
	ColorPlaceholder   = "#B1C7B8" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Green theme)
	ColorAccentMain   = "#2E9E5B" // Accent elements, active borders
	ColorAccentBright = "#6FD494" // Hover, highlights, current step

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#E8B931" // Warnings
)
