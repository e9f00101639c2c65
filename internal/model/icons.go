package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconPriorityHigh = "¹" // Highest search priority (first entry)
	IconPriorityLow  = "¶" // Lowest search priority (last entry)
	IconMissing      = "✗" // Thin X (directory not found)
	IconOK           = " " // Space (OK - no icon to reduce noise)
	IconUser         = "◆" // Diamond for user-scope entries
	IconMachine      = "■" // Square for machine-scope entries
)
