package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconDir       = "▸" // Directory row
	IconFile      = "·" // File row
	IconUnder     = "≤" // Directory counted by the bounded-sum query
	IconCandidate = "✗" // Directory chosen for deletion
	IconOK        = " " // Space (OK - no icon to reduce noise)
)
