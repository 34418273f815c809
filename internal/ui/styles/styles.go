// Package styles centralizes the lipgloss colors used by grm's prompts and
// listings.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors used by the UI.
var (
	// Accent is the highlight color for selected items (pink).
	Accent color.Color = lipgloss.Color("212")

	// Warning is used for destructive-action listings (orange).
	Warning color.Color = lipgloss.Color("214")
)

// WarningStyle renders paths that are about to be overwritten or deleted.
var WarningStyle = lipgloss.NewStyle().Foreground(Warning)
