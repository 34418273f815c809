package prompt

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
)

// program builds a bubbletea program that renders to stderr, leaving stdout
// free for piping (e.g. cd $(grm list -i)). The color profile is detected
// for stderr so NO_COLOR and piped output are respected.
func program(model tea.Model) *tea.Program {
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	return tea.NewProgram(model,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
}
