package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used for diagnostics rendering.
type Styles struct {
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Success  lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	FilePath lipgloss.Style
}

// defaultStyles returns the styled set used on terminals.
func defaultStyles() *Styles {
	return &Styles{
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Bold:     lipgloss.NewStyle().Bold(true),
		FilePath: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

// plainStyles returns a style set that renders text unmodified, for
// piped output and JSON mode.
func plainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:    plain,
		Warning:  plain,
		Info:     plain,
		Success:  plain,
		Muted:    plain,
		Bold:     plain,
		FilePath: plain,
	}
}
