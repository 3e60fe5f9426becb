package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by text-mode output.
type Styles struct {
	Header1   lipgloss.Style
	Header2   lipgloss.Style
	ModelPath lipgloss.Style
	AssetKey  lipgloss.Style
	GroupName lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
}

func newStyles() *Styles {
	return &Styles{
		Header1:   lipgloss.NewStyle().Bold(true).Underline(true),
		Header2:   lipgloss.NewStyle().Bold(true),
		ModelPath: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		AssetKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		GroupName: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}
