package views

import "github.com/charmbracelet/lipgloss"

// Styles contains all the style definitions for the feed UI
type Styles struct {
	Title     lipgloss.Style
	Position  lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Author    lipgloss.Style
	Image     lipgloss.Style
	Liked     lipgloss.Style
	Unliked   lipgloss.Style
	Counts    lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	EndOfFeed lipgloss.Style
	Dim       lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Position: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 3),
		CardTitle: lipgloss.NewStyle().Bold(true),
		Author:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Image: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true),
		Liked:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Unliked:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Counts:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		EndOfFeed: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		Help:      lipgloss.NewStyle().Faint(true),
	}
}
