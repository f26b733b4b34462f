package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the shell.
type Styles struct {
	BarTitle        *lipgloss.Style
	BarTitleActive  *lipgloss.Style
	Item            *lipgloss.Style
	SelectedItem    *lipgloss.Style
	Separator       *lipgloss.Style
	AccelHint       *lipgloss.Style
	SelectedAccel   *lipgloss.Style
	Error           *lipgloss.Style
	Info            *lipgloss.Style
	Status          *lipgloss.Style
	DialogTitle     *lipgloss.Style
	DialogEntry     *lipgloss.Style
	DialogSelected  *lipgloss.Style
	DialogMarked    *lipgloss.Style
	DialogDirectory *lipgloss.Style
	Filter          *lipgloss.Style
	FilterPrompt    *lipgloss.Style
	Cursor          *lipgloss.Style
}

var defaultStyles = Styles{
	BarTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	BarTitleActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Separator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	AccelHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	SelectedAccel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("238")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	DialogTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	DialogEntry: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	DialogSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	DialogMarked: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	DialogDirectory: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
}

// Default exposes the standard style set used across the shell.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
