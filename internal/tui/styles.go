package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/readingctl/internal/config"
	"github.com/blackwell-systems/readingctl/internal/model"
)

// Styles is the resolved style set for one theme. Views take the
// Styles they render with as a parameter; there is no package-level
// theme state.
type Styles struct {
	Normal    lipgloss.Style
	Subtle    lipgloss.Style
	Highlight lipgloss.Style
	Header    lipgloss.Style
	Border    lipgloss.Style

	ToRead     lipgloss.Style
	InProgress lipgloss.Style
	Finished   lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	UserMsg      lipgloss.Style
	AssistantMsg lipgloss.Style
	Typing       lipgloss.Style
}

// NewStyles builds the style set for a theme palette.
func NewStyles(th config.Theme) Styles {
	return Styles{
		Normal:    lipgloss.NewStyle().Foreground(lipgloss.Color(th.Text)),
		Subtle:    lipgloss.NewStyle().Foreground(lipgloss.Color(th.Subtle)),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color(th.Accent)).Bold(true),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color(th.Primary)).Bold(true),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(th.Border)),

		ToRead:     lipgloss.NewStyle().Foreground(lipgloss.Color(th.Info)),
		InProgress: lipgloss.NewStyle().Foreground(lipgloss.Color(th.Warning)),
		Finished:   lipgloss.NewStyle().Foreground(lipgloss.Color(th.Success)),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(th.Success)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(th.Warning)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(th.Error)),

		UserMsg:      lipgloss.NewStyle().Foreground(lipgloss.Color(th.Secondary)).Bold(true),
		AssistantMsg: lipgloss.NewStyle().Foreground(lipgloss.Color(th.Text)),
		Typing:       lipgloss.NewStyle().Foreground(lipgloss.Color(th.Subtle)).Italic(true),
	}
}

// StatusStyle returns the style for a reading status.
func (s Styles) StatusStyle(st model.Status) lipgloss.Style {
	switch st {
	case model.StatusInProgress:
		return s.InProgress
	case model.StatusFinished:
		return s.Finished
	default:
		return s.ToRead
	}
}
