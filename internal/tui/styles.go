package tui

import (
	"github.com/MKhiriev/go-insight-keeper/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	provisionalText = lipgloss.NewStyle().Faint(true).Italic(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	cardStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(72)

	typeColors = map[models.InsightType]lipgloss.Color{
		models.Pattern:     lipgloss.Color("12"),
		models.Tension:     lipgloss.Color("9"),
		models.Assumption:  lipgloss.Color("11"),
		models.Opportunity: lipgloss.Color("10"),
	}
)
