package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("62"))

	cardTitleStyle = lipgloss.NewStyle().Bold(true)

	cardMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(1, 2)

	toastSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("35")).
				Padding(0, 1)

	toastErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("203")).
			Padding(0, 1)

	stepTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	starStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("250"))
)

// badgeStyle returns the colored badge for a meal category or a cuisine.
func badgeStyle(category string) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("15"))
	switch category {
	case "carb":
		return base.Background(lipgloss.Color("33"))
	case "protein":
		return base.Background(lipgloss.Color("35"))
	case "vegetable":
		return base.Background(lipgloss.Color("208"))
	default:
		return base.Background(lipgloss.Color("62"))
	}
}
