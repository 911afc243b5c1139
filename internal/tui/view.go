package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pokecard/internal/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFCB05"))
	helperStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E3350D"))
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B4CCA")).
			Padding(0, 1)
	nameStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#3B4CCA")).
			Padding(0, 1).
			MarginRight(1)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// View implements tea.Model.
func (m *Model) View() string {
	state := m.page.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helperStyle.Render(state.Helper))
	b.WriteString("\n")

	if m.pending > 0 {
		b.WriteString(helperStyle.Render("Searching..."))
		b.WriteString("\n")
	}
	if state.Error != "" {
		b.WriteString(errorStyle.Render(state.Error))
		b.WriteString("\n")
	}
	if state.Card != nil {
		b.WriteString(renderCard(state.Card))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("enter search • ctrl+r random • esc clear • ctrl+c quit"))
	b.WriteString("\n")
	return b.String()
}

func renderCard(card *models.Card) string {
	sprite := card.Image.Src
	if sprite == "" {
		sprite = "(no sprite)"
	}

	lines := []string{
		nameStyle.Render(card.Title),
		card.Stats,
		labelStyle.Render(models.TypesLabel) + " " + badges(card.Types),
		labelStyle.Render(models.AbilitiesLabel) + " " + badges(card.Abilities),
		labelStyle.Render(card.Image.Alt+":") + " " + sprite,
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func badges(names []string) string {
	rendered := make([]string, 0, len(names))
	for _, name := range names {
		rendered = append(rendered, badgeStyle.Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
