package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/rumo/internal/model"
	"github.com/verte-zerg/rumo/internal/stats"
	"github.com/verte-zerg/rumo/internal/timer"
)

const dayCellWidth = 7

var (
	goalStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	digitStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	unitStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	sectionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	weekClockStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	todayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	otherDayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	controlStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	stopStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	modalStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#8C8C8C")).
			Padding(1, 2).
			Align(lipgloss.Center)
	modalTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
)

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch {
	case !m.ready:
		// Nothing is known about the store yet; show the zero clock only.
		content = renderClock(stats.FormatClock(0))
	case m.editingGoal:
		content = m.renderGoalPrompt()
	case m.ctrl.State() == timer.ConfirmingStop:
		content = renderStopPrompt()
	default:
		content = m.renderMain()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderMain() string {
	blocks := make([]string, 0, 8)
	if m.goal != "" {
		blocks = append(blocks, goalStyle.Render("RUMO À "+strings.ToUpper(m.goal)), "")
	}
	blocks = append(blocks,
		renderClock(stats.FormatClock(m.ctrl.Elapsed())),
		"",
		sectionStyle.Render("ESTA SEMANA"),
		weekClockStyle.Render(stats.FormatClock(m.view.Total).String()),
		"",
		renderDays(m.view.Days),
		"",
		m.renderControls(),
	)
	if m.storeErr != nil {
		blocks = append(blocks, errorStyle.Render("armazenamento indisponível; o tempo não será salvo"))
	}
	blocks = append(blocks, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Center, blocks...)
}

func renderClock(c stats.Clock) string {
	sep := separatorStyle.Render(" : ")
	digits := digitStyle.Render(c.Hours) + sep + digitStyle.Render(c.Minutes) + sep + digitStyle.Render(c.Seconds)
	units := unitStyle.Render("hours  minutes  seconds")
	return lipgloss.JoinVertical(lipgloss.Center, digits, units)
}

func renderDays(days []model.DayTotal) string {
	cells := make([]string, 0, len(days))
	for _, d := range days {
		style := otherDayStyle
		if d.Today {
			style = todayStyle
		}
		cell := lipgloss.JoinVertical(lipgloss.Center,
			style.Render(strings.ToUpper(d.Day.Label())),
			style.Render(stats.FormatCompact(d.Seconds)),
		)
		cells = append(cells, lipgloss.NewStyle().Width(dayCellWidth).Align(lipgloss.Center).Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *Model) renderControls() string {
	toggle := "▶"
	dot := mutedStyle.Render("●")
	if m.ctrl.Running() {
		toggle = "⏸"
		dot = controlStyle.Render("●")
	}
	parts := []string{controlStyle.Render(toggle), dot, mutedStyle.Render("↻")}
	if m.ctrl.Elapsed() > 0 {
		parts = append(parts, stopStyle.Render("⏹"))
	}
	return strings.Join(parts, "   ")
}

func (m *Model) renderGoalPrompt() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		modalTitleStyle.Render("Para o que você está estudando?"),
		"",
		m.goalInput.View(),
		"",
		mutedStyle.Render("enter para começar"),
	)
	return modalStyle.Render(body)
}

func renderStopPrompt() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		modalTitleStyle.Render("Vai parar guerreiro?"),
		"",
		goalStyle.Render("Tem certeza? Tem alguém com menos recursos que você"),
		goalStyle.Render("que vai estar no lugar que você sonha"),
		"",
		controlStyle.Render("esc  Vou voltar estudar agora mesmo, slk"),
		mutedStyle.Render("enter  Sim, eu tento próximo ano"),
	)
	return modalStyle.Render(body)
}
