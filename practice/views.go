package practice

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#B0DB43"))

	countStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#12EAEA"))

	statusStyle = lipgloss.NewStyle().
			Faint(true)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87"))

	helpStyle = lipgloss.NewStyle().
			Faint(true).
			MarginTop(1)
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.opts.Phrase))
	b.WriteString("\n\n")

	b.WriteString(countStyle.Render(fmt.Sprintf("%d", m.counter.Count())))
	b.WriteString(statusStyle.Render(" repetitions"))
	b.WriteString("\n")

	b.WriteString(
		statusStyle.Render("elapsed " + m.elapsed.Round(time.Second).String()),
	)
	b.WriteString("\n\n")

	today := m.led.TodayTotal(time.Now()) + m.counter.Count()

	b.WriteString(
		fmt.Sprintf("Today: %d / %d\n", today, m.opts.DailyTarget),
	)
	b.WriteString(m.progress.ViewAs(progressRatio(today, m.opts.DailyTarget)))
	b.WriteString("\n\n")

	b.WriteString(m.statusLine())

	b.WriteString(helpStyle.Render(
		"\nspace: count · r: reset · s: sound · q: save & quit",
	))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m *Model) statusLine() string {
	if m.speechErr != "" {
		return errStyle.Render("⚠ " + m.speechErr)
	}

	state := "idle"
	if m.rec != nil {
		state = m.rec.State().String()
	}

	line := statusStyle.Render("mic: " + state)

	if last := m.counter.LastMatch(); last != "" {
		line += statusStyle.Render(" · heard: ") + last
	}

	return line
}

func progressRatio(count, target int) float64 {
	if target <= 0 {
		return 0
	}

	ratio := float64(count) / float64(target)
	if ratio > 1 {
		ratio = 1
	}

	return ratio
}
