package live

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lpicstudy/internal/question"
	"lpicstudy/internal/quiz"
)

var (
	colorTitle   = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("244")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("196")
	colorWarning = lipgloss.Color("220")
)

// View renders the current screen.
func (m Model) View() string {
	var parts []string
	switch m.screen {
	case screenTopics:
		parts = append(parts,
			stylize("LPIC-1 study | choose a topic", m.noColor, colorTitle),
			m.topics.View(),
			stylize("↑/↓ select • enter start • q quit", m.noColor, colorMuted),
		)
	case screenQuestion:
		parts = append(parts, m.renderQuestionScreen()...)
		parts = append(parts, m.help.View(m.activeKeys()))
	case screenConfirm:
		parts = append(parts,
			stylize("Finish the quiz?", m.noColor, colorTitle),
			"You answered "+strconv.Itoa(m.controller.AnsweredCount())+" of "+
				strconv.Itoa(m.controller.Total())+" questions. Unanswered questions count as incorrect.",
			stylize("y finish • n keep going", m.noColor, colorMuted),
		)
	case screenSummary:
		parts = append(parts, renderSummary(m.summary, m.noColor)...)
		parts = append(parts, m.outcomes.View(),
			stylize("enter/r new quiz • q quit", m.noColor, colorMuted))
	}
	if m.warning != "" {
		parts = append(parts, stylize(m.warning, m.noColor, colorWarning))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m Model) renderQuestionScreen() []string {
	info, err := m.controller.Info()
	if err != nil {
		return []string{err.Error()}
	}
	index, _ := m.controller.CurrentIndex()
	q, _ := m.controller.CurrentQuestion()
	feedback, answered := m.controller.Feedback(index)

	parts := []string{
		renderHeader(info, index, m.controller.AnsweredCount(), m.controller.ScoreSoFar(), m.noColor),
		"",
		wrap(q.Prompt, m.width),
		"",
	}
	if q.Kind == question.KindChoice {
		parts = append(parts, renderOptions(q, m.cursor, feedback, answered, m.noColor)...)
	} else if !answered {
		parts = append(parts, m.input.View())
	}
	if answered {
		parts = append(parts, "")
		parts = append(parts, renderFeedback(feedback, m.width, m.noColor)...)
	}
	parts = append(parts, "")
	return parts
}

// renderHeader renders the session header line.
func renderHeader(info quiz.SessionInfo, index, answered, score int, noColor bool) string {
	line := "Topic " + info.Topic +
		" | Question " + strconv.Itoa(index+1) + "/" + strconv.Itoa(info.Total) +
		" | Answered " + strconv.Itoa(answered) +
		" | Score " + formatScore(score, info.Total)
	return stylize(line, noColor, colorTitle)
}

// renderOptions lists choice options with the cursor and, once answered, the result marks.
func renderOptions(q question.Question, cursor int, feedback quiz.Feedback, answered bool, noColor bool) []string {
	lines := make([]string, 0, len(q.Options))
	for i, option := range q.Options {
		prefix := "  "
		if !answered && i == cursor {
			prefix = "> "
		}
		line := prefix + strconv.Itoa(i+1) + ") " + option
		switch {
		case answered && i == q.CorrectIndex:
			line = stylize(line+"  ✓", noColor, colorCorrect)
		case answered && !feedback.Correct && i == feedback.Selected:
			line = stylize(line+"  ✗", noColor, colorWrong)
		}
		lines = append(lines, line)
	}
	return lines
}

// renderFeedback renders the verdict for an answered question.
func renderFeedback(feedback quiz.Feedback, width int, noColor bool) []string {
	verdict := stylize("CORRECT", noColor, colorCorrect)
	if !feedback.Correct {
		verdict = stylize("INCORRECT", noColor, colorWrong)
	}
	lines := []string{
		verdict,
		"Your answer: " + feedback.Given,
		"Correct answer: " + feedback.Expected,
	}
	if feedback.Explanation != "" {
		lines = append(lines, wrap(stylize("Explanation: "+feedback.Explanation, noColor, colorMuted), width))
	}
	return lines
}

// renderSummary renders the band and the score lines of a finished session.
func renderSummary(summary quiz.Summary, noColor bool) []string {
	band := summary.Band.Name
	if band == "" {
		band = "Result"
	}
	lines := []string{
		stylize(band, noColor, bandColor(summary.BandRank, summary.BandCount)),
	}
	if summary.Band.Message != "" {
		lines = append(lines, summary.Band.Message)
	}
	lines = append(lines,
		"Topic "+summary.Topic+
			" | Score "+formatScore(summary.Score, summary.TotalQuestions)+
			" ("+formatPercent(summary.Percentage)+")"+
			" | Answered "+formatScore(summary.AnsweredCount, summary.TotalQuestions)+
			" | Time "+formatElapsed(summary.Duration()),
		"",
	)
	return lines
}

// bandColor colors the top band green, the floor band red and the rest yellow.
func bandColor(rank, count int) lipgloss.Color {
	switch {
	case rank < 0:
		return colorMuted
	case rank == 0:
		return colorCorrect
	case rank == count-1:
		return colorWrong
	default:
		return colorWarning
	}
}

// wrap soft-wraps text to the terminal width.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(strings.TrimSpace(text))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
