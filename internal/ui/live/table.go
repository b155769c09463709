package live

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"lpicstudy/internal/bank"
	"lpicstudy/internal/quiz"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = styles.Selected.UnsetForeground().UnsetBackground().Bold(false).Reverse(true)
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

func topicColumns(width int) []table.Column {
	title := 48
	if width > 0 {
		title = max(width-30, 20)
	}
	return []table.Column{
		{Title: "Topic", Width: 8},
		{Title: "Title", Width: title},
		{Title: "Questions", Width: 10},
	}
}

func topicRows(topics []bank.Topic) []table.Row {
	rows := make([]table.Row, 0, len(topics))
	for _, topic := range topics {
		rows = append(rows, table.Row{topic.ID, topic.Title, strconv.Itoa(topic.Size)})
	}
	return rows
}

func outcomeColumns(width int) []table.Column {
	prompt := 44
	if width > 0 {
		prompt = max(width-40, 20)
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Question", Width: prompt},
		{Title: "Result", Width: 10},
		{Title: "Answer", Width: 20},
	}
}

func outcomeRows(outcomes []quiz.Outcome, width int) []table.Row {
	limit := 44
	if width > 0 {
		limit = max(width-40, 20)
	}
	rows := make([]table.Row, 0, len(outcomes))
	for _, outcome := range outcomes {
		rows = append(rows, table.Row{
			formatIndex(outcome.Index),
			truncate(outcome.Prompt, limit),
			outcomeLabel(outcome.Answered, outcome.Correct),
			truncate(outcome.Expected, 20),
		})
	}
	return rows
}
