package live

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"lpicstudy/internal/bank"
	"lpicstudy/internal/quiz"
)

// Run drives the interactive quiz until the user quits. It reports the
// summary of the session finished last, if the user quit from its summary.
func Run(input io.Reader, output io.Writer, controller *quiz.Controller, topics []bank.Topic, opts Options) (quiz.Summary, bool, error) {
	program := tea.NewProgram(
		NewModel(controller, topics, opts),
		tea.WithInput(input),
		tea.WithOutput(output),
		tea.WithAltScreen(),
	)
	final, err := program.Run()
	if err != nil {
		return quiz.Summary{}, false, err
	}
	model, ok := final.(Model)
	if !ok {
		return quiz.Summary{}, false, nil
	}
	summary, finished := model.Summary()
	return summary, finished, nil
}
