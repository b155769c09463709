// Package live renders the interactive quiz with Bubble Tea.
package live

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lpicstudy/internal/bank"
	"lpicstudy/internal/question"
	"lpicstudy/internal/quiz"
)

type screen int

const (
	screenTopics screen = iota
	screenQuestion
	screenConfirm
	screenSummary
)

// Options configures the live UI model.
type Options struct {
	NoColor bool
	// Count is the number of questions drawn per session.
	Count int
	// Topic starts a session right away instead of showing the topic picker.
	Topic string
}

// Model drives a quiz controller from keyboard input.
type Model struct {
	controller *quiz.Controller
	topics     table.Model
	outcomes   table.Model
	input      textinput.Model
	help       help.Model
	keys       keyMap
	screen     screen
	cursor     int
	count      int
	warning    string
	summary    quiz.Summary
	finished   bool
	width      int
	noColor    bool
}

// NewModel constructs a quiz model over the controller and topic listing.
func NewModel(controller *quiz.Controller, topics []bank.Topic, opts Options) Model {
	topicTable := table.New(
		table.WithColumns(topicColumns(0)),
		table.WithRows(topicRows(topics)),
		table.WithFocused(true),
		table.WithHeight(min(len(topics)+1, 16)),
	)
	topicTable.SetStyles(tableStyles(opts.NoColor))
	outcomeTable := table.New(
		table.WithColumns(outcomeColumns(0)),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	outcomeTable.SetStyles(tableStyles(opts.NoColor))
	input := textinput.New()
	input.Placeholder = "type your answer"
	input.Prompt = "> "
	input.CharLimit = 200
	input.Width = 60

	m := Model{
		controller: controller,
		topics:     topicTable,
		outcomes:   outcomeTable,
		input:      input,
		help:       help.New(),
		keys:       defaultKeyMap(),
		count:      opts.Count,
		noColor:    opts.NoColor,
	}
	switch {
	case controller.State() == quiz.StateInProgress:
		m.screen = screenQuestion
		m, _ = m.enterQuestion()
	case opts.Topic != "":
		m, _ = m.start(opts.Topic)
	}
	return m
}

// Summary returns the summary of the last finished session.
func (m Model) Summary() (quiz.Summary, bool) {
	return m.summary, m.finished
}

// Init starts the cursor blink when a text answer is pending.
func (m Model) Init() tea.Cmd {
	if m.typing() {
		return textinput.Blink
	}
	return nil
}

// Update applies keyboard input to the controller.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		m.input.Width = max(typed.Width-6, 10)
		m.topics.SetWidth(typed.Width)
		m.topics.SetColumns(topicColumns(typed.Width))
		m.outcomes.SetWidth(typed.Width)
		m.outcomes.SetColumns(outcomeColumns(typed.Width))
		m.outcomes.SetHeight(max(typed.Height-10, 3))
		if m.finished {
			m.outcomes.SetRows(outcomeRows(m.summary.Outcomes, m.width))
		}
		return m, nil
	case tea.KeyMsg:
		if typed.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenTopics:
			return m.updateTopics(typed)
		case screenQuestion:
			return m.updateQuestion(typed)
		case screenConfirm:
			return m.updateConfirm(typed)
		case screenSummary:
			return m.updateSummary(typed)
		}
	}
	if m.typing() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateTopics(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		row := m.topics.SelectedRow()
		if row == nil {
			return m, nil
		}
		return m.start(row[0])
	}
	var cmd tea.Cmd
	m.topics, cmd = m.topics.Update(msg)
	return m, cmd
}

func (m Model) updateQuestion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	typing := m.typing()
	keys := m.activeKeys()
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Prev):
		m.warning = quiz.Warning(m.controller.GoToPrevious())
		return m.enterQuestion()
	case key.Matches(msg, keys.Next):
		m.warning = quiz.Warning(m.controller.GoToNext())
		return m.enterQuestion()
	case key.Matches(msg, keys.Finish):
		return m.requestFinish()
	case key.Matches(msg, keys.Reset):
		return m.reset()
	case key.Matches(msg, keys.Submit):
		return m.submit()
	}
	if typing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	q, err := m.controller.CurrentQuestion()
	if err != nil || q.Kind != question.KindChoice {
		return m, nil
	}
	switch {
	case key.Matches(msg, keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, keys.Down):
		m.cursor = min(m.cursor+1, len(q.Options)-1)
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9':
		m.cursor = int(msg.Runes[0] - '1')
		return m.submitChoice()
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m.finish()
	case key.Matches(msg, m.keys.Cancel):
		m.screen = screenQuestion
		return m.enterQuestion()
	}
	return m, nil
}

func (m Model) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reset), key.Matches(msg, m.keys.Submit):
		return m.reset()
	}
	var cmd tea.Cmd
	m.outcomes, cmd = m.outcomes.Update(msg)
	return m, cmd
}

func (m Model) start(topic string) (Model, tea.Cmd) {
	if err := m.controller.Start(topic, m.count); err != nil {
		m.warning = quiz.Warning(err)
		return m, nil
	}
	m.warning = ""
	m.finished = false
	m.screen = screenQuestion
	return m.enterQuestion()
}

// enterQuestion prepares the widgets for the current question.
func (m Model) enterQuestion() (Model, tea.Cmd) {
	m.cursor = 0
	m.input.Reset()
	if m.typing() {
		return m, m.input.Focus()
	}
	m.input.Blur()
	return m, nil
}

func (m Model) submit() (Model, tea.Cmd) {
	index, err := m.controller.CurrentIndex()
	if err != nil {
		m.warning = quiz.Warning(err)
		return m, nil
	}
	if m.controller.IsAnswered(index) {
		if index == m.controller.Total()-1 {
			return m.requestFinish()
		}
		m.warning = quiz.Warning(m.controller.GoToNext())
		return m.enterQuestion()
	}
	q, err := m.controller.CurrentQuestion()
	if err != nil {
		m.warning = quiz.Warning(err)
		return m, nil
	}
	if q.Kind == question.KindFreeText {
		if _, err := m.controller.SubmitAnswer(m.input.Value()); err != nil {
			m.warning = quiz.Warning(err)
			return m, nil
		}
		m.warning = ""
		m.input.Blur()
		return m, nil
	}
	return m.submitChoice()
}

func (m Model) submitChoice() (Model, tea.Cmd) {
	if _, err := m.controller.SubmitChoice(m.cursor); err != nil {
		m.warning = quiz.Warning(err)
		return m, nil
	}
	m.warning = ""
	return m, nil
}

func (m Model) requestFinish() (Model, tea.Cmd) {
	if m.controller.AnsweredCount() < m.controller.Total() {
		m.input.Blur()
		m.screen = screenConfirm
		return m, nil
	}
	return m.finish()
}

func (m Model) finish() (Model, tea.Cmd) {
	summary, err := m.controller.Finish()
	if err != nil {
		m.warning = quiz.Warning(err)
		return m, nil
	}
	m.warning = ""
	m.summary = summary
	m.finished = true
	m.screen = screenSummary
	m.input.Blur()
	m.outcomes.SetRows(outcomeRows(summary.Outcomes, m.width))
	m.outcomes.GotoTop()
	return m, nil
}

func (m Model) reset() (Model, tea.Cmd) {
	m.controller.Reset()
	m.finished = false
	m.summary = quiz.Summary{}
	m.warning = ""
	m.input.Blur()
	m.screen = screenTopics
	return m, nil
}

// typing reports whether keystrokes belong to the free-text input.
func (m Model) typing() bool {
	if m.screen != screenQuestion {
		return false
	}
	q, err := m.controller.CurrentQuestion()
	if err != nil || q.Kind != question.KindFreeText {
		return false
	}
	index, err := m.controller.CurrentIndex()
	return err == nil && !m.controller.IsAnswered(index)
}

func (m Model) activeKeys() keyMap {
	if m.typing() {
		return textKeys(m.keys)
	}
	return m.keys
}
