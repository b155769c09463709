package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lpicstudy/internal/question"
	"lpicstudy/internal/quiz"
)

const plainHelp = `Answer with the option number, or type the answer for open questions.
An empty line moves on once the question is answered.
Commands:
  :next, :n       next question
  :prev, :p       previous question
  :goto <n>       jump to question n
  :finish, :f     finish and show the result
  :quit, :q       leave without a result
  :help, :h       show this help`

// plainLoop runs one quiz session over line-oriented input.
type plainLoop struct {
	ask        *prompter
	out        io.Writer
	controller *quiz.Controller
}

// playPlain starts a session and reads answers and commands until the user
// finishes, quits, or input ends. End of input finishes the session.
func playPlain(ask *prompter, controller *quiz.Controller, topic string, count int) (quiz.Summary, bool, error) {
	if err := controller.Start(topic, count); err != nil {
		return quiz.Summary{}, false, err
	}
	out := ask.out
	loop := plainLoop{ask: ask, out: out, controller: controller}
	info, _ := controller.Info()
	fmt.Fprintf(out, "Topic %s: %d questions. Type :help for commands.\n", info.Topic, info.Total)
	loop.printQuestion()
	for {
		fmt.Fprint(out, "> ")
		line, err := ask.line()
		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			return quiz.Summary{}, false, err
		}
		if !eof || line != "" {
			done, finished, stepErr := loop.step(line)
			if stepErr != nil {
				return quiz.Summary{}, false, stepErr
			}
			if done {
				return loop.result(finished)
			}
		}
		if eof {
			fmt.Fprintln(out)
			return loop.result(true)
		}
	}
}

func (l plainLoop) result(finish bool) (quiz.Summary, bool, error) {
	if !finish {
		return quiz.Summary{}, false, nil
	}
	summary, err := l.controller.Finish()
	if err != nil {
		return quiz.Summary{}, false, err
	}
	return summary, true, nil
}

// step handles one input line and reports whether the loop is done and
// whether the session should be finished.
func (l plainLoop) step(line string) (done, finish bool, err error) {
	if strings.HasPrefix(line, ":") {
		return l.command(line)
	}
	index, err := l.controller.CurrentIndex()
	if err != nil {
		return false, false, err
	}
	if line == "" && l.controller.IsAnswered(index) {
		return l.advance(index)
	}
	l.submit(line)
	return false, false, nil
}

func (l plainLoop) command(line string) (done, finish bool, err error) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":help", ":h":
		fmt.Fprintln(l.out, plainHelp)
	case ":next", ":n":
		l.move(l.controller.GoToNext())
	case ":prev", ":p":
		l.move(l.controller.GoToPrevious())
	case ":goto", ":g":
		if len(fields) != 2 {
			l.warn("Usage: :goto <question number>")
			return false, false, nil
		}
		n, convErr := strconv.Atoi(fields[1])
		if convErr != nil {
			l.warn("Usage: :goto <question number>")
			return false, false, nil
		}
		l.move(l.controller.GoTo(n - 1))
	case ":finish", ":f":
		return l.confirmFinish()
	case ":quit", ":q":
		return true, false, nil
	default:
		l.warn(fmt.Sprintf("Unknown command %q. Type :help for commands.", fields[0]))
	}
	return false, false, nil
}

func (l plainLoop) advance(index int) (done, finish bool, err error) {
	if index >= l.controller.Total()-1 {
		return l.confirmFinish()
	}
	l.move(l.controller.GoToNext())
	return false, false, nil
}

// confirmFinish asks before finishing with unanswered questions.
func (l plainLoop) confirmFinish() (done, finish bool, err error) {
	answered, total := l.controller.AnsweredCount(), l.controller.Total()
	if answered < total {
		ok, err := l.ask.confirm(
			fmt.Sprintf("%d of %d questions are unanswered and count as incorrect. Finish anyway?", total-answered, total), false)
		if err != nil {
			return false, false, err
		}
		if !ok {
			l.printQuestion()
			return false, false, nil
		}
	}
	return true, true, nil
}

func (l plainLoop) submit(line string) {
	q, err := l.controller.CurrentQuestion()
	if err != nil {
		l.warn(quiz.Warning(err))
		return
	}
	var feedback quiz.Feedback
	if q.Kind == question.KindChoice {
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			n = 0
		}
		feedback, err = l.controller.SubmitChoice(n - 1)
	} else {
		feedback, err = l.controller.SubmitAnswer(line)
	}
	if err != nil {
		l.warn(quiz.Warning(err))
		return
	}
	printFeedback(l.out, feedback)
}

func (l plainLoop) move(err error) {
	if err != nil {
		l.warn(quiz.Warning(err))
		return
	}
	l.printQuestion()
}

func (l plainLoop) warn(message string) {
	fmt.Fprintf(l.out, "! %s\n", message)
}

func (l plainLoop) printQuestion() {
	info, err := l.controller.Info()
	if err != nil {
		return
	}
	index, _ := l.controller.CurrentIndex()
	q, _ := l.controller.CurrentQuestion()
	fmt.Fprintln(l.out)
	fmt.Fprintf(l.out, "Question %d/%d [%s] answered %d, score %d\n",
		index+1, info.Total, info.Topic, l.controller.AnsweredCount(), l.controller.ScoreSoFar())
	fmt.Fprintln(l.out, q.Prompt)
	if q.Kind == question.KindChoice {
		for i, option := range q.Options {
			fmt.Fprintf(l.out, "  %d) %s\n", i+1, option)
		}
	} else {
		fmt.Fprintln(l.out, "  (type your answer)")
	}
	if feedback, ok := l.controller.Feedback(index); ok {
		printFeedback(l.out, feedback)
	}
}

func printFeedback(w io.Writer, feedback quiz.Feedback) {
	verdict := "INCORRECT"
	if feedback.Correct {
		verdict = "CORRECT"
	}
	fmt.Fprintln(w, verdict)
	fmt.Fprintf(w, "Your answer: %s\n", feedback.Given)
	fmt.Fprintf(w, "Correct answer: %s\n", feedback.Expected)
	if feedback.Explanation != "" {
		fmt.Fprintf(w, "Explanation: %s\n", feedback.Explanation)
	}
}
