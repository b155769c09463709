package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"lpicstudy/internal/quiz"
	"lpicstudy/internal/ui/live"
)

// playInput allows tests to override stdin for the quiz loop.
var playInput io.Reader = os.Stdin

// runLive allows tests to replace the interactive UI.
var runLive = live.Run

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		topicFlag := flags.String("topic", "", "Topic id to practice (default: config default_topic or ask)")
		countFlag := flags.Int("count", 0, "Number of questions to draw (default: config question_count)")
		uiFlag := flags.String("ui", "", "UI mode: auto|live|plain (default: config ui.mode)")
		noColorFlag := flags.Bool("no-color", false, "Disable colored output")
		verbose := flags.Bool("verbose", false, "Log session events to stderr")
		configPath, questionsPath := sourceFlags(flags)
		if code, stop := parseCommandFlags(cmd, flags, args, stdout, stderr); stop {
			return code
		}
		if *countFlag < 0 {
			fmt.Fprintln(stderr, "invalid arguments: --count must be positive")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		s, err := loadStudy(*configPath, *questionsPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions:\n%v\n", err)
			return ExitError
		}

		in := playInput
		if in == nil {
			in = os.Stdin
		}
		mode := *uiFlag
		if mode == "" {
			mode = s.cfg.UI.Mode
		}
		decision, err := resolveUIMode(mode, *verbose, in, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		count := s.cfg.Quiz.QuestionCount
		if *countFlag > 0 {
			count = *countFlag
		}
		topic := strings.TrimSpace(*topicFlag)
		if topic == "" {
			topic = s.cfg.Quiz.DefaultTopic
		}
		noColor := *noColorFlag || s.cfg.UI.NoColor

		opts := quiz.Options{Bands: s.cfg.QuizBands()}
		if *verbose {
			opts.Observer = verboseObserver{writer: stderr, noColor: noColor}
			logVerbose(true, stderr, noColor, styleDefault, "bank topics=%d questions=%d source=%s",
				len(s.bank.Topics()), s.bank.QuestionCount(), sourceLabel(s.questionsPath))
		}
		controller := quiz.NewController(s.bank, opts)

		if decision.useLive {
			summary, finished, err := runLive(in, stdout, controller, s.bank.Topics(), live.Options{
				NoColor: noColor,
				Count:   count,
				Topic:   topic,
			})
			if err != nil {
				fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
				return ExitError
			}
			if finished {
				printSummary(stdout, summary)
			}
			return ExitOK
		}

		ask := newPrompter(in, stdout)
		if topic == "" {
			topic, err = promptTopic(ask, s)
			if err != nil {
				fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
				return ExitError
			}
		}
		summary, finished, err := playPlain(ask, controller, topic, count)
		if err != nil {
			if errors.Is(err, quiz.ErrNoQuestionsAvailable) {
				fmt.Fprintf(stderr, "No questions available for topic %q. Run \"lpicstudy topics\" to list them.\n", topic)
				return ExitError
			}
			fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			return ExitError
		}
		if finished {
			printSummary(stdout, summary)
		}
		return ExitOK
	}
}

func sourceLabel(questionsPath string) string {
	if questionsPath == "" {
		return "built-in"
	}
	return questionsPath
}

// promptTopic lists topics and asks until one with questions is entered.
func promptTopic(ask *prompter, s study) (string, error) {
	out := ask.out
	fmt.Fprintln(out, "Topics:")
	printTopics(out, s)
	for {
		topic, err := ask.ask("Topic", "")
		if err != nil {
			return "", err
		}
		listed, ok := s.bank.Lookup(topic)
		switch {
		case !ok:
			fmt.Fprintf(out, "Unknown topic %q.\n", topic)
		case listed.Size == 0:
			fmt.Fprintf(out, "! %s\n", quiz.Warning(quiz.ErrNoQuestionsAvailable))
		default:
			return topic, nil
		}
	}
}

// printSummary writes the final report of a finished session.
func printSummary(w io.Writer, summary quiz.Summary) {
	fmt.Fprintln(w)
	band := summary.Band.Name
	if band == "" {
		band = "Result"
	}
	fmt.Fprintf(w, "%s: %d/%d correct (%.1f%%)\n", band, summary.Score, summary.TotalQuestions, summary.Percentage)
	if summary.Band.Message != "" {
		fmt.Fprintln(w, summary.Band.Message)
	}
	fmt.Fprintf(w, "Topic %s | Answered %d/%d | Time %s\n",
		summary.Topic, summary.AnsweredCount, summary.TotalQuestions, summary.Duration().Round(time.Second))
	for _, outcome := range summary.Outcomes {
		status := "correct"
		switch {
		case !outcome.Answered:
			status = "skipped"
		case !outcome.Correct:
			status = "incorrect"
		}
		line := fmt.Sprintf("  Q%02d %-9s %s", outcome.Index+1, status, oneLine(outcome.Prompt, 60))
		if !outcome.Correct {
			line += " (answer: " + outcome.Expected + ")"
		}
		fmt.Fprintln(w, line)
	}
}

// oneLine collapses whitespace and truncates long text.
func oneLine(text string, limit int) string {
	normalized := []rune(strings.Join(strings.Fields(text), " "))
	if len(normalized) <= limit {
		return string(normalized)
	}
	return string(normalized[:limit-3]) + "..."
}
