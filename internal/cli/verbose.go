package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"lpicstudy/internal/quiz"
)

const verbosePrefix = "[verbose]"

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiGray  = "\x1b[90m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiBlue  = "\x1b[34m"
)

type verboseStyle int

const (
	styleDefault verboseStyle = iota
	styleSession
	styleCorrect
	styleIncorrect
)

func logVerbose(enabled bool, writer io.Writer, noColor bool, style verboseStyle, format string, args ...any) {
	if !enabled || writer == nil {
		return
	}
	palette := paletteFor(writer, noColor)
	line := fmt.Sprintf(format, args...)
	fmt.Fprintf(writer, "%s %s\n", palette.prefix(verbosePrefix), palette.apply(style, line))
}

type verbosePalette struct {
	enabled bool
}

func paletteFor(writer io.Writer, noColor bool) verbosePalette {
	if noColor {
		return verbosePalette{enabled: false}
	}
	return verbosePalette{enabled: shouldUseStyling(writer)}
}

func shouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func (p verbosePalette) prefix(text string) string {
	if !p.enabled {
		return text
	}
	return ansiDim + ansiGray + text + ansiReset
}

func (p verbosePalette) apply(style verboseStyle, text string) string {
	if !p.enabled {
		return text
	}
	switch style {
	case styleSession:
		return ansiBold + ansiBlue + text + ansiReset
	case styleCorrect:
		return ansiBold + ansiGreen + text + ansiReset
	case styleIncorrect:
		return ansiBold + ansiRed + text + ansiReset
	default:
		return text
	}
}

// verboseObserver logs controller lifecycle events.
type verboseObserver struct {
	writer  io.Writer
	noColor bool
}

func (o verboseObserver) OnStart(info quiz.SessionInfo) {
	logVerbose(true, o.writer, o.noColor, styleSession, "session=%s topic=%s questions=%d started=%s",
		info.ID, info.Topic, info.Total, info.StartedAt.Format(time.RFC3339))
}

func (o verboseObserver) OnAnswer(feedback quiz.Feedback) {
	style := styleIncorrect
	if feedback.Correct {
		style = styleCorrect
	}
	logVerbose(true, o.writer, o.noColor, style, "answer question=%s index=%d correct=%t given=%q",
		feedback.QuestionID, feedback.Index, feedback.Correct, feedback.Given)
}

func (o verboseObserver) OnFinish(summary quiz.Summary) {
	logVerbose(true, o.writer, o.noColor, styleSession, "finish session=%s score=%d/%d answered=%d band=%q duration=%s",
		summary.SessionID, summary.Score, summary.TotalQuestions, summary.AnsweredCount, summary.Band.Name,
		summary.Duration().Round(time.Millisecond))
}

func (o verboseObserver) OnReset() {
	logVerbose(true, o.writer, o.noColor, styleDefault, "session reset")
}
