package live

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// formatIndex formats a question index.
func formatIndex(index int) string {
	return "Q" + pad2(index+1)
}

// pad2 left-pads a number to two digits when needed.
func pad2(value int) string {
	if value >= 10 {
		return strconv.Itoa(value)
	}
	return "0" + strconv.Itoa(value)
}

// truncate collapses whitespace and shortens text for table cells.
func truncate(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if limit <= 3 || len([]rune(normalized)) <= limit {
		return normalized
	}
	runes := []rune(normalized)
	return string(runes[:limit-3]) + "..."
}

// formatPercent renders a percentage with one decimal.
func formatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// formatScore renders "score/total".
func formatScore(score, total int) string {
	return strconv.Itoa(score) + "/" + strconv.Itoa(total)
}

// formatElapsed rounds a duration for display.
func formatElapsed(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	return d.Round(time.Second).String()
}

// outcomeLabel names the result of one question.
func outcomeLabel(answered, correct bool) string {
	switch {
	case !answered:
		return "skipped"
	case correct:
		return "correct"
	default:
		return "incorrect"
	}
}
