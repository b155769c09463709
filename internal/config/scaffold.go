package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const defaultConfig = `version: 1

quiz:
  question_count: %d
  %sdefault_topic: %s

# Replace the built-in LPIC-1 catalog with your own questions file.
# questions_file: "questions.yml"

ui:
  mode: auto # auto | live | plain
  no_color: false

bands:
  - name: Excellent
    min_percent: 90
    message: "You have mastered this topic."
  - name: Good
    min_percent: 70
    message: "Solid knowledge, with a few points left to improve."
  - name: Fair
    min_percent: 50
    message: "Study the material further before the exam."
  - name: Needs review
    min_percent: 0
    message: "Review this topic completely."
`

// ScaffoldOptions holds the answers collected by init.
type ScaffoldOptions struct {
	QuestionCount int
	DefaultTopic  string
}

// renderConfig fills the config template.
func renderConfig(opts ScaffoldOptions) string {
	count := opts.QuestionCount
	if count <= 0 {
		count = DefaultQuestionCount
	}
	comment, topic := "# ", strconv.Quote("103.2")
	if opts.DefaultTopic != "" {
		comment, topic = "", strconv.Quote(opts.DefaultTopic)
	}
	return fmt.Sprintf(defaultConfig, count, comment, topic)
}

// Scaffold writes a config file, refusing to overwrite an existing one.
func Scaffold(configPath string, opts ScaffoldOptions) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(renderConfig(opts)), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
