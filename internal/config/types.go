package config

import "lpicstudy/internal/quiz"

// UI modes accepted by ui.mode and --ui.
const (
	UIModeAuto  = "auto"
	UIModeLive  = "live"
	UIModePlain = "plain"
)

// DefaultQuestionCount is the number of questions drawn per quiz.
const DefaultQuestionCount = 10

// Config is the settings file schema.
type Config struct {
	Version       int         `yaml:"version"`
	Quiz          QuizConfig  `yaml:"quiz"`
	QuestionsFile string      `yaml:"questions_file"`
	UI            UIConfig    `yaml:"ui"`
	Bands         []quiz.Band `yaml:"bands"`
}

// QuizConfig holds defaults for starting a quiz.
type QuizConfig struct {
	QuestionCount int    `yaml:"question_count"`
	DefaultTopic  string `yaml:"default_topic"`
}

// UIConfig selects the presentation.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg, "")
	return cfg
}

// QuizBands returns the configured bands, or the quiz defaults when unset.
func (cfg Config) QuizBands() []quiz.Band {
	if len(cfg.Bands) == 0 {
		return quiz.DefaultBands()
	}
	return append([]quiz.Band(nil), cfg.Bands...)
}
