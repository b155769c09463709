package config

import (
	"path/filepath"
	"strings"
)

// Normalize fills defaults and resolves questions_file against the study directory.
func Normalize(cfg *Config, root string) {
	if cfg.Quiz.QuestionCount == 0 {
		cfg.Quiz.QuestionCount = DefaultQuestionCount
	}
	cfg.Quiz.DefaultTopic = strings.TrimSpace(cfg.Quiz.DefaultTopic)
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = UIModeAuto
	}
	cfg.QuestionsFile = strings.TrimSpace(cfg.QuestionsFile)
	if cfg.QuestionsFile != "" && root != "" && !filepath.IsAbs(cfg.QuestionsFile) {
		cfg.QuestionsFile = filepath.Join(root, cfg.QuestionsFile)
	}
	for i := range cfg.Bands {
		cfg.Bands[i].Name = strings.TrimSpace(cfg.Bands[i].Name)
		cfg.Bands[i].Message = strings.TrimSpace(cfg.Bands[i].Message)
	}
}
