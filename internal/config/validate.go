package config

import (
	"fmt"
	"os"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config for correctness and referenced files.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if cfg.Quiz.QuestionCount < 1 {
		add("quiz.question_count", "must be >= 1")
	}

	switch cfg.UI.Mode {
	case UIModeAuto, UIModeLive, UIModePlain:
	default:
		add("ui.mode", fmt.Sprintf("invalid mode %q (expected auto|live|plain)", cfg.UI.Mode))
	}

	if cfg.QuestionsFile != "" {
		info, err := os.Stat(cfg.QuestionsFile)
		switch {
		case os.IsNotExist(err):
			add("questions_file", fmt.Sprintf("file not found: %s", cfg.QuestionsFile))
		case err != nil:
			add("questions_file", fmt.Sprintf("stat %s: %v", cfg.QuestionsFile, err))
		case info.IsDir():
			add("questions_file", fmt.Sprintf("%s is a directory", cfg.QuestionsFile))
		}
	}

	if len(cfg.Bands) > 0 {
		names := map[string]struct{}{}
		hasFloor := false
		for i, band := range cfg.Bands {
			prefix := fmt.Sprintf("bands[%d]", i)
			if band.Name == "" {
				add(prefix+".name", "is required")
			} else if _, exists := names[band.Name]; exists {
				add(prefix+".name", fmt.Sprintf("duplicate band %q", band.Name))
			} else {
				names[band.Name] = struct{}{}
			}
			if band.MinPercent < 0 || band.MinPercent > 100 {
				add(prefix+".min_percent", "must be between 0 and 100")
			}
			if band.MinPercent == 0 {
				hasFloor = true
			}
		}
		if !hasFloor {
			add("bands", "must include a band with min_percent 0")
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
