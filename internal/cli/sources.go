package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"lpicstudy/internal/bank"
	"lpicstudy/internal/config"
)

// bankOptions allows tests to seed question sampling.
var bankOptions = bank.Options{}

// study bundles the resolved settings and question bank for a command.
type study struct {
	cfg           config.Config
	configPath    string
	questionsPath string
	bank          *bank.Bank
}

// sourceFlags registers the --config and --questions flags shared by commands.
func sourceFlags(flags *flag.FlagSet) (configPath, questionsPath *string) {
	configPath = flags.String("config", "", "Path to config file (default: search for .lpicstudy/config.yml)")
	questionsPath = flags.String("questions", "", "Path to a YAML or JSON question catalog (default: built-in LPIC-1 bank)")
	return configPath, questionsPath
}

// loadStudy resolves config and builds the bank. The --questions flag wins over
// the config's questions_file; neither means the embedded catalog.
func loadStudy(configPath, questionsPath string) (study, error) {
	explicit := strings.TrimSpace(configPath)
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return study{}, fmt.Errorf("resolve config path: %w", err)
		}
		explicit = abs
	}
	cfg, resolvedConfig, err := config.Resolve(explicit)
	if err != nil {
		return study{}, err
	}

	questions := strings.TrimSpace(questionsPath)
	if questions == "" {
		questions = cfg.QuestionsFile
	}
	var b *bank.Bank
	if questions == "" {
		b, err = bank.Default(bankOptions)
	} else {
		b, err = bank.Load(questions, bankOptions)
	}
	if err != nil {
		return study{}, err
	}
	if topic := cfg.Quiz.DefaultTopic; topic != "" {
		if _, ok := b.Lookup(topic); !ok {
			return study{}, fmt.Errorf("config quiz.default_topic %q is not a topic of the question bank", topic)
		}
	}
	return study{cfg: cfg, configPath: resolvedConfig, questionsPath: questions, bank: b}, nil
}

// parseCommandFlags parses args and reports whether the command should stop
// with the returned exit code.
func parseCommandFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, true
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, true
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, true
	}
	return ExitOK, false
}
