package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"lpicstudy/internal/bank"
	"lpicstudy/internal/config"
)

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: .lpicstudy/config.yml in the working directory)")
		if code, stop := parseCommandFlags(cmd, flags, args, stdout, stderr); stop {
			return code
		}

		in := initInput
		if in == nil {
			in = os.Stdin
		}
		ask := newPrompter(in, stdout)

		target := strings.TrimSpace(*configPath)
		if target == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			target = config.ConfigPath(wd)
		}
		target, err := filepath.Abs(target)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if _, err := os.Stat(target); err == nil {
			fmt.Fprintf(stderr, "Init failed: config file already exists at %q\n", target)
			return ExitError
		} else if !os.IsNotExist(err) {
			fmt.Fprintf(stderr, "Init failed: stat config file: %v\n", err)
			return ExitError
		}

		confirm, err := ask.confirm(fmt.Sprintf("Create lpicstudy config at %s?", target), true)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if !confirm {
			fmt.Fprintln(stderr, "Init cancelled.")
			return ExitError
		}

		opts, err := promptScaffoldOptions(ask)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if err := config.Scaffold(target, opts); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", target)
		return ExitOK
	}
}

// initInput allows tests to override stdin for init prompts.
var initInput io.Reader = os.Stdin

// promptScaffoldOptions asks for the quiz defaults written by init.
func promptScaffoldOptions(ask *prompter) (config.ScaffoldOptions, error) {
	opts := config.ScaffoldOptions{QuestionCount: config.DefaultQuestionCount}
	for {
		value, err := ask.ask("Questions per quiz", strconv.Itoa(config.DefaultQuestionCount))
		if err != nil {
			return opts, err
		}
		count, convErr := strconv.Atoi(value)
		if convErr == nil && count > 0 {
			opts.QuestionCount = count
			break
		}
		fmt.Fprintln(ask.out, "Please enter a positive number.")
	}

	catalog, err := bank.Default(bank.Options{})
	if err != nil {
		return opts, err
	}
	for {
		topic, err := ask.askOptional("Default topic (blank to choose each time)")
		if err != nil {
			return opts, err
		}
		if topic == "" {
			return opts, nil
		}
		if _, ok := catalog.Lookup(topic); ok {
			opts.DefaultTopic = topic
			return opts, nil
		}
		fmt.Fprintf(ask.out, "Unknown topic %q. Run \"lpicstudy topics\" to list them.\n", topic)
	}
}
