package cli

import (
	"flag"
	"fmt"
	"io"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath, questionsPath := sourceFlags(flags)
		if code, stop := parseCommandFlags(cmd, flags, args, stdout, stderr); stop {
			return code
		}

		s, err := loadStudy(*configPath, *questionsPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		if s.configPath != "" {
			fmt.Fprintf(stdout, "Config OK (%s)\n", s.configPath)
		}
		fmt.Fprintf(stdout, "Catalog OK (%d topics, %d questions)\n", len(s.bank.Topics()), s.bank.QuestionCount())
		return ExitOK
	}
}
