package cli

import (
	"flag"
	"fmt"
	"io"
)

// runTopics builds the handler for the topics command.
func runTopics(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
			fmt.Fprintf(stderr, "Failed to load questions:\n%v\n", err)
			return ExitError
		}
		printTopics(stdout, s)
		return ExitOK
	}
}

func printTopics(w io.Writer, s study) {
	for _, topic := range s.bank.Topics() {
		fmt.Fprintf(w, "  %-8s %4d  %s\n", topic.ID, topic.Size, topic.Title)
	}
}
