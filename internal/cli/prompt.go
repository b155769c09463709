package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// prompter reads answers and commands from line-oriented input.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// line reads one trimmed line. io.EOF is returned with the last partial line.
func (p *prompter) line() (string, error) {
	text, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(text), err
}

// ask shows label and returns the entered value, or fallback for a blank line.
// An empty fallback makes the value required.
func (p *prompter) ask(label, fallback string) (string, error) {
	for {
		if fallback != "" {
			fmt.Fprintf(p.out, "%s [%s]: ", label, fallback)
		} else {
			fmt.Fprintf(p.out, "%s: ", label)
		}
		value, err := p.line()
		switch {
		case value != "":
			return value, nil
		case fallback != "":
			return fallback, nil
		case err != nil:
			return "", fmt.Errorf("missing input for %s", strings.ToLower(label))
		}
	}
}

// askOptional returns the entered value, blank included.
func (p *prompter) askOptional(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	value, err := p.line()
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return value, err
}

// confirm asks a yes/no question. A blank line or end of input picks the default.
func (p *prompter) confirm(label string, defaultYes bool) (bool, error) {
	choices := "y/N"
	if defaultYes {
		choices = "Y/n"
	}
	for {
		fmt.Fprintf(p.out, "%s [%s]: ", label, choices)
		value, err := p.line()
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		switch strings.ToLower(value) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("invalid response %q", value)
		}
		fmt.Fprintln(p.out, "Please answer yes or no.")
	}
}
