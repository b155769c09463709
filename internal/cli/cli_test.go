package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCatalog = `version: 1
topics:
  - id: net
    title: Networking
    questions:
      - question: Which command shows IP addresses?
        type: choice
        options: ["ip addr", "ls", "cat"]
        correct: 0
        explanation: ip addr lists the interface addresses.
      - question: Which file maps host names locally?
        type: choice
        options: ["/etc/hosts", "/etc/passwd", "/etc/shadow"]
        correct: 0
  - id: shell
    title: Shell
    questions:
      - question: Which command prints lines matching a pattern?
        type: text
        accepted: ["grep"]
`

// writeCatalog stores the test catalog and moves the test into a directory without config.
func writeCatalog(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "questions.yml")
	if err := os.WriteFile(path, []byte(testCatalog), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestRootHelp(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"--help"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
	output := out.String()
	if !strings.Contains(output, "Usage:") {
		t.Fatalf("expected usage header, got %q", output)
	}
	for _, cmd := range commands {
		if !strings.Contains(output, cmd.Name) {
			t.Fatalf("expected command %q in output", cmd.Name)
		}
	}
}

func TestNoArgsShowsUsage(t *testing.T) {
	var out, err bytes.Buffer
	code := Run(nil, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("expected usage output, got %q", out.String())
	}
}

func TestUnknownCommand(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"nope"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "Unknown command") {
		t.Fatalf("expected unknown command error, got %q", err.String())
	}
}

func TestCommandHelp(t *testing.T) {
	for _, cmd := range commands {
		var out, err bytes.Buffer
		code := Run([]string{cmd.Name, "--help"}, &out, &err)
		if code != ExitOK {
			t.Fatalf("%s: expected exit %d, got %d", cmd.Name, ExitOK, code)
		}
		for _, line := range cmd.Usage {
			if !strings.Contains(out.String(), line) {
				t.Fatalf("%s: expected usage line %q", cmd.Name, line)
			}
		}
	}
}

// TestUnexpectedArguments verifies positional arguments are rejected.
func TestUnexpectedArguments(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"topics", "extra"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(err.String(), "unexpected arguments: extra") {
		t.Fatalf("expected unexpected arguments error, got %q", err.String())
	}
}

// TestTopicsBuiltIn verifies the embedded bank is listed without a config.
func TestTopicsBuiltIn(t *testing.T) {
	t.Chdir(t.TempDir())
	var out, err bytes.Buffer
	code := Run([]string{"topics"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	for _, id := range []string{"101.1", "103.2", "104.3"} {
		if !strings.Contains(out.String(), id) {
			t.Fatalf("expected topic %s in output, got %q", id, out.String())
		}
	}
}

// TestTopicsCustomCatalog verifies --questions replaces the built-in bank.
func TestTopicsCustomCatalog(t *testing.T) {
	path := writeCatalog(t)
	var out, err bytes.Buffer
	code := Run([]string{"topics", "--questions", path}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "net") || !strings.Contains(out.String(), "Networking") {
		t.Fatalf("expected custom topic, got %q", out.String())
	}
	if strings.Contains(out.String(), "101.1") {
		t.Fatalf("expected built-in topics to be replaced, got %q", out.String())
	}
}

// TestValidateCatalog verifies the success line reports counts.
func TestValidateCatalog(t *testing.T) {
	path := writeCatalog(t)
	var out, err bytes.Buffer
	code := Run([]string{"validate", "--questions", path}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Catalog OK (2 topics, 3 questions)") {
		t.Fatalf("expected catalog summary, got %q", out.String())
	}
}

// TestValidateBuiltInCatalog verifies the embedded catalog passes validation.
func TestValidateBuiltInCatalog(t *testing.T) {
	t.Chdir(t.TempDir())
	var out, err bytes.Buffer
	code := Run([]string{"validate"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Catalog OK (15 topics") {
		t.Fatalf("expected built-in catalog summary, got %q", out.String())
	}
}

// TestValidateReportsIssues verifies a broken catalog fails with its issues.
func TestValidateReportsIssues(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "broken.yml")
	broken := "version: 1\ntopics:\n  - id: net\n    questions:\n      - question: Pick one\n        type: choice\n        options: [a]\n        correct: 3\n"
	if err := os.WriteFile(path, []byte(broken), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	var out, err bytes.Buffer
	code := Run([]string{"validate", "--questions", path}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "Validation failed") {
		t.Fatalf("expected validation failure, got %q", err.String())
	}
}

// TestValidateChecksDefaultTopic verifies a config default_topic must exist.
func TestValidateChecksDefaultTopic(t *testing.T) {
	path := writeCatalog(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")
	cfg := "version: 1\nquiz:\n  default_topic: \"101.1\"\nquestions_file: " + path + "\n"
	if err := os.WriteFile(configPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	var out, err bytes.Buffer
	code := Run([]string{"validate", "--config", configPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "default_topic") {
		t.Fatalf("expected default_topic error, got %q", err.String())
	}
}
