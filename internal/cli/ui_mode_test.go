package cli

import (
	"testing"
)

// fakeStream stands in for stdin or stdout with a fixed TTY answer.
type fakeStream struct {
	tty bool
}

func (f *fakeStream) Read([]byte) (int, error)    { return 0, nil }
func (f *fakeStream) Write(p []byte) (int, error) { return len(p), nil }

// TestResolveUIMode verifies ui mode decision logic.
func TestResolveUIMode(t *testing.T) {
	cases := []struct {
		name       string
		mode       string
		verbose    bool
		stdinTTY   bool
		stdoutTTY  bool
		expectLive bool
		wantWarn   bool
		wantErr    bool
	}{
		{name: "auto tty", mode: "auto", stdinTTY: true, stdoutTTY: true, expectLive: true},
		{name: "empty means auto", mode: "", stdinTTY: true, stdoutTTY: true, expectLive: true},
		{name: "auto piped stdin", mode: "auto", stdoutTTY: true, expectLive: false},
		{name: "auto non-tty", mode: "auto", expectLive: false},
		{name: "plain", mode: "plain", stdinTTY: true, stdoutTTY: true, expectLive: false},
		{name: "verbose disables", mode: "auto", verbose: true, stdinTTY: true, stdoutTTY: true, expectLive: false},
		{name: "live verbose warning", mode: "live", verbose: true, stdinTTY: true, stdoutTTY: true, wantWarn: true},
		{name: "live tty", mode: "LIVE", stdinTTY: true, stdoutTTY: true, expectLive: true},
		{name: "live non-tty warning", mode: "live", stdinTTY: true, wantWarn: true},
		{name: "invalid mode", mode: "nope", stdinTTY: true, stdoutTTY: true, wantErr: true},
	}

	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func(stream any) bool {
		fake, ok := stream.(*fakeStream)
		return ok && fake.tty
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdin := &fakeStream{tty: tc.stdinTTY}
			stdout := &fakeStream{tty: tc.stdoutTTY}
			decision, err := resolveUIMode(tc.mode, tc.verbose, stdin, stdout)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if decision.useLive != tc.expectLive {
				t.Fatalf("expected live=%v, got %v", tc.expectLive, decision.useLive)
			}
			if tc.wantWarn && decision.warning == "" {
				t.Fatalf("expected warning")
			}
			if !tc.wantWarn && decision.warning != "" {
				t.Fatalf("unexpected warning: %q", decision.warning)
			}
		})
	}
}
