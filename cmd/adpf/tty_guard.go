package main

import (
	"os"
	"strings"
)

// init runs before lipgloss or glamour first query the terminal.
//
// Background detection sends OSC/DSR control sequences to stdout. Those are
// harmless in a real terminal but end up in piped output of the
// non-interactive commands, so for those we set CI=1, which makes termenv
// skip the probe.
func init() {
	if os.Getenv("CI") != "" {
		return
	}
	if !shouldSuppressTTYQueries(os.Args[1:], os.Getenv("ADPF_TEST_MODE") != "") {
		return
	}
	_ = os.Setenv("CI", "1")
}

// shouldSuppressTTYQueries reports whether args invoke a command that never
// draws the TUI.
func shouldSuppressTTYQueries(args []string, envTest bool) bool {
	if envTest {
		return true
	}

	for _, arg := range args {
		switch arg {
		case "--version", "--help", "-h":
			return true
		}
		if strings.HasPrefix(arg, "-") {
			continue
		}
		// The first positional argument is the subcommand. show --pretty
		// still renders, but for a pipe as often as for a terminal.
		switch arg {
		case "sections", "show", "export", "version", "help", "completion":
			return !hasFlag(args, "--wizard")
		}
		return false
	}
	return false
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag || strings.HasPrefix(a, flag+"=") {
			return true
		}
	}
	return false
}
