package argv

import (
	"errors"
	"fmt"
	"io"
)

// Exit codes for the outermost error boundary.
const (
	// ExitOK means the parse and run both succeeded.
	ExitOK = 0
	// ExitFailure covers non-usage errors surfaced by handlers or Run steps.
	ExitFailure = 1
	// ExitUsage is EX_USAGE from sysexits(3): the command was used incorrectly.
	ExitUsage = 64
)

// ExitCode maps an error from ParseCommandLine or Execute to a process exit
// code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsUsageError(err):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// Fail writes err to the error stream in the conventional one-line form,
// including the fuzzy suggestion when one was attached, and returns the exit
// code for it. Callers typically end with os.Exit(argv.Fail(os.Stderr, err)).
func Fail(w io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}
	fmt.Fprintf(w, "error: %s\n", err)
	var ue *UsageError
	if errors.As(err, &ue) && ue.Suggestion != "" {
		fmt.Fprintf(w, "  Did you mean '%s'?\n", ue.Suggestion)
	}
	return ExitCode(err)
}
