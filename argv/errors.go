package argv

import (
	"errors"
	"fmt"
)

// ErrorType categorizes usage violations. The category is informational; all
// usage errors share the same exit contract.
type ErrorType string

const (
	ErrorTypeUnknownFlag        ErrorType = "unknown_flag"
	ErrorTypeUnknownCommand     ErrorType = "unknown_command"
	ErrorTypeMissingValue       ErrorType = "missing_value"
	ErrorTypeUnexpectedArgument ErrorType = "unexpected_argument"
	ErrorTypeMissingArgument    ErrorType = "missing_argument"
	ErrorTypeInvalidValue       ErrorType = "invalid_value"
)

// UsageError is the single error kind raised by the parsing engine. It is
// synchronous and non-recoverable within the parse; the outermost caller maps
// it to a non-zero exit with the message on the error stream.
type UsageError struct {
	Type    ErrorType
	Message string

	// Flag or Command names the offending token when one is known.
	Flag    string
	Command string

	// Suggestion carries a fuzzy-matched "did you mean" candidate. It is not
	// part of the message; formatting is the caller's business.
	Suggestion string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NewUsageError returns a usage error with the given category and message.
func NewUsageError(typ ErrorType, message string) *UsageError {
	return &UsageError{Type: typ, Message: message}
}

func usagef(typ ErrorType, format string, args ...any) *UsageError {
	return &UsageError{Type: typ, Message: fmt.Sprintf(format, args...)}
}

// IsUsageError reports whether err is (or wraps) a UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
