package exitcode

import (
	"os"
	"strings"

	"github.com/felixgeelhaar/questionnaire/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, unknown preset)
	UsageError = 2

	// ValidationError indicates an invalid catalog or a questionnaire that could not be submitted
	ValidationError = 3

	// IOError indicates a file or archive could not be read or written
	IOError = 4

	// Aborted indicates the respondent quit before submitting
	Aborted = 5

	// Interrupted indicates the process received SIGINT or SIGTERM
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode maps err to an exit code. Coded errors map by their
// category; cobra's own usage errors are recognised by message.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	if code := errors.CodeOf(err); code != "" {
		return forCode(code)
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "aborted") {
		return Aborted
	}
	if strings.Contains(errMsg, "unknown flag") || strings.Contains(errMsg, "unknown command") {
		return UsageError
	}
	if strings.Contains(errMsg, "required flag") || strings.Contains(errMsg, "accepts ") ||
		strings.Contains(errMsg, "invalid argument") || strings.Contains(errMsg, "if any flags in the group") {
		return UsageError
	}

	return GeneralError
}

// forCode maps an error code by its category prefix
func forCode(code errors.ErrorCode) int {
	category, _, _ := strings.Cut(string(code), "-")
	switch category {
	case "PRESET":
		return UsageError
	case "CATALOG", "ANSWER", "NAV", "SUBMIT", "SESSION":
		return ValidationError
	case "IO", "ARCHIVE":
		return IOError
	default:
		return GeneralError
	}
}

// GetExitCodeDescription returns a human-readable description of an exit code
func GetExitCodeDescription(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case ValidationError:
		return "Validation error"
	case IOError:
		return "File or archive error"
	case Aborted:
		return "Aborted by the respondent"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
