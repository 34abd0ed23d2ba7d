package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Document failed validation (strict mode warnings)
	ExitCommandError = 2 // Command error (missing files, unreadable database, ...)
)

// ExitError carries a specific exit code out of a command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError creates an ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error, ExitFailure when the
// error carries none.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
	Verbose   bool
}

// CLIResponse is the standard JSON response envelope.
type CLIResponse struct {
	Status string    `json:"status"` // "ok" or "error"
	Data   any       `json:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty"`
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}
	fmt.Fprintln(f.Writer, data)
	return nil
}

// SuccessText outputs pre-rendered text, or the given data in JSON mode.
func (f *OutputFormatter) SuccessText(text string, data any) error {
	if f.Format == "json" {
		return f.Success(data)
	}
	fmt.Fprint(f.Writer, text)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: message},
		})
	}
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	return nil
}

// VerboseLog writes a diagnostic line when verbose mode is enabled. In JSON
// mode diagnostics go to ErrWriter so they cannot corrupt the payload.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}
