package errors

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type AppError struct {
	Code            Code
	Message         string
	InternalDetails string
	IsUserFacing    bool
	SuggestedAction string
	// Category names the metadata category being compared when the error
	// was raised, empty otherwise.
	Category     string
	WrappedError error
	StackTrace   string
}

func (e *AppError) Error() string {
	prefix := fmt.Sprintf("[%s]", e.Code)
	if e.Category != "" {
		prefix = fmt.Sprintf("[%s] %s:", e.Code, e.Category)
	}
	if e.WrappedError != nil {
		return fmt.Sprintf("%s %s: %v", prefix, e.Message, e.WrappedError)
	}
	return fmt.Sprintf("%s %s", prefix, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.WrappedError
}

func New(code Code, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StackTrace: string(debug.Stack()),
	}
}

func NewUserFacing(code Code, message string, suggestion string) *AppError {
	return &AppError{
		Code:            code,
		Message:         message,
		IsUserFacing:    true,
		SuggestedAction: suggestion,
		StackTrace:      string(debug.Stack()),
	}
}

// Wrap attaches a code and message to err. An AppError already in the chain
// is returned unchanged so the innermost context survives.
func Wrap(err error, code Code, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return &AppError{
		Code:         code,
		Message:      message,
		WrappedError: err,
		StackTrace:   string(debug.Stack()),
	}
}

// WrapUserFacing always produces a new user-facing error; an inner AppError
// keeps its stack and is recorded in InternalDetails.
func WrapUserFacing(err error, code Code, message string, suggestion string) *AppError {
	if err == nil {
		return nil
	}

	wrapped := &AppError{
		Code:            code,
		Message:         message,
		WrappedError:    err,
		IsUserFacing:    true,
		SuggestedAction: suggestion,
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		wrapped.InternalDetails = appErr.Error()
		wrapped.StackTrace = appErr.StackTrace
		wrapped.Category = appErr.Category
		return wrapped
	}

	wrapped.StackTrace = string(debug.Stack())
	return wrapped
}

// CategoryFailure reports that comparing one category failed and the run
// must be abandoned.
func CategoryFailure(category string, err error) *AppError {
	return &AppError{
		Code:            CodeComparisonError,
		Message:         fmt.Sprintf("comparison of category %s failed", category),
		Category:        category,
		IsUserFacing:    true,
		SuggestedAction: "Check that both snapshots are complete and well formed, then rerun the comparison.",
		WrappedError:    err,
		StackTrace:      string(debug.Stack()),
	}
}

func GetCode(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

func Is(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetUserFacingMessage walks the chain for the first user-facing error and
// returns its message and suggestion.
func GetUserFacingMessage(err error) (string, string, bool) {
	for next := err; next != nil; next = errors.Unwrap(next) {
		var appErr *AppError
		if !errors.As(next, &appErr) {
			break
		}
		if appErr.IsUserFacing {
			return appErr.Message, appErr.SuggestedAction, true
		}
		next = appErr
	}
	return "An unexpected error occurred.", "Check logs for more details.", false
}
