package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ValidationFailed indicates input validation failed.
	ValidationFailed AppErrorType = iota
	// TemplateFetchFailed indicates template fetching failed.
	TemplateFetchFailed
	// ScaffoldFailed indicates project scaffolding failed.
	ScaffoldFailed
	// PostProcessFailed indicates a post-processing step failed.
	PostProcessFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// NewTemplateFetchError creates a template fetch error.
func NewTemplateFetchError(message string, cause error) *AppError {
	return NewAppError(TemplateFetchFailed, message, cause)
}

// NewScaffoldError creates a scaffold error.
func NewScaffoldError(message string, cause error) *AppError {
	return NewAppError(ScaffoldFailed, message, cause)
}

// NewPostProcessError creates a post-processing error.
func NewPostProcessError(message string, cause error) *AppError {
	return NewAppError(PostProcessFailed, message, cause)
}
