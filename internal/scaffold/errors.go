package scaffold

import "fmt"

// ErrorType classifies scaffold engine failures.
type ErrorType int

const (
	// DestinationExists indicates the output directory already exists.
	// Detected before any write; nothing is created.
	DestinationExists ErrorType = iota
	// SourceUnreadable indicates a template file could not be read.
	SourceUnreadable
	// WriteFailed indicates an output file or directory could not be written.
	WriteFailed
	// MalformedManifest indicates the dependency manifest did not parse.
	MalformedManifest
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	switch t {
	case DestinationExists:
		return "DestinationExists"
	case SourceUnreadable:
		return "SourceUnreadable"
	case WriteFailed:
		return "WriteFailed"
	case MalformedManifest:
		return "MalformedManifest"
	default:
		return "Unknown"
	}
}

// Error represents a scaffold engine error. Every error is terminal for the
// invocation: the engine performs no retries and no rollback, so a partially
// written output tree is left in place for caller inspection.
type Error struct {
	// Type is the error type classification.
	Type ErrorType
	// Path is the offending path, relative or absolute depending on stage.
	Path string
	// Message is the human-readable error message.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scaffold error [%s] at '%s': %s: %v", e.Type, e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("scaffold error [%s] at '%s': %s", e.Type, e.Path, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewDestinationExistsError creates a DestinationExists error.
func NewDestinationExistsError(path string) *Error {
	return &Error{
		Type:    DestinationExists,
		Path:    path,
		Message: "destination already exists",
	}
}

// NewSourceUnreadableError creates a SourceUnreadable error.
func NewSourceUnreadableError(path string, cause error) *Error {
	return &Error{
		Type:    SourceUnreadable,
		Path:    path,
		Message: "failed to read template source",
		Cause:   cause,
	}
}

// NewWriteFailedError creates a WriteFailed error.
func NewWriteFailedError(path string, cause error) *Error {
	return &Error{
		Type:    WriteFailed,
		Path:    path,
		Message: "failed to write output",
		Cause:   cause,
	}
}

// NewMalformedManifestError creates a MalformedManifest error.
func NewMalformedManifestError(path string, cause error) *Error {
	return &Error{
		Type:    MalformedManifest,
		Path:    path,
		Message: "manifest is not valid JSON",
		Cause:   cause,
	}
}
