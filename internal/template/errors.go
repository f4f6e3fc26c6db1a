package template

import "fmt"

// FetchErrorType classifies template fetch failures.
type FetchErrorType int

const (
	// FetchCloneFailed indicates the template repository could not be cloned.
	FetchCloneFailed FetchErrorType = iota
	// FetchNotFound indicates a local template path does not exist.
	FetchNotFound
	// FetchStageFailed indicates the fetched tree could not be staged.
	FetchStageFailed
)

// String returns the string representation of the error type.
func (t FetchErrorType) String() string {
	switch t {
	case FetchCloneFailed:
		return "CloneFailed"
	case FetchNotFound:
		return "NotFound"
	case FetchStageFailed:
		return "StageFailed"
	default:
		return "Unknown"
	}
}

// FetchError represents a template fetch error.
type FetchError struct {
	// Type is the error type classification.
	Type FetchErrorType
	// URL is the template source that caused the error.
	URL string
	// Message is the human-readable error message.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template fetch error [%s] for '%s': %s: %v",
			e.Type, e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("template fetch error [%s] for '%s': %s", e.Type, e.URL, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// NewCloneError creates a FetchCloneFailed error.
func NewCloneError(url string, cause error) *FetchError {
	return &FetchError{
		Type:    FetchCloneFailed,
		URL:     url,
		Message: "failed to clone template repository",
		Cause:   cause,
	}
}

// NewNotFoundError creates a FetchNotFound error.
func NewNotFoundError(url string) *FetchError {
	return &FetchError{
		Type:    FetchNotFound,
		URL:     url,
		Message: "template path does not exist",
	}
}

// NewStageError creates a FetchStageFailed error.
func NewStageError(url string, cause error) *FetchError {
	return &FetchError{
		Type:    FetchStageFailed,
		URL:     url,
		Message: "failed to stage template files",
		Cause:   cause,
	}
}
