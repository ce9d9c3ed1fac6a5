// Package errors provides the structured error type (BuildError) used for
// category-based classification of fatal build failures.
package errors

import (
	"fmt"
)

// Category classifies a build error by the phase/contract that produced it.
type Category string

const (
	// User-facing configuration and content errors
	CategoryConfig   Category = "config"
	CategoryMetadata Category = "metadata"
	CategorySlug     Category = "slug"

	// Build and output errors
	CategoryFilesystem Category = "filesystem"
	CategoryTemplate   Category = "template"
	CategoryRender     Category = "render"
	CategoryInternal   Category = "internal"
)

// Severity indicates how critical an error is.
type Severity string

const (
	SeverityFatal   Severity = "fatal"   // Stops the build
	SeverityError   Severity = "error"   // Error, but not fatal
	SeverityWarning Severity = "warning" // Continues with degraded functionality
)

// BuildError is a structured error with category, severity, and context.
//
// Every error in the slug/metadata/config taxonomy is fatal: a partially
// built site is worse than no site, so there is no per-document
// skip-and-continue path.
type BuildError struct {
	Category Category      `json:"category"`
	Severity Severity      `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for BuildError.
type ContextFields map[string]any

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling.
func (e *BuildError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error.
func (e *BuildError) WithContext(key string, value any) *BuildError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new BuildError.
func New(category Category, severity Severity, message string) *BuildError {
	return &BuildError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new BuildError that wraps an existing error.
func Wrap(err error, category Category, severity Severity, message string) *BuildError {
	return &BuildError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category.
func IsCategory(err error, category Category) bool {
	if be, ok := err.(*BuildError); ok {
		return be.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns
// CategoryInternal if err is not a BuildError.
func GetCategory(err error) Category {
	if be, ok := err.(*BuildError); ok {
		return be.Category
	}
	return CategoryInternal
}
