package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryRender   Category = "render"
	CategoryAdapter  Category = "adapter"
	CategoryConfig   Category = "config"
	CategoryHTTP     Category = "http"
	CategoryPublish  Category = "publish"
	CategoryRegistry Category = "registry"
	CategoryCLI      Category = "cli"
)

// MuonError is a structured error with a registered code and an optional hint.
type MuonError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (render, config, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *MuonError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *MuonError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a MuonError with the same code.
func (e *MuonError) Is(target error) bool {
	t, ok := target.(*MuonError)
	if !ok || t.Code == "" {
		return false
	}
	return t.Code == e.Code
}

// WithSuggestion adds a fix suggestion to the error.
func (e *MuonError) WithSuggestion(s string) *MuonError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *MuonError) WithDetail(d string) *MuonError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *MuonError) Wrap(err error) *MuonError {
	e.Wrapped = err
	return e
}

// New creates a MuonError from a registered error code.
func New(code string) *MuonError {
	template, ok := Lookup(code)
	if !ok {
		return &MuonError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &MuonError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
	}
}

// Newf creates a new MuonError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *MuonError {
	return &MuonError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a MuonError.
// Errors that already are MuonErrors are returned as is.
func FromError(err error, code string) *MuonError {
	if err == nil {
		return nil
	}
	if me, ok := err.(*MuonError); ok {
		return me
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err, or any error it wraps, carries code.
func HasCode(err error, code string) bool {
	for err != nil {
		if me, ok := err.(*MuonError); ok && me.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
