// Package errors provides structured error types for ventriglisse.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the HTTP API and the remote session
//   - Machine-readable error codes for programmatic handling
//   - Typed errors for the two structural failures of a solve
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input or configuration validation failures
//   - MALFORMED_IMAGE / PATH_NOT_FOUND: Structural solve failures
//   - NETWORK_* / PROTOCOL_*: Remote session failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "unknown alphabet: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Structural failures carry their own type
//	var pnf *errors.PathNotFoundError
//	if stderrors.As(err, &pnf) {
//	    // Persist the offending image
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidAlphabet Code = "INVALID_ALPHABET"
	ErrCodeInvalidAddr     Code = "INVALID_ADDR"

	// Structural solve errors
	ErrCodeMalformedImage Code = "MALFORMED_IMAGE"
	ErrCodePathNotFound   Code = "PATH_NOT_FOUND"

	// Remote session errors
	ErrCodeNetwork  Code = "NETWORK_ERROR"
	ErrCodeTimeout  Code = "TIMEOUT"
	ErrCodeProtocol Code = "PROTOCOL_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// coder is implemented by the typed errors of this package.
type coder interface {
	Code() Code
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or a typed error
// with a matching code.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no coded error is found in the chain.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// MalformedImageError reports an image that does not follow the maze
// rendering contract: dimensions not aligned to the cell grid, a border that
// leaves nothing to classify, undecodable bytes, or a wall colour that never
// appears.
type MalformedImageError struct {
	Width  int // Image width in pixels (0 if unknown)
	Height int // Image height in pixels (0 if unknown)
	Reason string
}

// Error implements the error interface.
func (e *MalformedImageError) Error() string {
	if e.Width == 0 && e.Height == 0 {
		return fmt.Sprintf("malformed image: %s", e.Reason)
	}
	return fmt.Sprintf("malformed image (%dx%d): %s", e.Width, e.Height, e.Reason)
}

// Code returns the error code for this error type.
func (e *MalformedImageError) Code() Code {
	return ErrCodeMalformedImage
}

// PathNotFoundError reports that the slide graph has no route from the
// start sentinel to the end sentinel. It usually means walls or markers were
// misread, so it is not worth retrying without looking at the image.
type PathNotFoundError struct {
	Nodes int // Node count of the searched graph
	Edges int // Edge count of the searched graph

	// MissingStart / MissingEnd are set when a sentinel never made it
	// into the graph at all.
	MissingStart bool
	MissingEnd   bool
}

// Error implements the error interface.
func (e *PathNotFoundError) Error() string {
	switch {
	case e.MissingStart:
		return fmt.Sprintf("no path: start not in graph (%d nodes, %d edges)", e.Nodes, e.Edges)
	case e.MissingEnd:
		return fmt.Sprintf("no path: end not in graph (%d nodes, %d edges)", e.Nodes, e.Edges)
	}
	return fmt.Sprintf("no path from start to end (%d nodes, %d edges)", e.Nodes, e.Edges)
}

// Code returns the error code for this error type.
func (e *PathNotFoundError) Code() Code {
	return ErrCodePathNotFound
}
