package nodes

import (
	"errors"
	"fmt"
)

// ErrorCode classifies which operator stage captured a failure.
type ErrorCode int

const (
	MAP ErrorCode = iota
	FILTER
	FOLD
	WINDOW
	BUFFER
	MERGE
	DISTINCT
	PROPERTY
)

// String converts ErrorCode enum into a string value
func (c ErrorCode) String() string {
	return [...]string{
		"MAP",
		"FILTER",
		"FOLD",
		"WINDOW",
		"BUFFER",
		"MERGE",
		"DISTINCT",
		"PROPERTY",
	}[c]
}

// Error tags a failure raised by a user supplied function with the operator
// stage that captured it. The cause is preserved, so errors.Is and errors.As
// reach through to the underlying failure.
type Error struct {
	Code ErrorCode
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("stream %s error: %v", e.Code, e.Err)
}

// Unwrap returns the underlying failure.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, err error) error {
	return &Error{Code: code, Err: err}
}

func newMapError(err error) error {
	return newError(MAP, err)
}

func newFilterError(err error) error {
	return newError(FILTER, err)
}

func newFoldError(err error) error {
	return newError(FOLD, err)
}

func newWindowError(err error) error {
	return newError(WINDOW, err)
}

func newBufferError(err error) error {
	return newError(BUFFER, err)
}

func newMergeError(err error) error {
	return newError(MERGE, err)
}

func newDistinctError(err error) error {
	return newError(DISTINCT, err)
}

func newPropertyError(err error) error {
	return newError(PROPERTY, err)
}

func isError(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// IsMapError checks if the given error was captured by a map stage.
// It returns true if the error is a MAP error, otherwise false.
func IsMapError(err error) bool {
	return isError(err, MAP)
}

// IsFilterError checks if the given error was captured by a filter stage.
// It returns true if the error is a FILTER error, otherwise false.
func IsFilterError(err error) bool {
	return isError(err, FILTER)
}

// IsFoldError checks if the given error was captured by a fold stage.
// It returns true if the error is a FOLD error, otherwise false.
func IsFoldError(err error) bool {
	return isError(err, FOLD)
}

// IsWindowError checks if the given error was captured by a window stage.
// It returns true if the error is a WINDOW error, otherwise false.
func IsWindowError(err error) bool {
	return isError(err, WINDOW)
}

// IsBufferError checks if the given error was captured by a buffer stage.
// It returns true if the error is a BUFFER error, otherwise false.
func IsBufferError(err error) bool {
	return isError(err, BUFFER)
}

// IsMergeError checks if the given error was captured by a merge stage.
// It returns true if the error is a MERGE error, otherwise false.
func IsMergeError(err error) bool {
	return isError(err, MERGE)
}

func IsDistinctError(err error) bool {
	return isError(err, DISTINCT)
}

func IsPropertyError(err error) bool {
	return isError(err, PROPERTY)
}
