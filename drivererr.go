package drivererr

import (
	"errors"
	"fmt"
)

// Kind is a human-readable string that represents the type of an error.
// It is primarily used for classification and identification in structured logs,
// metrics, and API responses.
type Kind string

const (
	// SessionID is the annotation key for the id of the session an error occurred in.
	SessionID = "Session ID"
	// DriverInfo is the annotation key describing the driver that raised an error.
	DriverInfo = "Driver info"
	// BaseSupportURL is the root of the error documentation pages.
	BaseSupportURL = "http://seleniumhq.org/exceptions/"
)

// Define creates a new error definition with the specified kind and options.
//
// NOTE:
// The error identity check performed by errors.Is compares Kind values,
// so a Kind should be unique across your application.
func Define(kind Kind, opts ...Option) *Definition {
	def := &Definition{
		kind: kind,
		info: newAnnotations(),
	}
	applyOptionsTo(def, opts)
	return def
}

// Blank creates a generic error with neither a message nor a cause.
func Blank() error {
	return ErrWebDriver.newError(nil, "", false, nil, callersSkip)
}

// New creates a generic error with the given message.
func New(msg string) error {
	return ErrWebDriver.newError(nil, msg, true, nil, callersSkip)
}

// Wrap wraps an existing error as a generic error.
// The message defaults to the description of cause; a nil cause yields a
// blank error.
func Wrap(cause error) error {
	msg, ok := describe(cause)
	return ErrWebDriver.newError(cause, msg, ok, nil, callersSkip)
}

// Wrapf wraps an existing error as a generic error with a formatted message.
// cause may be nil.
func Wrapf(cause error, format string, args ...any) error {
	return ErrWebDriver.newError(cause, fmt.Sprintf(format, args...), true, nil, callersSkip)
}

// WrapWithStatus creates a generic error carrying a legacy status code.
// cause may be nil.
func WrapWithStatus(cause error, status int, msg string) error {
	return ErrWebDriver.newError(cause, msg, true, &status, callersSkip)
}

// As finds the first Error in err's chain.
func As(err error) (Error, bool) {
	var e Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// AddInfo annotates the first Error in err's chain.
// It reports whether such an error was found.
func AddInfo(err error, key, value string) bool {
	e, ok := As(err)
	if ok {
		e.AddInfo(key, value)
	}
	return ok
}

// KindFrom extracts the Kind of the first Error in err's chain.
func KindFrom(err error) (Kind, bool) {
	if e, ok := As(err); ok {
		return e.Kind(), true
	}
	return "", false
}

// StatusCodeFrom extracts the legacy status code of the first Error in err's chain.
//
// Deprecated: see Error.StatusCode.
func StatusCodeFrom(err error) (int, bool) {
	if e, ok := As(err); ok {
		return e.StatusCode()
	}
	return 0, false
}

// InfoFrom returns the annotations of the first Error in err's chain.
func InfoFrom(err error) ([]Annotation, bool) {
	if e, ok := As(err); ok {
		return e.Info(), true
	}
	return nil, false
}
