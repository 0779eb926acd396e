package drivererr

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Definition represents a failure kind with customizable options.
// Definitions differ only in metadata such as the support URL; the enrichment
// of the error message is the same for all of them.
type Definition struct {
	kind       Kind
	code       string
	status     int
	hasStatus  bool
	legacy     []int
	supportURL string
	info       *annotations
	noTrace    bool
	stackSkip  int
	env        Environment
	build      BuildInfo
}

// Kind returns the kind of this error definition.
func (d *Definition) Kind() Kind {
	return d.kind
}

// Code returns the W3C WebDriver error code, or "" if none was set.
func (d *Definition) Code() string {
	return d.code
}

// Status returns the canonical legacy JSON wire protocol status.
func (d *Definition) Status() (int, bool) {
	return d.status, d.hasStatus
}

// LegacyStatuses returns the additional legacy statuses added with LegacyStatus.
func (d *Definition) LegacyStatuses() []int {
	return slices.Clone(d.legacy)
}

// SupportURL returns the documentation link, or "" if the kind has none.
func (d *Definition) SupportURL() string {
	return d.supportURL
}

// Error returns the string representation of this error definition.
// This makes Definition implement the error interface.
func (d *Definition) Error() string {
	if d.kind == "" {
		return "[unnamed]"
	}
	return string(d.kind)
}

// With creates a new Definition with options from the context and additional options applied.
func (d *Definition) With(ctx context.Context, opts ...Option) *Definition {
	ctxOpts := optionsFromContext(ctx)
	return d.WithOptions(append(ctxOpts, opts...)...)
}

// WithOptions creates a new Definition with the given options applied.
func (d *Definition) WithOptions(opts ...Option) *Definition {
	if len(opts) == 0 {
		return d
	}
	def := d.clone()
	applyOptionsTo(def, opts)
	return def
}

// Blank creates an error with neither a message nor a cause.
func (d *Definition) Blank() error {
	return d.newError(nil, "", false, nil, callersSkip)
}

// New creates a new error with the given message using this definition.
func (d *Definition) New(msg string) error {
	return d.newError(nil, msg, true, nil, callersSkip)
}

// Errorf creates a new error with a formatted message using this definition.
func (d *Definition) Errorf(format string, args ...any) error {
	return d.newError(nil, fmt.Sprintf(format, args...), true, nil, callersSkip)
}

// Wrap wraps an existing error using this definition.
// The message defaults to the description of cause; a nil cause yields a
// blank error.
func (d *Definition) Wrap(cause error) error {
	msg, ok := describe(cause)
	return d.newError(cause, msg, ok, nil, callersSkip)
}

// Wrapf wraps an existing error with a formatted message using this definition.
// cause may be nil.
func (d *Definition) Wrapf(cause error, format string, args ...any) error {
	return d.newError(cause, fmt.Sprintf(format, args...), true, nil, callersSkip)
}

// WrapWithStatus creates an error carrying a legacy status code reported by a
// remote end. cause may be nil.
func (d *Definition) WrapWithStatus(cause error, status int, msg string) error {
	return d.newError(cause, msg, true, &status, callersSkip)
}

// CapturePanic converts a recovered panic value into an error of this definition.
// If errPtr is nil or panicValue is nil, this function does nothing.
//
//	defer func() { ErrWebDriver.CapturePanic(&err, recover()) }()
func (d *Definition) CapturePanic(errPtr *error, panicValue any) {
	if panicValue == nil || errPtr == nil {
		return
	}
	p := newPanicError(panicValue)
	*errPtr = d.newError(p, p.msg, true, nil, callersSkip)
}

// Is reports whether this definition matches the given error.
func (d *Definition) Is(err error) bool {
	return errors.Is(err, d)
}

func (d *Definition) clone() *Definition {
	return &Definition{
		kind:       d.kind,
		code:       d.code,
		status:     d.status,
		hasStatus:  d.hasStatus,
		legacy:     slices.Clone(d.legacy),
		supportURL: d.supportURL,
		info:       d.info.clone(),
		noTrace:    d.noTrace,
		stackSkip:  d.stackSkip,
		env:        d.env,
		build:      d.build,
	}
}

func (d *Definition) hostEnv() Environment {
	if d.env != nil {
		return d.env
	}
	return defaultEnvironment
}

func (d *Definition) buildProvider() BuildInfo {
	if d.build != nil {
		return d.build
	}
	return DefaultBuildInfo()
}

func (d *Definition) newError(cause error, msg string, hasMsg bool, status *int, stackSkip int) error {
	var st stack
	if !d.noTrace {
		st = newStack(d.stackSkip + stackSkip)
	}
	return &driverError{
		def:        d,
		msg:        msg,
		hasMsg:     hasMsg,
		cause:      cause,
		statusCode: status,
		info:       d.info.clone(),
		stack:      st,
	}
}

// describe returns the message a wrapping error inherits from its cause.
func describe(cause error) (string, bool) {
	if cause == nil {
		return "", false
	}
	if e, ok := cause.(Error); ok {
		return e.Message()
	}
	return cause.Error(), true
}
