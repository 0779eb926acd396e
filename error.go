package drivererr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type (
	// Error is a failure whose message is enriched with the support URL, build
	// and host information, and caller-supplied annotations.
	Error interface {
		error
		// Kind returns the type of this error.
		Kind() Kind
		// Definition returns the definition this error was created from.
		Definition() *Definition
		// Message returns the original message, without enrichment.
		// The boolean is false when the error was created without a message.
		Message() (string, bool)
		// SupportURL returns the documentation link, or "" if there is none.
		SupportURL() string
		// StatusCode returns the legacy status code reported by a remote end.
		//
		// Deprecated: it only exists so that servers can map remote failures
		// back to clients without losing the original status. Use Kind or
		// Definition().Code() instead.
		StatusCode() (int, bool)
		// AddInfo inserts or overwrites an annotation.
		AddInfo(key, value string)
		// Info returns a snapshot of the annotations in insertion order.
		Info() []Annotation
		// BuildInformation returns the build identification line.
		BuildInformation() string
		// SystemInformation returns the host fingerprint line.
		SystemInformation() string
		// AdditionalInformation renders the annotations, one per line, each
		// preceded by a line break. A "Driver info" annotation is added first
		// if missing.
		AdditionalInformation() string
		// Stack returns the stack trace where this error was created.
		Stack() Stack
		// Unwrap returns the cause of this error.
		Unwrap() error
		// Clone returns a copy of this error with its own annotations.
		Clone() Error
	}

	// stackTracer is used by Sentry SDK to extract stack traces from errors.
	// See: https://github.com/getsentry/sentry-go/blob/54a69e05ea609d3fc32fb1393770258dde6796c1/stacktrace.go#L84-L87
	stackTracer interface {
		StackTrace() []uintptr
	}

	// causer is used by pkg/errors to extract the cause of an error.
	causer interface {
		Cause() error
	}

	driverError struct {
		def        *Definition
		msg        string
		hasMsg     bool
		cause      error
		statusCode *int
		info       *annotations
		stack      stack
	}
)

var (
	_ Error          = (*driverError)(nil)
	_ fmt.Formatter  = (*driverError)(nil)
	_ json.Marshaler = (*driverError)(nil)
	_ slog.LogValuer = (*driverError)(nil)
	_ stackTracer    = (*driverError)(nil)
	_ causer         = (*driverError)(nil)
)

const supportPrefix = "For documentation on this error, please visit: "

// Error returns the enriched message. It is rebuilt on every call.
func (e *driverError) Error() string {
	var b strings.Builder
	if e.hasMsg {
		b.WriteString(e.msg)
		b.WriteByte('\n')
	}
	if url := e.SupportURL(); url != "" {
		b.WriteString(supportPrefix)
		b.WriteString(url)
		b.WriteByte('\n')
	}
	b.WriteString(e.BuildInformation())
	b.WriteByte('\n')
	b.WriteString(e.SystemInformation())
	b.WriteString(e.AdditionalInformation())
	return b.String()
}

func (e *driverError) Kind() Kind {
	return e.def.kind
}

func (e *driverError) Definition() *Definition {
	return e.def
}

func (e *driverError) Message() (string, bool) {
	return e.msg, e.hasMsg
}

func (e *driverError) SupportURL() string {
	return e.def.supportURL
}

func (e *driverError) StatusCode() (int, bool) {
	if e.statusCode == nil {
		return 0, false
	}
	return *e.statusCode, true
}

func (e *driverError) AddInfo(key, value string) {
	e.info.set(key, value)
}

func (e *driverError) Info() []Annotation {
	return e.info.snapshot()
}

func (e *driverError) BuildInformation() string {
	return e.def.buildProvider().String()
}

func (e *driverError) SystemInformation() string {
	return SystemInformation(context.Background(), e.def.hostEnv())
}

func (e *driverError) AdditionalInformation() string {
	e.ensureDriverInfo()
	var b strings.Builder
	for _, a := range e.info.snapshot() {
		b.WriteByte('\n')
		b.WriteString(a.String())
	}
	return b.String()
}

func (e *driverError) Stack() Stack {
	return e.stack
}

func (e *driverError) Unwrap() error {
	return e.cause
}

func (e *driverError) Is(target error) bool {
	if e == target {
		return true
	}
	if d, ok := target.(*Definition); ok {
		return e.def.kind == d.kind
	}
	return false
}

func (e *driverError) Clone() Error {
	c := *e
	c.info = e.info.clone()
	return &c
}

func (e *driverError) StackTrace() []uintptr {
	return e.stack.StackTrace()
}

func (e *driverError) Cause() error {
	return e.cause
}

func (e *driverError) ensureDriverInfo() {
	e.info.ensure(DriverInfo, func() string {
		return driverVersion(e.stack)
	})
}

func (e *driverError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		switch {
		case s.Flag('+'):
			_, _ = fmt.Fprintf(s, "%s\n\n", e.Error())

			if e.Kind() != "" {
				_, _ = io.WriteString(s, "Kind:\n")
				_, _ = fmt.Fprintf(s, "\t%v\n", e.Kind())
			}

			if e.stack.Len() > 0 {
				_, _ = io.WriteString(s, "Stack:\n")
				for _, f := range e.stack.Frames() {
					if f.File != "" {
						_, _ = fmt.Fprintf(s, "\t%s\n\t\t%s:%d\n", f.Func, f.File, f.Line)
					}
				}
			}

			if e.cause != nil {
				_, _ = io.WriteString(s, "Causes:\n")

				var causeStr string
				if c, ok := e.cause.(Error); ok {
					msg, _ := c.Message()
					causeStr = fmt.Sprintf("%s (%s)", msg, c.Kind())
				} else {
					causeStr = strings.Trim(fmt.Sprintf("%+v", e.cause), "\n")
				}

				for line := range strings.SplitSeq(causeStr, "\n") {
					_, _ = fmt.Fprintf(s, "\t%s\n", line)
				}
			}
		case s.Flag('#'):
			// Avoid infinite recursion in case someone does %#v on driverError.
			type driverError struct {
				def        *Definition
				msg        string
				hasMsg     bool
				cause      error
				statusCode *int
				info       *annotations
				stack      stack
			}
			var tmp = driverError(*e)
			_, _ = fmt.Fprintf(s, "%#v", &tmp)
		default:
			_, _ = io.WriteString(s, e.Error())
		}
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

func (e *driverError) MarshalJSON() ([]byte, error) {
	e.ensureDriverInfo()

	var cause json.RawMessage
	if e.cause != nil {
		var err error
		if marshaler, ok := e.cause.(json.Marshaler); ok {
			cause, err = marshaler.MarshalJSON()
		} else {
			cause, err = json.Marshal(struct {
				Message string `json:"message"`
				Type    string `json:"type"`
			}{
				Message: e.cause.Error(),
				Type:    fmt.Sprintf("%T", e.cause),
			})
		}
		if err != nil {
			return nil, err
		}
	}

	return json.Marshal(struct {
		Message    string          `json:"message"`
		Kind       string          `json:"kind,omitempty"`
		Code       string          `json:"code,omitempty"`
		Status     *int            `json:"status,omitempty"`
		SupportURL string          `json:"support_url,omitempty"`
		Info       []Annotation    `json:"info,omitempty"`
		Stack      []Frame         `json:"stack,omitempty"`
		Cause      json.RawMessage `json:"cause,omitempty"`
	}{
		Message:    e.msg,
		Kind:       string(e.Kind()),
		Code:       e.def.code,
		Status:     e.statusCode,
		SupportURL: e.SupportURL(),
		Info:       e.info.snapshot(),
		Stack:      e.stack.Frames(),
		Cause:      cause,
	})
}

func (e *driverError) LogValue() slog.Value {
	e.ensureDriverInfo()

	attrs := []slog.Attr{slog.String("message", e.msg)}
	if e.Kind() != "" {
		attrs = append(attrs, slog.String("kind", string(e.Kind())))
	}
	if e.def.code != "" {
		attrs = append(attrs, slog.String("code", e.def.code))
	}
	if e.statusCode != nil {
		attrs = append(attrs, slog.Int("status", *e.statusCode))
	}
	if url := e.SupportURL(); url != "" {
		attrs = append(attrs, slog.String("support_url", url))
	}
	attrs = append(attrs, slog.Any("info", e.info))
	if f, ok := e.stack.HeadFrame(); ok {
		attrs = append(attrs, slog.Group("origin",
			slog.String("func", f.Func),
			slog.String("file", f.File),
			slog.Int("line", f.Line),
		))
	}
	if e.cause != nil {
		if c, ok := e.cause.(slog.LogValuer); ok {
			attrs = append(attrs, slog.Any("cause", c))
		} else {
			attrs = append(attrs, slog.String("cause", e.cause.Error()))
		}
	}
	return slog.GroupValue(attrs...)
}
