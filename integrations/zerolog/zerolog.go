// Package zerolog renders driver errors as zerolog objects.
package zerolog

import (
	"github.com/rs/zerolog"

	"github.com/shiwano/drivererr"
)

type errorMarshaler struct {
	err drivererr.Error
}

type stdErrorMarshaler struct {
	err error
}

// Error wraps an error for zerolog's structured logging.
// It returns a LogObjectMarshaler that can be used with Object() or EmbedObject().
//
// The error object contains the following fields:
//   - message: The enriched error message
//   - kind: The error kind
//   - code: The W3C error code (if present)
//   - status: The legacy status reported by a remote end (if present)
//   - support_url: The documentation link (if present)
//   - info: The annotations, including Driver info
//   - origin: The origin stack frame (if present) with func, file, and line
//   - cause: The cause message (if present)
//
// Example with Object() (nested under "error" key):
//
//	err := drivererr.ErrNoSuchElement.With(ctx).New("element not found")
//	logger.Error().Object("error", Error(err)).Msg("find failed")
//
// Example with EmbedObject() (fields at top level):
//
//	logger.Error().EmbedObject(Error(err)).Msg("find failed")
func Error(err error) zerolog.LogObjectMarshaler {
	if e, ok := drivererr.As(err); ok {
		return &errorMarshaler{err: e}
	}
	return &stdErrorMarshaler{err: err}
}

func (m *errorMarshaler) MarshalZerologObject(e *zerolog.Event) {
	e.Str("message", m.err.Error())
	e.Str("kind", string(m.err.Kind()))

	if code := m.err.Definition().Code(); code != "" {
		e.Str("code", code)
	}
	if status, ok := m.err.StatusCode(); ok {
		e.Int("status", status)
	}
	if url := m.err.SupportURL(); url != "" {
		e.Str("support_url", url)
	}

	if info := m.err.Info(); len(info) > 0 {
		e.Object("info", infoMarshaler(info))
	}

	if frame, ok := m.err.Stack().HeadFrame(); ok {
		e.Object("origin", frameMarshaler{frame: frame})
	}

	if cause := m.err.Unwrap(); cause != nil {
		e.Str("cause", cause.Error())
	}
}

type infoMarshaler []drivererr.Annotation

func (m infoMarshaler) MarshalZerologObject(e *zerolog.Event) {
	for _, a := range m {
		e.Str(a.Key, a.Value)
	}
}

type frameMarshaler struct {
	frame drivererr.Frame
}

func (m frameMarshaler) MarshalZerologObject(e *zerolog.Event) {
	e.Str("func", m.frame.Func)
	e.Str("file", m.frame.File)
	e.Int("line", m.frame.Line)
}

func (m *stdErrorMarshaler) MarshalZerologObject(e *zerolog.Event) {
	e.Str("message", m.err.Error())
}
