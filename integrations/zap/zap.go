// Package zap renders driver errors as zap fields.
package zap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shiwano/drivererr"
)

type errorMarshaler struct {
	err drivererr.Error
}

// Error returns a Field that nests error information under the "error" key.
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
// For top-level field expansion, use ErrorInline instead.
func Error(err error) zapcore.Field {
	if e, ok := drivererr.As(err); ok {
		return zap.Object("error", &errorMarshaler{err: e})
	}
	return zap.Object("error", zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddString("message", err.Error())
		return nil
	}))
}

// ErrorInline returns a Field that expands all error information at the top
// level of the log entry. See Error for the list of fields.
func ErrorInline(err error) zapcore.Field {
	if e, ok := drivererr.As(err); ok {
		return zap.Inline(&errorMarshaler{err: e})
	}
	return zap.Inline(zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddString("message", err.Error())
		return nil
	}))
}

func (m *errorMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	// Error synthesizes Driver info, so it goes before the annotations.
	enc.AddString("message", m.err.Error())
	enc.AddString("kind", string(m.err.Kind()))

	if code := m.err.Definition().Code(); code != "" {
		enc.AddString("code", code)
	}
	if status, ok := m.err.StatusCode(); ok {
		enc.AddInt("status", status)
	}
	if url := m.err.SupportURL(); url != "" {
		enc.AddString("support_url", url)
	}

	if info := m.err.Info(); len(info) > 0 {
		_ = enc.AddObject("info", infoMarshaler(info))
	}

	if frame, ok := m.err.Stack().HeadFrame(); ok {
		_ = enc.AddObject("origin", frameMarshaler{frame: frame})
	}

	if cause := m.err.Unwrap(); cause != nil {
		enc.AddString("cause", cause.Error())
	}
	return nil
}

type infoMarshaler []drivererr.Annotation

func (m infoMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	for _, a := range m {
		enc.AddString(a.Key, a.Value)
	}
	return nil
}

type frameMarshaler struct {
	frame drivererr.Frame
}

func (m frameMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("func", m.frame.Func)
	enc.AddString("file", m.frame.File)
	enc.AddInt("line", m.frame.Line)
	return nil
}
