package wire

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/sjson"

	"github.com/shiwano/drivererr"
)

// Encode renders err as a W3C error response. The legacy status is included
// when known so that older clients can still classify the failure.
//
// Errors that are not drivererr errors are reported as "unknown error".
func Encode(err error) ([]byte, error) {
	if err == nil {
		return nil, ErrEncodeFailure.New("nil error")
	}

	code := drivererr.ErrWebDriver.Code()
	status, hasStatus := drivererr.ErrWebDriver.Status()
	msg := err.Error()
	var sessionID, stackTrace, data string

	if e, ok := drivererr.As(err); ok {
		def := e.Definition()
		if c := def.Code(); c != "" {
			code = c
		}
		status, hasStatus = def.Status()
		if s, ok := e.StatusCode(); ok {
			status, hasStatus = s, true
		}
		msg, _ = e.Message()
		for _, a := range e.Info() {
			if a.Key == drivererr.SessionID {
				sessionID = a.Value
			}
		}
		stackTrace = renderStack(e.Stack())
	}

	var remote *RemoteError
	if errors.As(err, &remote) {
		if stackTrace == "" {
			stackTrace = remote.StackTrace
		}
		data = remote.Data
	}

	out := []byte(`{}`)
	var setErr error
	set := func(path string, value any) {
		if setErr == nil {
			out, setErr = sjson.SetBytes(out, path, value)
		}
	}
	if sessionID != "" {
		set("sessionId", sessionID)
	}
	if hasStatus {
		set("status", status)
	}
	set("value.error", code)
	set("value.message", msg)
	set("value.stacktrace", stackTrace)
	if data != "" && setErr == nil {
		out, setErr = sjson.SetRawBytes(out, "value.data", []byte(data))
	}
	if setErr != nil {
		return nil, ErrEncodeFailure.Wrap(setErr)
	}
	return out, nil
}

func renderStack(s drivererr.Stack) string {
	var b strings.Builder
	for _, f := range s.Frames() {
		_, _ = fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Func, f.File, f.Line)
	}
	return b.String()
}
