package wire

import (
	"errors"

	"github.com/tidwall/gjson"
)

type (
	// ParseFunc extracts the error payload of a remote-end response.
	ParseFunc func(data []byte) (*Response, error)

	// Response is the error payload of a remote-end response. It represents
	// both W3C responses and legacy JSON wire protocol responses.
	Response struct {
		// SessionID is the id of the session the failure occurred in, if reported.
		SessionID string
		// Code is the W3C error code, e.g. "no such element".
		// Empty for legacy responses.
		Code string
		// Status is the legacy status. HasStatus is false when the response
		// does not carry one.
		Status    int
		HasStatus bool
		// Message is the remote error message.
		Message string
		// StackTrace is the remote stack trace as reported.
		StackTrace string
		// Data is the raw JSON of the optional W3C "data" member.
		Data string
	}
)

var (
	errInvalidJSON = errors.New("invalid JSON")
	errNoPayload   = errors.New("response carries no error payload")
)

// ParseJSON parses a W3C or legacy JSON wire protocol response.
//
//	{"value": {"error": "no such element", "message": "...", "stacktrace": "...", "data": {...}}}
//	{"sessionId": "...", "status": 7, "value": {"message": "..."}}
func ParseJSON(data []byte) (*Response, error) {
	if !gjson.ValidBytes(data) {
		return nil, errInvalidJSON
	}
	root := gjson.ParseBytes(data)
	value := root.Get("value")

	res := &Response{
		SessionID:  firstString(root.Get("sessionId"), value.Get("sessionId")),
		Code:       value.Get("error").String(),
		Message:    value.Get("message").String(),
		StackTrace: value.Get("stacktrace").String(),
	}
	if d := value.Get("data"); d.Exists() {
		res.Data = d.Raw
	}
	if s := root.Get("status"); s.Type == gjson.Number {
		res.Status = int(s.Int())
		res.HasStatus = true
	}

	// Legacy responses report success with status 0.
	if res.Code == "" && (!res.HasStatus || res.Status == 0) {
		return nil, errNoPayload
	}
	return res, nil
}

func firstString(results ...gjson.Result) string {
	for _, r := range results {
		if r.Type == gjson.String && r.Str != "" {
			return r.Str
		}
	}
	return ""
}
