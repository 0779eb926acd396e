package wire

import (
	"fmt"
	"io"

	"github.com/tidwall/sjson"
)

// RemoteError is the failure reported by a remote end.
// Decoded errors wrap it as their cause.
type RemoteError struct {
	Code       string
	Status     int
	HasStatus  bool
	Message    string
	StackTrace string
	Data       string
}

func newRemoteError(res *Response) *RemoteError {
	return &RemoteError{
		Code:       res.Code,
		Status:     res.Status,
		HasStatus:  res.HasStatus,
		Message:    res.Message,
		StackTrace: res.StackTrace,
		Data:       res.Data,
	}
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Message
}

func (e *RemoteError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') && e.StackTrace != "" {
			_, _ = fmt.Fprintf(s, "%s\n%s", e.Error(), e.StackTrace)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

func (e *RemoteError) MarshalJSON() ([]byte, error) {
	data := []byte(`{}`)
	var err error
	if data, err = sjson.SetBytes(data, "message", e.Message); err != nil {
		return nil, err
	}
	if data, err = sjson.SetBytes(data, "type", fmt.Sprintf("%T", e)); err != nil {
		return nil, err
	}
	if e.Code != "" {
		if data, err = sjson.SetBytes(data, "code", e.Code); err != nil {
			return nil, err
		}
	}
	if e.HasStatus {
		if data, err = sjson.SetBytes(data, "status", e.Status); err != nil {
			return nil, err
		}
	}
	if e.StackTrace != "" {
		if data, err = sjson.SetBytes(data, "stacktrace", e.StackTrace); err != nil {
			return nil, err
		}
	}
	if e.Data != "" {
		if data, err = sjson.SetRawBytes(data, "data", []byte(e.Data)); err != nil {
			return nil, err
		}
	}
	return data, nil
}
