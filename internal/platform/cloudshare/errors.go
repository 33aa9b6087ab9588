package cloudshare

import (
	"errors"
	"fmt"

	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/report"
)

var (
	// ErrTransport marks calls that never received an HTTP response.
	ErrTransport = errors.New("transport error")
	// ErrUnexpectedStatus marks responses outside 200/201/204.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrMalformedResponse marks 2xx responses missing a required field.
	ErrMalformedResponse = errors.New("malformed response")
)

// CallError is returned for every failed call. The same record has already
// been handed to the client's recorder.
type CallError struct {
	Record report.FailureRecord
	Err    error
}

func (e *CallError) Error() string {
	switch {
	case e.Record.Kind == report.KindStatus:
		return fmt.Sprintf("%s %s: %v %d", e.Record.Method, e.Record.URL, e.Err, e.Record.StatusCode)
	case e.Record.Error != "":
		return fmt.Sprintf("%s %s: %v: %s", e.Record.Method, e.Record.URL, e.Err, e.Record.Error)
	default:
		return fmt.Sprintf("%s %s: %v", e.Record.Method, e.Record.URL, e.Err)
	}
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err came from a 2xx response that was
// missing a required field.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}

// IsTransport reports whether err means the server was never reached.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// StatusCode extracts the HTTP status from a CallError, or 0.
func StatusCode(err error) int {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Record.StatusCode
	}
	return 0
}
