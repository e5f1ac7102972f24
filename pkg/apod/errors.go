package apod

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport matches failures to reach the API or non-2xx answers.
	ErrTransport = errors.New("apod: transport error")
	// ErrParse matches responses whose body is not a valid record.
	ErrParse = errors.New("apod: parse error")
)

// ErrorKind classifies a FetchError.
type ErrorKind int

const (
	// KindTransport covers network failures, timeouts, cancellation and
	// non-2xx statuses.
	KindTransport ErrorKind = iota
	// KindParse covers malformed JSON bodies.
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindParse:
		return "parse"
	default:
		return "transport"
	}
}

// FetchError is returned by every failed fetch. Date is empty when the
// latest record was requested.
type FetchError struct {
	Kind ErrorKind
	Date string
	Err  error
}

func (e *FetchError) Error() string {
	day := e.Date
	if day == "" {
		day = "latest"
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch %s (%s): %v", day, e.Kind, e.Err)
	}
	return fmt.Sprintf("fetch %s (%s)", day, e.Kind)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the kind sentinels.
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrParse:
		return e.Kind == KindParse
	}
	return false
}

// StatusError is the cause of a transport FetchError built from a non-2xx
// response.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Message)
}
