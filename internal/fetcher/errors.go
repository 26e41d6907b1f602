// internal/fetcher/errors.go
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Kind tags the cause of a failed fetch.
// Callers handle every kind the same way; the tag is for reporting.
type Kind uint16

const (
	KindUnknown   Kind = 0
	KindTransport Kind = 1 // connect, DNS, TLS
	KindTimeout   Kind = 2
	KindStatus    Kind = 3 // non-2xx response
	KindBody      Kind = 4 // unreadable body
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindTimeout:
		return "timeout"
	case KindStatus:
		return "status"
	case KindBody:
		return "body"
	default:
		return "unknown"
	}
}

// FetchError is the single failure type returned by Fetch.
type FetchError struct {
	Kind       Kind
	URL        string
	StatusCode int // KindStatus only
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("fetch %s: %s: http %d", e.URL, e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Code exposes the kind as a numeric error code.
func (e *FetchError) Code() uint16 { return uint16(e.Kind) }

// KindOf extracts the cause tag from any error chain.
func KindOf(err error) Kind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

// transportKind separates timeouts from the other transport failures.
func transportKind(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return KindTimeout
	}
	return KindTransport
}
