package gateway

import (
	"errors"
	"fmt"
)

// Kind classifies a failed request so callers can branch on the failure
// class without inspecting HTTP status codes.
type Kind int

const (
	KindUnknown Kind = iota
	// KindUnauthorized: the credential was missing, invalid or revoked (401).
	KindUnauthorized
	// KindForbidden: authenticated but not allowed (403).
	KindForbidden
	// KindNotFound: the resource does not exist (404).
	KindNotFound
	// KindClient: any other 4xx.
	KindClient
	// KindServer: any 5xx. The raw server body is never exposed.
	KindServer
	// KindNetwork: no HTTP response at all (connection failure or timeout).
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindClient:
		return "client_error"
	case KindServer:
		return "server_error"
	case KindNetwork:
		return "network_error"
	default:
		return "unknown"
	}
}

// Error is the structured failure returned by every Gateway verb. Message is
// always safe to show to the user.
type Error struct {
	Kind    Kind
	Status  int // HTTP status; zero for network failures
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// KindOf extracts the failure class from err, or KindUnknown if err did not
// originate in the Gateway.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnknown
}

// IsUnauthorized reports whether err is a 401 rejection.
func IsUnauthorized(err error) bool { return KindOf(err) == KindUnauthorized }

// IsNetwork reports whether err means the backend was never reached, so the
// caller may decide to retry.
func IsNetwork(err error) bool { return KindOf(err) == KindNetwork }

// IsNotFound reports whether err is a 404 rejection.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// UserMessage returns a human-readable message for err: the Gateway message
// when err carries one, a generic fallback otherwise.
func UserMessage(err error) string {
	var ge *Error
	if errors.As(err, &ge) && ge.Message != "" {
		return ge.Message
	}
	if err != nil {
		return err.Error()
	}
	return "An unexpected error occurred."
}
