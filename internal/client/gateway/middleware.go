package gateway

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/navbug/compintel-cli/internal/client/repositories/credential"
)

// doFunc executes a single HTTP request. Middleware below decorates it so
// the composition order is spelled out at construction time instead of being
// buried in client configuration.
type doFunc func(*http.Request) (*http.Response, error)

// withBearerToken reads the persisted credential before every dispatch and,
// when one exists, attaches it as an Authorization header. When the store is
// empty (or unreadable) the request goes out unauthenticated; rejecting it is
// the backend's job.
func withBearerToken(store credential.Store, next doFunc) doFunc {
	return func(req *http.Request) (*http.Response, error) {
		token, err := store.Get(req.Context())
		if err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return next(req)
	}
}

// withRequestID tags every outbound request with a fresh X-Request-Id so
// failures can be correlated with backend logs.
func withRequestID(next doFunc) doFunc {
	return func(req *http.Request) (*http.Response, error) {
		if req.Header.Get("X-Request-Id") == "" {
			req.Header.Set("X-Request-Id", uuid.NewString())
		}
		return next(req)
	}
}
