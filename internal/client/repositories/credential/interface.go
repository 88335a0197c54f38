// Package credential persists the bearer token that proves the user's
// identity to the backend. Exactly one token may be stored at a time; its
// absence means "logged out".
package credential

import "context"

// Store is a single-key token store. Get, Set and Delete are each a single
// atomic operation; there are no partial updates.
//
// Get returns ("", nil) when no token is stored.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}
