// Package services contains typed front-ends over the Gateway's generic
// verbs, one per backend resource. They carry no state of their own; every
// auth and error-translation concern lives in the Gateway.
package services

import "context"

// api is the slice of the Gateway the services need.
type api interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}
