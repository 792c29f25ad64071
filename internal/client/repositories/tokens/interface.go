// Package tokens persists the session token in the local secure store.
package tokens

import "context"

// Repository is a small key-value secure store. The auth container uses it
// with a single fixed key for the bearer token.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
