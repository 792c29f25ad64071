// Package common contains shared constants and failure types used across
// Booka client components.
package common

const (
	// ClientIDHeaderName identifies this client to the API on every request.
	ClientIDHeaderName = "X-Client-ID"

	// RequestIDHeaderName carries a per-request identifier for log correlation.
	RequestIDHeaderName = "X-Request-ID"

	// ClientID is the fixed value sent in the client-identifier header.
	ClientID = "my-app"

	// TokenStorageKey is the fixed key under which the session token is
	// persisted in the local secure store.
	TokenStorageKey = "authToken"
)
