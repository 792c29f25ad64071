// Package store holds the client's two state containers: the auth container
// (current user, session token) and the book collection container. Screens
// read state through snapshots and re-render on change via Subscribe; all
// network results reach the rendering layer through these containers.
package store

// Status is the request-status of a container. It governs whether a spinner,
// an error banner, or content is shown.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}
