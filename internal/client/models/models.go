// Package models defines the data shapes exchanged with the Booka API.
package models

// User is the identity returned by the server after authentication.
// The client never modifies it; it is replaced wholesale on login/logout.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Book is a single record of the user's collection. Ownership is tracked by
// the server via UserID; the client trusts the server's listing and never
// filters by owner locally.
type Book struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
	Photo       string `json:"photo,omitempty"`
}

// BookDraft carries the editable fields for create and update requests.
// Photo is a local file path on create (uploaded as a multipart part) and a
// URL reference on update.
type BookDraft struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Photo       string `json:"photo,omitempty"`
}
