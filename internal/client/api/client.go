// Package api implements the Booka REST API client.
package api

import (
	"context"

	"github.com/bookaapp/booka/internal/client/models"
)

// Client is the remote API surface the workflows depend on.
//
// Contract:
//   - Register: create an account; the server issues no session on success.
//   - Login: authenticate and return a bearer token.
//   - CurrentUser: fetch the profile for the given bearer token.
//   - ListBooks / CreateBook / UpdateBook / DeleteBook: collection CRUD,
//     all requiring a bearer token.
//
// All methods honor context cancellation.
type Client interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context, token string) (models.User, error)
	ListBooks(ctx context.Context, token string) ([]models.Book, error)
	CreateBook(ctx context.Context, token string, draft models.BookDraft) (models.Book, error)
	UpdateBook(ctx context.Context, token string, id string, draft models.BookDraft) (models.Book, error)
	DeleteBook(ctx context.Context, token string, id string) error
}
