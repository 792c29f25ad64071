package services

import (
	"context"

	"github.com/bookaapp/booka/internal/client/api"
	"github.com/bookaapp/booka/internal/client/models"
	"github.com/bookaapp/booka/internal/client/store"
	"github.com/bookaapp/booka/internal/common"
	"github.com/bookaapp/booka/internal/logging"
)

// BookService exposes the collection CRUD workflows over the books container.
// Every workflow reads the session token from the auth container (its only
// cross-container access) and fails with AuthError before any I/O when no
// session exists.
type BookService struct {
	api   api.Client
	auth  *store.AuthStore
	books *store.BooksStore
	log   logging.Logger
}

func NewBookService(client api.Client, auth *store.AuthStore, books *store.BooksStore, log logging.Logger) *BookService {
	return &BookService{
		api:   client,
		auth:  auth,
		books: books,
		log:   log.With("component", "book-service"),
	}
}

func (s *BookService) token() (string, error) {
	token := s.auth.Token()
	if token == "" {
		return "", common.NewAuthError("No authentication token found")
	}
	return token, nil
}

// run wraps one workflow body with the shared loading/error bookkeeping.
func (s *BookService) run(ctx context.Context, op string, fn func(token string) error) error {
	s.books.SetLoading(true)
	defer s.books.SetLoading(false)

	err := func() error {
		token, err := s.token()
		if err != nil {
			return err
		}
		return fn(token)
	}()

	if err != nil {
		s.log.Error(ctx, op+" failed", "error", err)
		s.books.SetError(common.ErrorMessage(err))
		return err
	}
	return nil
}

// FetchBooks replaces the local list with the server's listing.
func (s *BookService) FetchBooks(ctx context.Context) error {
	return s.run(ctx, "fetch books", func(token string) error {
		books, err := s.api.ListBooks(ctx, token)
		if err != nil {
			return err
		}
		s.books.SetBooks(books)
		return nil
	})
}

// AddBook creates the draft on the server and appends the server-returned
// record (with its assigned identifier) to the local list.
func (s *BookService) AddBook(ctx context.Context, draft models.BookDraft) error {
	return s.run(ctx, "add book", func(token string) error {
		book, err := s.api.CreateBook(ctx, token, draft)
		if err != nil {
			return err
		}
		s.books.AddBook(book)
		return nil
	})
}

// UpdateBook sends a full-replace update and applies the server-returned
// record to the matching local entry. A record the local list no longer holds
// is dropped by the container (logged there), not an error.
func (s *BookService) UpdateBook(ctx context.Context, id string, draft models.BookDraft) error {
	return s.run(ctx, "update book", func(token string) error {
		book, err := s.api.UpdateBook(ctx, token, id, draft)
		if err != nil {
			return err
		}
		s.books.UpdateBook(ctx, book)
		return nil
	})
}

// DeleteBook deletes the record on the server and removes it locally.
// Removing an identifier already absent locally is idempotent.
func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	return s.run(ctx, "delete book", func(token string) error {
		if err := s.api.DeleteBook(ctx, token, id); err != nil {
			return err
		}
		s.books.DeleteBook(id)
		return nil
	})
}
