package store

import (
	"context"
	"sync"

	"github.com/bookaapp/booka/internal/client/models"
	"github.com/bookaapp/booka/internal/logging"
)

// BooksState is an immutable snapshot of the book collection container.
type BooksState struct {
	Books  []models.Book
	Status Status
	Err    string
}

// BooksStore tracks the authenticated user's book list. The server is the
// source of truth; SetBooks replaces the whole list and the keyed mutators
// mirror individual server outcomes.
type BooksStore struct {
	mu    sync.Mutex
	state BooksState

	subs notifier
	log  logging.Logger
}

func NewBooksStore(log logging.Logger) *BooksStore {
	return &BooksStore{log: log.With("component", "books-store")}
}

// Subscribe registers fn to run after every mutation and returns an
// unsubscribe func.
func (s *BooksStore) Subscribe(fn func()) func() {
	return s.subs.subscribe(fn)
}

// Snapshot returns a copy of the current state.
func (s *BooksStore) Snapshot() BooksState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Books = append([]models.Book(nil), s.state.Books...)
	return st
}

// SetBooks replaces the entire local list with the server's list. Full
// overwrite, no merge.
func (s *BooksStore) SetBooks(books []models.Book) {
	s.mu.Lock()
	s.state.Books = append([]models.Book(nil), books...)
	s.state.Status = StatusSucceeded
	s.state.Err = ""
	s.mu.Unlock()

	s.subs.notify()
}

// AddBook appends the server-returned record to the local list.
func (s *BooksStore) AddBook(book models.Book) {
	s.mu.Lock()
	s.state.Books = append(s.state.Books, book)
	s.state.Status = StatusSucceeded
	s.state.Err = ""
	s.mu.Unlock()

	s.subs.notify()
}

// UpdateBook replaces the matching local record in place. When no local
// record matches, the update is dropped without touching status or error;
// the miss is logged rather than silently hidden.
func (s *BooksStore) UpdateBook(ctx context.Context, book models.Book) {
	s.mu.Lock()
	found := false
	for i := range s.state.Books {
		if s.state.Books[i].ID == book.ID {
			s.state.Books[i] = book
			s.state.Status = StatusSucceeded
			s.state.Err = ""
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		s.log.Warn(ctx, "updated book not present locally, dropping", "id", book.ID)
		return
	}

	s.subs.notify()
}

// DeleteBook removes the matching local record. Idempotent when the
// identifier is already absent.
func (s *BooksStore) DeleteBook(id string) {
	s.mu.Lock()
	kept := s.state.Books[:0]
	for _, b := range s.state.Books {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.state.Books = kept
	s.state.Status = StatusSucceeded
	s.state.Err = ""
	s.mu.Unlock()

	s.subs.notify()
}

// SetLoading toggles status between loading and idle, preserving a terminal
// status the same way the auth container does.
func (s *BooksStore) SetLoading(flag bool) {
	s.mu.Lock()
	if flag {
		s.state.Status = StatusLoading
	} else if s.state.Status == StatusLoading {
		s.state.Status = StatusIdle
	}
	s.mu.Unlock()

	s.subs.notify()
}

// SetError records the message and sets status failed.
func (s *BooksStore) SetError(msg string) {
	s.mu.Lock()
	s.state.Err = msg
	s.state.Status = StatusFailed
	s.mu.Unlock()

	s.subs.notify()
}
