package cli

import (
	"context"
	"fmt"

	"github.com/bookaapp/booka/internal/client/models"
	"github.com/bookaapp/booka/internal/common"
)

// List fetches the collection from the server and prints it.
func (a *App) List(ctx context.Context) error {
	if err := a.bookService.FetchBooks(ctx); err != nil {
		fmt.Fprintln(a.out, common.ErrorMessage(err))
		return err
	}

	st := a.booksStore.Snapshot()
	if len(st.Books) == 0 {
		fmt.Fprintln(a.out, "No books yet.")
		return nil
	}
	for _, b := range st.Books {
		marker := ""
		if b.Photo != "" {
			marker = " [photo]"
		}
		fmt.Fprintf(a.out, "%s  %q by %s%s\n", b.ID, b.Title, b.Author, marker)
	}
	return nil
}

// Add prompts for the book fields and creates the record. The photo path is
// optional; when given it must point to a readable local image file.
func (a *App) Add(ctx context.Context) error {
	draft, err := a.inputDraft()
	if err != nil {
		return err
	}

	if err := a.bookService.AddBook(ctx, draft); err != nil {
		fmt.Fprintln(a.out, common.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(a.out, "Book added.")
	return nil
}

// Update prompts for an id and replacement fields and updates the record.
func (a *App) Update(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter book id to update", a.out)
	if err != nil {
		return err
	}

	draft, err := a.inputDraft()
	if err != nil {
		return err
	}

	if err := a.bookService.UpdateBook(ctx, id, draft); err != nil {
		fmt.Fprintln(a.out, common.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(a.out, "Book updated.")
	return nil
}

// Delete prompts for an id and deletes the record.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter book id to delete", a.out)
	if err != nil {
		return err
	}

	if err := a.bookService.DeleteBook(ctx, id); err != nil {
		fmt.Fprintln(a.out, common.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(a.out, "Book deleted.")
	return nil
}

// Show prints a single book from the local list. It reads the last fetched
// state and does not hit the server.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter book id to show", a.out)
	if err != nil {
		return err
	}

	st := a.booksStore.Snapshot()
	for _, b := range st.Books {
		if b.ID == id {
			fmt.Fprintf(a.out, "Title: %s\n", b.Title)
			fmt.Fprintf(a.out, "Author: %s\n", b.Author)
			fmt.Fprintf(a.out, "Description: %s\n", b.Description)
			if b.Photo != "" {
				fmt.Fprintf(a.out, "Photo: %s\n", b.Photo)
			}
			return nil
		}
	}

	fmt.Fprintf(a.out, "No book with id %s in the local list; try list first.\n", id)
	return nil
}

func (a *App) inputDraft() (models.BookDraft, error) {
	var zero models.BookDraft

	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return zero, err
	}
	author, err := getSimpleText(a.reader, "Enter author", a.out)
	if err != nil {
		return zero, err
	}
	description, err := getSimpleText(a.reader, "Enter description", a.out)
	if err != nil {
		return zero, err
	}
	photo, err := getSimpleText(a.reader, "Enter photo path (optional)", a.out)
	if err != nil {
		return zero, err
	}

	return models.BookDraft{Title: title, Author: author, Description: description, Photo: photo}, nil
}
