package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/bookaapp/booka/internal/client/models"
	"github.com/bookaapp/booka/internal/common"
)

// HTTPClient talks to the Booka API over plain HTTP/JSON. Create-book is the
// one multipart endpoint (the photo travels as a form file part).
//
// Requests carry no client-side timeout; a workflow runs until the server
// answers or the transport fails.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient builds a client for the given API base URL,
// e.g. "http://localhost:3000/api/v1".
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{baseURL: baseURL, hc: &http.Client{}}
}

// envelope is the JSON wrapper every endpoint responds with:
// {data} or {token} on success, {message} on failure.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Token   string          `json:"token"`
	Message string          `json:"message"`
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(common.ClientIDHeaderName, common.ClientID)
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do sends the request and interprets the response envelope. A transport
// failure maps to NetworkError. A non-success status maps to ServerError
// carrying the body message when present, else fallback. On success the
// envelope is decoded into a fresh copy and returned.
func (c *HTTPClient) do(req *http.Request, op, fallback string) (*envelope, error) {
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &common.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &common.NetworkError{Op: op, Err: err}
	}

	var env envelope
	decodeErr := json.Unmarshal(body, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fallback
		if decodeErr == nil && env.Message != "" {
			msg = env.Message
		}
		return nil, &common.ServerError{Op: op, StatusCode: resp.StatusCode, Msg: msg}
	}
	if decodeErr != nil {
		return nil, &common.NetworkError{Op: op, Err: decodeErr}
	}
	return &env, nil
}

// doJSON marshals body (when non-nil) and performs a JSON request.
func (c *HTTPClient) doJSON(ctx context.Context, method, path, token string, body any, op, fallback string) (*envelope, error) {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, &common.NetworkError{Op: op, Err: err}
		}
		r = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, token, r)
	if err != nil {
		return nil, &common.NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, op, fallback)
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	_, err := c.doJSON(ctx, http.MethodPost, "/auth/register", "", body, "register", "Registration failed")
	return err
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	env, err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", body, "login", "Login failed")
	if err != nil {
		return "", err
	}
	return env.Token, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context, token string) (models.User, error) {
	var user models.User
	env, err := c.doJSON(ctx, http.MethodGet, "/auth/me", token, nil, "current user", "Failed to fetch user details")
	if err != nil {
		return user, err
	}
	if err := json.Unmarshal(env.Data, &user); err != nil {
		return user, &common.NetworkError{Op: "current user", Err: err}
	}
	return user, nil
}

func (c *HTTPClient) ListBooks(ctx context.Context, token string) ([]models.Book, error) {
	env, err := c.doJSON(ctx, http.MethodGet, "/books/", token, nil, "fetch books", "Failed to fetch books")
	if err != nil {
		return nil, err
	}
	var books []models.Book
	if err := json.Unmarshal(env.Data, &books); err != nil {
		return nil, &common.NetworkError{Op: "fetch books", Err: err}
	}
	return books, nil
}

// CreateBook uploads the draft as multipart form data. When draft.Photo is
// set it must be a readable local file path; the file is attached as the
// "picture" part.
func (c *HTTPClient) CreateBook(ctx context.Context, token string, draft models.BookDraft) (models.Book, error) {
	var book models.Book

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":       draft.Title,
		"author":      draft.Author,
		"description": draft.Description,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return book, &common.NetworkError{Op: "add book", Err: err}
		}
	}

	if draft.Photo != "" {
		if err := attachFile(w, "picture", draft.Photo); err != nil {
			return book, fmt.Errorf("add book: attach photo: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return book, &common.NetworkError{Op: "add book", Err: err}
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/books/", token, &buf)
	if err != nil {
		return book, &common.NetworkError{Op: "add book", Err: err}
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	env, err := c.do(req, "add book", "Failed to add book")
	if err != nil {
		return book, err
	}
	if err := json.Unmarshal(env.Data, &book); err != nil {
		return book, &common.NetworkError{Op: "add book", Err: err}
	}
	return book, nil
}

func attachFile(w *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return err
	}
	_, err = io.Copy(part, f)
	return err
}

func (c *HTTPClient) UpdateBook(ctx context.Context, token string, id string, draft models.BookDraft) (models.Book, error) {
	var book models.Book
	env, err := c.doJSON(ctx, http.MethodPut, "/books/"+id, token, draft, "update book", "Failed to update book")
	if err != nil {
		return book, err
	}
	if err := json.Unmarshal(env.Data, &book); err != nil {
		return book, &common.NetworkError{Op: "update book", Err: err}
	}
	return book, nil
}

func (c *HTTPClient) DeleteBook(ctx context.Context, token string, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/books/"+id, token, nil, "delete book", "Failed to delete book")
	return err
}
