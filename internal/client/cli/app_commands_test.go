package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookaapp/booka/internal/client/api"
	"github.com/bookaapp/booka/internal/client/config"
	"github.com/bookaapp/booka/internal/client/models"
	"github.com/bookaapp/booka/internal/client/repositories/tokens"
	"github.com/bookaapp/booka/internal/client/services"
	"github.com/bookaapp/booka/internal/client/store"
	"github.com/bookaapp/booka/internal/logging"
)

// ------------ helpers ------------

func newTestApp(t *testing.T, apiURL string, input ...string) (*App, *bytes.Buffer) {
	t.Helper()

	db, err := tokens.Open(context.Background(), filepath.Join(t.TempDir(), "booka.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	repo := tokens.NewSQLiteRepository(db)
	authStore := store.NewAuthStore(repo, log)
	booksStore := store.NewBooksStore(log)
	apiClient := api.NewHTTPClient(apiURL)

	var out bytes.Buffer
	a := &App{
		config:      &config.Config{APIBaseURL: apiURL},
		authService: services.NewAuthService(apiClient, authStore, repo, log),
		bookService: services.NewBookService(apiClient, authStore, booksStore, log),
		authStore:   authStore,
		booksStore:  booksStore,
		reader:      bufio.NewReader(strings.NewReader(strings.Join(input, "\n") + "\n")),
		out:         &out,
		log:         log,
		db:          db,
	}
	return a, &out
}

func stubPassword(t *testing.T, password string) {
	t.Helper()
	orig := getPassword
	getPassword = func(w io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() { getPassword = orig })
}

// ------------ tests ------------

func TestApp_Register(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"1","name":"A","email":"a@b.com"}}`))
	}))
	defer srv.Close()

	stubPassword(t, "secret1")
	a, out := newTestApp(t, srv.URL, "A", "a@b.com")

	require.NoError(t, a.Register(context.Background()))

	assert.Contains(t, out.String(), "Success! You can now log in.")
	st := a.authStore.Snapshot()
	assert.Equal(t, store.StatusSucceeded, st.Status)
	assert.Nil(t, st.User)
	assert.False(t, a.isLoggedIn())
}

func TestApp_Register_ServerErrorPrinted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Email already in use"}`))
	}))
	defer srv.Close()

	stubPassword(t, "secret1")
	a, out := newTestApp(t, srv.URL, "A", "a@b.com")

	require.Error(t, a.Register(context.Background()))
	assert.Contains(t, out.String(), "Email already in use")
}

func TestApp_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			_, _ = w.Write([]byte(`{"token":"T"}`))
		case "/auth/me":
			require.Equal(t, "Bearer T", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"data":{"id":"1","name":"A","email":"a@b.com"}}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	stubPassword(t, "secret1")
	a, out := newTestApp(t, srv.URL, "a@b.com")

	require.NoError(t, a.Login(context.Background()))

	assert.Contains(t, out.String(), "Welcome, A!")
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "a@b.com", a.statusLine())
}

func TestApp_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/books/", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[{"id":"9","title":"X","author":"Y","description":"","userId":"1","photo":"http://img"}]}`))
	}))
	defer srv.Close()

	a, out := newTestApp(t, srv.URL)
	a.authStore.SetCredentials(context.Background(), &models.User{ID: "1", Email: "a@b.com"}, "T")

	require.NoError(t, a.List(context.Background()))

	assert.Contains(t, out.String(), `"X" by Y [photo]`)
}

func TestApp_List_NotLoggedIn(t *testing.T) {
	a, out := newTestApp(t, "http://unused")

	require.Error(t, a.List(context.Background()))
	assert.Contains(t, out.String(), "No authentication token found")
}

func TestApp_Add(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "X", r.FormValue("title"))
		_, _ = w.Write([]byte(`{"data":{"id":"9","title":"X","author":"Y","description":"d","userId":"1"}}`))
	}))
	defer srv.Close()

	a, out := newTestApp(t, srv.URL, "X", "Y", "d", "")
	a.authStore.SetCredentials(context.Background(), &models.User{ID: "1"}, "T")

	require.NoError(t, a.Add(context.Background()))

	assert.Contains(t, out.String(), "Book added.")
	st := a.booksStore.Snapshot()
	require.Len(t, st.Books, 1)
	assert.Equal(t, "9", st.Books[0].ID)
}

func TestApp_Delete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/books/9", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	a, out := newTestApp(t, srv.URL, "9")
	a.authStore.SetCredentials(context.Background(), &models.User{ID: "1"}, "T")
	a.booksStore.SetBooks([]models.Book{{ID: "9", Title: "X"}})

	require.NoError(t, a.Delete(context.Background()))

	assert.Contains(t, out.String(), "Book deleted.")
	assert.Empty(t, a.booksStore.Snapshot().Books)
}

func TestApp_Show(t *testing.T) {
	a, out := newTestApp(t, "http://unused", "9")
	a.booksStore.SetBooks([]models.Book{{ID: "9", Title: "X", Author: "Y", Description: "d"}})

	require.NoError(t, a.Show(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Title: X")
	assert.Contains(t, s, "Author: Y")
	assert.Contains(t, s, "Description: d")
}

func TestApp_Show_Miss(t *testing.T) {
	a, out := newTestApp(t, "http://unused", "42")

	require.NoError(t, a.Show(context.Background()))
	assert.Contains(t, out.String(), "No book with id 42")
}

func TestApp_Whoami_NotLoggedIn(t *testing.T) {
	a, out := newTestApp(t, "http://unused")

	require.NoError(t, a.Whoami(context.Background()))
	assert.Contains(t, out.String(), "Not logged in.")
}

func TestApp_Whoami_OpaqueToken(t *testing.T) {
	a, out := newTestApp(t, "http://unused")
	a.authStore.SetCredentials(context.Background(), &models.User{ID: "1", Name: "A", Email: "a@b.com"}, "opaque")

	require.NoError(t, a.Whoami(context.Background()))

	s := out.String()
	assert.Contains(t, s, "A <a@b.com> (id 1)")
	assert.NotContains(t, s, "Session")
}

func TestApp_Logout(t *testing.T) {
	a, out := newTestApp(t, "http://unused")
	a.authStore.SetCredentials(context.Background(), &models.User{ID: "1"}, "T")

	require.NoError(t, a.Logout(context.Background()))

	assert.Contains(t, out.String(), "Logged out.")
	assert.False(t, a.isLoggedIn())
}
