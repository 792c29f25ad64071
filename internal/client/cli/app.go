package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/bookaapp/booka/internal/client/api"
	"github.com/bookaapp/booka/internal/client/config"
	"github.com/bookaapp/booka/internal/client/repositories/tokens"
	"github.com/bookaapp/booka/internal/client/services"
	"github.com/bookaapp/booka/internal/client/store"
	"github.com/bookaapp/booka/internal/logging"
)

// App wires the Booka client together: the API client, the two state
// containers, the workflows over them, and the interactive input/output.
type App struct {
	config *config.Config

	authService *services.AuthService
	bookService *services.BookService
	authStore   *store.AuthStore
	booksStore  *store.BooksStore

	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
	db     *sql.DB
}

// NewApp opens the local token database and constructs the full client stack.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := tokens.Open(ctx, cfg.TokenDBPath)
	if err != nil {
		log.Error(ctx, "failed to open local database", "path", cfg.TokenDBPath, "error", err)
		return nil, err
	}

	repo := tokens.NewSQLiteRepository(db)
	authStore := store.NewAuthStore(repo, log)
	booksStore := store.NewBooksStore(log)
	apiClient := api.NewHTTPClient(cfg.APIBaseURL)

	a := &App{
		config:      cfg,
		authService: services.NewAuthService(apiClient, authStore, repo, log),
		bookService: services.NewBookService(apiClient, authStore, booksStore, log),
		authStore:   authStore,
		booksStore:  booksStore,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		log:         log,
		db:          db,
	}

	// the REPL re-reads snapshots on demand; the subscriptions just trace
	// container transitions for diagnostics
	authStore.Subscribe(func() {
		st := authStore.Snapshot()
		log.Debug(ctx, "auth state changed", "status", st.Status.String(), "err", st.Err)
	})
	booksStore.Subscribe(func() {
		st := booksStore.Snapshot()
		log.Debug(ctx, "books state changed", "status", st.Status.String(), "count", len(st.Books))
	})

	return a, nil
}

// Run restores any persisted session and starts the REPL. It blocks until
// the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.authService.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.statusLine, scanner)
}

// Close releases the local database handle.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.authStore.Token() != ""
}

func (a *App) statusLine() string {
	st := a.authStore.Snapshot()
	if st.User != nil {
		return st.User.Email
	}
	return "not logged in"
}
