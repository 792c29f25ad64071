package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/bookaapp/booka/internal/client/session"
	"github.com/bookaapp/booka/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email, and password and creates a new account.
// Registration issues no session; the user logs in as a separate step.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.authService.Register(ctx, name, email, password); err != nil {
		fmt.Fprintln(a.out, common.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(a.out, "Success! You can now log in.")
	return nil
}

// Login prompts for credentials and authenticates. On success the session
// token is persisted, so later runs restore the session without logging in
// again.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.authService.Login(ctx, email, password); err != nil {
		fmt.Fprintln(a.out, common.ErrorMessage(err))
		return err
	}

	if st := a.authStore.Snapshot(); st.User != nil {
		fmt.Fprintf(a.out, "Welcome, %s!\n", st.User.Name)
	}
	return nil
}

// Logout clears the session, in memory and on disk.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the current user and, when the token carries an exp claim,
// the session expiry.
func (a *App) Whoami(ctx context.Context) error {
	st := a.authStore.Snapshot()
	if st.User == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s> (id %s)\n", st.User.Name, st.User.Email, st.User.ID)

	claims, err := session.Inspect(st.Token)
	if err != nil {
		// opaque token, nothing more to show
		return nil
	}
	if !claims.ExpiresAt.IsZero() {
		if claims.Expired(time.Now()) {
			fmt.Fprintf(a.out, "Session expired at %s\n", claims.ExpiresAt.Format(time.RFC3339))
		} else {
			fmt.Fprintf(a.out, "Session valid until %s\n", claims.ExpiresAt.Format(time.RFC3339))
		}
	}
	return nil
}
