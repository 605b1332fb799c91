package cli

import (
	"context"
	"os"
	"time"

	"github.com/tjsl-project/tjslctl/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for an email and password and authenticates against the
// backend. On success the token and profile snapshot are persisted and the
// prompt switches to the user's email.
//
// The password byte slice is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	profile, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		a.printer.RenderError(err)
		return err
	}

	a.userEmail = profile.Email
	a.printer.Success("logged in as %s", profile.Email)
	return nil
}

// Logout terminates the session. The backend call is best effort; the
// local credentials are always cleared.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.userEmail = ""
	a.printer.Success("logged out")
	return nil
}

// WhoAmI fetches the live profile from the backend and prints it,
// refreshing the stored snapshot as a side effect.
func (a *App) WhoAmI(ctx context.Context) error {
	profile, err := a.session.CurrentUser(ctx)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}

	a.userEmail = profile.Email
	a.printer.Print("%s <%s>", a.printer.Bold(profile.Name), profile.Email)
	if profile.Phone != "" {
		a.printer.Print("phone: %s", profile.Phone)
	}
	if profile.LastLoginAt != nil {
		a.printer.Print("last login: %s", profile.LastLoginAt.Format(time.RFC3339))
	}
	return nil
}

// Refresh trades the current token for a fresh one, restarting its
// validity window. The profile snapshot is untouched.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.session.RefreshToken(ctx); err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("token refreshed")
	return nil
}

// restoreSession checks for a valid stored token at startup and, if one
// exists, restores the prompt identity from the local snapshot without
// calling the backend.
func (a *App) restoreSession(ctx context.Context) {
	if !a.session.IsAuthenticated(ctx) {
		return
	}
	profile, err := a.session.StoredProfile(ctx)
	if err != nil || profile == nil {
		return
	}
	a.userEmail = profile.Email
	a.printer.Info("session restored for %s", profile.Email)
}
