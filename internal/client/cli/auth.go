package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/portfolio/internal/models"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getMultiline  = GetMultiline
	getPassword   = GetPassword
)

var errLoginFailed = errors.New("login failed: wrong credentials, no admin role or server unavailable")

// Login prompts for credentials and logs the admin in. The password buffer
// is cleared before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	if !a.admin.Login(ctx, username, string(password)) {
		return errLoginFailed
	}

	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.admin.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Refresh reloads every collection. A failed refresh ends the session.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.admin.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh failed, you have been logged out: %w", err)
	}
	fmt.Fprintln(a.out, "Data refreshed")
	return nil
}

// Contact sends a message through the public contact form.
func (a *App) Contact(ctx context.Context) error {
	var req models.ContactMessageRequest
	var err error

	if req.Name, err = getSimpleText(a.reader, "Your name", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Your email", a.out); err != nil {
		return err
	}
	if req.Message, err = getMultiline(a.reader, "Message", a.out); err != nil {
		return err
	}

	if err := a.admin.SendMessage(ctx, req); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Message sent")
	return nil
}
