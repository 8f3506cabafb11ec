package app

import (
	"context"
	"flag"
	"fmt"

	"github.com/riloidx/orderfront/internal/front/view"
	"github.com/riloidx/orderfront/pkg/ordersdk"
)

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	login := fs.String("login", "", "account login")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *login == "" || *password == "" {
		a.view.Error("login and password are required")
		return fmt.Errorf("missing credentials")
	}

	resp, err := a.api.Login(ctx, ordersdk.LoginRequest{
		Login:    *login,
		Password: *password,
	})
	if err != nil {
		a.view.Error(view.Message(err, "Login failed. Please check your credentials."))
		return err
	}

	if err := a.sessions.Establish(ctx, resp.AccessToken, resp.RefreshToken, resp.Login); err != nil {
		// The server issued an undecodable token; an integration problem,
		// not something the user can act on.
		a.log.Error("establish_session_failed", "error", err)
		a.view.Error("Login failed. Please try again.")
		return err
	}

	a.view.Successf("Logged in as %s.", resp.Login)
	return nil
}

func (a *App) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	login := fs.String("login", "", "account login")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "first name")
	surname := fs.String("surname", "", "last name")
	birthDate := fs.String("birth-date", "", "birth date (YYYY-MM-DD)")
	email := fs.String("email", "", "email address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *login == "" || *password == "" {
		a.view.Error("login and password are required")
		return fmt.Errorf("missing credentials")
	}

	resp, err := a.api.Register(ctx, ordersdk.RegisterRequest{
		Login:     *login,
		Password:  *password,
		Name:      *name,
		Surname:   *surname,
		BirthDate: *birthDate,
		Email:     *email,
	})
	if err != nil {
		a.view.Error(view.Message(err, "Registration failed. Please try again."))
		return err
	}

	if err := a.sessions.Establish(ctx, resp.AccessToken, resp.RefreshToken, resp.Login); err != nil {
		a.log.Error("establish_session_failed", "error", err)
		a.view.Error("Registration failed. Please try again.")
		return err
	}

	a.view.Successf("Welcome, %s. You are now logged in.", resp.Login)
	return nil
}

// cmdLogout invokes both independent primitives: the auth service's logout
// (persisted tokens only) and the session store's clear (everything else plus
// in-memory state). Keeping them separate mirrors the API's layering.
func (a *App) cmdLogout(ctx context.Context, _ []string) error {
	if err := a.api.Logout(ctx); err != nil {
		return err
	}
	if err := a.sessions.Clear(ctx); err != nil {
		return err
	}

	a.view.Successf("Logged out.")
	return nil
}

func (a *App) cmdWhoami(_ context.Context, _ []string) error {
	a.view.Identity(a.sessions.Current())
	return nil
}
