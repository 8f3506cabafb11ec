// Package app wires the client together: configuration, logging, the durable
// credential store, the session, the API client, and the command dispatch
// that fronts them.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/riloidx/orderfront/internal/front/session"
	"github.com/riloidx/orderfront/internal/front/store"
	"github.com/riloidx/orderfront/internal/front/store/drivers/sqlite"
	"github.com/riloidx/orderfront/internal/front/view"
	"github.com/riloidx/orderfront/pkg/ordersdk"
	"github.com/riloidx/orderfront/pkg/slogx"
)

const version = "0.1.0"

type App struct {
	cfg Config
	log *slog.Logger

	db       *sqlite.Store
	creds    *store.Credentials
	sessions *session.Store
	api      *ordersdk.Client
	view     *view.Renderer
}

func New(cfg Config) (*App, error) {
	logger := slogx.New(slogx.Config{
		Service: "orderfront",
		Version: version,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	db, err := sqlite.NewStore(cfg.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}
	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate credential store: %w", err)
	}

	creds := store.NewCredentials(db)

	api := ordersdk.New(cfg.APIBaseURL, creds)
	api.HTTPClient = &http.Client{
		Timeout:   cfg.HTTPTimeout,
		Transport: &slogx.Transport{Logger: logger},
	}

	return &App{
		cfg:      cfg,
		log:      logger,
		db:       db,
		creds:    creds,
		sessions: session.New(creds),
		api:      api,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// command is one dispatchable subcommand. Protected commands never run
// without an authenticated session; the dispatcher redirects to the login
// flow instead.
type command struct {
	name      string
	summary   string
	protected bool
	run       func(ctx context.Context, args []string) error
}

func (a *App) commands() []command {
	return []command{
		{"login", "Authenticate and start a session", false, a.cmdLogin},
		{"register", "Create an account and start a session", false, a.cmdRegister},
		{"logout", "End the current session", false, a.cmdLogout},
		{"whoami", "Show the current session", false, a.cmdWhoami},
		{"items", "List the catalog", false, a.cmdItems},
		{"orders", "List, show, create, update or delete orders", true, a.cmdOrders},
		{"pay", "Pay for a pending order", true, a.cmdPay},
		{"payments", "Show payment history", true, a.cmdPayments},
	}
}

// Run restores the session from durable storage, then dispatches a single
// command. The returned error signals the exit code; user-facing messages
// have already been rendered by the time it returns.
func (a *App) Run(ctx context.Context, args []string, renderer *view.Renderer) error {
	a.view = renderer

	if err := a.sessions.Restore(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		a.usage()
		return fmt.Errorf("no command given")
	}

	name, rest := args[0], args[1:]
	for _, cmd := range a.commands() {
		if cmd.name != name {
			continue
		}
		if cmd.protected {
			if err := session.Guard(a.sessions); err != nil {
				a.view.Error("You need to log in first. Run 'orderfront login'.")
				return err
			}
		}
		return cmd.run(ctx, rest)
	}

	a.usage()
	return fmt.Errorf("unknown command %q", name)
}

func (a *App) usage() {
	a.view.Successf("Usage: orderfront <command> [flags]")
	a.view.Successf("")
	for _, cmd := range a.commands() {
		a.view.Successf("  %-10s %s", cmd.name, cmd.summary)
	}
}
