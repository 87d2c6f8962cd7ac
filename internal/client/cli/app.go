package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/client/client"
	"github.com/dmitrijs2005/portfolio/internal/client/config"
	"github.com/dmitrijs2005/portfolio/internal/client/services"
	"github.com/dmitrijs2005/portfolio/internal/client/session"
	"github.com/dmitrijs2005/portfolio/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config *config.Config
	admin  *services.Admin
	log    logging.Logger
	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer

	mu     sync.RWMutex
	mode   Mode
	view   services.Snapshot
	cancel func()
}

// NewApp opens the session database and builds the API client and the admin
// container. A SessionPath of ":memory:" keeps the session in process memory.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	var (
		store session.Store
		db    *sql.DB
	)
	if c.SessionPath == ":memory:" {
		store = session.NewMemoryStore()
	} else {
		var err error
		db, err = client.InitDatabase(ctx, c.SessionPath)
		if err != nil {
			return nil, fmt.Errorf("error initializing session database: %w", err)
		}
		store = session.NewSQLiteStore(db)
	}

	api, err := client.NewHTTPClient(c.BaseURL, store, nil)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	app := newApp(c, services.NewAdmin(api, store, log), log, os.Stdin, os.Stdout)
	app.db = db
	return app, nil
}

func newApp(c *config.Config, admin *services.Admin, log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config: c,
		admin:  admin,
		log:    log.With("module", "cli"),
		reader: bufio.NewReader(in),
		out:    out,
	}
	a.view = admin.Snapshot()
	a.cancel = admin.Subscribe(a.onChange)
	return a
}

func (a *App) onChange(s services.Snapshot) {
	a.mu.Lock()
	a.view = s
	a.mu.Unlock()
}

func (a *App) snapshot() services.Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.view
}

func (a *App) isLoggedIn() bool {
	return a.snapshot().State == services.StateAuthenticated
}

// Run restores a saved session, starts the status watcher and blocks in the
// REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Portfolio admin CLI (type 'help' for commands)")

	if a.admin.Restore(ctx) {
		fmt.Fprintf(a.out, "Welcome back, %s\n", a.snapshot().User.Username)
	}

	watchCtx, stop := context.WithCancel(ctx)
	defer stop()
	go a.StartOnlineStatusWatcher(watchCtx, a.config.StatusCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

// Close waits for pending background updates and releases the session
// database.
func (a *App) Close() {
	a.cancel()
	a.admin.Wait()
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Error(context.Background(), "failed to close session database", "error", err)
		}
	}
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "server status changed", "mode", mode)
	}
}

func (a *App) getStatus() string {
	s := a.snapshot()

	a.mu.RLock()
	mode := a.mode
	a.mu.RUnlock()

	var parts []string
	if s.User != nil {
		parts = append(parts, s.User.Username)
	}
	if mode != "" {
		parts = append(parts, string(mode))
	}

	unread := 0
	for _, m := range s.Messages {
		if !m.Read {
			unread++
		}
	}
	if unread > 0 {
		parts = append(parts, fmt.Sprintf("%d unread", unread))
	}

	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// StartOnlineStatusWatcher pings the server every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.admin.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
