// Package server wires storage, services and the HTTP API of the portfolio
// backend and runs it until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrijs2005/portfolio/internal/logging"
	"github.com/dmitrijs2005/portfolio/internal/server/config"
	sh "github.com/dmitrijs2005/portfolio/internal/server/http"
	"github.com/dmitrijs2005/portfolio/internal/server/http/handlers"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/portfolio/internal/server/services"
)

var openPostgres = repomanager.OpenPostgres

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
}

// NewApp opens the storage, applies migrations, seeds the admin account and
// builds the router. An empty DSN selects in-memory storage.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	var (
		db  *sql.DB
		m   repomanager.RepositoryManager
		err error
	)

	if c.DatabaseDSN == "" {
		logger.Warn(ctx, "DATABASE_DSN is empty, using in-memory storage")
		m = repomanager.NewMemoryRepositoryManager()
	} else {
		db, err = openPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		m = repomanager.NewPostgresRepositoryManager()
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("migration error: %w", err)
	}

	us := services.NewUserService(db, m, c)
	created, err := us.EnsureAdmin(ctx, c.AdminUser, c.AdminPassword, c.AdminEmail)
	if err != nil {
		closeDB(db)
		return nil, fmt.Errorf("admin seed error: %w", err)
	}
	if created {
		logger.Info(ctx, "Created admin account", "username", c.AdminUser)
	}

	h := &handlers.Handlers{
		Users:   us,
		Contact: services.NewContactService(db, m),
		Uploads: services.NewUploadService(c),
	}
	if db != nil {
		h.Ping = db.PingContext
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// нулевой TTL отключает кэш списков
	var listCache *cache.Cache
	if c.CacheTTL > 0 {
		listCache = cache.New(c.CacheTTL, 2*c.CacheTTL)
	}

	content := handlers.NewContentSet(db, m, listCache)
	handler := sh.NewRouter(h, content, sh.Options{
		Logger:      logger,
		BasePath:    "/api",
		CORSOrigins: c.CORSOrigins,
		Registry:    reg,
	})

	return &App{config: c, logger: logger, db: db, handler: handler}, nil
}

func closeDB(db *sql.DB) {
	if db != nil {
		_ = db.Close()
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := sh.NewServer(app.config.ListenAddr, app.logger, app.handler)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	closeDB(app.db)
	app.logger.Info(ctx, "App stopped")
}
