package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/aarnio/casedesk/internal/envstruct"
	"github.com/aarnio/casedesk/internal/errors"
	"github.com/aarnio/casedesk/internal/logging"
	"github.com/aarnio/casedesk/internal/pprofserver"
	"github.com/aarnio/casedesk/internal/repositories"
	"github.com/aarnio/casedesk/internal/sqlite"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/donseba/go-htmx"
	"github.com/joho/godotenv"
)

type application struct {
	logger            *slog.Logger
	sessionManager    *scs.SessionManager
	htmx              *htmx.HTMX
	cases             *repositories.CaseRepository
	adminPasswordHash []byte
}

type config struct {
	Addr              string `env:"CASEDESK_ADDR" envDefault:"localhost:4000"`
	PprofPort         string `env:"CASEDESK_PPROF_PORT" envDefault:":6060"`
	SqliteURL         string `env:"CASEDESK_SQLITE_URL" envDefault:"./casedesk.sqlite"`
	AdminPasswordHash string `env:"CASEDESK_ADMIN_PASSWORD_HASH"`
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	logger := slog.New(loggerHandler)

	// A .env file is optional outside development.
	_ = godotenv.Load()

	if err := run(context.Background(), logger, os.LookupEnv); err != nil {
		logger.Error("server exited", errors.SlogError(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "parse environment")
	}

	// Initialise pprof listening on localhost so that it's not open to the world.
	pprofserver.Launch(cfg.PprofPort, logger)

	dbs, err := sqlite.NewDatabases(ctx, cfg.SqliteURL)
	if err != nil {
		return errors.Wrap(err, "open database")
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to database", slog.String("url", cfg.SqliteURL))

	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite.DB, 24*time.Hour)
	sessionManager.Lifetime = 12 * time.Hour
	sessionManager.Cookie.Secure = true

	app := application{
		logger:            logger,
		sessionManager:    sessionManager,
		htmx:              htmx.New(),
		cases:             repositories.NewCaseRepository(dbs, logger),
		adminPasswordHash: []byte(cfg.AdminPasswordHash),
	}

	return app.configureAndStartServer(ctx, cfg.Addr)
}
