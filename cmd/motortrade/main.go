package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erazemk/motortrade/internal/api"
	"github.com/erazemk/motortrade/internal/config"
	"github.com/erazemk/motortrade/internal/db"
	"github.com/erazemk/motortrade/internal/store"
	"github.com/erazemk/motortrade/internal/web"
)

// splitHandler sends error records to one handler and everything else to
// another, so failures stand out on stderr.
type splitHandler struct {
	info, errs slog.Handler
}

func (h *splitHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *splitHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		return h.errs.Handle(ctx, r)
	}
	return h.info.Handle(ctx, r)
}

func (h *splitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &splitHandler{info: h.info.WithAttrs(attrs), errs: h.errs.WithAttrs(attrs)}
}

func (h *splitHandler) WithGroup(name string) slog.Handler {
	return &splitHandler{info: h.info.WithGroup(name), errs: h.errs.WithGroup(name)}
}

// newLogHandler writes text records to out, or to errOut for errors.
func newLogHandler(out, errOut io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	return &splitHandler{
		info: slog.NewTextHandler(out, opts),
		errs: slog.NewTextHandler(errOut, opts),
	}
}

// setupLogger installs the default logger. With a log path every record is
// also appended to that file; the returned func closes it.
func setupLogger(logPath string) (func(), error) {
	if logPath == "" {
		slog.SetDefault(slog.New(newLogHandler(os.Stdout, os.Stderr)))
		return nil, nil
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log %s: %w", logPath, err)
	}
	slog.SetDefault(slog.New(newLogHandler(io.MultiWriter(os.Stdout, f), io.MultiWriter(os.Stderr, f))))
	return func() { f.Close() }, nil
}

// loadConfig layers defaults, the optional config file, the environment, and
// explicitly set flags, in that order.
func loadConfig(args []string) (config.Config, error) {
	fs := flag.NewFlagSet("motortrade", flag.ContinueOnError)

	var configPath, dbPath, addr, logPath string
	fs.StringVar(&configPath, "config", "", "")
	fs.StringVar(&configPath, "c", "", "")
	fs.StringVar(&dbPath, "db", "", "")
	fs.StringVar(&dbPath, "d", "", "")
	fs.StringVar(&addr, "addr", "", "")
	fs.StringVar(&addr, "a", "", "")
	fs.StringVar(&logPath, "log", "", "")
	fs.StringVar(&logPath, "l", "", "")

	fs.Usage = func() {
		fmt.Fprint(os.Stdout, `Usage: motortrade [flags]

Flags:
  -c, -config <path>      YAML config file (default: none)
  -d, -db <path>          SQLite database path (default: motortrade.sqlite3)
  -a, -addr <host:port>   listen address (default: 0.0.0.0:5000)
  -l, -log <path>         log file path (default: no file, stdout/stderr only)
  -h, -help               show this help and exit

Environment:
  MOTORTRADE_SECRET       flash cookie signing secret (default: generated and stored in the database)
  MOTORTRADE_DB           SQLite database path
  MOTORTRADE_ADDR         listen address
`)
	}

	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return config.Config{}, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	cfg.ApplyEnv(os.Getenv)

	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if logPath != "" {
		cfg.LogPath = logPath
	}

	return cfg, cfg.Validate()
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	closeLog, err := setupLogger(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if closeLog != nil {
		defer closeLog()
	}

	database, err := bootstrap(context.Background(), cfg.DBPath)
	if err != nil {
		slog.Error("failed to prepare database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if cfg.SessionSecret == "" {
		cfg.SessionSecret, err = store.GetSessionSecret(context.Background(), database)
		if err != nil {
			slog.Error("failed to get session secret", "error", err)
			os.Exit(1)
		}
	}

	webRouter, err := web.NewRouter(database, cfg)
	if err != nil {
		slog.Error("failed to set up web router", "error", err)
		os.Exit(1)
	}

	// Combine: API routes take priority, web routes handle the rest.
	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(database))
	mux.Handle("/", webRouter)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.LoggingMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped, closing database")
}

// bootstrap opens the database, ensures the schema, and seeds the sample
// catalog on first run.
func bootstrap(ctx context.Context, path string) (*sql.DB, error) {
	database, err := db.Open(path)
	if err != nil {
		return nil, err
	}

	if err := db.EnsureSchema(database); err != nil {
		database.Close()
		return nil, err
	}

	seeded, err := db.Seed(ctx, database)
	if err != nil {
		database.Close()
		return nil, err
	}
	if seeded > 0 {
		slog.Info("sample catalog inserted", "motors", seeded)
	}

	slog.Info("database ready", "path", path)
	return database, nil
}
