package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/guildhall/autocomplete"
	"github.com/danielhkuo/guildhall/catalog"
	"github.com/danielhkuo/guildhall/cliparse"
	"github.com/danielhkuo/guildhall/handlers"
	"github.com/danielhkuo/guildhall/platform"
	"github.com/danielhkuo/guildhall/pollstore"
	"github.com/danielhkuo/guildhall/roles"
	"github.com/danielhkuo/guildhall/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the poll database
	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := pollstore.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Load the catalog and watch it for edits
	cat, err := catalog.Load(cfg.ConfigDir)
	if err != nil {
		slog.Error("catalog load failed", "dir", cfg.ConfigDir, "error", err)
		os.Exit(1)
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	go func() {
		if err := cat.Watch(watchCtx); err != nil {
			slog.Warn("catalog watcher stopped", "error", err)
		}
	}()

	// Wire the platform boundary and handlers
	client := platform.NewRESTClient(cfg.PlatformBaseURL, cfg.PlatformToken)
	store := pollstore.New(dbConn)
	index := autocomplete.New(cat)
	toggler := roles.NewToggler(roles.NewRegistry(cat, client), client)

	registry := handlers.NewRegistry()
	for _, cmd := range handlers.Builtins(client, cat) {
		registry.Register(cmd)
	}

	dispatcher := handlers.NewDispatcher(
		client,
		cfg,
		registry,
		handlers.NewRoleHandler(toggler, client, cat),
		handlers.NewPollHandler(store, client),
		handlers.NewQuizHandler(client, cat, cfg),
		index,
	)

	// Create router
	mux := router.NewRouter(dispatcher, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
