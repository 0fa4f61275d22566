package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/coinflip/cliparse"
	"github.com/danielhkuo/coinflip/coin"
	"github.com/danielhkuo/coinflip/db"
	"github.com/danielhkuo/coinflip/middleware"
	"github.com/danielhkuo/coinflip/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	var dbConn *sql.DB
	if cfg.Stateless {
		slog.Info("Running stateless, flips are not recorded")
	} else {
		dialect, err := cfg.Dialect()
		if err != nil {
			slog.Error("invalid database type", "error", err)
			os.Exit(1)
		}

		// Connect to the database
		dbConn, err = db.Open(dialect, cfg.DatabaseURL)
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
		if err := db.CreateSchema(dbConn, dialect); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready", "type", dialect)
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg, coin.NewCrypto())

	// Create server
	server := http.Server{
		Handler: middleware.Stack(mux, cfg.CORSOrigins),
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
