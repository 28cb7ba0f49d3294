package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"msgboard/repositories"
	"msgboard/services"
	"msgboard/web"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so every defer executes before exit.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	location, err := time.LoadLocation(config.DisplayTimezone)
	if err != nil {
		return fmt.Errorf("invalid display timezone %q: %w", config.DisplayTimezone, err)
	}

	// 2. Storage: SQLite for users and messages, Badger for sessions
	db, err := repositories.OpenSQLite(config.SQLiteFilepath)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing SQLite...")
		_ = db.Close()
	}()

	sessionsDB, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("session store opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = sessionsDB.Close()
	}()

	// 3. Repositories & Services
	users := repositories.NewUserRepository(db, log)
	messages := repositories.NewMessageRepository(db, log)
	sessions := repositories.NewSessionRepository(sessionsDB, log, config.SessionDuration)

	authService := services.NewAuthService(users, sessions)
	boardService := services.NewBoardService(messages)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. HTTP Server
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := web.NewServer(log, authService, boardService, location, config.SessionDuration)
	httpServer := &http.Server{Addr: address, Handler: server.Handler()}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 7. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	log.Info("Program stopped cleanly")

	return nil
}
