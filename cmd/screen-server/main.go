package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dkarimoff/childscreen/internal/explain"
	"github.com/dkarimoff/childscreen/internal/httpapi"
	"github.com/dkarimoff/childscreen/internal/session"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", defaultDBPath(), "SQLite session database path")
	flag.Parse()

	store, err := session.Open(*dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	caller := explain.NewAnthropicCallerFromEnv()
	if caller == nil {
		log.Printf("ANTHROPIC_API_KEY not set; explanations will use the fallback report")
	}
	gateway := explain.NewGateway(caller)

	srv := &http.Server{
		Addr:    *addr,
		Handler: httpapi.NewServer(store, gateway),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("screen-server listening on %s (db=%s)", *addr, *dbPath)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func defaultDBPath() string {
	if v := os.Getenv("SCREEN_DB_PATH"); v != "" {
		return v
	}
	return "sessions.db"
}
