/*
main.go - LeaveManager server entry point

PURPOSE:
  Loads and validates the seed data, builds the store and the accounting
  engine, and serves the MCP surface over the chosen transport.

COMMAND-LINE FLAGS:
  -transport  "stdio" (default) or "sse"
  -addr       listen address for the sse transport (default :8000)
  -db         SQLite path; ":memory:" for in-memory SQLite, empty for
              the plain in-process store
  -seed       YAML seed file; empty uses the built-in defaults

STARTUP SEQUENCE:
  1. Parse flags, configure logging (stderr only - stdout belongs to
     the stdio transport)
  2. Load + validate seed data (malformed seed is fatal here, never a
     runtime error)
  3. Open store, grant starting balances
  4. Wire engine, handlers, MCP server
  5. Serve stdio, or SSE behind chi with graceful shutdown

EXAMPLES:
  # stdio transport (for MCP clients spawning the process)
  ./server

  # SSE transport with the sqlite store
  ./server -transport=sse -addr=:8000 -db=":memory:"
*/
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/joyamit/leave-manager/api"
	"github.com/joyamit/leave-manager/leave"
	"github.com/joyamit/leave-manager/seed"
	"github.com/joyamit/leave-manager/store/memory"
	"github.com/joyamit/leave-manager/store/sqlite"
	"github.com/joyamit/leave-manager/weather"
)

func main() {
	transport := flag.String("transport", "stdio", "MCP transport: stdio or sse")
	addr := flag.String("addr", ":8000", "listen address for the sse transport")
	dbPath := flag.String("db", "", `SQLite database path (":memory:" or a file); empty uses the in-process store`)
	seedPath := flag.String("seed", "", "YAML seed file; empty uses built-in defaults")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	// Seed data is validated in full before anything starts serving.
	cfg := seed.Default()
	if *seedPath != "" {
		var err error
		cfg, err = seed.Load(*seedPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *seedPath).Msg("failed to load seed file")
		}
	}
	dir, calendar, balances, err := cfg.Build()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid seed data")
	}

	var st leave.Store
	if *dbPath == "" {
		st = memory.New()
	} else {
		st, err = sqlite.New(*dbPath)
		if err != nil {
			log.Fatal().Err(err).Str("db", *dbPath).Msg("failed to open store")
		}
	}
	defer st.Close()

	ctx := context.Background()
	for id, amount := range balances {
		if err := st.Grant(ctx, id, amount); err != nil {
			log.Fatal().Err(err).Str("employee_id", string(id)).Msg("failed to seed balance")
		}
	}

	engine := leave.NewEngine(dir, st)
	handler := api.NewHandler(engine, dir, calendar, weather.New(), log)
	mcpServer := api.NewServer(handler)

	switch *transport {
	case "stdio":
		log.Info().Int("employees", dir.Len()).Msg("serving MCP over stdio")
		if err := server.ServeStdio(mcpServer); err != nil {
			log.Fatal().Err(err).Msg("stdio server failed")
		}
	case "sse":
		serveSSE(mcpServer, *addr, log)
	default:
		log.Fatal().Str("transport", *transport).Msg("unknown transport")
	}
}

// serveSSE runs the SSE transport behind chi with the usual middleware
// stack and shuts down gracefully on SIGINT/SIGTERM.
func serveSSE(mcpServer *server.MCPServer, addr string, log zerolog.Logger) {
	sse := server.NewSSEServer(mcpServer)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Handle("/sse", sse.SSEHandler())
	r.Handle("/message", sse.MessageHandler())

	// No Read/WriteTimeout: the SSE stream is long-lived by design.
	srv := &http.Server{
		Addr:        addr,
		Handler:     r,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("serving MCP over SSE")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("SSE server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
