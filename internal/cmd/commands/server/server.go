package server

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cleantech-forge/helio/internal/api"
	"github.com/cleantech-forge/helio/internal/cmd/base"
	"github.com/cleantech-forge/helio/internal/config"
	intserver "github.com/cleantech-forge/helio/internal/server"
	"github.com/cleantech-forge/helio/pkg/store"
)

// connectTimeout bounds the startup attempt to reach the document store. A
// store that cannot be reached in this window is treated as absent for the
// process lifetime.
const connectTimeout = 10 * time.Second

// shutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

type Command struct {
	*base.Command

	flagConfig string
	flagPort   int
}

func (c *Command) Synopsis() string {
	return "Run the content API server"
}

func (c *Command) Help() string {
	return `Usage: helio server [options]

  Run the clean energy content API server.

  Configuration is read from an optional HCL file and the environment
  (PORT, DATABASE_URL, DATABASE_NAME). Without a database the server still
  starts and serves static fallback content.

Options:

  -config=<path>
      Path to an HCL configuration file.

  -port=<port>
      Listen port, overriding configuration.
`
}

func (c *Command) Flags() *flag.FlagSet {
	f := flag.NewFlagSet("server", flag.ContinueOnError)
	f.StringVar(&c.flagConfig, "config", "", "path to an HCL configuration file")
	f.IntVar(&c.flagPort, "port", 0, "listen port, overriding configuration")
	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	cfg, err := config.NewConfig(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading configuration: %v", err))
		return 1
	}
	if c.flagPort != 0 {
		cfg.Port = c.flagPort
	}

	log := c.Log.Named("server")

	// The store handle is resolved exactly once. If the database is not
	// configured or unreachable, the handle stays nil and all content
	// endpoints serve static defaults.
	var st store.Store
	if cfg.HasDatabase() {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		ms, err := store.NewMongoStore(ctx, cfg.Database.URL, cfg.Database.Name)
		cancel()
		if err != nil {
			log.Warn("document store unavailable, serving fallback data",
				"error", err)
		} else {
			st = ms
			defer func() {
				ctx, cancel := context.WithTimeout(
					context.Background(), shutdownTimeout)
				defer cancel()
				if err := ms.Close(ctx); err != nil {
					log.Error("error closing document store", "error", err)
				}
			}()
			log.Info("connected to document store", "database", ms.Name())
		}
	} else {
		log.Info("no database configured, serving fallback data")
	}

	srv := intserver.Server{
		Config: cfg,
		Store:  st,
		Logger: log,
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: api.NewRouter(srv),
	}

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.UI.Error(fmt.Sprintf("server error: %v", err))
			return 1
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			c.UI.Error(fmt.Sprintf("error during shutdown: %v", err))
			return 1
		}
	}

	return 0
}
