package server

import (
	"github.com/hashicorp/go-hclog"

	"github.com/cleantech-forge/helio/internal/config"
	"github.com/cleantech-forge/helio/pkg/store"
)

// Server contains the server's collaborators, injected at startup.
type Server struct {
	// Config is the config for the server.
	Config *config.Config

	// Store is the document store backing the content endpoints. It is nil
	// when no database is configured or the connection failed at startup;
	// handlers then serve static fallback data. The handle is set once and
	// never reconnected for the process lifetime.
	Store store.Store

	// Logger is the logger for the server.
	Logger hclog.Logger
}
