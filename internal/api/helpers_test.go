package api

import (
	"context"
	"errors"

	"github.com/hashicorp/go-hclog"

	"github.com/cleantech-forge/helio/internal/config"
	"github.com/cleantech-forge/helio/internal/server"
	"github.com/cleantech-forge/helio/pkg/store"
)

func newTestServer(st store.Store) server.Server {
	return server.Server{
		Config: &config.Config{Port: config.DefaultPort},
		Store:  st,
		Logger: hclog.NewNullLogger(),
	}
}

var errStoreDown = errors.New("connection reset by peer")

// failingStore simulates a store whose connection was established at startup
// but fails on every operation afterwards.
type failingStore struct{}

func (failingStore) GetDocuments(
	context.Context, string, store.Filter, int,
) ([]store.Document, error) {
	return nil, errStoreDown
}

func (failingStore) CreateDocument(context.Context, string, any) (string, error) {
	return "", errStoreDown
}

func (failingStore) ListCollectionNames(context.Context) ([]string, error) {
	return nil, errStoreDown
}

func (failingStore) Name() string { return "broken" }

func (failingStore) Close(context.Context) error { return nil }
