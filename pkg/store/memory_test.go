package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProducts(t *testing.T, s *MemoryStore) {
	t.Helper()
	ctx := context.Background()
	docs := []Document{
		{"name": "Solar Inverters", "sector": "solar", "featured": true},
		{"name": "Wind Drive Systems", "sector": "wind", "featured": false},
		{"name": "Battery Energy Storage", "sector": "storage", "featured": true},
	}
	for _, d := range docs {
		_, err := s.CreateDocument(ctx, "energyproduct", d)
		require.NoError(t, err)
	}
}

func TestMemoryStoreGetDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("empty filter matches everything in insertion order", func(t *testing.T) {
		s := NewMemoryStore("test")
		seedProducts(t, s)

		docs, err := s.GetDocuments(ctx, "energyproduct", Filter{}, 0)
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "Solar Inverters", docs[0]["name"])
		assert.Equal(t, "Wind Drive Systems", docs[1]["name"])
		assert.Equal(t, "Battery Energy Storage", docs[2]["name"])
	})

	t.Run("equality filter on multiple fields", func(t *testing.T) {
		s := NewMemoryStore("test")
		seedProducts(t, s)

		docs, err := s.GetDocuments(ctx, "energyproduct",
			Filter{"sector": "solar", "featured": true}, 0)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Solar Inverters", docs[0]["name"])
	})

	t.Run("limit bounds the result", func(t *testing.T) {
		s := NewMemoryStore("test")
		seedProducts(t, s)

		docs, err := s.GetDocuments(ctx, "energyproduct", Filter{}, 2)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "Solar Inverters", docs[0]["name"])
	})

	t.Run("unknown collection is empty, not an error", func(t *testing.T) {
		s := NewMemoryStore("test")
		docs, err := s.GetDocuments(ctx, "nope", Filter{}, 0)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}

func TestMemoryStoreCreateDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns identifiers and preserves fields", func(t *testing.T) {
		s := NewMemoryStore("test")
		type record struct {
			Name    string `json:"name"`
			Consent bool   `json:"consent"`
		}

		id, err := s.CreateDocument(ctx, "inquiry", record{Name: "Ada", Consent: true})
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		docs, err := s.GetDocuments(ctx, "inquiry", Filter{}, 0)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Ada", docs[0]["name"])
		assert.Equal(t, true, docs[0]["consent"])
		assert.Equal(t, id, docs[0]["_id"])
	})

	t.Run("does not alias the caller's document", func(t *testing.T) {
		s := NewMemoryStore("test")
		doc := Document{"name": "Ada"}
		_, err := s.CreateDocument(ctx, "inquiry", doc)
		require.NoError(t, err)

		// The store assigned _id to its own copy only.
		_, ok := doc["_id"]
		assert.False(t, ok)
	})
}

func TestMemoryStoreListCollectionNames(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore("test")
	seedProducts(t, s)
	_, err := s.CreateDocument(ctx, "office", Document{"region": "EMEA", "city": "Munich"})
	require.NoError(t, err)

	names, err := s.ListCollectionNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"energyproduct", "office"}, names)
}

func TestMemoryStoreName(t *testing.T) {
	assert.Equal(t, "cleanenergy", NewMemoryStore("cleanenergy").Name())
}
