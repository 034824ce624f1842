package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// MemoryStore is an in-memory Store implementation used by tests; documents
// survive only for the process lifetime. Insertion order within a collection
// is preserved.
type MemoryStore struct {
	mu          sync.RWMutex
	name        string
	collections map[string][]Document
	nextID      int
}

// NewMemoryStore returns an empty in-memory store reporting the given
// database name.
func NewMemoryStore(name string) *MemoryStore {
	return &MemoryStore{
		name:        name,
		collections: make(map[string][]Document),
	}
}

func (s *MemoryStore) GetDocuments(
	_ context.Context, collection string, filter Filter, limit int,
) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Document
	for _, doc := range s.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		out = append(out, doc)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out, nil
}

func (s *MemoryStore) CreateDocument(
	_ context.Context, collection string, record any,
) (string, error) {
	doc, err := toDocument(record)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := fmt.Sprintf("mem-%d", s.nextID)
	doc["_id"] = id
	s.collections[collection] = append(s.collections[collection], doc)

	return id, nil
}

func (s *MemoryStore) ListCollectionNames(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

func (s *MemoryStore) Name() string {
	return s.name
}

func (s *MemoryStore) Close(context.Context) error {
	return nil
}

func matches(doc Document, filter Filter) bool {
	for k, want := range filter {
		if doc[k] != want {
			return false
		}
	}
	return true
}

// toDocument flattens an arbitrary record into a Document through JSON, the
// same field names a real backend would store.
func toDocument(record any) (Document, error) {
	if doc, ok := record.(Document); ok {
		copied := make(Document, len(doc))
		for k, v := range doc {
			copied[k] = v
		}
		return copied, nil
	}

	b, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("error marshaling record: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("error unmarshaling record: %w", err)
	}

	return doc, nil
}
