package docstore

import (
	"context"
	"encoding/json"
	"sync"
)

// memoryStore implements Store with an in-process map. Used for development
// and tests; documents do not survive a restart.
type memoryStore struct {
	mu        sync.RWMutex
	documents map[string][]byte
}

func (s *memoryStore) Put(ctx context.Context, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[docKey(collection, id)] = data
	return nil
}

func (s *memoryStore) Get(ctx context.Context, collection, id string, out any) error {
	s.mu.RLock()
	data, exists := s.documents[docKey(collection, id)]
	s.mu.RUnlock()

	if !exists {
		return ErrNotFound
	}
	return json.Unmarshal(data, out)
}

func (s *memoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, docKey(collection, id))
	return nil
}

func (s *memoryStore) Close() error {
	return nil
}

func docKey(collection, id string) string {
	return collection + ":" + id
}
