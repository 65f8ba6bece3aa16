package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/fjod/go_storefront/internal/cache"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/repository"
)

type mockStore struct {
	m       sync.RWMutex
	records map[string]json.RawMessage
	err     error
}

func newMockStore() *mockStore {
	return &mockStore{records: make(map[string]json.RawMessage)}
}

func (s *mockStore) Get(_ context.Context, key string, dest any) error {
	s.m.RLock()
	defer s.m.RUnlock()
	if s.err != nil {
		return s.err
	}
	raw, ok := s.records[key]
	if !ok {
		return repository.ErrRecordNotFound
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal record %q: %w", key, repository.ErrCorruptRecord)
	}
	return nil
}

func (s *mockStore) Put(_ context.Context, key string, value any) error {
	s.m.Lock()
	defer s.m.Unlock()
	if s.err != nil {
		return s.err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.records[key] = raw
	return nil
}

func (s *mockStore) Delete(_ context.Context, key string) error {
	s.m.Lock()
	defer s.m.Unlock()
	if s.err != nil {
		return s.err
	}
	delete(s.records, key)
	return nil
}

// seed writes a record bypassing the error injection.
func (s *mockStore) seed(key string, value any) {
	s.m.Lock()
	defer s.m.Unlock()
	raw, _ := json.Marshal(value)
	s.records[key] = raw
}

// corrupt replaces a record with malformed JSON.
func (s *mockStore) corrupt(key string) {
	s.m.Lock()
	defer s.m.Unlock()
	s.records[key] = json.RawMessage(`{not json`)
}

func (s *mockStore) has(key string) bool {
	s.m.RLock()
	defer s.m.RUnlock()
	_, ok := s.records[key]
	return ok
}

type mockCache struct {
	m       sync.RWMutex
	lines   []domain.CartLine
	present bool
	err     error
}

func (c *mockCache) Get(context.Context) ([]domain.CartLine, error) {
	c.m.RLock()
	defer c.m.RUnlock()
	if c.err != nil {
		return nil, c.err
	}
	if !c.present {
		return nil, cache.ErrCacheMiss
	}
	return c.lines, nil
}

func (c *mockCache) Set(_ context.Context, lines []domain.CartLine) error {
	c.m.Lock()
	defer c.m.Unlock()
	if c.err != nil {
		return c.err
	}
	c.lines = lines
	c.present = true
	return nil
}

func (c *mockCache) Delete(context.Context) error {
	c.m.Lock()
	defer c.m.Unlock()
	c.lines = nil
	c.present = false
	return c.err
}
