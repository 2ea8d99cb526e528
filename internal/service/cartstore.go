package service

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"

	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/entities"
)

// cacheCartStore keeps guest carts in the shared LRU cache, so abandoned
// sessions expire with the cache TTL instead of accumulating.
type cacheCartStore struct {
	cache Cache
}

func NewCacheCartStore(cache Cache) *cacheCartStore {
	return &cacheCartStore{cache: cache}
}

func cartCacheKey(sessionID string) string { return "cart:" + sessionID }

func (s *cacheCartStore) Load(_ context.Context, sessionID string) ([]entities.CartLine, error) {
	data, ok := s.cache.Get(cartCacheKey(sessionID))
	if !ok {
		return []entities.CartLine{}, nil
	}

	var lines []entities.CartLine
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return lines, nil
}

func (s *cacheCartStore) Save(_ context.Context, sessionID string, lines []entities.CartLine) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(lines); err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	s.cache.Set(cartCacheKey(sessionID), buf.Bytes())
	return nil
}

func (s *cacheCartStore) Clear(_ context.Context, sessionID string) error {
	s.cache.Delete(cartCacheKey(sessionID))
	return nil
}
