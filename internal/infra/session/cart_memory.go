package session

import (
	"context"
	"sync"
)

// MemoryCartStore is a process-local CartStore used in tests and when
// no redis is configured.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string]Cart
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]Cart)}
}

func (s *MemoryCartStore) Get(_ context.Context, sessionID string) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(Cart, len(s.carts[sessionID]))
	for pid, qty := range s.carts[sessionID] {
		out[pid] = qty
	}
	return out, nil
}

func (s *MemoryCartStore) Add(_ context.Context, sessionID string, productID uint, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[sessionID]
	if cart == nil {
		cart = make(Cart)
		s.carts[sessionID] = cart
	}
	cart[productID] += qty
	if cart[productID] <= 0 {
		delete(cart, productID)
	}
	return nil
}

func (s *MemoryCartStore) SetQuantity(_ context.Context, sessionID string, productID uint, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[sessionID]
	if cart == nil {
		cart = make(Cart)
		s.carts[sessionID] = cart
	}
	if qty <= 0 {
		delete(cart, productID)
		return nil
	}
	cart[productID] = qty
	return nil
}

func (s *MemoryCartStore) Remove(_ context.Context, sessionID string, productID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts[sessionID], productID)
	return nil
}

func (s *MemoryCartStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
