package services

import (
	"sync"
	"time"

	"github.com/dewrapsquare/dewrap-api/models"
)

// CartView is what the storefront re-renders after every mutation.
type CartView struct {
	Items      []models.LineItem `json:"items"`
	TotalQty   int               `json:"totalQty"`
	TotalPrice float64           `json:"totalPrice"`
}

type cartEntry struct {
	cart      models.Cart
	touchedAt time.Time
}

// CartService holds one in-memory cart per storefront session.
type CartService struct {
	mu    sync.RWMutex
	carts map[string]*cartEntry
}

func NewCartService() *CartService {
	return &CartService{carts: make(map[string]*cartEntry)}
}

// entry returns the session's cart, creating an empty one on first
// use. Callers must hold the write lock.
func (s *CartService) entry(sessionID string) *cartEntry {
	e, ok := s.carts[sessionID]
	if !ok {
		e = &cartEntry{}
		s.carts[sessionID] = e
	}
	e.touchedAt = time.Now()
	return e
}

func (s *CartService) view(e *cartEntry) CartView {
	qty, price := e.cart.Totals()
	return CartView{Items: e.cart.Snapshot(), TotalQty: qty, TotalPrice: price}
}

func (s *CartService) Get(sessionID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(s.entry(sessionID))
}

func (s *CartService) Add(sessionID, name, size string, price float64) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(sessionID)
	e.cart.Add(name, size, price)
	return s.view(e)
}

func (s *CartService) Increase(sessionID string, index int) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(sessionID)
	e.cart.Increase(index)
	return s.view(e)
}

func (s *CartService) Decrease(sessionID string, index int) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(sessionID)
	e.cart.Decrease(index)
	return s.view(e)
}

func (s *CartService) Remove(sessionID string, index int) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(sessionID)
	e.cart.Remove(index)
	return s.view(e)
}

func (s *CartService) Clear(sessionID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(sessionID)
	e.cart.Clear()
	return s.view(e)
}

// Copy returns an independent copy of the session's cart for
// validation and order snapshots.
func (s *CartService) Copy(sessionID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(sessionID)
	return models.Cart{Items: e.cart.Snapshot()}
}

// PruneIdle drops carts that have not been touched within maxIdle and
// returns how many were removed.
func (s *CartService) PruneIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-maxIdle)
	removed := 0
	for id, e := range s.carts {
		if e.touchedAt.Before(cutoff) {
			delete(s.carts, id)
			removed++
		}
	}
	return removed
}
