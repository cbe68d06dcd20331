// Package cart holds the per-user shopping cart. Carts live in memory only,
// matching the page-state lifecycle of the ordering flow; they are never
// persisted and vanish on restart.
package cart

import (
	"errors"
	"sync"

	"restaurant-api/models"
	"restaurant-api/store"
)

var (
	ErrLineNotFound = errors.New("item not in cart")
	ErrMinQuantity  = errors.New("quantity must be at least 1")
)

// Summary is the cart payload with totals computed the same way checkout
// computes them.
type Summary struct {
	Items    []models.OrderLine `json:"items"`
	Subtotal float64            `json:"subtotal"`
	Tax      float64            `json:"tax"`
	Total    float64            `json:"total"`
}

// Store keeps one cart per user id.
type Store struct {
	mu    sync.Mutex
	carts map[string][]models.OrderLine
}

func NewStore() *Store {
	return &Store{carts: make(map[string][]models.OrderLine)}
}

// Default is the process-wide cart store used by the handlers.
var Default = NewStore()

// Add puts a line in the cart, or bumps the quantity when the item is
// already there. Quantities below 1 are treated as 1.
func (s *Store) Add(userID string, line models.OrderLine) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ID == line.ID {
			lines[i].Quantity += line.Quantity
			return
		}
	}
	s.carts[userID] = append(lines, line)
}

// SetQuantity sets an existing line's quantity. Values below 1 are rejected;
// removing a line is a distinct action, never a side effect of decrementing.
func (s *Store) SetQuantity(userID, itemID string, quantity int) error {
	if quantity < 1 {
		return ErrMinQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ID == itemID {
			lines[i].Quantity = quantity
			return nil
		}
	}
	return ErrLineNotFound
}

// Remove deletes a line from the cart.
func (s *Store) Remove(userID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ID == itemID {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

// Items returns a copy of the cart's lines.
func (s *Store) Items(userID string) []models.OrderLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[userID]
	out := make([]models.OrderLine, len(lines))
	copy(out, lines)
	return out
}

// Clear empties the cart (after checkout or logout).
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Summarize returns the cart with subtotal, tax and total.
func (s *Store) Summarize(userID string) Summary {
	items := s.Items(userID)
	subtotal, tax, total := store.Totals(items)
	return Summary{Items: items, Subtotal: subtotal, Tax: tax, Total: total}
}
