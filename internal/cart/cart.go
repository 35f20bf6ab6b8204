package cart

import (
	"sync"

	"github.com/BrianMwendwa180/Ecomerce-project/internal/catalog"
)

// Line is one product-and-quantity pair inside the cart. There is at most
// one line per product ID; quantity is always positive while the line exists.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal returns unit price times quantity for this line.
func (l Line) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Store holds the line items for the active session. Lines keep insertion
// order of first add. Total and item count are always derived from the
// lines, never stored independently.
//
// Operations never fail: invalid inputs degrade to no-ops (or removal,
// for a quantity update of zero or less) per the shop's cart rules.
type Store struct {
	mu    sync.RWMutex
	lines []Line
	subs  []func()
}

func NewStore() *Store {
	return &Store{}
}

// Subscribe registers fn to be called after every cart mutation.
// Subscribers read derived state back from the store; nothing is pushed.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// AddItem increments the existing line for the product or appends a new one.
// A quantity below one is a no-op.
func (s *Store) AddItem(p catalog.Product, quantity int) {
	if quantity < 1 {
		return
	}
	s.mu.Lock()
	found := false
	for i := range s.lines {
		if s.lines[i].Product.ID == p.ID {
			s.lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		s.lines = append(s.lines, Line{Product: p, Quantity: quantity})
	}
	s.mu.Unlock()
	s.notify()
}

// RemoveItem deletes the line for the product ID. Absent IDs are a no-op.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	removed := false
	for i, line := range s.lines {
		if line.Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()
	if removed {
		s.notify()
	}
}

// UpdateQuantity replaces the line's quantity. Zero or negative behaves as
// RemoveItem; an unknown product ID is a no-op.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(productID)
		return
	}
	s.mu.Lock()
	updated := false
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = quantity
			updated = true
			break
		}
	}
	s.mu.Unlock()
	if updated {
		s.notify()
	}
}

// Clear empties the cart. The store stays usable afterwards.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()
	s.notify()
}

// Lines returns a copy of the current lines in insertion order.
func (s *Store) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total is the sum of unit price times quantity over all lines.
func (s *Store) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, line := range s.lines {
		total += line.Subtotal()
	}
	return total
}

// ItemCount is the sum of quantities over all lines.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// notify runs outside the lock so subscribers can read the store back.
func (s *Store) notify() {
	s.mu.RLock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}
