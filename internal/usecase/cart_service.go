package usecase

import (
	"sync"

	"github.com/plantshop/backend/internal/domain"
)

// CartService maintains the session cart as an ordered list of line-item
// additions and derives the grouped view and totals on demand. All
// operations are total functions: removing or clearing an empty cart is a
// harmless no-op. A single mutex guards the line list.
type CartService struct {
	mu    sync.Mutex
	lines []domain.CartLine
}

// NewCartService creates an empty cart
func NewCartService() *CartService {
	return &CartService{}
}

// Add appends one line unconditionally; repeated adds of the same plant
// accumulate quantity in the aggregated view
func (s *CartService) Add(plantID, name string, unitPrice float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = append(s.lines, domain.CartLine{
		PlantID:   plantID,
		Name:      name,
		UnitPrice: unitPrice,
	})
}

// RemoveAll deletes every line whose plant id matches
func (s *CartService) RemoveAll(plantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.PlantID != plantID {
			kept = append(kept, line)
		}
	}
	s.lines = kept
}

// Clear empties the cart
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
}

// Aggregate groups lines by plant id, preserving the order in which each
// distinct id first appeared. Name and unit price come from the first
// occurrence; later adds with a different name or price are ignored for
// display.
func (s *CartService) Aggregate() []domain.AggregatedCartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := []domain.AggregatedCartEntry{}
	index := make(map[string]int)

	for _, line := range s.lines {
		if i, seen := index[line.PlantID]; seen {
			entries[i].Quantity++
			continue
		}
		index[line.PlantID] = len(entries)
		entries = append(entries, domain.AggregatedCartEntry{
			PlantID:   line.PlantID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  1,
		})
	}

	return entries
}

// Total sums the unit price over all lines
func (s *CartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, line := range s.lines {
		total += line.UnitPrice
	}
	return total
}

// Count returns the total number of lines, not distinct items; it drives
// the "N items" label
func (s *CartService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}
