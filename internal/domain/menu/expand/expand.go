// Package expand tracks which menu items show their full rate breakdown.
package expand

import "slices"

// Set is the expanded-items state keyed by item id. The zero value is an
// empty set. Toggling is the only transition; ids outside the current view
// are kept.
type Set struct {
	ids map[int64]struct{}
}

// Toggle flips membership of id and returns whether it is now expanded.
func (s *Set) Toggle(id int64) bool {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	if s.ids == nil {
		s.ids = make(map[int64]struct{})
	}
	s.ids[id] = struct{}{}
	return true
}

// Has reports whether id is expanded.
func (s *Set) Has(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of expanded ids.
func (s *Set) Len() int { return len(s.ids) }

// IDs returns the expanded ids in ascending order.
func (s *Set) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
