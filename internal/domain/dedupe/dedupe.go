// Package dedupe provides order-preserving duplicate suppression for result
// sets keyed by display name.
package dedupe

// Set records seen keys while preserving first-seen order. The zero value is
// not usable; create one with NewSet.
type Set struct {
	seen  map[string]struct{}
	order []string
}

// NewSet creates an empty set. sizeHint bounds the initial allocation; pass 0
// when unknown.
func NewSet(sizeHint int) *Set {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Set{
		seen:  make(map[string]struct{}, sizeHint),
		order: make([]string, 0, sizeHint),
	}
}

// SeenAndRecord checks whether key was seen and records it if not. Returns
// true if key was already present, false if it was newly recorded.
func (s *Set) SeenAndRecord(key string) bool {
	if _, ok := s.seen[key]; ok {
		return true
	}
	s.seen[key] = struct{}{}
	s.order = append(s.order, key)
	return false
}

// Has reports whether key has been recorded without recording it.
func (s *Set) Has(key string) bool {
	_, ok := s.seen[key]
	return ok
}

// Keys returns the recorded keys in first-seen order.
func (s *Set) Keys() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of recorded keys.
func (s *Set) Len() int {
	return len(s.order)
}
