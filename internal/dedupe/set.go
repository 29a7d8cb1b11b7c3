package dedupe

// Set keeps the first occurrence of each key and remembers insertion order.
type Set[T comparable] struct {
	items map[T]struct{}
	order []T
}

// NewSet creates a set sized for capacity keys.
func NewSet[T comparable](capacity int) *Set[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Set[T]{
		items: make(map[T]struct{}, capacity),
		order: make([]T, 0, capacity),
	}
}

// IsSeen reports whether key was already added.
func (s *Set[T]) IsSeen(key T) bool {
	_, ok := s.items[key]
	return ok
}

// Add records key and reports whether it was new.
func (s *Set[T]) Add(key T) bool {
	if s.IsSeen(key) {
		return false
	}
	s.items[key] = struct{}{}
	s.order = append(s.order, key)
	return true
}

// Items returns the distinct keys in the order they were first added.
func (s *Set[T]) Items() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}
