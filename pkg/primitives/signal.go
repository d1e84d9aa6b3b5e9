package primitives

import (
	"reflect"
	"sync"
)

// Signal is a value container with equality-gated writes. Setting a signal
// to a value equal to the current one (value equality, not identity) is a
// no-op and does not advance the version, which is what provider
// memoization keys on.
type Signal[T any] struct {
	id      uint64
	mu      sync.Mutex
	value   T
	version uint64

	// equal overrides the default equality function.
	equal func(T, T) bool
}

// NewSignal creates a signal holding the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		id:      nextID(),
		value:   initial,
		version: 1,
	}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set updates the value if it differs from the current one by value
// equality. Returns true if the value changed.
func (s *Signal[T]) Set(value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.equals(s.value, value) {
		return false
	}
	s.value = value
	s.version++
	return true
}

// Update atomically reads and updates the signal's value.
// Returns true if the value changed.
func (s *Signal[T]) Update(fn func(T) T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(s.value)
	if s.equals(s.value, next) {
		return false
	}
	s.value = next
	s.version++
	return true
}

// Version returns the write generation of the signal. It advances only on
// writes that actually change the value.
func (s *Signal[T]) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// WithEquals returns the signal configured with a custom equality function.
// Useful for types where reflect.DeepEqual is too expensive or has the
// wrong semantics.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.id
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals provides value equality: a typed fast path for common
// scalars, reflect.DeepEqual otherwise.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int8:
		return av == any(b).(int8)
	case int16:
		return av == any(b).(int16)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
	case uint:
		return av == any(b).(uint)
	case uint8:
		return av == any(b).(uint8)
	case uint16:
		return av == any(b).(uint16)
	case uint32:
		return av == any(b).(uint32)
	case uint64:
		return av == any(b).(uint64)
	case float32:
		return av == any(b).(float32)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		return reflect.DeepEqual(a, b)
	}
}
