package primitives

import "sync"

// Memo caches a value derived from a signal. The derivation reruns only
// when the signal's version has moved, i.e. when a write actually changed
// the value. Equal-but-distinct writes to the source never trigger a
// recomputation downstream.
type Memo[T any] struct {
	source *Signal[T]
	derive func(T) T

	mu     sync.Mutex
	cached T
	seen   uint64

	// computes counts derivation runs; read by tests to verify
	// equality-based memoization.
	computes uint64
}

// NewMemo creates a memo deriving from the given signal.
// The derivation is lazy; it first runs on Get.
func NewMemo[T any](source *Signal[T], derive func(T) T) *Memo[T] {
	return &Memo[T]{
		source: source,
		derive: derive,
	}
}

// Get returns the derived value, recomputing only if the source changed
// since the last derivation.
func (m *Memo[T]) Get() T {
	version := m.source.Version()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.seen != version {
		m.cached = m.derive(m.source.Get())
		m.seen = version
		m.computes++
	}
	return m.cached
}
