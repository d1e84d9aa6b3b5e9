package primitives

import (
	"runtime"
	"sync"
)

// trackingContext holds the render state for a goroutine.
// Each goroutine has its own so concurrent renders of independent trees
// cannot observe each other's owners.
type trackingContext struct {
	// currentOwner is the Owner of the component currently rendering.
	currentOwner *Owner
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// getGoroutineID returns a unique identifier for the current goroutine.
// This parses the runtime stack header; it is an implementation detail and
// must not be relied upon externally.
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	// The stack starts with "goroutine <id> "
	var id uint64
	for i := 10; i < n; i++ { // Skip "goroutine "
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// getTrackingContext returns the tracking context for the current goroutine,
// creating it on first use.
func getTrackingContext() *trackingContext {
	gid := getGoroutineID()

	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*trackingContext)
	}

	ctx := &trackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

// CurrentOwner returns the Owner of the component currently rendering on
// this goroutine, or nil outside of a render.
func CurrentOwner() *Owner {
	return getTrackingContext().currentOwner
}

// setCurrentOwner sets the current owner and returns the previous one so it
// can be restored.
func setCurrentOwner(o *Owner) *Owner {
	ctx := getTrackingContext()
	old := ctx.currentOwner
	ctx.currentOwner = o
	return old
}

// WithOwner runs fn with the given Owner as the current owner.
// The previous owner is restored afterwards, so WithOwner calls nest the
// way the component tree does.
func WithOwner(owner *Owner, fn func()) {
	old := setCurrentOwner(owner)
	defer setCurrentOwner(old)
	fn()
}
