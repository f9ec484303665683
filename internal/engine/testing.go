package engine

import (
	"context"
	"sync"
)

// Fake is an Engine for tests. It records submitted requests and delivers
// responses only when the test asks for it, so response ordering and
// staleness scenarios can be driven deterministically.
type Fake struct {
	mu       sync.Mutex
	requests []Request
	pending  []func(Response)
}

// NewFake creates a fake engine.
func NewFake() *Fake {
	return &Fake{}
}

// Submit records the request without executing anything.
func (f *Fake) Submit(_ context.Context, req Request, respond func(Response)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	f.pending = append(f.pending, respond)
}

// Requests returns a copy of all submitted requests in submission order.
func (f *Fake) Requests() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Request, len(f.requests))
	copy(out, f.requests)
	return out
}

// Respond delivers resp to the respond callback of the i-th submitted
// request, synchronously on the caller's goroutine.
func (f *Fake) Respond(i int, resp Response) {
	f.mu.Lock()
	respond := f.pending[i]
	f.mu.Unlock()
	respond(resp)
}

// RespondLast delivers resp for the most recently submitted request.
func (f *Fake) RespondLast(resp Response) {
	f.mu.Lock()
	n := len(f.pending)
	f.mu.Unlock()
	f.Respond(n-1, resp)
}
