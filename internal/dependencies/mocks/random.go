// Package mocks provides scriptable stand-ins for the injected dependencies.
package mocks

import (
	"sync"

	"github.com/mcoot/imposter/internal/dependencies/random"
)

// MockRandom replays queued Intn results so a deal can be scripted exactly
type MockRandom struct {
	mu     sync.Mutex
	queue  []int
	served int

	// Calls records the n passed to every Intn call, in order
	Calls []int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 once the queue is drained.
// Queued values are reduced modulo n so they always stay in range.
func (r *MockRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Calls = append(r.Calls, n)
	if r.served >= len(r.queue) || n <= 0 {
		return 0
	}
	result := r.queue[r.served]
	r.served++
	return result % n
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, values...)
}

// Pending returns how many queued values have not been served yet
func (r *MockRandom) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue) - r.served
}
