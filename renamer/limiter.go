package renamer

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Limiter is a fixed-capacity permit pool. A permit is held while a task
// decides, renames and lists one entry, which bounds open directory handles
// and in-flight renames. A directory task returns its permit before waiting
// on its children, so waiting parents hold none.
type Limiter struct {
	sem      *semaphore.Weighted
	capacity int
}

// NewLimiter returns a Limiter with the given capacity. Values below one are
// raised to one.
func NewLimiter(capacity int) *Limiter {
	if capacity < 1 {
		capacity = 1
	}
	return &Limiter{
		sem:      semaphore.NewWeighted(int64(capacity)),
		capacity: capacity,
	}
}

// Acquire blocks until a permit is available or ctx is done.
func (l *Limiter) Acquire(ctx context.Context) error {
	return l.sem.Acquire(ctx, 1)
}

// Release returns a permit taken by Acquire.
func (l *Limiter) Release() {
	l.sem.Release(1)
}

// Capacity returns the number of permits.
func (l *Limiter) Capacity() int {
	return l.capacity
}
