package dashboardclient

import (
	"context"
	"sync"
)

// Loader runs fetches for one view where a newer request replaces an older
// one, such as a filter change. The last issued load wins: starting a load
// cancels the one in flight, and a load that finishes after a newer one was
// issued returns ErrSuperseded instead of its result.
type Loader[T any] struct {
	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

func (l *Loader[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.generation++
	gen := l.generation
	l.cancel = cancel
	l.mu.Unlock()

	result, err := fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	var zero T
	if gen != l.generation {
		return zero, ErrSuperseded
	}
	l.cancel = nil
	if err != nil {
		return zero, err
	}
	return result, nil
}

// Generation is the number of loads issued so far.
func (l *Loader[T]) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.generation
}
