// Package mainloop provides the single-goroutine event loop the theme manager
// runs on, so user actions and system notifications are totally ordered.
package mainloop

import (
	"context"
	"sync"
)

const defaultQueueSize = 64

// Loop runs posted functions one at a time on a single goroutine.
type Loop struct {
	queue   chan func()
	done    chan struct{}
	once    sync.Once
	mu      sync.RWMutex
	stopped bool
}

// NewLoop creates a loop with a buffered queue. Call Run to start draining it.
func NewLoop(queueSize int) *Loop {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Loop{
		queue: make(chan func(), queueSize),
		done:  make(chan struct{}),
	}
}

// Post enqueues fn. It blocks while the queue is full and is a no-op after Stop.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.stopped {
		return
	}

	select {
	case l.queue <- fn:
	case <-l.done:
	}
}

// Run drains the queue until ctx is cancelled or Stop is called.
// Functions already queued when Stop is called are discarded.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-l.done:
			return nil
		case fn := <-l.queue:
			fn()
		}
	}
}

// Stop ends Run and rejects further posts. Safe to call more than once.
func (l *Loop) Stop() {
	l.once.Do(func() {
		close(l.done)
		l.mu.Lock()
		l.stopped = true
		l.mu.Unlock()
	})
}

// Invoke posts fn and waits for it to finish. Returns false if the loop
// stopped before fn ran. Must not be called from the loop goroutine.
func (l *Loop) Invoke(fn func()) bool {
	ran := make(chan struct{})
	l.Post(func() {
		fn()
		close(ran)
	})

	select {
	case <-ran:
		return true
	case <-l.done:
		return false
	}
}
