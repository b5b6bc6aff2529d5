package engine

import (
	"context"
	"sync"
)

const loopQueueSize = 256

// Loop serializes callbacks onto a single goroutine
// Every piece of renderer state is touched only from inside Run
type Loop struct {
	queue    chan func()
	done     chan struct{}
	stopOnce sync.Once
}

// NewLoop creates an idle loop; callbacks queue until Run starts
func NewLoop() *Loop {
	return &Loop{
		queue: make(chan func(), loopQueueSize),
		done:  make(chan struct{}),
	}
}

// Post enqueues f, dropping it once the loop has stopped
// Safe to call from any goroutine, including timer goroutines
func (l *Loop) Post(f func()) {
	select {
	case l.queue <- f:
	case <-l.done:
	}
}

// Run executes queued callbacks in order until ctx is cancelled
func (l *Loop) Run(ctx context.Context) {
	defer l.stopOnce.Do(func() { close(l.done) })

	for {
		select {
		case <-ctx.Done():
			return
		case f := <-l.queue:
			f()
		}
	}
}

// Done is closed once Run returns
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
