package worker

import "context"

// Pool bounds the number of concurrently running external calls. It is
// a counting semaphore; acquiring a slot blocks until one frees up or
// the caller's context ends.
type Pool struct {
	slots chan struct{}
}

// NewPool creates a pool admitting up to size concurrent holders.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{slots: make(chan struct{}, size)}
}

// Acquire claims a slot, waiting as long as ctx allows.
func (p *Pool) Acquire(ctx context.Context) error {
	select {
	case p.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a slot claimed by Acquire.
func (p *Pool) Release() {
	<-p.slots
}
