package store

import (
	"log"
	"sync"
)

// Scheduler triggers a durable flush of a registry. Implementations
// must never block the caller on the write itself.
type Scheduler interface {
	Schedule(r *Registry)
}

// AsyncScheduler flushes registries from one worker goroutine per
// registry, so each file has exactly one writer. Schedule coalesces:
// a flush requested while another is pending folds into it. Write
// failures are logged and retried implicitly on the next mutation;
// the in-memory registry stays authoritative throughout.
type AsyncScheduler struct {
	mu      sync.Mutex
	closed  bool
	wakeups map[*Registry]chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewAsyncScheduler creates a scheduler with no workers; workers are
// spawned lazily on the first Schedule for each registry.
func NewAsyncScheduler() *AsyncScheduler {
	return &AsyncScheduler{
		wakeups: make(map[*Registry]chan struct{}),
		done:    make(chan struct{}),
	}
}

// Schedule requests a flush of r and returns immediately. After Close
// the workers are gone, so the flush happens inline rather than being
// dropped.
func (s *AsyncScheduler) Schedule(r *Registry) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		if err := r.Save(); err != nil {
			log.Printf("registry %s: flush failed: %v", r.Name(), err)
		}
		return
	}

	ch, ok := s.wakeups[r]
	if !ok {
		ch = make(chan struct{}, 1)
		s.wakeups[r] = ch
		s.wg.Add(1)
		go s.run(r, ch)
	}

	// Non-blocking send, still under the lock: either the wakeup is
	// registered before Close drains, or the closed check above runs
	// the flush inline. A pending wakeup already covers this change.
	select {
	case ch <- struct{}{}:
	default:
	}
	s.mu.Unlock()
}

func (s *AsyncScheduler) run(r *Registry, ch chan struct{}) {
	defer s.wg.Done()
	for {
		select {
		case <-ch:
			if err := r.Save(); err != nil {
				log.Printf("registry %s: flush failed: %v", r.Name(), err)
			}
		case <-s.done:
			return
		}
	}
}

// Close stops the workers and performs a final flush of every registry
// that still has a pending write. Close is idempotent.
func (s *AsyncScheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	close(s.done)
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	for r, ch := range s.wakeups {
		select {
		case <-ch:
			if err := r.Save(); err != nil {
				log.Printf("registry %s: final flush failed: %v", r.Name(), err)
			}
		default:
		}
	}
}

// SyncScheduler flushes inline. It exists so tests can make
// persistence deterministic.
type SyncScheduler struct{}

// Schedule saves r immediately, logging any failure.
func (SyncScheduler) Schedule(r *Registry) {
	if err := r.Save(); err != nil {
		log.Printf("registry %s: flush failed: %v", r.Name(), err)
	}
}
