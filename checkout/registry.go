package checkout

import (
	"sync"
	"time"
)

// Abandoned drafts are discarded after this long without activity.
const flowTTL = 30 * time.Minute

type entry struct {
	flow    *Flow
	touched time.Time
}

// Registry holds at most one in-progress wizard per browser context.
type Registry struct {
	mu    sync.Mutex
	flows map[string]*entry
	stop  chan struct{}
	once  sync.Once
}

func NewRegistry() *Registry {
	r := &Registry{
		flows: make(map[string]*entry),
		stop:  make(chan struct{}),
	}
	go r.sweep()
	return r
}

// Get returns the context's in-progress flow, or nil.
func (r *Registry) Get(contextID string) *Flow {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.flows[contextID]
	if !ok {
		return nil
	}
	e.touched = time.Now()
	return e.flow
}

// Put registers a new flow for the context, replacing any previous one.
func (r *Registry) Put(contextID string, f *Flow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flows[contextID] = &entry{flow: f, touched: time.Now()}
}

// Remove discards the context's flow (completion or abandonment).
func (r *Registry) Remove(contextID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.flows, contextID)
}

func (r *Registry) Stop() {
	r.once.Do(func() { close(r.stop) })
}

func (r *Registry) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-flowTTL)
			r.mu.Lock()
			for id, e := range r.flows {
				if e.touched.Before(cutoff) {
					delete(r.flows, id)
				}
			}
			r.mu.Unlock()
		}
	}
}
