package draft

import (
	"context"
	"sync"
	"time"

	"dental_lab/internal/scheduler"
	"dental_lab/internal/usecase/interfaces"
)

// StorageFactory returns the local storage scoped to one owner.
type StorageFactory func(ownerID string) interfaces.ILocalStorage

// Registry keeps one live Session per owner.
type Registry struct {
	mu           sync.Mutex
	sessions     map[string]*Session
	deps         Dependencies
	storageFor   StorageFactory
	newDebouncer func() scheduler.Debouncer
}

// NewRegistry builds sessions from deps. deps.Storage and deps.Debouncer are
// ignored: each session gets its own from storageFor and newDebouncer.
func NewRegistry(deps Dependencies, storageFor StorageFactory, newDebouncer func() scheduler.Debouncer) *Registry {
	if newDebouncer == nil {
		newDebouncer = func() scheduler.Debouncer { return scheduler.NewTimerDebouncer() }
	}
	return &Registry{
		sessions:     map[string]*Session{},
		deps:         deps,
		storageFor:   storageFor,
		newDebouncer: newDebouncer,
	}
}

// Open returns the session of ownerID, creating it when there is none.
// created is true for a new session, which still needs Start.
func (r *Registry) Open(ownerID string) (s *Session, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[ownerID]; ok {
		return s, false
	}
	deps := r.deps
	deps.Storage = r.storageFor(ownerID)
	deps.Debouncer = r.newDebouncer()
	s = NewSession(ownerID, deps)
	r.sessions[ownerID] = s
	return s, true
}

func (r *Registry) Get(ownerID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[ownerID]
	return s, ok
}

// Close unloads the session of ownerID and forgets it.
func (r *Registry) Close(ctx context.Context, ownerID string) bool {
	r.mu.Lock()
	s, ok := r.sessions[ownerID]
	delete(r.sessions, ownerID)
	r.mu.Unlock()
	if !ok {
		return false
	}
	s.Unload(ctx)
	return true
}

// CloseAll unloads every session. Used on shutdown.
func (r *Registry) CloseAll(ctx context.Context) {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = map[string]*Session{}
	r.mu.Unlock()
	for _, s := range sessions {
		s.Unload(ctx)
	}
}

// ExpireIdle unloads every session unused for at least maxIdle, saving its
// snapshot on the way out. Sessions with a submission in flight are kept.
func (r *Registry) ExpireIdle(ctx context.Context, now time.Time, maxIdle time.Duration) int {
	r.mu.Lock()
	var idle []*Session
	for owner, s := range r.sessions {
		at, ok := s.IdleSince()
		if ok && now.Sub(at) >= maxIdle {
			idle = append(idle, s)
			delete(r.sessions, owner)
		}
	}
	r.mu.Unlock()

	for _, s := range idle {
		s.Unload(ctx)
		s.log.Info("idle draft session unloaded")
	}
	return len(idle)
}

// RunExpiry calls ExpireIdle every interval until ctx is done.
func (r *Registry) RunExpiry(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			r.ExpireIdle(ctx, t, maxIdle)
		}
	}
}
