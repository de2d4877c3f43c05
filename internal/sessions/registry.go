package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/angelmondragon/storefront-backend/internal/cart"
	"github.com/angelmondragon/storefront-backend/internal/search"
	"github.com/angelmondragon/storefront-backend/internal/wishlist"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/google/uuid"
)

const (
	defaultIdleTTL       = 2 * time.Hour
	defaultSweepInterval = 5 * time.Minute
)

// Session is the in-memory state owned by one guest shopper.
type Session struct {
	ID       uuid.UUID
	Cart     *cart.Cart
	Wishlist *wishlist.List
	Search   *search.State

	lastSeen time.Time
}

type gaugeRecorder interface {
	SetActiveSessions(n int)
}

// RegistryParams configure the session registry.
type RegistryParams struct {
	Logger        *logger.Logger
	Metrics       gaugeRecorder
	IdleTTL       time.Duration
	SweepInterval time.Duration
	Now           func() time.Time
}

// Registry owns every live session. Sessions idle longer than IdleTTL are
// dropped by Sweep, which Run calls on a ticker.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	logg          *logger.Logger
	metrics       gaugeRecorder
	idleTTL       time.Duration
	sweepInterval time.Duration
	now           func() time.Time
}

// NewRegistry builds an empty registry.
func NewRegistry(params RegistryParams) (*Registry, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	idle := params.IdleTTL
	if idle <= 0 {
		idle = defaultIdleTTL
	}
	interval := params.SweepInterval
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Registry{
		sessions:      map[uuid.UUID]*Session{},
		logg:          params.Logger,
		metrics:       params.Metrics,
		idleTTL:       idle,
		sweepInterval: interval,
		now:           now,
	}, nil
}

// Acquire returns the session for id, creating it when absent, and marks it
// as seen.
func (r *Registry) Acquire(id uuid.UUID) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		s = &Session{
			ID:       id,
			Cart:     cart.New(),
			Wishlist: wishlist.New(),
			Search:   search.New(),
		}
		r.sessions[id] = s
		r.publish()
	}
	s.lastSeen = r.now()
	return s
}

// Lookup returns the session for id without creating or touching it.
func (r *Registry) Lookup(id uuid.UUID) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// CartFor satisfies cart.Resolver.
func (r *Registry) CartFor(id uuid.UUID) *cart.Cart {
	return r.Acquire(id).Cart
}

// WishlistFor satisfies wishlist.Resolver.
func (r *Registry) WishlistFor(id uuid.UUID) *wishlist.List {
	return r.Acquire(id).Wishlist
}

// SearchFor returns the search state of the session.
func (r *Registry) SearchFor(id uuid.UUID) *search.State {
	return r.Acquire(id).Search
}

// Sweep drops sessions idle longer than the TTL and returns how many were removed.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.idleTTL {
			delete(r.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		r.publish()
	}
	return removed
}

// Run sweeps idle sessions until the context is canceled.
func (r *Registry) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.sweepInterval)
	defer ticker.Stop()

	ctx = r.logg.WithField(ctx, "event", "sessions.sweep")
	for {
		select {
		case <-ctx.Done():
			r.logg.Info(ctx, "session janitor stopped")
			return ctx.Err()
		case <-ticker.C:
			if removed := r.Sweep(r.now()); removed > 0 {
				r.logg.Info(r.logg.WithFields(ctx, map[string]any{
					"removed": removed,
					"active":  r.Len(),
				}), "idle sessions expired")
			}
		}
	}
}

// publish must be called with r.mu held.
func (r *Registry) publish() {
	if r.metrics != nil {
		r.metrics.SetActiveSessions(len(r.sessions))
	}
}
