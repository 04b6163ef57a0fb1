// Package wizards holds one booking wizard per browser and evicts idle ones.
package wizards

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/oceanview/internal/domain/wizard"
)

type entry struct {
	mu   sync.Mutex
	w    *wizard.Wizard
	seen time.Time
}

// Store maps wizard ids to wizards. Callers hold an entry's lock for the
// whole request, so one browser's requests run one at a time.
type Store struct {
	New func() *wizard.Wizard
	TTL time.Duration
	Log *zap.Logger

	now func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
}

func NewStore(newWizard func() *wizard.Wizard, ttl time.Duration, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{New: newWizard, TTL: ttl, Log: log, now: time.Now, entries: map[string]*entry{}}
}

// Acquire locks the wizard stored under id, creating a fresh one under a new
// id when id is unknown. release must be called exactly once.
func (s *Store) Acquire(id string) (string, *wizard.Wizard, func()) {
	s.mu.Lock()
	e, ok := s.entries[id]
	if !ok {
		id = uuid.NewString()
		e = &entry{w: s.New()}
		s.entries[id] = e
		s.Log.Debug("wizard session created", zap.String("wizard_id", id))
	}
	e.seen = s.now()
	s.mu.Unlock()

	e.mu.Lock()
	return id, e.w, e.mu.Unlock
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep drops wizards idle for longer than TTL and reports how many went.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.TTL)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, e := range s.entries {
		if e.seen.Before(cutoff) {
			delete(s.entries, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done. interval must be positive.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("wizards: sweep interval must be positive, got %s", interval)
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if n := s.Sweep(); n > 0 {
				s.Log.Info("evicted idle wizard sessions", zap.Int("count", n), zap.Int("remaining", s.Len()))
			}
		}
	}
}
