// Package session holds the registry of authenticated identities and the
// loader that turns a session cookie back into a user on every request.
package session

import (
	"context"
	"sync"

	"github.com/wplex/atlas-admin/internal/api/metrics"
	"github.com/wplex/atlas-admin/internal/core/domain"
	"github.com/wplex/atlas-admin/internal/core/ports"
)

// MemoryRegistry is the in-process session table. Concurrent logins and
// logouts from different users mutate the same slice, so every insert, scan,
// and removal runs under the mutex. Suitable for single-instance deployments;
// use RedisRegistry when more than one worker serves traffic.
type MemoryRegistry struct {
	mu      sync.Mutex
	entries []ports.SessionEntry
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{}
}

// Add registers a session for user. Any existing entry for the same internal
// id is dropped first: one identity, one entry.
func (r *MemoryRegistry) Add(_ context.Context, token string, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.removeLocked(user.Internal)
	r.entries = append(r.entries, ports.SessionEntry{Token: token, User: user})
	metrics.SessionsActive.Set(float64(len(r.entries)))
	return nil
}

func (r *MemoryRegistry) Find(_ context.Context, internal string) (*ports.SessionEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range r.entries {
		if entry.User.Internal == internal {
			e := entry
			return &e, nil
		}
	}
	return nil, nil
}

func (r *MemoryRegistry) Remove(_ context.Context, internal string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.removeLocked(internal)
	metrics.SessionsActive.Set(float64(len(r.entries)))
	return nil
}

func (r *MemoryRegistry) Len(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries), nil
}

func (r *MemoryRegistry) removeLocked(internal string) {
	kept := r.entries[:0]
	for _, entry := range r.entries {
		if entry.User.Internal != internal {
			kept = append(kept, entry)
		}
	}
	r.entries = kept
}
