package ports

import (
	"context"

	"github.com/wplex/atlas-admin/internal/core/domain"
)

// SessionEntry pairs the bearer token issued at login with the user it
// belongs to, keyed by the user's internal id.
type SessionEntry struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// SessionRegistry is the shared table of authenticated identities. At most
// one entry exists per internal id: Add replaces any previous entry for the
// same identity rather than appending a second one.
type SessionRegistry interface {
	Add(ctx context.Context, token string, user domain.User) error
	// Find returns nil without error when no entry exists for internal.
	Find(ctx context.Context, internal string) (*SessionEntry, error)
	Remove(ctx context.Context, internal string) error
	Len(ctx context.Context) (int, error)
}
