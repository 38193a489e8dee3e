package ports

import (
	"context"

	"github.com/wplex/atlas-admin/internal/core/domain"
)

// TokenGrant is the payload returned by the backend's login endpoint.
type TokenGrant struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type LoginResource interface {
	Authenticate(ctx context.Context, username, password string) (*TokenGrant, error)
}

// UserResource maps user operations onto the remote users collection.
// List converts an upstream APIError into an empty slice so callers render
// an empty screen instead of double-checking; the detail operations
// propagate the *domain.APIError untouched.
type UserResource interface {
	List(ctx context.Context) []domain.User
	GetByInternal(ctx context.Context, internal string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Persist(ctx context.Context, user domain.User) (*domain.User, error)
	Update(ctx context.Context, internal string, user domain.User) (*domain.User, error)
	Delete(ctx context.Context, internal string) error
}

// RoleResource has the same verb shape as UserResource over the roles
// collection.
type RoleResource interface {
	List(ctx context.Context) []domain.Role
	GetByInternal(ctx context.Context, internal string) (*domain.Role, error)
	Persist(ctx context.Context, role domain.Role) (*domain.Role, error)
	Update(ctx context.Context, internal string, role domain.Role) (*domain.Role, error)
	Delete(ctx context.Context, internal string) error
}

type ClientResource interface {
	List(ctx context.Context) []domain.Client
	GetByInternal(ctx context.Context, internal string) (*domain.Client, error)
	Persist(ctx context.Context, client domain.Client) (*domain.Client, error)
	Update(ctx context.Context, internal string, client domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, internal string) error
}

type InstitutionResource interface {
	List(ctx context.Context) []domain.Institution
	GetByInternal(ctx context.Context, internal string) (*domain.Institution, error)
	Persist(ctx context.Context, institution domain.Institution) (*domain.Institution, error)
	Update(ctx context.Context, internal string, institution domain.Institution) (*domain.Institution, error)
	Delete(ctx context.Context, internal string) error
}

// Resources builds per-request resource clients bound to the credential in
// effect for that request. Handlers never share a credential across requests.
type Resources interface {
	Login(cred domain.Credential) LoginResource
	Users(cred domain.Credential) UserResource
	Roles(cred domain.Credential) RoleResource
	Clients(cred domain.Credential) ClientResource
	Institutions(cred domain.Credential) InstitutionResource
}
