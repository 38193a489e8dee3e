// Package upstream provides the typed resource clients over the atlas-auth
// backend. Each client is a thin mapping from a domain operation to an HTTP
// verb and URL template, dispatched through the shared rest.Client.
package upstream

import (
	"github.com/wplex/atlas-admin/internal/core/domain"
	"github.com/wplex/atlas-admin/internal/core/ports"
	"github.com/wplex/atlas-admin/internal/upstream/rest"
)

// Factory builds per-request resource clients around one shared REST client.
// The credential is bound at construction so no client ever outlives the
// request it was created for.
type Factory struct {
	rc  *rest.Client
	eps Endpoints
}

func NewFactory(rc *rest.Client, baseURL string) *Factory {
	return &Factory{rc: rc, eps: NewEndpoints(baseURL)}
}

func (f *Factory) Login(cred domain.Credential) ports.LoginResource {
	return &LoginClient{rc: f.rc, eps: f.eps, cred: cred}
}

func (f *Factory) Users(cred domain.Credential) ports.UserResource {
	return &UserClient{rc: f.rc, eps: f.eps, cred: cred}
}

func (f *Factory) Roles(cred domain.Credential) ports.RoleResource {
	return &RoleClient{rc: f.rc, eps: f.eps, cred: cred}
}

func (f *Factory) Clients(cred domain.Credential) ports.ClientResource {
	return &ClientClient{rc: f.rc, eps: f.eps, cred: cred}
}

func (f *Factory) Institutions(cred domain.Credential) ports.InstitutionResource {
	return &InstitutionClient{rc: f.rc, eps: f.eps, cred: cred}
}
