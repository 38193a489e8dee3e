package upstream

import (
	"net/url"
	"strings"
)

// Endpoints resolves the URL templates of the atlas-auth backend. Path and
// query parameters are escaped and substituted before dispatch.
type Endpoints struct {
	base string
}

func NewEndpoints(base string) Endpoints {
	return Endpoints{base: strings.TrimSuffix(base, "/")}
}

func (e Endpoints) Login() string {
	return e.base + "/api/v1/auth/login"
}

func (e Endpoints) Users() string {
	return e.base + "/api/v1/auth/users"
}

func (e Endpoints) UserByInternal(internal string) string {
	return e.base + "/api/v1/auth/users/" + url.PathEscape(internal)
}

func (e Endpoints) UserSearch(username string) string {
	return e.base + "/api/v1/auth/users/search/?username=" + url.QueryEscape(username)
}

func (e Endpoints) Roles() string {
	return e.base + "/api/v1/auth/roles"
}

func (e Endpoints) RoleByInternal(internal string) string {
	return e.base + "/api/v1/auth/roles/" + url.PathEscape(internal)
}

func (e Endpoints) Clients() string {
	return e.base + "/api/v1/parameters/clients"
}

func (e Endpoints) ClientByInternal(internal string) string {
	return e.base + "/api/v1/parameters/clients/" + url.PathEscape(internal)
}

func (e Endpoints) Institutions() string {
	return e.base + "/api/v1/parameters/institutions"
}

func (e Endpoints) InstitutionByInternal(internal string) string {
	return e.base + "/api/v1/parameters/institutions/" + url.PathEscape(internal)
}
