package upstream

import "testing"

func TestEndpoints_TrimsTrailingSlash(t *testing.T) {
	eps := NewEndpoints("http://auth.local/")
	if got := eps.Login(); got != "http://auth.local/api/v1/auth/login" {
		t.Fatalf("unexpected login url: %s", got)
	}
}

func TestEndpoints_EscapesPathParams(t *testing.T) {
	eps := NewEndpoints("http://auth.local")
	if got := eps.UserByInternal("a/b c"); got != "http://auth.local/api/v1/auth/users/a%2Fb%20c" {
		t.Fatalf("unexpected user url: %s", got)
	}
	if got := eps.RoleByInternal("r#1"); got != "http://auth.local/api/v1/auth/roles/r%231" {
		t.Fatalf("unexpected role url: %s", got)
	}
}
