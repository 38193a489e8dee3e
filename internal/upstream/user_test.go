package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wplex/atlas-admin/internal/core/domain"
	"github.com/wplex/atlas-admin/internal/upstream/rest"
)

func newTestFactory(t *testing.T, h http.HandlerFunc) *Factory {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewFactory(rest.New(time.Second, zerolog.Nop()), srv.URL)
}

func TestUserClient_List_Success(t *testing.T) {
	internal := uuid.NewString()
	factory := newTestFactory(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/users" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer token-abc" {
			t.Fatalf("unexpected authorization: %s", r.Header.Get("Authorization"))
		}
		_ = json.NewEncoder(w).Encode([]domain.User{
			{Internal: internal, Username: "alice@example.com", Active: true},
		})
	})

	users := factory.Users(domain.Credential{Authorization: "token-abc"}).List(context.Background())
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if users[0].Internal != internal {
		t.Fatalf("unexpected internal: %s", users[0].Internal)
	}
}

func TestUserClient_List_BackendDownReturnsEmpty(t *testing.T) {
	factory := newTestFactory(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	users := factory.Users(domain.Credential{}).List(context.Background())
	if users == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(users) != 0 {
		t.Fatalf("expected 0 users, got %d", len(users))
	}
}

func TestUserClient_GetByInternal_NotFound(t *testing.T) {
	factory := newTestFactory(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"name":"NotFoundError","message":"user not found","status_code":404,"timestamp":1700000000}`))
	})

	_, err := factory.Users(domain.Credential{}).GetByInternal(context.Background(), uuid.NewString())
	ae, ok := domain.AsAPIError(err)
	if !ok {
		t.Fatalf("expected *domain.APIError, got %v", err)
	}
	if ae.Name != "NotFoundError" || ae.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected error: %+v", ae)
	}
}

func TestUserClient_FindByUsername_EscapesQuery(t *testing.T) {
	factory := newTestFactory(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/users/search/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("username"); got != "joão silva@example.com" {
			t.Fatalf("unexpected username param: %q", got)
		}
		_ = json.NewEncoder(w).Encode(domain.User{Username: "joão silva@example.com"})
	})

	user, err := factory.Users(domain.Credential{}).FindByUsername(context.Background(), "joão silva@example.com")
	if err != nil {
		t.Fatalf("FindByUsername returned error: %v", err)
	}
	if user.Username != "joão silva@example.com" {
		t.Fatalf("unexpected username: %s", user.Username)
	}
}

func TestUserClient_Persist_SendsUser(t *testing.T) {
	var got domain.User
	factory := newTestFactory(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		got.Internal = uuid.NewString()
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(got)
	})

	created, err := factory.Users(domain.Credential{}).Persist(context.Background(), domain.User{
		Username: "bob@example.com",
		Password: "s3cret",
		Roles:    domain.RoleList{{Internal: "role-1"}},
	})
	if err != nil {
		t.Fatalf("Persist returned error: %v", err)
	}
	if got.Password != "s3cret" {
		t.Fatalf("password was not sent upstream")
	}
	if created.Internal == "" {
		t.Fatalf("expected internal id from backend")
	}
	if len(created.Roles) != 1 || created.Roles[0].Internal != "role-1" {
		t.Fatalf("unexpected roles: %+v", created.Roles)
	}
}

func TestUserClient_Delete_PropagatesError(t *testing.T) {
	factory := newTestFactory(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"name":"ConflictError","message":"user has open sessions","status_code":409,"timestamp":1700000000}`))
	})

	err := factory.Users(domain.Credential{}).Delete(context.Background(), uuid.NewString())
	ae, ok := domain.AsAPIError(err)
	if !ok {
		t.Fatalf("expected *domain.APIError, got %v", err)
	}
	if ae.StatusCode != http.StatusConflict {
		t.Fatalf("unexpected status: %d", ae.StatusCode)
	}
}

func TestRoleClient_List_BackendErrorReturnsEmpty(t *testing.T) {
	factory := newTestFactory(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"name":"GatewayError","message":"bad gateway","status_code":502,"timestamp":1700000000}`))
	})

	roles := factory.Roles(domain.Credential{}).List(context.Background())
	if roles == nil || len(roles) != 0 {
		t.Fatalf("expected empty slice, got %+v", roles)
	}
}

func TestLoginClient_Authenticate(t *testing.T) {
	factory := newTestFactory(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/login" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["username"] != "alice@example.com" || req["password"] != "s3cret" {
			t.Fatalf("unexpected credentials: %+v", req)
		}
		_, _ = w.Write([]byte(`{"access_token":"token-xyz","expires_in":3600}`))
	})

	grant, err := factory.Login(domain.Credential{Provider: "sig"}).Authenticate(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if grant.AccessToken != "token-xyz" || grant.ExpiresIn != 3600 {
		t.Fatalf("unexpected grant: %+v", grant)
	}
}
