package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wplex/atlas-admin/internal/api/middleware"
	"github.com/wplex/atlas-admin/internal/core/domain"
	"github.com/wplex/atlas-admin/internal/core/ports"
	"github.com/wplex/atlas-admin/internal/session"
)

type stubLoginResource struct {
	authenticateFn func(ctx context.Context, username, password string) (*ports.TokenGrant, error)
}

func (s *stubLoginResource) Authenticate(ctx context.Context, username, password string) (*ports.TokenGrant, error) {
	return s.authenticateFn(ctx, username, password)
}

type stubUserResource struct {
	listFn    func(ctx context.Context) []domain.User
	getFn     func(ctx context.Context, internal string) (*domain.User, error)
	findFn    func(ctx context.Context, username string) (*domain.User, error)
	persistFn func(ctx context.Context, user domain.User) (*domain.User, error)
	updateFn  func(ctx context.Context, internal string, user domain.User) (*domain.User, error)
	deleteFn  func(ctx context.Context, internal string) error
}

func (s *stubUserResource) List(ctx context.Context) []domain.User {
	return s.listFn(ctx)
}

func (s *stubUserResource) GetByInternal(ctx context.Context, internal string) (*domain.User, error) {
	return s.getFn(ctx, internal)
}

func (s *stubUserResource) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.findFn(ctx, username)
}

func (s *stubUserResource) Persist(ctx context.Context, user domain.User) (*domain.User, error) {
	return s.persistFn(ctx, user)
}

func (s *stubUserResource) Update(ctx context.Context, internal string, user domain.User) (*domain.User, error) {
	return s.updateFn(ctx, internal, user)
}

func (s *stubUserResource) Delete(ctx context.Context, internal string) error {
	return s.deleteFn(ctx, internal)
}

// stubResources hands out the stub clients and records the credential each
// one was bound to.
type stubResources struct {
	login *stubLoginResource
	users *stubUserResource
	roles *stubRoleResource

	loginCred domain.Credential
	usersCred domain.Credential
}

func (s *stubResources) Login(cred domain.Credential) ports.LoginResource {
	s.loginCred = cred
	return s.login
}

func (s *stubResources) Users(cred domain.Credential) ports.UserResource {
	s.usersCred = cred
	return s.users
}

func (s *stubResources) Roles(cred domain.Credential) ports.RoleResource               { return s.roles }
func (s *stubResources) Clients(cred domain.Credential) ports.ClientResource           { return nil }
func (s *stubResources) Institutions(cred domain.Credential) ports.InstitutionResource { return nil }

var testCookies = securecookie.New([]byte("0123456789abcdef0123456789abcdef"), nil)

func newLoginContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	registry := session.NewMemoryRegistry()
	resources := &stubResources{
		login: &stubLoginResource{
			authenticateFn: func(ctx context.Context, username, password string) (*ports.TokenGrant, error) {
				if username != "alice@example.com" || password != "s3cret" {
					t.Fatalf("unexpected credentials: %s %s", username, password)
				}
				return &ports.TokenGrant{AccessToken: "token-xyz", ExpiresIn: 3600}, nil
			},
		},
		users: &stubUserResource{
			findFn: func(ctx context.Context, username string) (*domain.User, error) {
				return &domain.User{
					Internal: "u1",
					Username: username,
					Active:   true,
					Password: "must-not-leak",
				}, nil
			},
		},
	}
	handler := NewAuthHandler(resources, registry, testCookies, "sig-123", time.Hour, false, zerolog.Nop())

	c, rec := newLoginContext(e, `{"username":"alice@example.com","password":"s3cret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// The login call carries only the provider signature; the user lookup
	// must run under the freshly granted token.
	if resources.loginCred.Provider != "sig-123" || resources.loginCred.Authorization != "" {
		t.Fatalf("unexpected login credential: %+v", resources.loginCred)
	}
	if resources.usersCred.Authorization != "token-xyz" {
		t.Fatalf("unexpected users credential: %+v", resources.usersCred)
	}

	entry, _ := registry.Find(context.Background(), "u1")
	if entry == nil || entry.Token != "token-xyz" {
		t.Fatalf("session was not registered: %+v", entry)
	}

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatalf("session cookie was not set")
	}
	if cookie.MaxAge != 0 {
		t.Fatalf("expected session-scoped cookie, got MaxAge %d", cookie.MaxAge)
	}
	var internal string
	if err := testCookies.Decode(middleware.SessionCookie, cookie.Value, &internal); err != nil {
		t.Fatalf("decode cookie: %v", err)
	}
	if internal != "u1" {
		t.Fatalf("unexpected cookie payload: %s", internal)
	}

	if strings.Contains(rec.Body.String(), "must-not-leak") {
		t.Fatalf("password leaked into response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_RememberExtendsCookie(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	resources := &stubResources{
		login: &stubLoginResource{
			authenticateFn: func(ctx context.Context, username, password string) (*ports.TokenGrant, error) {
				return &ports.TokenGrant{AccessToken: "token-xyz"}, nil
			},
		},
		users: &stubUserResource{
			findFn: func(ctx context.Context, username string) (*domain.User, error) {
				return &domain.User{Internal: "u1", Username: username, Active: true}, nil
			},
		},
	}
	handler := NewAuthHandler(resources, session.NewMemoryRegistry(), testCookies, "sig", 10*time.Hour, false, zerolog.Nop())

	c, rec := newLoginContext(e, `{"username":"alice@example.com","password":"s3cret","remember":true}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			if ck.MaxAge != int((10 * time.Hour).Seconds()) {
				t.Fatalf("expected MaxAge %d, got %d", int((10 * time.Hour).Seconds()), ck.MaxAge)
			}
			return
		}
	}
	t.Fatalf("session cookie was not set")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	registry := session.NewMemoryRegistry()
	resources := &stubResources{
		login: &stubLoginResource{
			authenticateFn: func(ctx context.Context, username, password string) (*ports.TokenGrant, error) {
				return nil, &domain.APIError{Name: "AuthenticationError", Message: "bad credentials", StatusCode: http.StatusUnauthorized}
			},
		},
	}
	handler := NewAuthHandler(resources, registry, testCookies, "sig", time.Hour, false, zerolog.Nop())

	c, rec := newLoginContext(e, `{"username":"alice@example.com","password":"wrong"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "username or password does not match any account" {
		t.Fatalf("unexpected error message: %v", resp["error"])
	}

	if n, _ := registry.Len(context.Background()); n != 0 {
		t.Fatalf("session registered for a failed login")
	}
}

func TestAuthHandler_Login_BackendDown(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	resources := &stubResources{
		login: &stubLoginResource{
			authenticateFn: func(ctx context.Context, username, password string) (*ports.TokenGrant, error) {
				return nil, domain.ServiceUnavailable("http://auth.local/api/v1/auth/login")
			},
		},
	}
	handler := NewAuthHandler(resources, session.NewMemoryRegistry(), testCookies, "sig", time.Hour, false, zerolog.Nop())

	c, _ := newLoginContext(e, `{"username":"alice@example.com","password":"s3cret"}`)
	err := handler.Login(c)

	// A 5xx from the backend is not the user's fault; it must surface as the
	// upstream error, not as invalid credentials.
	ae, ok := domain.AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %v", err)
	}
	if ae.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status: %d", ae.StatusCode)
	}
}

func TestAuthHandler_Login_InactiveUser(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	registry := session.NewMemoryRegistry()
	resources := &stubResources{
		login: &stubLoginResource{
			authenticateFn: func(ctx context.Context, username, password string) (*ports.TokenGrant, error) {
				return &ports.TokenGrant{AccessToken: "token-xyz"}, nil
			},
		},
		users: &stubUserResource{
			findFn: func(ctx context.Context, username string) (*domain.User, error) {
				return &domain.User{Internal: "u1", Username: username, Active: false}, nil
			},
		},
	}
	handler := NewAuthHandler(resources, registry, testCookies, "sig", time.Hour, false, zerolog.Nop())

	c, _ := newLoginContext(e, `{"username":"alice@example.com","password":"s3cret"}`)
	err := handler.Login(c)

	if !errors.Is(err, domain.ErrUserInactive) {
		t.Fatalf("expected ErrUserInactive, got %v", err)
	}
	if n, _ := registry.Len(context.Background()); n != 0 {
		t.Fatalf("session registered for an inactive user")
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	handler := NewAuthHandler(&stubResources{}, session.NewMemoryRegistry(), testCookies, "sig", time.Hour, false, zerolog.Nop())

	c, rec := newLoginContext(e, `{"username":"alice@example.com"}`)
	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := echo.New()

	registry := session.NewMemoryRegistry()
	user := domain.User{Internal: "u1", Username: "alice"}
	_ = registry.Add(context.Background(), "token-xyz", user)

	handler := NewAuthHandler(&stubResources{}, registry, testCookies, "sig", time.Hour, false, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUser, user)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if n, _ := registry.Len(context.Background()); n != 0 {
		t.Fatalf("session survived logout")
	}

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			if ck.MaxAge != -1 {
				t.Fatalf("expected cookie to be expired, got MaxAge %d", ck.MaxAge)
			}
			return
		}
	}
	t.Fatalf("expired session cookie was not sent")
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	var sentPassword string
	resources := &stubResources{
		users: &stubUserResource{
			getFn: func(ctx context.Context, internal string) (*domain.User, error) {
				return &domain.User{Internal: internal, Username: "alice"}, nil
			},
			updateFn: func(ctx context.Context, internal string, user domain.User) (*domain.User, error) {
				sentPassword = user.Password
				return &domain.User{Internal: internal, Username: user.Username}, nil
			},
		},
	}
	handler := NewAuthHandler(resources, session.NewMemoryRegistry(), testCookies, "sig", time.Hour, false, zerolog.Nop())

	body := `{"current_password":"old-pass","password":"new-pass","confirm_password":"new-pass"}`
	req := httptest.NewRequest(http.MethodPut, "/manage/profile/password", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUser, domain.User{Internal: "u1", Username: "alice"})
	c.Set(middleware.CtxCredential, domain.Credential{Provider: "sig", Authorization: "token-xyz"})

	if err := handler.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if sentPassword != "new-pass" {
		t.Fatalf("password was not forwarded, got %q", sentPassword)
	}
	if resources.usersCred.Authorization != "token-xyz" {
		t.Fatalf("request credential was not used: %+v", resources.usersCred)
	}
}

func TestAuthHandler_ChangePassword_Mismatch(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	handler := NewAuthHandler(&stubResources{}, session.NewMemoryRegistry(), testCookies, "sig", time.Hour, false, zerolog.Nop())

	body := `{"current_password":"old-pass","password":"new-pass","confirm_password":"other"}`
	req := httptest.NewRequest(http.MethodPut, "/manage/profile/password", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.ChangePassword(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
