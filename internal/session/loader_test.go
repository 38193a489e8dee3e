package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wplex/atlas-admin/internal/core/domain"
)

var loaderSecret = []byte("loader-test-secret")

func signToken(t *testing.T, key []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub": "alice",
		"iss": "wplex-atlas-auth",
		"aud": "web",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
}

func newTestLoader(registry *MemoryRegistry, verify bool) *Loader {
	return NewLoader(registry, LoaderOptions{
		Secret:          loaderSecret,
		Audience:        "web",
		Issuer:          "wplex-atlas-auth",
		VerifySignature: verify,
	}, zerolog.Nop())
}

func TestLoader_Load_ValidSession(t *testing.T) {
	registry := NewMemoryRegistry()
	internal := uuid.NewString()
	token := signToken(t, loaderSecret, validClaims())
	_ = registry.Add(context.Background(), token, domain.User{Internal: internal, Username: "alice"})

	loader := newTestLoader(registry, true)
	user, gotToken, ok := loader.Load(context.Background(), internal)
	if !ok {
		t.Fatalf("expected session to load")
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if gotToken != token {
		t.Fatalf("expected the registered token back")
	}
}

func TestLoader_Load_UnknownInternal(t *testing.T) {
	loader := newTestLoader(NewMemoryRegistry(), true)

	_, _, ok := loader.Load(context.Background(), uuid.NewString())
	if ok {
		t.Fatalf("expected anonymous result for unknown internal")
	}
}

func TestLoader_Load_TamperedSignature(t *testing.T) {
	registry := NewMemoryRegistry()
	internal := uuid.NewString()
	token := signToken(t, []byte("some-other-key"), validClaims())
	_ = registry.Add(context.Background(), token, domain.User{Internal: internal})

	loader := newTestLoader(registry, true)
	if _, _, ok := loader.Load(context.Background(), internal); ok {
		t.Fatalf("tampered token was accepted")
	}
}

func TestLoader_Load_SkipSignatureAcceptsForeignKey(t *testing.T) {
	registry := NewMemoryRegistry()
	internal := uuid.NewString()
	token := signToken(t, []byte("gateway-key-we-never-see"), validClaims())
	_ = registry.Add(context.Background(), token, domain.User{Internal: internal})

	loader := newTestLoader(registry, false)
	if _, _, ok := loader.Load(context.Background(), internal); !ok {
		t.Fatalf("expected token to load with signature verification off")
	}
}

func TestLoader_Load_ExpiredToken(t *testing.T) {
	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Minute).Unix()

	for _, verify := range []bool{true, false} {
		registry := NewMemoryRegistry()
		internal := uuid.NewString()
		_ = registry.Add(context.Background(), signToken(t, loaderSecret, claims), domain.User{Internal: internal})

		loader := newTestLoader(registry, verify)
		if _, _, ok := loader.Load(context.Background(), internal); ok {
			t.Fatalf("expired token was accepted (verify=%v)", verify)
		}
	}
}

func TestLoader_Load_MissingExpiration(t *testing.T) {
	claims := validClaims()
	delete(claims, "exp")

	registry := NewMemoryRegistry()
	internal := uuid.NewString()
	_ = registry.Add(context.Background(), signToken(t, loaderSecret, claims), domain.User{Internal: internal})

	loader := newTestLoader(registry, false)
	if _, _, ok := loader.Load(context.Background(), internal); ok {
		t.Fatalf("token without exp was accepted")
	}
}

func TestLoader_Load_WrongIssuer(t *testing.T) {
	claims := validClaims()
	claims["iss"] = "somebody-else"

	registry := NewMemoryRegistry()
	internal := uuid.NewString()
	_ = registry.Add(context.Background(), signToken(t, loaderSecret, claims), domain.User{Internal: internal})

	loader := newTestLoader(registry, false)
	if _, _, ok := loader.Load(context.Background(), internal); ok {
		t.Fatalf("token with wrong issuer was accepted")
	}
}

func TestLoader_Load_WrongAudience(t *testing.T) {
	claims := validClaims()
	claims["aud"] = "mobile"

	registry := NewMemoryRegistry()
	internal := uuid.NewString()
	_ = registry.Add(context.Background(), signToken(t, loaderSecret, claims), domain.User{Internal: internal})

	loader := newTestLoader(registry, false)
	if _, _, ok := loader.Load(context.Background(), internal); ok {
		t.Fatalf("token with wrong audience was accepted")
	}
}

func TestLoader_Load_GarbageToken(t *testing.T) {
	registry := NewMemoryRegistry()
	internal := uuid.NewString()
	_ = registry.Add(context.Background(), "not-a-jwt", domain.User{Internal: internal})

	loader := newTestLoader(registry, false)
	if _, _, ok := loader.Load(context.Background(), internal); ok {
		t.Fatalf("garbage token was accepted")
	}
}
