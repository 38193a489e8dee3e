package session

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/wplex/atlas-admin/internal/core/domain"
)

func TestMemoryRegistry_AddAndFind(t *testing.T) {
	r := NewMemoryRegistry()
	ctx := context.Background()

	internal := uuid.NewString()
	if err := r.Add(ctx, "token-1", domain.User{Internal: internal, Username: "alice"}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	entry, err := r.Find(ctx, internal)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if entry == nil {
		t.Fatalf("expected entry, got nil")
	}
	if entry.Token != "token-1" || entry.User.Username != "alice" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestMemoryRegistry_FindMissReturnsNil(t *testing.T) {
	r := NewMemoryRegistry()

	entry, err := r.Find(context.Background(), uuid.NewString())
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if entry != nil {
		t.Fatalf("expected nil entry, got %+v", entry)
	}
}

func TestMemoryRegistry_AddReplacesExistingSession(t *testing.T) {
	r := NewMemoryRegistry()
	ctx := context.Background()

	internal := uuid.NewString()
	_ = r.Add(ctx, "old-token", domain.User{Internal: internal})
	_ = r.Add(ctx, "new-token", domain.User{Internal: internal})

	n, err := r.Len(ctx)
	if err != nil {
		t.Fatalf("Len returned error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 entry after relogin, got %d", n)
	}

	entry, _ := r.Find(ctx, internal)
	if entry == nil || entry.Token != "new-token" {
		t.Fatalf("expected the new token, got %+v", entry)
	}
}

func TestMemoryRegistry_RemoveLeavesOthers(t *testing.T) {
	r := NewMemoryRegistry()
	ctx := context.Background()

	a := uuid.NewString()
	b := uuid.NewString()
	_ = r.Add(ctx, "token-a", domain.User{Internal: a})
	_ = r.Add(ctx, "token-b", domain.User{Internal: b})

	if err := r.Remove(ctx, a); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}

	if entry, _ := r.Find(ctx, a); entry != nil {
		t.Fatalf("removed session still present: %+v", entry)
	}
	entry, _ := r.Find(ctx, b)
	if entry == nil || entry.Token != "token-b" {
		t.Fatalf("unrelated session was dropped")
	}
}

func TestMemoryRegistry_RemoveMissingIsNoop(t *testing.T) {
	r := NewMemoryRegistry()
	ctx := context.Background()

	_ = r.Add(ctx, "token", domain.User{Internal: uuid.NewString()})
	if err := r.Remove(ctx, "nobody"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if n, _ := r.Len(ctx); n != 1 {
		t.Fatalf("expected 1 entry, got %d", n)
	}
}

func TestMemoryRegistry_ConcurrentAccess(t *testing.T) {
	r := NewMemoryRegistry()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			internal := fmt.Sprintf("user-%d", i)
			_ = r.Add(ctx, "token", domain.User{Internal: internal})
			_, _ = r.Find(ctx, internal)
			if i%2 == 0 {
				_ = r.Remove(ctx, internal)
			}
		}(i)
	}
	wg.Wait()

	n, err := r.Len(ctx)
	if err != nil {
		t.Fatalf("Len returned error: %v", err)
	}
	if n != 25 {
		t.Fatalf("expected 25 surviving sessions, got %d", n)
	}
}
