package session

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestMemoryStore_AddAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	names, err := store.Add(ctx, "sess-1", "Acme University")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 || names[0] != "Acme University" {
		t.Errorf("unexpected selection: %v", names)
	}

	// Duplicate add is a no-op.
	names, err = store.Add(ctx, "sess-1", "Acme University")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 {
		t.Errorf("duplicate add changed the selection: %v", names)
	}

	// Sessions are isolated.
	other, err := store.Get(ctx, "sess-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected empty selection for a fresh session, got %v", other)
	}
}

func TestMemoryStore_CapAtFive(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := store.Add(ctx, "sess-1", fmt.Sprintf("School %d", i)); err != nil {
			t.Fatalf("add %d failed: %v", i, err)
		}
	}

	if _, err := store.Add(ctx, "sess-1", "School 5"); !errors.Is(err, ErrSelectionLimitExceeded) {
		t.Errorf("expected ErrSelectionLimitExceeded, got %v", err)
	}

	// Re-adding a member of a full selection is still a no-op, not an error.
	names, err := store.Add(ctx, "sess-1", "School 0")
	if err != nil {
		t.Errorf("duplicate add at the cap must not fail: %v", err)
	}
	if len(names) != 5 {
		t.Errorf("unexpected selection size %d", len(names))
	}
}

func TestMemoryStore_OrderPreserved(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, n := range []string{"C", "A", "B"} {
		if _, err := store.Add(ctx, "sess-1", n); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}
	names, _ := store.Get(ctx, "sess-1")
	if names[0] != "C" || names[1] != "A" || names[2] != "B" {
		t.Errorf("insertion order not preserved: %v", names)
	}

	names, err := store.Remove(ctx, "sess-1", "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 || names[0] != "C" || names[1] != "B" {
		t.Errorf("order broken by removal: %v", names)
	}
}

func TestMemoryStore_RemoveAndClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Add(ctx, "sess-1", "Acme University")

	// Removing an unselected school is a no-op.
	names, err := store.Remove(ctx, "sess-1", "Nowhere State")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 {
		t.Errorf("no-op removal changed the selection: %v", names)
	}

	if err := store.Clear(ctx, "sess-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	names, _ = store.Get(ctx, "sess-1")
	if len(names) != 0 {
		t.Errorf("expected empty selection after clear, got %v", names)
	}

	// Clearing an unknown session is fine.
	if err := store.Clear(ctx, "never-seen"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Add(ctx, "sess-1", "Acme University")
	names, _ := store.Get(ctx, "sess-1")
	names[0] = "mutated"

	again, _ := store.Get(ctx, "sess-1")
	if again[0] != "Acme University" {
		t.Error("Get must return a copy, not the backing slice")
	}
}
