package cache

import (
	"errors"
	"testing"
	"time"
)

func TestTTL_GetSet(t *testing.T) {
	c := New[string]()

	if _, ok := c.Get("missing"); ok {
		t.Error("expected a miss for an unknown key")
	}

	c.Set("k", "v", time.Minute)
	v, ok := c.Get("k")
	if !ok || v != "v" {
		t.Errorf("expected live entry, got %q / %v", v, ok)
	}
}

func TestTTL_Expiry(t *testing.T) {
	c := New[int]()
	current := time.Now()
	c.now = func() time.Time { return current }

	c.Set("k", 42, time.Hour)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("expected entry before expiry")
	}

	current = current.Add(time.Hour + time.Second)
	if _, ok := c.Get("k"); ok {
		t.Error("expected a miss after expiry")
	}

	// A fresh Set replaces the expired entry.
	c.Set("k", 7, time.Hour)
	v, ok := c.Get("k")
	if !ok || v != 7 {
		t.Errorf("expected refreshed entry, got %d / %v", v, ok)
	}
}

func TestTTL_GetOrLoad(t *testing.T) {
	c := New[string]()
	loads := 0

	for i := 0; i < 3; i++ {
		v, err := c.GetOrLoad("k", time.Minute, func() (string, error) {
			loads++
			return "loaded", nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != "loaded" {
			t.Errorf("unexpected value %q", v)
		}
	}
	if loads != 1 {
		t.Errorf("expected a single load, got %d", loads)
	}
}

func TestTTL_GetOrLoad_ErrorNotCached(t *testing.T) {
	c := New[string]()
	wantErr := errors.New("upstream down")
	calls := 0

	load := func() (string, error) {
		calls++
		if calls == 1 {
			return "", wantErr
		}
		return "recovered", nil
	}

	if _, err := c.GetOrLoad("k", time.Minute, load); !errors.Is(err, wantErr) {
		t.Fatalf("expected load error, got %v", err)
	}
	// The failure was not cached; the next call retries.
	v, err := c.GetOrLoad("k", time.Minute, load)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "recovered" || calls != 2 {
		t.Errorf("expected a retry, got %q after %d calls", v, calls)
	}
}
