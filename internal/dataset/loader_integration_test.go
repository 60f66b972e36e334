//go:build integration

package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/repository"
)

func setupTestLoader(t *testing.T, csv string, ttl time.Duration) (*Loader, string) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("cannot open test database: %v", err)
	}

	path := filepath.Join(t.TempDir(), "scorecard.csv")
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}

	repo := repository.NewSchoolRepo(db)
	return NewLoader(path, ttl, db, repo, zap.NewNop()), path
}

const loaderCSV = `School Name,State
Acme University,CA
Beta College,NY
`

func TestLoader_Ensure_MemoizesWithinTTL(t *testing.T) {
	loader, path := setupTestLoader(t, loaderCSV, 24*time.Hour)
	ctx := context.Background()

	if err := loader.Ensure(ctx); err != nil {
		t.Fatalf("initial load failed: %v", err)
	}
	n, err := loader.repo.Count(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 schools, got %d", n)
	}

	// Within the TTL a changed file is not picked up.
	extra := loaderCSV + "Gamma Institute,TX\n"
	if err := os.WriteFile(path, []byte(extra), 0o644); err != nil {
		t.Fatalf("cannot rewrite fixture: %v", err)
	}
	if err := loader.Ensure(ctx); err != nil {
		t.Fatalf("ensure failed: %v", err)
	}
	n, _ = loader.repo.Count(ctx)
	if n != 2 {
		t.Errorf("expected the memoized copy within TTL, got %d schools", n)
	}

	// After expiry the file is re-read.
	loader.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	if err := loader.Ensure(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	n, _ = loader.repo.Count(ctx)
	if n != 3 {
		t.Errorf("expected a refreshed copy after TTL, got %d schools", n)
	}
}

func TestLoader_Ensure_ServesStaleOnRefreshFailure(t *testing.T) {
	loader, path := setupTestLoader(t, loaderCSV, time.Hour)
	ctx := context.Background()

	if err := loader.Ensure(ctx); err != nil {
		t.Fatalf("initial load failed: %v", err)
	}

	// The file disappears; the expired refresh fails but the previous copy
	// keeps serving.
	if err := os.Remove(path); err != nil {
		t.Fatalf("cannot remove fixture: %v", err)
	}
	loader.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if err := loader.Ensure(ctx); err != nil {
		t.Fatalf("expected stale serving, got %v", err)
	}
	n, _ := loader.repo.Count(ctx)
	if n != 2 {
		t.Errorf("expected the stale copy to survive, got %d schools", n)
	}
}

func TestLoader_Reload_MissingFileFatal(t *testing.T) {
	loader, path := setupTestLoader(t, loaderCSV, time.Hour)

	if err := os.Remove(path); err != nil {
		t.Fatalf("cannot remove fixture: %v", err)
	}
	if err := loader.Reload(context.Background()); !errors.Is(err, ErrDatasetUnavailable) {
		t.Errorf("expected ErrDatasetUnavailable, got %v", err)
	}
}
