package records

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/phambaophuc/ai-photobooth/internal/config"
	"go.uber.org/zap"
)

// SetupTestStore opens an in-memory SQLite store with the schema applied and a
// clock that advances one second per call.
func SetupTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := Open(context.Background(), config.DatabaseConfig{Driver: DriverSQLite, DSN: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	s := NewStore(db, DriverSQLite, zap.NewNop())
	if err := s.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	clock := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	ids := 0
	s.newID = func() string {
		ids++
		return fmt.Sprintf("id-%03d", ids)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})
	return s
}
