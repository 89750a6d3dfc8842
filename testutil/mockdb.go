package testutil

import (
	"context"
	"testing"

	"github.com/iksnae/activity-recap/internal"
)

// OpenTestStore opens (creating if needed) the event store at path. The
// database is closed when the test ends.
func OpenTestStore(t *testing.T, path string) *internal.Storage {
	t.Helper()
	db, err := internal.OpenDatabase(path)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return internal.NewStorage(db)
}

// SeedSession stores a session in the event store
func SeedSession(t *testing.T, storage *internal.Storage, session *internal.RecordingSession) {
	t.Helper()
	if err := storage.SaveSession(context.Background(), session); err != nil {
		t.Fatalf("Failed to seed session %s: %v", session.ID, err)
	}
}
