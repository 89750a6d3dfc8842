package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/iksnae/activity-recap/internal"
	"github.com/iksnae/activity-recap/testutil"
)

func TestDeleteCommand(t *testing.T) {
	db := testEnv(t)
	storage := testutil.OpenTestStore(t, db)
	testutil.SeedSession(t, storage, internal.CreateTestSession("sess-1"))
	testutil.SeedSession(t, storage, internal.CreateTestSession("sess-2"))

	// populate the recap cache for both sessions
	for _, id := range []string{"sess-1", "sess-2"} {
		if _, err := runCommand(t, "--db", db, "generate", id, "-f", "json"); err != nil {
			t.Fatalf("generate %s: %v", id, err)
		}
	}

	out, err := runCommand(t, "--db", db, "delete", "sess-1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !strings.Contains(out, "Deleted session sess-1") {
		t.Errorf("output = %q", out)
	}

	if _, err := storage.LoadSession(context.Background(), "sess-1"); !errors.Is(err, internal.ErrSessionNotFound) {
		t.Errorf("LoadSession after delete: error = %v, want ErrSessionNotFound", err)
	}

	cache := internal.NewCacheManager(cfg.CacheDir)
	index, err := cache.LoadIndex()
	if err != nil {
		t.Fatalf("LoadIndex: %v", err)
	}
	for _, entry := range index.Recaps {
		if entry.SessionID == "sess-1" {
			t.Errorf("cached recap for deleted session remains: %+v", entry)
		}
	}
	if len(index.Recaps) != 1 || index.Recaps[0].SessionID != "sess-2" {
		t.Errorf("index = %+v, want only sess-2", index.Recaps)
	}
}

func TestDeleteCommand_Errors(t *testing.T) {
	db := testEnv(t)

	if _, err := runCommand(t, "--db", db, "delete", "missing"); !errors.Is(err, internal.ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}
	if _, err := runCommand(t, "--db", db, "delete"); err == nil {
		t.Error("expected an error without a session id")
	}
}
