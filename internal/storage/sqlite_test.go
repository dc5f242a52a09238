package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	sessions := []Session{
		{Variant: "classic", Frontend: "tui", Seed: 1, Duration: 1500 * time.Millisecond, Frames: 90, WallBounces: 2, PaddleHits: 1},
		{Variant: "classic", Frontend: "window", Frames: 600, PaddleHits: 7},
		{Variant: "rigid", Frontend: "ssh", Frames: 30},
	}
	for _, sess := range sessions {
		if _, err := store.SaveSession(sess); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	classic, err := store.RecentSessions("classic", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(classic) != 2 {
		t.Fatalf("Expected 2 classic sessions, got %d", len(classic))
	}

	// Newest first
	if classic[0].Frontend != "window" || classic[0].Frames != 600 {
		t.Errorf("Expected newest session first, got %+v", classic[0])
	}
	first := classic[1]
	if first.Duration != 1500*time.Millisecond {
		t.Errorf("Duration = %v, expected 1.5s", first.Duration)
	}
	if first.Seed != 1 || first.WallBounces != 2 || first.PaddleHits != 1 {
		t.Errorf("Session fields not preserved: %+v", first)
	}

	all, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 sessions across variants, got %d", len(all))
	}
}

func TestStoreRecentSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveSession(Session{Variant: "classic", Frontend: "tui", Frames: uint64(i)})
	}

	sessions, err := store.RecentSessions("classic", 3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(sessions))
	}
	if sessions[0].Frames != 4 || sessions[2].Frames != 2 {
		t.Errorf("Sessions not in expected order: %+v", sessions)
	}
}

func TestStoreSaveSessionRequiresVariant(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSession(Session{Frontend: "tui"}); err == nil {
		t.Error("SaveSession() without variant should fail")
	}
}

func TestStoreVariantStats(t *testing.T) {
	store := openTestStore(t)

	// No sessions yet
	st, err := store.GetVariantStats("classic")
	if err != nil {
		t.Fatalf("GetVariantStats() failed: %v", err)
	}
	if st.Sessions != 0 {
		t.Errorf("Expected 0 sessions for empty variant, got %d", st.Sessions)
	}

	store.SaveSession(Session{Variant: "classic", Frontend: "tui", Duration: time.Second, Frames: 60, WallBounces: 1, PaddleHits: 3})
	store.SaveSession(Session{Variant: "classic", Frontend: "tui", Duration: 2 * time.Second, Frames: 120, WallBounces: 4, PaddleHits: 5})
	store.SaveSession(Session{Variant: "rigid", Frontend: "tui", Frames: 10})

	st, err = store.GetVariantStats("classic")
	if err != nil {
		t.Fatalf("GetVariantStats() failed: %v", err)
	}
	if st.Sessions != 2 || st.TotalFrames != 180 || st.TotalDuration != 3*time.Second {
		t.Errorf("Unexpected totals: %+v", st)
	}
	if st.WallBounces != 5 || st.PaddleHits != 8 || st.MostHits != 5 {
		t.Errorf("Unexpected collision totals: %+v", st)
	}

	all, err := store.GetAllVariantStats()
	if err != nil {
		t.Fatalf("GetAllVariantStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected stats for 2 variants, got %d", len(all))
	}
	if all["rigid"] == nil || all["rigid"].Sessions != 1 {
		t.Errorf("Unexpected rigid stats: %+v", all["rigid"])
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{Variant: "classic", Frontend: "tui"})
	store.SaveSession(Session{Variant: "classic", Frontend: "tui"})
	store.SaveSession(Session{Variant: "rigid", Frontend: "tui"})

	if err := store.ClearSessions("classic"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	classic, _ := store.RecentSessions("classic", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic sessions after clear, got %d", len(classic))
	}

	rigid, _ := store.RecentSessions("rigid", 10)
	if len(rigid) != 1 {
		t.Errorf("Rigid sessions should not be affected by clearing classic")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		in       any
		expected time.Time
	}{
		{"time value", want, want},
		{"sqlite string", "2024-05-01 12:30:00", want},
		{"garbage", "yesterday", time.Time{}},
		{"null", nil, time.Time{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTime(tc.in); !got.Equal(tc.expected) {
				t.Errorf("parseTime(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}
