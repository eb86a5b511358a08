package pausestore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Zay931/waybar-tailscale-module/internal/pausestore"
)

func tempStore(t *testing.T) (*pausestore.Store, string) {
	t.Helper()
	dir := t.TempDir()
	return pausestore.New(filepath.Join(dir, "pause.json")), dir
}

func TestLoadMissing(t *testing.T) {
	s, _ := tempStore(t)
	rec, err := s.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil record, got %+v", rec)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := tempStore(t)
	until := time.Now().Add(5 * time.Minute).Truncate(time.Second)

	if err := s.Save(until); err != nil {
		t.Fatalf("Save: %v", err)
	}
	rec, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec == nil {
		t.Fatal("Load returned nil after Save")
	}
	if !rec.Until.Equal(until) {
		t.Errorf("Until = %v, want %v", rec.Until, until)
	}
}

func TestLoadCorruptIsAbsent(t *testing.T) {
	s, dir := tempStore(t)
	path := filepath.Join(dir, "pause.json")
	if err := os.WriteFile(path, []byte("{half a rec"), 0600); err != nil {
		t.Fatal(err)
	}

	rec, err := s.Load()
	if err != nil {
		t.Fatalf("Load on corrupt file: %v", err)
	}
	if rec != nil {
		t.Errorf("corrupt file should read as absent, got %+v", rec)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt file should have been removed")
	}
}

func TestLoadZeroDeadlineIsAbsent(t *testing.T) {
	s, dir := tempStore(t)
	path := filepath.Join(dir, "pause.json")
	if err := os.WriteFile(path, []byte(`{"paused_until":"0001-01-01T00:00:00Z"}`), 0600); err != nil {
		t.Fatal(err)
	}
	rec, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec != nil {
		t.Errorf("zero deadline should read as absent, got %+v", rec)
	}
}

func TestSaveAtomicNoResidue(t *testing.T) {
	s, dir := tempStore(t)
	if err := s.Save(time.Now().Add(time.Minute)); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(time.Now().Add(2 * time.Minute)); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "pause.json" {
			t.Errorf("unexpected file: %s", e.Name())
		}
	}
}

func TestClear(t *testing.T) {
	s, _ := tempStore(t)
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear on missing file: %v", err)
	}
	if err := s.Save(time.Now().Add(time.Minute)); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	rec, _ := s.Load()
	if rec != nil {
		t.Errorf("record survived Clear: %+v", rec)
	}
}
