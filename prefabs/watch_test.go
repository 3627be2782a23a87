package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	for _, name := range []string{"notes.txt", "level.yaml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	target := filepath.Join(dir, "player.yaml")
	if err := os.WriteFile(target, []byte("name: mech\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-w.Events:
		if got.Kind != ReloadPlayer || got.Path != target {
			t.Fatalf("expected player change at %s, got %s at %s", target, got.Kind, got.Path)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for change event")
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		path string
		want ReloadKind
	}{
		{"prefabs/player.yaml", ReloadPlayer},
		{"combat.yml", ReloadCombat},
		{"prefabs/scripts/damage.tengo", ReloadCombat},
		{"GAME.yaml", ReloadGame},
		{"enemy.yaml", ReloadEnemy},
		{"arena.yaml", ReloadArena},
		{"level.yaml", ReloadNone},
		{"player.json", ReloadNone},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			if got := KindOf(c.path); got != c.want {
				t.Fatalf("KindOf(%q) = %s, want %s", c.path, got, c.want)
			}
		})
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatalf("events channel should be closed")
	}
}
