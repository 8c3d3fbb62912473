package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "scores.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database file not created: %v", err)
	}
}

func TestTopRunsOrdering(t *testing.T) {
	s := openTestStore(t)
	runs := []struct {
		score, level int
	}{
		{50, 1},
		{120, 2},
		{120, 3},
		{0, 1},
		{300, 4},
	}
	for _, r := range runs {
		if _, err := s.RecordRun(r.score, r.level, 7); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	cases := []struct {
		name  string
		limit int
		want  [][2]int
	}{
		{"top_three", 3, [][2]int{{300, 4}, {120, 3}, {120, 2}}},
		{"default_limit", 0, [][2]int{{300, 4}, {120, 3}, {120, 2}, {50, 1}, {0, 1}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := s.TopRuns(c.limit)
			if err != nil {
				t.Fatalf("TopRuns() failed: %v", err)
			}
			if len(got) != len(c.want) {
				t.Fatalf("got %d runs, want %d", len(got), len(c.want))
			}
			for i, w := range c.want {
				if got[i].Score != w[0] || got[i].Level != w[1] {
					t.Fatalf("run %d = %d/%d, want %d/%d", i, got[i].Score, got[i].Level, w[0], w[1])
				}
				if got[i].Seed != 7 {
					t.Fatalf("run %d seed = %d, want 7", i, got[i].Seed)
				}
			}
		})
	}
}

func TestBest(t *testing.T) {
	s := openTestStore(t)
	best, err := s.Best()
	if err != nil || best != 0 {
		t.Fatalf("Best() on empty store = %d, %v", best, err)
	}
	s.RecordRun(40, 1, 0)
	s.RecordRun(90, 2, 0)
	if best, err = s.Best(); err != nil || best != 90 {
		t.Fatalf("Best() = %d, %v, want 90", best, err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := expandHome("~/.starcatch/scores.db")
	if err != nil {
		t.Fatalf("expandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".starcatch", "scores.db"); got != want {
		t.Fatalf("expandHome() = %q, want %q", got, want)
	}
	if got, _ := expandHome("rel/scores.db"); got != "rel/scores.db" {
		t.Fatalf("relative path changed to %q", got)
	}
}
