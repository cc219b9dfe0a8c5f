package enumerate

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeFile(t *testing.T, path string, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWalkCollectsFilesRecursively(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "sub", "b.txt"), "b")
	writeFile(t, filepath.Join(dir, "sub", "c.log"), "c")

	entries, err := Walk([]string{dir}, nil, nil)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
}

func TestWalkAppliesExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.txt"), "k")
	writeFile(t, filepath.Join(dir, "drop.log"), "d")

	entries, err := Walk([]string{dir}, nil, []string{"*.log"})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if filepath.Base(entries[0].Name) != "keep.txt" {
		t.Fatalf("unexpected survivor: %s", entries[0].Name)
	}
}

func TestWalkExcludeWinsOverInclude(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.txt"), "k")
	writeFile(t, filepath.Join(dir, "skip.txt"), "s")

	entries, err := Walk([]string{dir}, []string{"*.txt"}, []string{"skip.txt"})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	got := make([]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, filepath.Base(e.Name))
	}
	sort.Strings(got)
	if len(got) != 1 || got[0] != "keep.txt" {
		t.Fatalf("got %v, want [keep.txt]", got)
	}
}

func TestWalkSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solo.txt")
	writeFile(t, path, "solo")

	entries, err := Walk([]string{path}, nil, nil)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(entries) != 1 || string(entries[0].Data) != "solo" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestWalkRejectsMissingPath(t *testing.T) {
	if _, err := Walk([]string{"/nonexistent/path/for/testing"}, nil, nil); err == nil {
		t.Fatal("expected error for missing path")
	}
}
