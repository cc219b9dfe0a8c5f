package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPackUnpackCmd_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	inFile := filepath.Join(dir, "secret.txt")
	archivePath := filepath.Join(dir, "secret.slm")
	outDir := filepath.Join(dir, "out")

	if err := os.WriteFile(inFile, []byte("my secret data"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SECLUME_PASSWORD", "Correct-Horse-Battery-Staple9!")

	root := NewRootCmd()
	root.SetArgs([]string{
		"pack", inFile,
		"--output", archivePath,
	})
	if err := root.Execute(); err != nil {
		t.Fatalf("pack: %v", err)
	}
	if _, err := os.Stat(archivePath); err != nil {
		t.Fatalf("archive not written: %v", err)
	}

	root = NewRootCmd()
	root.SetArgs([]string{
		"unpack", archivePath,
		"--outdir", outDir,
	})
	if err := root.Execute(); err != nil {
		t.Fatalf("unpack: %v", err)
	}

	extracted, err := os.ReadFile(filepath.Join(outDir, filepath.Base(inFile)))
	if err != nil {
		t.Fatalf("read extracted file: %v", err)
	}
	if string(extracted) != "my secret data" {
		t.Errorf("extracted content = %q", extracted)
	}
}

func TestPackCmd_MissingArgs(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"pack"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error with no input paths")
	}
}

func TestListCmd_ReportsEntries(t *testing.T) {
	dir := t.TempDir()
	inFile := filepath.Join(dir, "notes.txt")
	archivePath := filepath.Join(dir, "notes.slm")

	if err := os.WriteFile(inFile, []byte("hello"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SECLUME_PASSWORD", "Correct-Horse-Battery-Staple9!")

	root := NewRootCmd()
	root.SetArgs([]string{"pack", inFile, "--output", archivePath})
	if err := root.Execute(); err != nil {
		t.Fatalf("pack: %v", err)
	}

	root = NewRootCmd()
	root.SetArgs([]string{"list", archivePath, "--json"})
	if err := root.Execute(); err != nil {
		t.Fatalf("list: %v", err)
	}
}

func TestCommentCmd_ReturnsStoredComment(t *testing.T) {
	dir := t.TempDir()
	inFile := filepath.Join(dir, "notes.txt")
	archivePath := filepath.Join(dir, "notes.slm")

	if err := os.WriteFile(inFile, []byte("hello"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SECLUME_PASSWORD", "Correct-Horse-Battery-Staple9!")

	root := NewRootCmd()
	root.SetArgs([]string{"pack", inFile, "--output", archivePath, "--comment", "release notes"})
	if err := root.Execute(); err != nil {
		t.Fatalf("pack: %v", err)
	}

	root = NewRootCmd()
	root.SetArgs([]string{"comment", archivePath})
	if err := root.Execute(); err != nil {
		t.Fatalf("comment: %v", err)
	}
}
