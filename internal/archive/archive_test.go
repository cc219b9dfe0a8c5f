package archive

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/codec"
)

func testEntries() []Entry {
	return []Entry{
		{Name: "hello.txt", Mode: 0o644, Data: []byte("hello, world")},
		{Name: "dir/nested.txt", Mode: 0o600, Data: bytes.Repeat([]byte("x"), 4096)},
		{Name: "empty.txt", Mode: 0o644, Data: nil},
	}
}

func packTestArchive(t *testing.T, dir string, password []byte, opts PackOptions) string {
	t.Helper()
	archivePath := filepath.Join(dir, "test.slm")
	opts.Algorithm = codec.Deflate
	opts.Level = 1
	if err := Pack(archivePath, password, testEntries(), opts, NoopLogger); err != nil {
		t.Fatalf("Pack: %v", err)
	}
	return archivePath
}

func TestPackUnpackRoundTrip(t *testing.T) {
	dir := t.TempDir()
	password := []byte("Str0ng!Passw0rd")
	archivePath := packTestArchive(t, dir, password, PackOptions{Comment: "a test archive"})

	outDir := filepath.Join(dir, "out")
	res, err := Unpack(archivePath, password, UnpackOptions{TargetDir: outDir})
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if len(res.ExtractedFiles) != 3 {
		t.Fatalf("extracted %d files, want 3", len(res.ExtractedFiles))
	}
	if res.Comment != "a test archive" {
		t.Fatalf("comment = %q", res.Comment)
	}

	got, err := os.ReadFile(filepath.Join(outDir, "hello.txt"))
	if err != nil {
		t.Fatalf("read extracted file: %v", err)
	}
	if string(got) != "hello, world" {
		t.Fatalf("extracted content = %q", got)
	}

	empty, err := os.ReadFile(filepath.Join(outDir, "empty.txt"))
	if err != nil {
		t.Fatalf("read extracted empty file: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("empty.txt has %d bytes, want 0", len(empty))
	}
}

func TestUnpackWrongPasswordFails(t *testing.T) {
	dir := t.TempDir()
	archivePath := packTestArchive(t, dir, []byte("correct-password-1"), PackOptions{})

	_, err := Unpack(archivePath, []byte("wrong-password-99"), UnpackOptions{TargetDir: filepath.Join(dir, "out")})
	if err == nil {
		t.Fatal("expected header auth failure with wrong password")
	}
}

func TestUnpackDetectsHeaderTamper(t *testing.T) {
	dir := t.TempDir()
	password := []byte("correct-password-1")
	archivePath := packTestArchive(t, dir, password, PackOptions{})

	data, err := os.ReadFile(archivePath)
	if err != nil {
		t.Fatal(err)
	}
	data[10] ^= 0xFF
	if err := os.WriteFile(archivePath, data, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err = Unpack(archivePath, password, UnpackOptions{TargetDir: filepath.Join(dir, "out")})
	if err == nil {
		t.Fatal("expected header authentication failure on tampered header")
	}
}

func TestUnpackDetectsEntryTamper(t *testing.T) {
	dir := t.TempDir()
	password := []byte("correct-password-1")
	archivePath := packTestArchive(t, dir, password, PackOptions{})

	data, err := os.ReadFile(archivePath)
	if err != nil {
		t.Fatal(err)
	}
	// Flip a byte just past the header, inside the first entry's metadata
	// frame (nonce||tag||ciphertext) — any bit here breaks GCM auth.
	data[900] ^= 0xFF
	if err := os.WriteFile(archivePath, data, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err = Unpack(archivePath, password, UnpackOptions{TargetDir: filepath.Join(dir, "out")})
	if err == nil {
		t.Fatal("expected entry authentication failure on tampered entry metadata")
	}
}

func TestListDoesNotRequirePayloadDecryption(t *testing.T) {
	dir := t.TempDir()
	password := []byte("correct-password-1")
	archivePath := packTestArchive(t, dir, password, PackOptions{Comment: "listing only"})

	res, err := List(archivePath, password, NoopLogger)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(res.Entries) != 3 {
		t.Fatalf("listed %d entries, want 3", len(res.Entries))
	}
	if res.Errors != 0 {
		t.Fatalf("Errors = %d, want 0", res.Errors)
	}
	if res.Comment != "listing only" {
		t.Fatalf("comment = %q", res.Comment)
	}
}

func TestViewCommentReturnsDecryptedComment(t *testing.T) {
	dir := t.TempDir()
	password := []byte("correct-password-1")
	archivePath := packTestArchive(t, dir, password, PackOptions{Comment: "hello from the header"})

	comment, err := ViewComment(archivePath, password)
	if err != nil {
		t.Fatalf("ViewComment: %v", err)
	}
	if comment != "hello from the header" {
		t.Fatalf("comment = %q", comment)
	}
}

func TestPackRefusesExistingDestinationWithoutOverwrite(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "test.slm")
	if err := os.WriteFile(archivePath, []byte("not an archive"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Pack(archivePath, []byte("password-123"), testEntries(), PackOptions{Algorithm: codec.Deflate, Level: 1}, NoopLogger)
	if err == nil {
		t.Fatal("expected ErrDestinationExists")
	}
}

func TestPackRejectsPathTraversalEntry(t *testing.T) {
	dir := t.TempDir()
	entries := []Entry{{Name: "../escape.txt", Data: []byte("x")}}
	err := Pack(filepath.Join(dir, "test.slm"), []byte("password-123"), entries, PackOptions{Algorithm: codec.Deflate, Level: 1}, NoopLogger)
	if err == nil {
		t.Fatal("expected path traversal rejection")
	}
}

func TestPackDryRunWritesNoFile(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "test.slm")
	err := Pack(archivePath, []byte("password-123"), testEntries(), PackOptions{Algorithm: codec.Deflate, Level: 1, DryRun: true}, NoopLogger)
	if err != nil {
		t.Fatalf("Pack dry run: %v", err)
	}
	if _, statErr := os.Stat(archivePath); !os.IsNotExist(statErr) {
		t.Fatal("dry run must not create the archive file")
	}
}

func TestPackUsesFreshSaltAndNonces(t *testing.T) {
	dir := t.TempDir()
	a := packTestArchive(t, dir, []byte("correct-password-1"), PackOptions{})
	outA, err := os.ReadFile(a)
	if err != nil {
		t.Fatal(err)
	}
	b := packTestArchive(t, t.TempDir(), []byte("correct-password-1"), PackOptions{})
	outB, err := os.ReadFile(b)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(outA, outB) {
		t.Fatal("two packs with fresh random salt/nonces must not be byte-identical")
	}
}
