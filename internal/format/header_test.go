package format

import "testing"

func TestHeaderRoundTrip(t *testing.T) {
	h := &Header{
		Version:          CurrentVersion,
		CompressionAlgo:  AlgoLZMA,
		CompressionLevel: 3,
		FileCount:        2,
		CommentLen:       5,
	}
	copy(h.Salt[:], []byte("0123456789abcdef"))

	buf := h.Marshal()
	if len(buf) != HeaderSize {
		t.Fatalf("marshaled size %d, want %d", len(buf), HeaderSize)
	}

	var got Header
	if err := got.Unmarshal(buf); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Version != h.Version || got.CompressionAlgo != h.CompressionAlgo ||
		got.CompressionLevel != h.CompressionLevel || got.FileCount != h.FileCount ||
		got.CommentLen != h.CommentLen {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", got, h)
	}
}

func TestHeaderRejectsBadMagic(t *testing.T) {
	h := &Header{Version: CurrentVersion}
	buf := h.Marshal()
	buf[0] = 'X'

	var got Header
	if err := got.Unmarshal(buf); err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestHeaderRejectsOutOfRangeVersion(t *testing.T) {
	h := &Header{Version: 7}
	buf := h.Marshal()

	var got Header
	if err := got.Unmarshal(buf); err == nil {
		t.Fatal("expected error for unsupported version")
	}
}

func TestHeaderRejectsExcessiveFileCount(t *testing.T) {
	h := &Header{Version: CurrentVersion, FileCount: MaxFiles + 1}
	buf := h.Marshal()

	var got Header
	if err := got.Unmarshal(buf); err == nil {
		t.Fatal("expected error for file_count over MaxFiles")
	}
}

func TestResolveAlgorithmLegacyVersion4(t *testing.T) {
	h := &Header{Version: 4, CompressionAlgo: 0xFF}
	algo, err := h.ResolveAlgorithm()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if algo != AlgoLZMA {
		t.Fatalf("version 4 must force LZMA, got %d", algo)
	}
}

func TestResolveAlgorithmRejectsBadEnum(t *testing.T) {
	h := &Header{Version: CurrentVersion, CompressionAlgo: 0xFF}
	if _, err := h.ResolveAlgorithm(); err == nil {
		t.Fatal("expected error for invalid compression_algo")
	}
}

func TestBytesForHMACExcludesHMACField(t *testing.T) {
	h := &Header{Version: CurrentVersion}
	copy(h.HMAC[:], []byte("not-zero-not-zero-not-zero-xxxx"))
	prefix := h.BytesForHMAC()
	if len(prefix) != HeaderSize-32 {
		t.Fatalf("prefix length %d, want %d", len(prefix), HeaderSize-32)
	}
}
