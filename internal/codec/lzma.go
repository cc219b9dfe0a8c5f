package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

// lzmaDictCapForLevel maps the archive's 0-9 compression level onto an xz
// dictionary capacity: level 0 ("store") still runs through the LZMA
// encoder (the family has no raw pass-through mode) but with the smallest
// usable dictionary, and each level above 0 doubles it, so level 9 uses
// MinDictCap << 9.
func lzmaDictCapForLevel(level int) int {
	if level <= 0 {
		return lzma.MinDictCap
	}
	// Doubles per level; the 64 MiB cap is not reached by levels 1-9.
	cap := lzma.MinDictCap << uint(level)
	const ceiling = 64 << 20
	if cap > ceiling {
		cap = ceiling
	}
	return cap
}

func lzmaCompress(data []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	cfg := xz.WriterConfig{DictCap: lzmaDictCapForLevel(level)}
	if err := cfg.Verify(); err != nil {
		return nil, fmt.Errorf("lzma config: %w", err)
	}
	w, err := cfg.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("lzma writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("lzma write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lzma close: %w", err)
	}
	return buf.Bytes(), nil
}

func lzmaDecompress(data []byte, declaredSize int64) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("lzma reader: %w", err)
	}

	limited := io.LimitReader(r, declaredSize+1)
	out, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("lzma decompress: %w", err)
	}
	if int64(len(out)) > declaredSize {
		return nil, ErrDecompressOverflow
	}
	if int64(len(out)) < declaredSize {
		return nil, ErrDecompressShort
	}
	return out, nil
}
