package cli

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"

	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/util"
)

func newChecksumCmd() *cobra.Command {
	var algo string

	cmd := &cobra.Command{
		Use:   "checksum <file>",
		Short: "Hash a file with a selectable algorithm",
		Long:  "Hashes an arbitrary file. Independent of the .slm archive format.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(flagJSON, flagQuiet)
			path := args[0]

			h, err := newHasher(algo)
			if err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()

			if _, err := io.Copy(h, f); err != nil {
				return fmt.Errorf("hash %s: %w", path, err)
			}
			digest := util.B64Encode(h.Sum(nil))
			hexDigest := fmt.Sprintf("%x", h.Sum(nil))

			if printer.Mode == OutputJSON {
				return printer.JSON(map[string]any{
					"file":      path,
					"algorithm": algo,
					"hex":       hexDigest,
					"base64":    digest,
				})
			}
			printer.Human("%s  %s  (%s)", hexDigest, path, algo)
			return nil
		},
	}

	cmd.Flags().StringVar(&algo, "algo", "sha256", "hash algorithm: sha256, sha512, sha3-256, sha3-512, blake2b-256, blake2b-512, blake3")
	return cmd
}

func newHasher(algo string) (hash.Hash, error) {
	switch algo {
	case "sha256":
		return sha256.New(), nil
	case "sha512":
		return sha512.New(), nil
	case "sha3-256":
		return sha3.New256(), nil
	case "sha3-512":
		return sha3.New512(), nil
	case "blake2b-256":
		return blake2b.New256(nil)
	case "blake2b-512":
		return blake2b.New512(nil)
	case "blake3":
		return blake3.New(32, nil), nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm %q", algo)
	}
}
