package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/archive"
	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/audit"
	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/codec"
	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/config"
	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/enumerate"
	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/password"
)

func newPackCmd() *cobra.Command {
	var (
		output       string
		algo         string
		level        int
		comment      string
		outdir       string
		include      []string
		exclude      []string
		dryRun       bool
		overwrite    bool
		passwordFile string
	)

	cmd := &cobra.Command{
		Use:   "pack <file-or-dir>...",
		Short: "Create a .slm archive from files and directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(flagJSON, flagQuiet)

			cfg := config.Get()
			if cfg == nil {
				def := config.DefaultEffective()
				cfg = &def
			}
			if !cmd.Flags().Changed("algo") {
				algo = cfg.CompressionAlgo
			}
			if !cmd.Flags().Changed("level") {
				level = cfg.CompressionLevel
			}

			algorithm, err := parseAlgorithm(algo)
			if err != nil {
				return err
			}

			entries, err := enumerate.Walk(args, include, exclude)
			if err != nil {
				return fmt.Errorf("enumerate inputs: %w", err)
			}
			if len(entries) == 0 {
				return fmt.Errorf("no files matched")
			}

			pw, err := resolvePassword(passwordFile, true)
			if err != nil {
				return err
			}
			defer zeroBytes(pw)

			if err := password.Accept(pw, flagAllowWeak || cfg.AllowWeakPassword); err != nil {
				return err
			}
			if printer.Mode == OutputHuman {
				report := password.Score(pw)
				printer.Human("password strength: %d/4 (estimated crack time: %s)", report.Score, report.CrackTimeDisplay)
			}

			opts := archive.PackOptions{
				Algorithm: algorithm,
				Level:     level,
				Comment:   comment,
				Outdir:    outdir,
				DryRun:    dryRun,
				Overwrite: overwrite,
			}

			err = archive.Pack(output, pw, entries, opts, newArchiveLogger())
			recordAudit(audit.OpPack, output, len(entries), err)
			if err != nil {
				return err
			}

			if printer.Mode == OutputJSON {
				return printer.JSON(map[string]any{
					"archive":    output,
					"file_count": len(entries),
					"algorithm":  algorithm.String(),
					"level":      level,
					"dry_run":    dryRun,
				})
			}
			printer.Human("packed %d files into %s", len(entries), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "archive.slm", "output archive path")
	cmd.Flags().StringVar(&algo, "algo", "deflate", "compression algorithm: deflate, lzma")
	cmd.Flags().IntVar(&level, "level", codec.DefaultLevel, "compression level (0-9)")
	cmd.Flags().StringVar(&comment, "comment", "", "plaintext comment stored encrypted in the header")
	cmd.Flags().StringVar(&outdir, "store-outdir", "", "output directory to store encrypted in the header, offered to unpack as a default")
	cmd.Flags().StringSliceVar(&include, "include", nil, "glob patterns to include (default: everything)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "glob patterns to exclude")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "run every step without writing the archive file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "allow overwriting an existing archive file")
	cmd.Flags().StringVar(&passwordFile, "password-file", "", "read password from this file instead of prompting")

	return cmd
}

func parseAlgorithm(s string) (codec.Algorithm, error) {
	switch s {
	case "deflate", "zlib":
		return codec.Deflate, nil
	case "lzma":
		return codec.LZMA, nil
	default:
		return 0, fmt.Errorf("unsupported compression algorithm %q; use deflate or lzma", s)
	}
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
