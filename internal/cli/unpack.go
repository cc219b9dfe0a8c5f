package cli

import (
	"github.com/spf13/cobra"

	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/archive"
	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/audit"
)

func newUnpackCmd() *cobra.Command {
	var (
		targetDir    string
		overwrite    bool
		passwordFile string
	)

	cmd := &cobra.Command{
		Use:   "unpack <archive.slm>",
		Short: "Extract a .slm archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(flagJSON, flagQuiet)
			archivePath := args[0]

			pw, err := resolvePassword(passwordFile, false)
			if err != nil {
				return err
			}
			defer zeroBytes(pw)

			opts := archive.UnpackOptions{
				TargetDir: targetDir,
				Overwrite: overwrite,
				Logger:    newArchiveLogger(),
			}

			result, err := archive.Unpack(archivePath, pw, opts)
			fileCount := 0
			if result != nil {
				fileCount = len(result.ExtractedFiles)
			}
			recordAudit(audit.OpUnpack, archivePath, fileCount, err)
			if err != nil {
				return err
			}

			if printer.Mode == OutputJSON {
				return printer.JSON(map[string]any{
					"archive":         archivePath,
					"extracted_files": result.ExtractedFiles,
					"comment":         result.Comment,
				})
			}
			printer.Human("extracted %d files from %s", len(result.ExtractedFiles), archivePath)
			if result.Comment != "" {
				printer.Human("comment: %s", result.Comment)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetDir, "outdir", "o", "", "extraction target directory (overrides the directory stored in the archive)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "allow overwriting existing files")
	cmd.Flags().StringVar(&passwordFile, "password-file", "", "read password from this file instead of prompting")

	return cmd
}
