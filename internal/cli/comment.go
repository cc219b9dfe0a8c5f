package cli

import (
	"github.com/spf13/cobra"

	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/archive"
	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/audit"
)

func newCommentCmd() *cobra.Command {
	var passwordFile string

	cmd := &cobra.Command{
		Use:   "comment <archive.slm>",
		Short: "Print the decrypted comment stored in a .slm archive's header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(flagJSON, flagQuiet)
			archivePath := args[0]

			pw, err := resolvePassword(passwordFile, false)
			if err != nil {
				return err
			}
			defer zeroBytes(pw)

			comment, err := archive.ViewComment(archivePath, pw)
			recordAudit(audit.OpViewComment, archivePath, 0, err)
			if err != nil {
				return err
			}

			if printer.Mode == OutputJSON {
				return printer.JSON(map[string]any{
					"archive": archivePath,
					"comment": comment,
				})
			}
			printer.Human("%s", comment)
			return nil
		},
	}

	cmd.Flags().StringVar(&passwordFile, "password-file", "", "read password from this file instead of prompting")
	return cmd
}
