package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/archive"
	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/audit"
)

func newListCmd() *cobra.Command {
	var passwordFile string

	cmd := &cobra.Command{
		Use:   "list <archive.slm>",
		Short: "List the contents of a .slm archive without extracting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(flagJSON, flagQuiet)
			archivePath := args[0]

			pw, err := resolvePassword(passwordFile, false)
			if err != nil {
				return err
			}
			defer zeroBytes(pw)

			result, err := archive.List(archivePath, pw, newArchiveLogger())
			entryCount := 0
			if result != nil {
				entryCount = len(result.Entries)
			}
			recordAudit(audit.OpList, archivePath, entryCount, err)
			if err != nil {
				return err
			}

			if printer.Mode == OutputJSON {
				return printer.JSON(result)
			}

			printer.Human("%s\t%10s\t%s", "Permissions", "Size", "Filename")
			for _, e := range result.Entries {
				printer.Human("%s\t%10d\t%s", modeString(e.Mode), e.OriginalSize, e.Filename)
			}
			if result.Errors > 0 {
				printer.Human("%d entries skipped due to invalid metadata", result.Errors)
			}
			if result.Errors > 0 {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&passwordFile, "password-file", "", "read password from this file instead of prompting")
	return cmd
}

func modeString(mode uint32) string {
	const rwx = "rwxrwxrwx"
	b := []byte("---------")
	for i := 0; i < 9; i++ {
		if mode&(1<<(8-i)) != 0 {
			b[i] = rwx[i]
		}
	}
	return string(b)
}
