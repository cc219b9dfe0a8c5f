package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/config"
	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/util"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Global flag values shared across all commands.
var (
	flagJSON      bool
	flagQuiet     bool
	flagVerbose   bool
	flagAuditLog  string
	flagConfig    string
	flagProfile   string
	flagAllowWeak bool
)

// NewRootCmd creates the top-level cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "seclume",
		Short:   "Encrypt, compress, and archive files into a .slm container",
		Long:    "Seclume packs files into a password-protected, authenticated, compressed .slm archive, and extracts or inspects them again.",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if flagVerbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			if flagQuiet {
				zerolog.SetGlobalLevel(zerolog.ErrorLevel)
			}

			cfg, err := config.Load(flagConfig, flagProfile)
			if err != nil {
				return err
			}
			if flagAuditLog == "" {
				flagAuditLog = os.Getenv("SECLUME_AUDIT_LOG")
			}
			if flagAuditLog == "" {
				flagAuditLog = cfg.AuditLog
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&flagJSON, "json", false, "output results as JSON")
	pf.BoolVar(&flagQuiet, "quiet", false, "minimal output (errors only)")
	pf.BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	pf.StringVar(&flagAuditLog, "audit-log", "", "append-only audit log file (or SECLUME_AUDIT_LOG / config audit_log)")
	pf.StringVar(&flagConfig, "config", "", "config file path (or SECLUME_CONFIG)")
	pf.StringVar(&flagProfile, "profile", "", "config profile name (or SECLUME_PROFILE)")
	pf.BoolVar(&flagAllowWeak, "allow-weak-password", false, "bypass the password strength gate")

	root.AddCommand(newPackCmd())
	root.AddCommand(newUnpackCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newCommentCmd())
	root.AddCommand(newChecksumCmd())
	root.AddCommand(newAuditCmd())
	root.AddCommand(newMenuCmd())

	return root
}

// Execute runs the root command and exits with the correct code.
func Execute() {
	cmd := NewRootCmd()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "seclume:", err)
	}
	os.Exit(util.ExitCodeForError(err))
}
