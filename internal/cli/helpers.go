package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/archive"
	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/audit"
	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/logging"
	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/password"
	"github.com/rs/zerolog"
)

// resolvePassword returns the password to use for an operation: an
// explicit --password-file takes priority, then the SECLUME_PASSWORD
// environment variable, and finally an interactive terminal prompt.
// confirm is only honored on the interactive path (it makes no sense to
// "confirm" a password read from a file or the environment).
func resolvePassword(passwordFile string, confirm bool) ([]byte, error) {
	if passwordFile != "" {
		data, err := os.ReadFile(passwordFile)
		if err != nil {
			return nil, fmt.Errorf("read password file: %w", err)
		}
		return []byte(strings.TrimRight(string(data), "\r\n")), nil
	}
	if env := os.Getenv("SECLUME_PASSWORD"); env != "" {
		return []byte(env), nil
	}
	return password.ReadInteractive(confirm)
}

func newArchiveLogger() archive.Logger {
	level := logging.LevelFromFlags(flagVerbose, flagQuiet)
	return logging.New(level)
}

func newAuditLogger() audit.Logger {
	if flagAuditLog == "" {
		return audit.NopLogger{}
	}
	l, err := audit.NewFileLogger(flagAuditLog)
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Error().Err(err).Msg("could not open audit log; continuing without it")
		return audit.NopLogger{}
	}
	return l
}

func recordAudit(op, archivePath string, fileCount int, opErr error) {
	logger := newAuditLogger()
	entry := &audit.Entry{
		Operation:   op,
		ArchivePath: archivePath,
		FileCount:   fileCount,
		Success:     opErr == nil,
	}
	if opErr != nil {
		entry.Error = opErr.Error()
	}
	_ = logger.Log(entry)
}
