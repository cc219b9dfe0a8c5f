package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/audit"
)

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect the audit log",
	}
	cmd.AddCommand(newAuditExportCmd())
	return cmd
}

func newAuditExportCmd() *cobra.Command {
	var (
		logPath     string
		format      string
		operation   string
		archivePath string
		since       string
		until       string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export audit log entries as JSON or CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if logPath == "" {
				logPath = flagAuditLog
			}
			if logPath == "" {
				return fmt.Errorf("no audit log configured; pass --log or set an audit log via --audit-log")
			}

			filter := &audit.ExportFilter{
				Operation:   operation,
				ArchivePath: archivePath,
			}
			if since != "" {
				t, err := time.Parse(time.RFC3339, since)
				if err != nil {
					return fmt.Errorf("--since: %w", err)
				}
				filter.Since = &t
			}
			if until != "" {
				t, err := time.Parse(time.RFC3339, until)
				if err != nil {
					return fmt.Errorf("--until: %w", err)
				}
				filter.Until = &t
			}

			entries, err := audit.ReadAuditLog(logPath, filter)
			if err != nil {
				return fmt.Errorf("read audit log: %w", err)
			}

			var out []byte
			switch format {
			case "json":
				out, err = audit.ExportJSON(entries, "  ")
			case "csv":
				out, err = audit.ExportCSV(entries)
			default:
				return fmt.Errorf("unsupported export format %q; use json or csv", format)
			}
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			if output == "" || output == "-" {
				_, err = os.Stdout.Write(out)
				return err
			}
			return os.WriteFile(output, out, 0o640)
		},
	}

	cmd.Flags().StringVar(&logPath, "log", "", "path to the audit log file (default: --audit-log)")
	cmd.Flags().StringVar(&format, "format", "json", "export format: json or csv")
	cmd.Flags().StringVar(&operation, "operation", "", "filter by operation: pack, unpack, list, view-comment")
	cmd.Flags().StringVar(&archivePath, "archive", "", "filter by archive path substring")
	cmd.Flags().StringVar(&since, "since", "", "only include entries at or after this RFC3339 timestamp")
	cmd.Flags().StringVar(&until, "until", "", "only include entries before this RFC3339 timestamp")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}
