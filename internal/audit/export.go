package audit

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// ExportFilter filters audit entries for export.
type ExportFilter struct {
	Since       *time.Time // include only entries on or after
	Until       *time.Time // include only entries before
	Operation   string     // exact operation name, or "" for all
	ArchivePath string     // entries with this archive path (substring match), or ""
}

// Matches returns true if e should be included.
func (f *ExportFilter) Matches(e *Entry) bool {
	if f == nil {
		return true
	}
	if f.Operation != "" && e.Operation != f.Operation {
		return false
	}
	if f.ArchivePath != "" && !strings.Contains(e.ArchivePath, f.ArchivePath) {
		return false
	}
	if f.Since != nil {
		t, err := time.Parse(time.RFC3339, e.Timestamp)
		if err != nil || t.Before(*f.Since) {
			return false
		}
	}
	if f.Until != nil {
		t, err := time.Parse(time.RFC3339, e.Timestamp)
		if err != nil || !t.Before(*f.Until) {
			return false
		}
	}
	return true
}

// ReadAuditLog reads a JSON-lines audit log file and returns entries,
// optionally filtered. Malformed lines are skipped rather than failing the
// whole read, since the log is append-only and a partially written last
// line is expected after a crash.
func ReadAuditLog(path string, filter *ExportFilter) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			continue
		}
		if filter != nil && !filter.Matches(&e) {
			continue
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ExportJSON writes entries as a JSON array.
func ExportJSON(entries []Entry, indent string) ([]byte, error) {
	if indent != "" {
		return json.MarshalIndent(entries, "", indent)
	}
	return json.Marshal(entries)
}

// ExportCSV writes entries as CSV, header row included.
func ExportCSV(entries []Entry) ([]byte, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)
	header := []string{"timestamp", "operation", "archive_path", "file_count", "user", "hostname", "success", "error"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, e := range entries {
		row := []string{
			e.Timestamp,
			e.Operation,
			e.ArchivePath,
			fmt.Sprint(e.FileCount),
			e.User,
			e.Hostname,
			fmt.Sprint(e.Success),
			e.Error,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}
