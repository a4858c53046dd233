// Package report renders run results as CSV files for preview and audit.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"

	"github.com/mapparr/mapparr/internal/log"
)

// Row is one CSV line. Column order matches the header and is a contract
// with downstream consumers of the exports.
type Row struct {
	ChannelID   int64
	Number      string
	Group       string
	CurrentName string
	NewName     string
	Status      string
	Source      string
	Reason      string
}

var header = []string{
	"channel_id", "channel_number", "channel_group",
	"current_name", "new_name", "status", "dbase", "reason",
}

// Filename builds a timestamped export name like
// "mapparr_preview_20260825_153004.csv".
func Filename(dir, kind string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("mapparr_%s_%s.csv", kind, now.Format("20060102_150405")))
}

// Write renders rows to path atomically: the file appears complete or not at
// all.
func Write(path string, rows []Row) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			fmt.Sprintf("%d", r.ChannelID),
			r.Number,
			r.Group,
			r.CurrentName,
			r.NewName,
			r.Status,
			r.Source,
			r.Reason,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	if err := renameio.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	logger := log.WithComponent("report")
	logger.Info().
		Str(log.FieldPath, path).
		Int("rows", len(rows)).
		Msg("report written")
	return nil
}
