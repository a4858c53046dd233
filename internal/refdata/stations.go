// Package refdata loads the two reference datasets the engine matches
// against: the broadcast-station directory and the curated premium channel
// list.
package refdata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mapparr/mapparr/internal/log"
	"github.com/mapparr/mapparr/internal/match"
)

// LoadStations parses a JSON array of broadcast-station records. A malformed
// file is a hard error: matching must not start against partial data.
func LoadStations(path string) ([]match.StationRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stations file: %w", err)
	}

	var records []match.StationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse stations file %s: %w", path, err)
	}

	logger := log.WithComponent("refdata")
	logger.Info().
		Str(log.FieldPath, path).
		Int("stations", len(records)).
		Msg("loaded station data")
	return records, nil
}
