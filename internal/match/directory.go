package match

import (
	"strings"

	"github.com/mapparr/mapparr/internal/log"
)

// Directory is the in-memory broadcast-station index, keyed by callsign.
// Immutable after construction; safe for concurrent readers.
type Directory struct {
	byCallsign map[string]StationRecord
}

// NewDirectory builds the station index. Each station is indexed under its
// full callsign and, when suffixed (WABC-TV), additionally under the base
// form so either spelling resolves. Duplicate callsigns keep the first-seen
// record; later conflicts are logged and dropped.
func NewDirectory(records []StationRecord) *Directory {
	logger := log.WithComponent("directory")
	d := &Directory{byCallsign: make(map[string]StationRecord, len(records)*2)}

	add := func(key string, rec StationRecord) {
		key = strings.ToUpper(strings.TrimSpace(key))
		if key == "" {
			return
		}
		if prev, exists := d.byCallsign[key]; exists {
			if prev.FacilityID != rec.FacilityID {
				logger.Warn().
					Str(log.FieldCallsign, key).
					Str("kept_facility", prev.FacilityID).
					Str("dropped_facility", rec.FacilityID).
					Msg("duplicate callsign in station data, keeping first record")
			}
			return
		}
		d.byCallsign[key] = rec
	}

	for _, rec := range records {
		cs := strings.ToUpper(strings.TrimSpace(rec.Callsign))
		if cs == "" {
			continue
		}
		add(cs, rec)
		if base := BaseCallsign(cs); base != cs {
			add(base, rec)
		}
	}

	logger.Info().Int("stations", len(records)).Int("index_keys", len(d.byCallsign)).
		Msg("station directory built")
	return d
}

// Lookup resolves a callsign by exact, case-insensitive match. Callsigns are
// exact identifiers: no fuzzy matching happens here, any leniency belongs in
// extraction.
func (d *Directory) Lookup(callsign string) (StationRecord, bool) {
	rec, ok := d.byCallsign[strings.ToUpper(strings.TrimSpace(callsign))]
	return rec, ok
}

// Len returns the number of index keys.
func (d *Directory) Len() int {
	return len(d.byCallsign)
}
