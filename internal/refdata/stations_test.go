package refdata

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadStations(t *testing.T) {
	path := writeFile(t, "networks.json", `[
		{
			"callsign": "WABC-TV",
			"community_served_city": "NEW YORK",
			"community_served_state": "NY",
			"network_affiliation": "ABC",
			"facility_id": "74"
		},
		{
			"callsign": "KTLA",
			"community_served_city": "LOS ANGELES",
			"community_served_state": "CA",
			"network_affiliation": "CW"
		}
	]`)

	records, err := LoadStations(path)
	if err != nil {
		t.Fatalf("LoadStations: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Callsign != "WABC-TV" || records[0].State != "NY" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].FacilityID != "" {
		t.Errorf("facility_id should be optional, got %q", records[1].FacilityID)
	}
}

func TestLoadStationsMalformed(t *testing.T) {
	path := writeFile(t, "networks.json", `{"not": "an array"`)
	if _, err := LoadStations(path); err == nil {
		t.Fatal("malformed JSON must be a hard error")
	}
}

func TestLoadStationsMissingFile(t *testing.T) {
	if _, err := LoadStations(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("missing file must return an error")
	}
}

func TestLoadStationsEmptyArray(t *testing.T) {
	path := writeFile(t, "networks.json", `[]`)
	records, err := LoadStations(path)
	if err != nil {
		t.Fatalf("LoadStations: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}
