package match

import "testing"

func TestDirectoryLookup(t *testing.T) {
	dir := NewDirectory([]StationRecord{
		{Callsign: "WABC-TV", City: "NEW YORK", State: "NY", NetworkAffiliation: "ABC", FacilityID: "1"},
		{Callsign: "KTLA", City: "LOS ANGELES", State: "CA", NetworkAffiliation: "CW", FacilityID: "2"},
		{Callsign: "  wnyw  ", City: "NEW YORK", State: "NY", NetworkAffiliation: "FOX", FacilityID: "3"},
	})

	tests := []struct {
		name     string
		callsign string
		wantCity string
		found    bool
	}{
		{name: "full_callsign", callsign: "WABC-TV", wantCity: "NEW YORK", found: true},
		{name: "base_form_of_suffixed_station", callsign: "WABC", wantCity: "NEW YORK", found: true},
		{name: "case_insensitive", callsign: "ktla", wantCity: "LOS ANGELES", found: true},
		{name: "whitespace_trimmed_on_load", callsign: "WNYW", wantCity: "NEW YORK", found: true},
		{name: "unknown", callsign: "KXYZ", found: false},
		{name: "empty", callsign: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := dir.Lookup(tt.callsign)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found=%v, want %v", tt.callsign, ok, tt.found)
			}
			if ok && rec.City != tt.wantCity {
				t.Errorf("Lookup(%q) city = %q, want %q", tt.callsign, rec.City, tt.wantCity)
			}
		})
	}
}

func TestDirectoryDuplicateKeepsFirst(t *testing.T) {
	dir := NewDirectory([]StationRecord{
		{Callsign: "WABC", City: "NEW YORK", FacilityID: "1"},
		{Callsign: "WABC", City: "ALBANY", FacilityID: "2"},
	})

	rec, ok := dir.Lookup("WABC")
	if !ok {
		t.Fatal("expected WABC to resolve")
	}
	if rec.City != "NEW YORK" {
		t.Errorf("duplicate resolution kept %q, want first-seen NEW YORK", rec.City)
	}
}

func TestDirectoryEmptyCallsignSkipped(t *testing.T) {
	dir := NewDirectory([]StationRecord{
		{Callsign: "", City: "NOWHERE"},
		{Callsign: "KABC", City: "LOS ANGELES"},
	})
	if dir.Len() != 1 {
		t.Errorf("Len() = %d, want 1", dir.Len())
	}
}
