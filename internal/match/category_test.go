package match

import "testing"

func TestClassify(t *testing.T) {
	dir := NewDirectory([]StationRecord{
		{Callsign: "WABC-TV", NetworkAffiliation: "ABC"},
		{Callsign: "WOBS", NetworkAffiliation: "Obscure Local Net"},
	})
	ix := NewIndex([]PremiumEntry{
		{CanonicalName: "HBO2"},
		{CanonicalName: "ESPN"},
		{CanonicalName: "MyLocalSports", Category: "Sports"},
		{CanonicalName: "Obscure Channel"},
	})
	c := NewClassifier(dir, ix)

	tests := []struct {
		name       string
		matchedKey string
		source     Source
		want       string
	}{
		{name: "premium_movie_tier", matchedKey: "HBO2", source: SourcePremium, want: CategoryPremiumMovies},
		{name: "premium_sports", matchedKey: "ESPN", source: SourcePremium, want: CategorySports},
		{name: "premium_curated_annotation", matchedKey: "MyLocalSports", source: SourcePremium, want: CategorySports},
		{name: "premium_unlisted", matchedKey: "Obscure Channel", source: SourcePremium, want: ""},
		{name: "broadcast_by_affiliation", matchedKey: "WABC-TV", source: SourceBroadcast, want: CategoryBroadcast},
		{name: "broadcast_unlisted_affiliation", matchedKey: "WOBS", source: SourceBroadcast, want: CategoryBroadcast},
		{name: "broadcast_unknown_station", matchedKey: "KXYZ", source: SourceBroadcast, want: ""},
		{name: "unmatched", matchedKey: "", source: SourceNone, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.matchedKey, tt.source); got != tt.want {
				t.Errorf("Classify(%q, %s) = %q, want %q", tt.matchedKey, tt.source, got, tt.want)
			}
		})
	}
}

// A list annotation overrides the curated table for the same key; absent
// annotation falls back to it.
func TestClassifyAnnotationBeatsTable(t *testing.T) {
	ix := NewIndex([]PremiumEntry{
		{CanonicalName: "HBO2", Category: "Documentary"},
		{CanonicalName: "Showtime"},
	})
	c := NewClassifier(nil, ix)

	if got := c.Classify("HBO2", SourcePremium); got != "Documentary" {
		t.Errorf("annotated entry classified %q, want Documentary", got)
	}
	if got := c.Classify("Showtime", SourcePremium); got != CategoryPremiumMovies {
		t.Errorf("unannotated entry classified %q, want table fallback", got)
	}
}

func TestClassifyNilIndices(t *testing.T) {
	c := NewClassifier(nil, nil)
	if got := c.Classify("WABC", SourceBroadcast); got != "" {
		t.Errorf("Classify with nil directory = %q, want empty", got)
	}
	// Premium classification still reaches the curated table without an index.
	if got := c.Classify("Showtime", SourcePremium); got != CategoryPremiumMovies {
		t.Errorf("premium table fallback = %q", got)
	}
}
