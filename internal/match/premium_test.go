package match

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"HBO", "hbo"},
		{"5 Star Max", "5starmax"},
		{"5StarMax", "5starmax"},
		{"A&E", "ae"},
		{"A & E", "ae"},
		{"USA Network", "usanetwork"},
		{"HBO-2", "hbo2"},
		{"  spaced  out  ", "spacedout"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewIndex(t *testing.T) {
	ix := NewIndex([]PremiumEntry{
		{CanonicalName: "HBO"},
		{CanonicalName: "  Cinemax  "},
		{CanonicalName: ""},
		{CanonicalName: "???"},
	})

	if ix.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ix.Len())
	}
	if got := ix.Entries()[1].CanonicalName; got != "Cinemax" {
		t.Errorf("canonical name = %q, want trimmed Cinemax", got)
	}
	if got := ix.Entries()[0].NormalizedKey; got != "hbo" {
		t.Errorf("normalized key = %q, want hbo", got)
	}
}

func TestNewIndexDuplicateKeyKeepsFirst(t *testing.T) {
	ix := NewIndex([]PremiumEntry{
		{CanonicalName: "5 Star Max"},
		{CanonicalName: "5StarMax"}, // same normalized key
	})

	if ix.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", ix.Len())
	}
	entry, score, ok := ix.Match("5starmax", 85)
	if !ok || score != 100 {
		t.Fatalf("Match() ok=%v score=%d, want exact hit", ok, score)
	}
	if entry.CanonicalName != "5 Star Max" {
		t.Errorf("duplicate resolution kept %q, want first-seen 5 Star Max", entry.CanonicalName)
	}
}

func TestNewIndexPreservesCategory(t *testing.T) {
	ix := NewIndex([]PremiumEntry{
		{CanonicalName: "HBO", Category: "Premium Movies"},
	})
	if got := ix.Entries()[0].Category; got != "Premium Movies" {
		t.Errorf("category = %q, want Premium Movies", got)
	}
}
