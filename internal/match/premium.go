package match

import (
	"strings"
	"unicode"

	"github.com/mapparr/mapparr/internal/log"
)

// Index is the in-memory premium/cable channel index with precomputed
// normalized keys. Immutable after construction; safe for concurrent readers.
type Index struct {
	entries []PremiumEntry
	byKey   map[string]int
}

// NormalizeKey derives the comparison-ready form of a channel name: lowercase
// with every separator and punctuation character removed. "5 Star Max" and
// "5StarMax" collapse to the same key, as do "A&E" and "A & E".
func NormalizeKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NewIndex builds the premium index from curated entries. NormalizedKey is
// computed here; callers may leave it empty. Entries whose key collides with
// an earlier entry are dropped with a warning.
func NewIndex(entries []PremiumEntry) *Index {
	logger := log.WithComponent("premium")
	ix := &Index{
		entries: make([]PremiumEntry, 0, len(entries)),
		byKey:   make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		name := strings.TrimSpace(e.CanonicalName)
		if name == "" {
			continue
		}
		e.CanonicalName = name
		if e.NormalizedKey == "" {
			e.NormalizedKey = NormalizeKey(name)
		}
		if e.NormalizedKey == "" {
			continue
		}
		if prev, exists := ix.byKey[e.NormalizedKey]; exists {
			logger.Warn().
				Str("kept", ix.entries[prev].CanonicalName).
				Str("dropped", name).
				Msg("duplicate normalized key in premium list, keeping first entry")
			continue
		}
		ix.entries = append(ix.entries, e)
		ix.byKey[e.NormalizedKey] = len(ix.entries) - 1
	}

	if len(ix.entries) == 0 {
		logger.Warn().Msg("premium channel list is empty")
	} else {
		logger.Info().Int("channels", len(ix.entries)).Msg("premium index built")
	}
	return ix
}

// Len returns the number of indexed entries.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Entries returns the indexed entries in load order.
func (ix *Index) Entries() []PremiumEntry {
	return ix.entries
}
