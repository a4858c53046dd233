package match

import "strings"

// Config carries the engine settings consumed per run. Validation happens in
// the config package before a Matcher is built; the engine trusts its input.
type Config struct {
	Strip         StripConfig
	Threshold     int           // fuzzy acceptance threshold, 0-100
	Template      string        // broadcast name template
	TagOrder      []TagPosition // premium tag reattachment order
	UnknownSuffix string        // appended verbatim to unmatched names
}

// Matcher is the per-channel decision procedure. It holds only immutable
// reference indices and configuration, so a single Matcher is reentrant and
// safe to share.
type Matcher struct {
	stations  *Directory
	premium   *Index
	formatter Formatter
	cfg       Config
}

// New builds a Matcher over loaded reference indices.
func New(stations *Directory, premium *Index, cfg Config) *Matcher {
	return &Matcher{
		stations: stations,
		premium:  premium,
		formatter: Formatter{
			Template: cfg.Template,
			TagOrder: cfg.TagOrder,
		},
		cfg: cfg,
	}
}

// Match decides the standardized name for one channel. Broadcast lookup runs
// first and wins outright; premium fuzzy matching is only consulted when no
// station matched. Unmatched channels keep their name plus the configured
// suffix.
func (m *Matcher) Match(ch ChannelRecord) MatchResult {
	name := strings.TrimSpace(ch.Name)

	if cs, ok := ExtractCallsign(name); ok {
		if st, found := m.stations.Lookup(cs); found {
			return m.finish(name, MatchResult{
				Source:     SourceBroadcast,
				MatchedKey: strings.ToUpper(st.Callsign),
				NewName:    m.formatter.FormatBroadcast(st, cs),
			})
		}
	}

	stripped := Strip(name, m.cfg.Strip)
	if stripped.Comparison != "" {
		if entry, score, ok := m.premium.Match(stripped.Comparison, m.cfg.Threshold); ok {
			return m.finish(name, MatchResult{
				Source:     SourcePremium,
				MatchedKey: entry.CanonicalName,
				Score:      score,
				NewName:    m.formatter.FormatPremium(entry.CanonicalName, stripped),
			})
		}
	}

	return MatchResult{
		Source:  SourceNone,
		NewName: ch.Name + m.cfg.UnknownSuffix,
		Status:  StatusSkipped,
		Reason:  "no broadcast callsign and no premium match above threshold",
	}
}

// finish settles the rename decision for a matched channel: a name already in
// standardized form is a skip, not a rename.
func (m *Matcher) finish(current string, r MatchResult) MatchResult {
	if r.NewName == current {
		r.Status = StatusSkipped
		r.Reason = "already in standardized form"
		return r
	}
	r.Status = StatusRenamed
	return r
}

// Run processes channels sequentially in input order. Output ordering is a
// contract: downstream reporting zips results positionally against inputs.
// Per-channel work is CPU-bound comparison against small in-memory indices,
// so the loop is deliberately sequential.
func (m *Matcher) Run(channels []ChannelRecord) []MatchResult {
	results := make([]MatchResult, len(channels))
	for i, ch := range channels {
		results[i] = m.Match(ch)
	}
	return results
}
