// Package match implements the channel-name matching and normalization
// engine: noise stripping, callsign extraction, station directory lookup,
// fuzzy premium matching and final name rendering.
package match

// StationRecord is one broadcast station from the reference dataset.
// Records are immutable after load.
type StationRecord struct {
	Callsign           string `json:"callsign"`
	City               string `json:"community_served_city"`
	State              string `json:"community_served_state"`
	NetworkAffiliation string `json:"network_affiliation"`
	VirtualChannel     string `json:"virtual_channel,omitempty"`
	FacilityID         string `json:"facility_id,omitempty"`
}

// PremiumEntry is one canonical premium/cable channel name from the curated
// list. NormalizedKey is the derived comparison form.
type PremiumEntry struct {
	CanonicalName string `json:"canonical_name"`
	NormalizedKey string `json:"normalized_key"`
	Category      string `json:"category,omitempty"`
}

// ChannelRecord is one channel from the host system under processing.
type ChannelRecord struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
	Group  string `json:"group"`
	Name   string `json:"name"`
	LogoID int64  `json:"logo_id"`
}

// Source identifies which reference dataset produced a match.
type Source string

const (
	SourceNone      Source = "none"
	SourceBroadcast Source = "broadcast"
	SourcePremium   Source = "premium"
)

// Status describes the rename decision for a channel.
type Status string

const (
	StatusRenamed Status = "Renamed"
	StatusSkipped Status = "Skipped"
)

// MatchResult is the engine output for a single channel.
type MatchResult struct {
	Source     Source `json:"source"`
	MatchedKey string `json:"matched_key,omitempty"`
	Score      int    `json:"score"` // 0-100, meaningful only for premium matches
	NewName    string `json:"new_name"`
	Status     Status `json:"status"`
	Reason     string `json:"reason,omitempty"`
}
