package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRunID     = "run_id"
	FieldChannelID = "channel_id"
	FieldGroup     = "group"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Matching fields
	FieldCallsign = "callsign"
	FieldSource   = "source"
	FieldScore    = "score"
	FieldMatched  = "matched_key"

	// Path fields
	FieldPath = "path"
)
