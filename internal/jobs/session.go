package jobs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
	"github.com/google/uuid"

	"github.com/mapparr/mapparr/internal/match"
)

const sessionFile = "mapparr_session.json"

// Entry pairs one processed channel with its match result and the category
// the grouping workflow would assign.
type Entry struct {
	Channel  match.ChannelRecord `json:"channel"`
	Result   match.MatchResult   `json:"result"`
	Category string              `json:"category,omitempty"`
}

// Session is the caller-owned result of one process run. Workflows that act
// on the host (rename, suffix, preview) read from a saved session instead of
// re-matching, so what gets applied is exactly what was previewed.
type Session struct {
	RunID       string    `json:"run_id"`
	ProcessedAt time.Time `json:"processed_at"`
	GroupFilter []string  `json:"group_filter,omitempty"`
	Entries     []Entry   `json:"entries"`
}

// NewSession creates an empty session with a fresh run ID.
func NewSession(groupFilter []string) *Session {
	return &Session{
		RunID:       uuid.NewString(),
		ProcessedAt: time.Now().UTC(),
		GroupFilter: groupFilter,
	}
}

// Renamed returns the entries the engine decided to rename, in run order.
func (s *Session) Renamed() []Entry {
	var out []Entry
	for _, e := range s.Entries {
		if e.Result.Status == match.StatusRenamed {
			out = append(out, e)
		}
	}
	return out
}

// Skipped returns the entries the engine left alone, in run order.
func (s *Session) Skipped() []Entry {
	var out []Entry
	for _, e := range s.Entries {
		if e.Result.Status == match.StatusSkipped {
			out = append(out, e)
		}
	}
	return out
}

// Unmatched returns the entries no reference source matched.
func (s *Session) Unmatched() []Entry {
	var out []Entry
	for _, e := range s.Entries {
		if e.Result.Source == match.SourceNone {
			out = append(out, e)
		}
	}
	return out
}

// SessionPath returns the session file location inside the data dir.
func SessionPath(dataDir string) string {
	return filepath.Join(dataDir, sessionFile)
}

// Save writes the session atomically.
func (s *Session) Save(dataDir string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := renameio.WriteFile(SessionPath(dataDir), data, 0644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// LoadSession reads a previously saved session. A missing file means no
// process run has happened yet; callers surface that as guidance, not as a
// crash.
func LoadSession(dataDir string) (*Session, error) {
	data, err := os.ReadFile(SessionPath(dataDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no session found, run the process action first")
		}
		return nil, fmt.Errorf("read session: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", SessionPath(dataDir), err)
	}
	return &s, nil
}
