package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mapparr/mapparr/internal/dispatcharr"
	"github.com/mapparr/mapparr/internal/log"
	"github.com/mapparr/mapparr/internal/match"
	"github.com/mapparr/mapparr/internal/report"
)

// Preview writes the saved session as a CSV without touching the host.
// It returns the path of the written report.
func Preview(ctx context.Context, deps Deps) (string, error) {
	session, err := LoadSession(deps.Config.DataDir)
	if err != nil {
		return "", err
	}

	path := report.Filename(deps.Config.DataDir, "preview", time.Now())
	if err := report.Write(path, sessionRows(session.Entries)); err != nil {
		return "", err
	}
	return path, nil
}

// Rename pushes the session's pending renames to the host in one bulk edit,
// triggers a playlist refresh and writes an audit report. What gets applied is
// exactly what Process decided; no re-matching happens here.
func Rename(ctx context.Context, deps Deps) (string, int, error) {
	session, err := LoadSession(deps.Config.DataDir)
	if err != nil {
		return "", 0, err
	}
	renamed := session.Renamed()
	if len(renamed) == 0 {
		return "", 0, fmt.Errorf("session %s has no pending renames", session.RunID)
	}

	if err := deps.login(ctx); err != nil {
		return "", 0, err
	}

	edits := make([]dispatcharr.ChannelEdit, 0, len(renamed))
	for _, e := range renamed {
		edits = append(edits, dispatcharr.ChannelEdit{
			ID:   e.Channel.ID,
			Name: e.Result.NewName,
		})
	}
	if err := deps.Client.BulkEdit(ctx, edits); err != nil {
		return "", 0, err
	}
	if err := deps.Client.RefreshM3U(ctx); err != nil {
		logger := log.WithComponentFromContext(ctx, "jobs")
		logger.Warn().Err(err).
			Msg("renames applied but playlist refresh failed")
	}

	path := report.Filename(deps.Config.DataDir, "rename", time.Now())
	if err := report.Write(path, sessionRows(renamed)); err != nil {
		return "", 0, err
	}

	logger := log.WithComponentFromContext(ctx, "jobs")
	logger.Info().
		Str(log.FieldRunID, session.RunID).
		Int("renamed", len(renamed)).
		Msg("renames applied")
	return path, len(renamed), nil
}

// RenameUnknown appends the configured suffix verbatim to every channel no
// reference source matched, so unknowns are visible in the host UI. Channels
// already carrying the suffix are left alone.
func RenameUnknown(ctx context.Context, deps Deps) (string, int, error) {
	cfg := deps.Config
	session, err := LoadSession(cfg.DataDir)
	if err != nil {
		return "", 0, err
	}

	var (
		edits []dispatcharr.ChannelEdit
		rows  []report.Row
	)
	for _, e := range session.Unmatched() {
		if strings.HasSuffix(e.Channel.Name, cfg.UnknownSuffix) {
			rows = append(rows, entryRow(e.Channel, match.MatchResult{
				Source:  match.SourceNone,
				NewName: e.Channel.Name,
				Status:  match.StatusSkipped,
				Reason:  "suffix already present",
			}))
			continue
		}
		newName := e.Channel.Name + cfg.UnknownSuffix
		edits = append(edits, dispatcharr.ChannelEdit{ID: e.Channel.ID, Name: newName})
		rows = append(rows, entryRow(e.Channel, match.MatchResult{
			Source:  match.SourceNone,
			NewName: newName,
			Status:  match.StatusRenamed,
			Reason:  "unmatched channel tagged",
		}))
	}
	if len(edits) == 0 {
		return "", 0, fmt.Errorf("session %s has no unmatched channels to tag", session.RunID)
	}

	if err := deps.login(ctx); err != nil {
		return "", 0, err
	}
	if err := deps.Client.BulkEdit(ctx, edits); err != nil {
		return "", 0, err
	}
	if err := deps.Client.RefreshM3U(ctx); err != nil {
		logger := log.WithComponentFromContext(ctx, "jobs")
		logger.Warn().Err(err).
			Msg("suffixes applied but playlist refresh failed")
	}

	path := report.Filename(cfg.DataDir, "rename_unknown", time.Now())
	if err := report.Write(path, rows); err != nil {
		return "", 0, err
	}
	return path, len(edits), nil
}

// ApplyLogos assigns catalog logos to session channels that have none.
// A logo is picked by case-insensitive display-name match against the
// channel's effective name; the configured default logo covers the rest.
func ApplyLogos(ctx context.Context, deps Deps) (int, error) {
	cfg := deps.Config
	session, err := LoadSession(cfg.DataDir)
	if err != nil {
		return 0, err
	}

	if err := deps.login(ctx); err != nil {
		return 0, err
	}
	logos, err := deps.Client.Logos(ctx)
	if err != nil {
		return 0, err
	}

	byName := make(map[string]int64, len(logos))
	for _, l := range logos {
		key := strings.ToLower(strings.TrimSpace(l.Name))
		if _, exists := byName[key]; !exists {
			byName[key] = l.ID
		}
	}
	defaultID := byName[strings.ToLower(strings.TrimSpace(cfg.DefaultLogo))]

	var edits []dispatcharr.ChannelEdit
	for _, e := range session.Entries {
		if e.Channel.LogoID != 0 {
			continue
		}
		name := e.Channel.Name
		if e.Result.Status == match.StatusRenamed {
			name = e.Result.NewName
		}
		id, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			id = defaultID
		}
		if id == 0 {
			continue
		}
		edits = append(edits, dispatcharr.ChannelEdit{ID: e.Channel.ID, LogoID: id})
	}
	if len(edits) == 0 {
		return 0, nil
	}

	if err := deps.Client.BulkEdit(ctx, edits); err != nil {
		return 0, err
	}
	logger := log.WithComponentFromContext(ctx, "jobs")
	logger.Info().
		Str(log.FieldRunID, session.RunID).
		Int("logos", len(edits)).
		Msg("logos assigned")
	return len(edits), nil
}

func sessionRows(entries []Entry) []report.Row {
	rows := make([]report.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, entryRow(e.Channel, e.Result))
	}
	return rows
}

func entryRow(ch match.ChannelRecord, res match.MatchResult) report.Row {
	return report.Row{
		ChannelID:   ch.ID,
		Number:      ch.Number,
		Group:       ch.Group,
		CurrentName: ch.Name,
		NewName:     res.NewName,
		Status:      string(res.Status),
		Source:      string(res.Source),
		Reason:      res.Reason,
	}
}
