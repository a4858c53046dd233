package jobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mapparr/mapparr/internal/dispatcharr"
	"github.com/mapparr/mapparr/internal/log"
	"github.com/mapparr/mapparr/internal/match"
	"github.com/mapparr/mapparr/internal/refdata"
)

// Summary aggregates one process run for operator-facing output.
type Summary struct {
	RunID            string
	Total            int
	Renamed          int
	BroadcastMatches int
	PremiumMatches   int
	Skipped          int
}

// Process loads reference data, fetches the channel set from the host, runs
// the matching engine over it in input order and persists the session.
// Reference-data and configuration failures abort before any channel is
// processed; per-channel outcomes land in the session.
func Process(ctx context.Context, deps Deps) (*Session, Summary, error) {
	cfg := deps.Config
	logger := log.WithComponentFromContext(ctx, "jobs")
	start := time.Now()

	stations, premium, err := loadReferenceData(cfg.DataDir, cfg.StationsFile, cfg.PremiumFile)
	if err != nil {
		return nil, Summary{}, err
	}

	directory := match.NewDirectory(stations)
	index := match.NewIndex(premium)
	if directory.Len() == 0 && index.Len() == 0 {
		return nil, Summary{}, fmt.Errorf("no reference data: neither %s nor %s could be loaded",
			cfg.StationsFile, cfg.PremiumFile)
	}

	if err := deps.login(ctx); err != nil {
		return nil, Summary{}, err
	}

	var (
		groups   []dispatcharr.Group
		channels []dispatcharr.Channel
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		groups, err = deps.Client.Groups(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		channels, err = deps.Client.Channels(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, Summary{}, fmt.Errorf("fetch channel data: %w", err)
	}

	records, err := filterChannels(channels, groups, cfg.Groups)
	if err != nil {
		return nil, Summary{}, err
	}
	logger.Info().Int("channels", len(records)).Strs("groups", cfg.Groups).
		Msg("channels selected for processing")

	matcher := match.New(directory, index, cfg.MatchConfig())
	classifier := match.NewClassifier(directory, index)
	results := matcher.Run(records)

	session := NewSession(cfg.Groups)
	session.Entries = make([]Entry, len(records))
	summary := Summary{RunID: session.RunID, Total: len(records)}
	metrics := deps.metrics()

	for i, res := range results {
		session.Entries[i] = Entry{
			Channel:  records[i],
			Result:   res,
			Category: classifier.Classify(res.MatchedKey, res.Source),
		}
		metrics.RecordChannel(string(res.Source), res.Status == match.StatusRenamed)
		logger.Debug().
			Int64(log.FieldChannelID, records[i].ID).
			Str(log.FieldGroup, records[i].Group).
			Str(log.FieldSource, string(res.Source)).
			Str(log.FieldMatched, res.MatchedKey).
			Int(log.FieldScore, res.Score).
			Str("new_name", res.NewName).
			Msg("channel evaluated")
		switch {
		case res.Status != match.StatusRenamed:
			summary.Skipped++
		case res.Source == match.SourceBroadcast:
			summary.Renamed++
			summary.BroadcastMatches++
		case res.Source == match.SourcePremium:
			summary.Renamed++
			summary.PremiumMatches++
		}
	}

	if err := session.Save(cfg.DataDir); err != nil {
		return nil, Summary{}, err
	}
	metrics.RecordRunDuration(time.Since(start).Seconds())

	logger.Info().
		Str(log.FieldRunID, session.RunID).
		Int("total", summary.Total).
		Int("renamed", summary.Renamed).
		Int("broadcast", summary.BroadcastMatches).
		Int("premium", summary.PremiumMatches).
		Int("skipped", summary.Skipped).
		Msg("processing complete")
	return session, summary, nil
}

// loadReferenceData reads both reference files from the data dir. A missing
// file degrades that source to empty with a warning; a malformed file is a
// hard error.
func loadReferenceData(dataDir, stationsFile, premiumFile string) ([]match.StationRecord, []match.PremiumEntry, error) {
	logger := log.WithComponent("jobs")

	var stations []match.StationRecord
	stationsPath := filepath.Join(dataDir, stationsFile)
	if _, err := os.Stat(stationsPath); err == nil {
		stations, err = refdata.LoadStations(stationsPath)
		if err != nil {
			return nil, nil, err
		}
	} else {
		logger.Warn().Str(log.FieldPath, stationsPath).
			Msg("station data not found, broadcast matching disabled")
	}

	var premium []match.PremiumEntry
	premiumPath := filepath.Join(dataDir, premiumFile)
	if _, err := os.Stat(premiumPath); err == nil {
		premium, err = refdata.LoadPremium(premiumPath)
		if err != nil {
			return nil, nil, err
		}
	} else {
		logger.Warn().Str(log.FieldPath, premiumPath).
			Msg("premium list not found, premium matching disabled")
	}

	return stations, premium, nil
}

// filterChannels converts host channels into engine records, restricted to
// the configured groups. Naming a filter in which no group exists is a
// configuration error, not an empty run.
func filterChannels(channels []dispatcharr.Channel, groups []dispatcharr.Group, filter []string) ([]match.ChannelRecord, error) {
	nameByID := make(map[int64]string, len(groups))
	idByName := make(map[string]int64, len(groups))
	for _, g := range groups {
		nameByID[g.ID] = g.Name
		idByName[g.Name] = g.ID
	}

	wanted := map[int64]struct{}{}
	if len(filter) > 0 {
		var missing []string
		for _, name := range filter {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if id, ok := idByName[name]; ok {
				wanted[id] = struct{}{}
			} else {
				missing = append(missing, name)
			}
		}
		if len(wanted) == 0 {
			sort.Strings(missing)
			return nil, fmt.Errorf("none of the configured groups exist: %s", strings.Join(missing, ", "))
		}
		if len(missing) > 0 {
			logger := log.WithComponent("jobs")
			logger.Warn().Strs("groups", missing).
				Msg("configured groups not found on host, continuing with the rest")
		}
	}

	records := make([]match.ChannelRecord, 0, len(channels))
	for _, ch := range channels {
		if len(wanted) > 0 {
			if _, ok := wanted[ch.GroupID]; !ok {
				continue
			}
		}
		group := nameByID[ch.GroupID]
		if group == "" {
			group = "No Group"
		}
		records = append(records, match.ChannelRecord{
			ID:     ch.ID,
			Number: ch.ChannelNumber.String(),
			Group:  group,
			Name:   ch.Name,
			LogoID: ch.LogoID,
		})
	}
	return records, nil
}
