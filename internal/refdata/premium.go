package refdata

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mapparr/mapparr/internal/log"
	"github.com/mapparr/mapparr/internal/match"
)

// LoadPremium parses the line-oriented canonical channel list: one name per
// line, optionally annotated "Name|Category". Blank lines and '#' comments
// are skipped. An empty result is a warning, not an error.
func LoadPremium(path string) ([]match.PremiumEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open premium list: %w", err)
	}
	defer f.Close()

	var entries []match.PremiumEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry := match.PremiumEntry{CanonicalName: line}
		if name, category, found := strings.Cut(line, "|"); found {
			entry.CanonicalName = strings.TrimSpace(name)
			entry.Category = strings.TrimSpace(category)
		}
		if entry.CanonicalName == "" {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read premium list %s: %w", path, err)
	}

	logger := log.WithComponent("refdata")
	if len(entries) == 0 {
		logger.Warn().Str(log.FieldPath, path).Msg("premium list loaded but empty")
	} else {
		logger.Info().Str(log.FieldPath, path).Int("channels", len(entries)).
			Msg("loaded premium channel list")
	}
	return entries, nil
}
