package config

import (
	"strings"

	"github.com/mapparr/mapparr/internal/match"
	"github.com/mapparr/mapparr/internal/validate"
)

// Validate checks an AppConfig once, at load time. An out-of-range threshold
// is rejected, never clamped.
func Validate(cfg AppConfig) error {
	v := validate.New()

	// Host URL is optional until a workflow needs the API; validate syntax
	// when present.
	if strings.TrimSpace(cfg.HostURL) != "" {
		v.URL("HostURL", cfg.HostURL, []string{"http", "https"})
	}

	v.Range("FuzzyThreshold", cfg.FuzzyThreshold, 0, 100)
	v.NotEmpty("OTAFormat", cfg.OTAFormat)
	v.Directory("DataDir", cfg.DataDir, false)
	v.OneOf("LogLevel", cfg.LogLevel, []string{"debug", "info", "warn", "error"})

	for _, name := range match.TemplatePlaceholders(cfg.OTAFormat) {
		if _, known := match.KnownPlaceholders[name]; !known {
			v.AddError("OTAFormat", "unknown template placeholder", "{"+name+"}")
		}
	}

	seen := map[string]struct{}{}
	for _, t := range cfg.TagOrder {
		v.OneOf("TagOrder", t, []string{
			string(match.TagRegional),
			string(match.TagQuality),
			string(match.TagExtra),
		})
		if _, dup := seen[t]; dup {
			v.AddError("TagOrder", "duplicate position", t)
		}
		seen[t] = struct{}{}
	}

	if !v.IsValid() {
		return v.Err()
	}
	return nil
}
