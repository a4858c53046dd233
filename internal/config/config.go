// Package config provides configuration management for mapparr.
package config

import (
	"github.com/mapparr/mapparr/internal/match"
)

// AppConfig is the validated runtime configuration. Fields are populated with
// precedence ENV > file > defaults and validated once at load time; nothing
// re-parses settings per call.
type AppConfig struct {
	// Host system (Dispatcharr-compatible API)
	HostURL  string `yaml:"hostUrl"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// Groups restricts processing to the named channel groups.
	// Empty means all groups.
	Groups []string `yaml:"groups"`

	// OTAFormat is the broadcast name template with {NETWORK}, {STATE},
	// {CITY} and {CALLSIGN} placeholders.
	OTAFormat string `yaml:"otaFormat"`

	// IgnoredTags are dropped from names before matching.
	IgnoredTags []string `yaml:"ignoredTags"`

	// FuzzyThreshold is the premium match acceptance score (0-100).
	FuzzyThreshold int `yaml:"fuzzyThreshold"`

	// UnknownSuffix is appended verbatim to unmatched channel names.
	// Leading whitespace is significant and preserved.
	UnknownSuffix string `yaml:"unknownSuffix"`

	// TagOrder is the premium tag reattachment order
	// (regional, quality, extra).
	TagOrder []string `yaml:"tagOrder"`

	// DefaultLogo is the display name of the logo assigned by apply-logos.
	DefaultLogo string `yaml:"defaultLogo"`

	// Paths
	DataDir      string `yaml:"dataDir"`
	StationsFile string `yaml:"stationsFile"`
	PremiumFile  string `yaml:"premiumFile"`

	// Observability
	LogLevel    string `yaml:"logLevel"`
	MetricsAddr string `yaml:"metricsAddr"`
}

// Defaults returns the configuration baseline before file and env overrides.
func Defaults() AppConfig {
	return AppConfig{
		OTAFormat:      match.DefaultTemplate,
		FuzzyThreshold: 85,
		UnknownSuffix:  " [Unk]",
		TagOrder:       []string{"regional", "quality", "extra"},
		DataDir:        "data",
		StationsFile:   "networks.json",
		PremiumFile:    "channels.txt",
		LogLevel:       "info",
	}
}

// TagPositions converts the configured tag order into engine positions. Only
// meaningful after Validate has accepted the configuration.
func (c AppConfig) TagPositions() []match.TagPosition {
	out := make([]match.TagPosition, 0, len(c.TagOrder))
	for _, t := range c.TagOrder {
		out = append(out, match.TagPosition(t))
	}
	return out
}

// MatchConfig assembles the engine configuration from the app configuration.
func (c AppConfig) MatchConfig() match.Config {
	return match.Config{
		Strip:         match.StripConfig{IgnoredTags: c.IgnoredTags},
		Threshold:     c.FuzzyThreshold,
		Template:      c.OTAFormat,
		TagOrder:      c.TagPositions(),
		UnknownSuffix: c.UnknownSuffix,
	}
}
