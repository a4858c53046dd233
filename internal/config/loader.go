package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownConfigField classifies strict YAML parse failures caused by
// unknown keys. Use errors.Is instead of string matching.
var ErrUnknownConfigField = errors.New("unknown config field")

// Loader handles configuration loading with precedence ENV > file > defaults.
type Loader struct {
	configPath string
}

// NewLoader creates a configuration loader. An empty path skips the file
// stage.
func NewLoader(configPath string) *Loader {
	return &Loader{configPath: configPath}
}

// Load builds the configuration in strict validated order:
// defaults -> file (strict keys) -> env -> Validate.
func (l *Loader) Load() (AppConfig, error) {
	cfg := Defaults()

	if l.configPath != "" {
		if err := l.applyFile(&cfg); err != nil {
			return AppConfig{}, err
		}
	}

	applyEnv(&cfg)

	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func (l *Loader) applyFile(cfg *AppConfig) error {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if strings.Contains(err.Error(), "not found in type") {
			return fmt.Errorf("%w: %s: %v", ErrUnknownConfigField, l.configPath, err)
		}
		return fmt.Errorf("parse config file %s: %w", l.configPath, err)
	}
	return nil
}

func applyEnv(cfg *AppConfig) {
	cfg.HostURL = ParseString("MAPPARR_HOST_URL", cfg.HostURL)
	cfg.Username = ParseString("MAPPARR_USERNAME", cfg.Username)
	cfg.Password = ParseString("MAPPARR_PASSWORD", cfg.Password)
	cfg.Groups = ParseStringList("MAPPARR_GROUPS", cfg.Groups)
	cfg.OTAFormat = ParseString("MAPPARR_OTA_FORMAT", cfg.OTAFormat)
	cfg.IgnoredTags = ParseStringList("MAPPARR_IGNORED_TAGS", cfg.IgnoredTags)
	cfg.FuzzyThreshold = ParseInt("MAPPARR_FUZZY_THRESHOLD", cfg.FuzzyThreshold)
	cfg.UnknownSuffix = ParseString("MAPPARR_UNKNOWN_SUFFIX", cfg.UnknownSuffix)
	cfg.TagOrder = ParseStringList("MAPPARR_TAG_ORDER", cfg.TagOrder)
	cfg.DefaultLogo = ParseString("MAPPARR_DEFAULT_LOGO", cfg.DefaultLogo)
	cfg.DataDir = ParseString("MAPPARR_DATA_DIR", cfg.DataDir)
	cfg.StationsFile = ParseString("MAPPARR_STATIONS_FILE", cfg.StationsFile)
	cfg.PremiumFile = ParseString("MAPPARR_PREMIUM_FILE", cfg.PremiumFile)
	cfg.LogLevel = ParseString("MAPPARR_LOG_LEVEL", cfg.LogLevel)
	cfg.MetricsAddr = ParseString("MAPPARR_METRICS_ADDR", cfg.MetricsAddr)
}
