package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mapparr/mapparr/internal/config"
	"github.com/mapparr/mapparr/internal/dispatcharr"
	"github.com/mapparr/mapparr/internal/jobs"
	mlog "github.com/mapparr/mapparr/internal/log"
	"github.com/mapparr/mapparr/internal/metrics"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

const usage = `usage: mapparr [-config config.yaml] <action>

actions:
  process         fetch channels, run the matching engine, save the session
  preview         export the saved session as a CSV report
  rename          apply the session's pending renames on the host
  rename-unknown  tag unmatched channels with the configured suffix
  apply-logos     assign catalog logos to channels without one
`

// maskURL removes user info from a URL string for safe logging.
func maskURL(rawURL string) string {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "invalid-url-redacted"
	}
	parsedURL.User = nil
	return parsedURL.String()
}

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to config file (YAML)")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	action := flag.Arg(0)
	if action == "" {
		flag.Usage()
		os.Exit(2)
	}

	mlog.Configure(mlog.Config{
		Level:   "info",
		Service: "mapparr",
		Version: version,
	})
	logger := mlog.WithComponent("cli")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Without an explicit -config, pick up ${MAPPARR_DATA_DIR}/config.yaml
	// when it exists.
	effectiveConfigPath := strings.TrimSpace(*configPath)
	if effectiveConfigPath == "" {
		dataDir := strings.TrimSpace(config.ParseString("MAPPARR_DATA_DIR", "data"))
		autoPath := filepath.Join(dataDir, "config.yaml")
		if _, err := os.Stat(autoPath); err == nil {
			effectiveConfigPath = autoPath
		}
	}

	cfg, err := config.NewLoader(effectiveConfigPath).Load()
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("event", "config.load_failed").
			Str("config_path", effectiveConfigPath).
			Msg("failed to load configuration")
	}

	mlog.Configure(mlog.Config{
		Level:   cfg.LogLevel,
		Service: "mapparr",
		Version: version,
	})
	logger.Info().
		Str("event", "config.loaded").
		Str("host", maskURL(cfg.HostURL)).
		Str("data_dir", cfg.DataDir).
		Msg("configuration loaded")

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr)
	}

	deps := jobs.Deps{
		Config: cfg,
		Client: dispatcharr.New(cfg.HostURL, dispatcharr.Options{
			Timeout:            30 * time.Second,
			MutationsPerSecond: 2,
		}),
		Metrics: metrics.NewRecorder(),
	}

	if err := run(ctx, action, deps); err != nil {
		logger.Error().Err(err).Str("action", action).Msg("action failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, action string, deps jobs.Deps) error {
	switch action {
	case "process":
		_, summary, err := jobs.Process(ctx, deps)
		if err != nil {
			return err
		}
		fmt.Printf("processed %d channels: %d renamed (%d broadcast, %d premium), %d skipped\n",
			summary.Total, summary.Renamed, summary.BroadcastMatches, summary.PremiumMatches, summary.Skipped)
	case "preview":
		path, err := jobs.Preview(ctx, deps)
		if err != nil {
			return err
		}
		fmt.Printf("preview written to %s\n", path)
	case "rename":
		path, n, err := jobs.Rename(ctx, deps)
		if err != nil {
			return err
		}
		fmt.Printf("renamed %d channels, report at %s\n", n, path)
	case "rename-unknown":
		path, n, err := jobs.RenameUnknown(ctx, deps)
		if err != nil {
			return err
		}
		fmt.Printf("tagged %d unmatched channels, report at %s\n", n, path)
	case "apply-logos":
		n, err := jobs.ApplyLogos(ctx, deps)
		if err != nil {
			return err
		}
		fmt.Printf("assigned logos to %d channels\n", n)
	default:
		return fmt.Errorf("unknown action %q", action)
	}
	return nil
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger := mlog.WithComponent("metrics")
		logger.Error().Err(err).Msg("metrics listener failed")
	}
}
