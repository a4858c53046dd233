// Package jobs wires the matching engine to its collaborators: the host API,
// reference data, session persistence, reports and metrics.
package jobs

import (
	"context"

	"github.com/mapparr/mapparr/internal/config"
	"github.com/mapparr/mapparr/internal/dispatcharr"
)

// HostClient is the slice of the host API the workflows consume.
type HostClient interface {
	Login(ctx context.Context, username, password string) error
	Groups(ctx context.Context) ([]dispatcharr.Group, error)
	Channels(ctx context.Context) ([]dispatcharr.Channel, error)
	Logos(ctx context.Context) ([]dispatcharr.Logo, error)
	BulkEdit(ctx context.Context, edits []dispatcharr.ChannelEdit) error
	RefreshM3U(ctx context.Context) error
}

// MetricsRecorder receives per-channel and per-run observations.
type MetricsRecorder interface {
	RecordChannel(source string, renamed bool)
	RecordRunDuration(seconds float64)
}

// nopMetrics is used when no recorder is supplied.
type nopMetrics struct{}

func (nopMetrics) RecordChannel(string, bool) {}
func (nopMetrics) RecordRunDuration(float64)  {}

// Deps holds the collaborators for a workflow invocation.
type Deps struct {
	Config  config.AppConfig
	Client  HostClient
	Metrics MetricsRecorder
}

func (d Deps) metrics() MetricsRecorder {
	if d.Metrics == nil {
		return nopMetrics{}
	}
	return d.Metrics
}

func (d Deps) login(ctx context.Context) error {
	return d.Client.Login(ctx, d.Config.Username, d.Config.Password)
}
