package goposthog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/posthog/posthog-go"
	"github.com/shirou/gopsutil/v4/host"

	"github.com/sadewadee/sheet-report/tlmt"
)

type service struct {
	client     posthog.Client
	distinctID string
}

// New creates a PostHog-backed telemetry service. The distinct id is derived
// from the host id so repeat runs on the same machine group together; it
// falls back to a random id when the host id is unavailable.
func New(apiKey, endpoint string) (tlmt.Telemetry, error) {
	if apiKey == "" {
		return nil, errors.New("missing posthog api key")
	}

	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		return nil, err
	}

	return &service{
		client:     client,
		distinctID: distinctID(),
	}, nil
}

func (s *service) Send(_ context.Context, event tlmt.Event) error {
	properties := posthog.NewProperties()
	for k, v := range event.Properties {
		properties.Set(k, v)
	}

	if info, err := host.Info(); err == nil {
		properties.Set("os", info.OS)
		properties.Set("platform", info.Platform)
	}

	return s.client.Enqueue(posthog.Capture{
		DistinctId: s.distinctID,
		Event:      event.Name,
		Properties: properties,
	})
}

func (s *service) Close() error {
	return s.client.Close()
}

func distinctID() string {
	if id, err := host.HostID(); err == nil && id != "" {
		return id
	}

	return uuid.NewString()
}
