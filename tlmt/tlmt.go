// Package tlmt defines the anonymous usage telemetry contract. Telemetry is
// fire-and-forget: it never alters run behavior and its errors are ignored
// by callers.
package tlmt

import "context"

// Event is a single telemetry datapoint.
type Event struct {
	Name       string
	Properties map[string]any
}

// Telemetry sends events to a collector.
type Telemetry interface {
	Send(ctx context.Context, event Event) error
	Close() error
}

// NewEvent creates an event with the given name and properties.
func NewEvent(name string, properties map[string]any) Event {
	if properties == nil {
		properties = map[string]any{}
	}

	return Event{Name: name, Properties: properties}
}
