package registry

import (
	"context"

	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// DetectionHandler classifies observations of one protocol.
//
// Process must not fail on malformed input; it returns no detections instead.
// Lifecycle methods may be called from any goroutine.
type DetectionHandler interface {
	// Name identifies the handler in logs and metrics
	Name() string

	// Protocol is the protocol the handler claims
	Protocol() model.Protocol

	// DeviceTypes lists the device types the handler can emit
	DeviceTypes() []model.DeviceType

	// Process classifies and scores a single observation
	Process(ctx context.Context, obs model.Observation) []model.Detection

	Start(ctx context.Context) error
	Stop() error

	// Destroy releases the handler's state. The handler is not used afterwards.
	Destroy() error

	// UpdateLocation sets the receiver position used for observations without one
	UpdateLocation(lat, lon float64)
}
