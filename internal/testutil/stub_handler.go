// Package testutil holds handler doubles shared by the registry, engine and
// CLI tests.
package testutil

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// ErrStub is returned by StubHandler lifecycle methods configured to fail
var ErrStub = errors.New("stub handler failure")

// StubHandler is a configurable DetectionHandler. Set PanicOn or FailOn to the
// name of a lifecycle method ("start", "stop", "destroy", "update_location",
// "process") to make it panic or return ErrStub.
type StubHandler struct {
	HandlerName string
	Proto       model.Protocol
	Types       []model.DeviceType
	PanicOn     string
	FailOn      string

	// Detect produces the detections returned by Process. Nil returns none.
	Detect func(obs model.Observation) []model.Detection

	Started   atomic.Int32
	Stopped   atomic.Int32
	Destroyed atomic.Int32
	Processed atomic.Int32

	mu       sync.Mutex
	location *model.Location
}

func (s *StubHandler) Name() string                    { return s.HandlerName }
func (s *StubHandler) Protocol() model.Protocol        { return s.Proto }
func (s *StubHandler) DeviceTypes() []model.DeviceType { return s.Types }

func (s *StubHandler) trip(op string) error {
	if s.PanicOn == op {
		panic(s.HandlerName + " " + op + " exploded")
	}
	if s.FailOn == op {
		return ErrStub
	}
	return nil
}

func (s *StubHandler) Process(_ context.Context, obs model.Observation) []model.Detection {
	s.Processed.Add(1)
	_ = s.trip("process")
	if s.Detect == nil {
		return nil
	}
	return s.Detect(obs)
}

func (s *StubHandler) Start(context.Context) error {
	s.Started.Add(1)
	return s.trip("start")
}

func (s *StubHandler) Stop() error {
	s.Stopped.Add(1)
	return s.trip("stop")
}

func (s *StubHandler) Destroy() error {
	s.Destroyed.Add(1)
	return s.trip("destroy")
}

func (s *StubHandler) UpdateLocation(lat, lon float64) {
	_ = s.trip("update_location")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = &model.Location{Latitude: lat, Longitude: lon}
}

// Location returns the last position passed to UpdateLocation
func (s *StubHandler) Location() *model.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}
