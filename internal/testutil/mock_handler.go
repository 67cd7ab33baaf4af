package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// MockHandler is a testify mock of registry.DetectionHandler
type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockHandler) Protocol() model.Protocol {
	args := m.Called()
	return args.Get(0).(model.Protocol)
}

func (m *MockHandler) DeviceTypes() []model.DeviceType {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.DeviceType)
}

func (m *MockHandler) Process(ctx context.Context, obs model.Observation) []model.Detection {
	args := m.Called(ctx, obs)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Detection)
}

func (m *MockHandler) Start(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHandler) Stop() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockHandler) Destroy() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockHandler) UpdateLocation(lat, lon float64) {
	m.Called(lat, lon)
}
