package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

var t0 = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func started[H interface{ Start(context.Context) error }](t *testing.T, h H) H {
	t.Helper()
	require.NoError(t, h.Start(context.Background()))
	return h
}

func deviceTypes(detections []model.Detection) []model.DeviceType {
	out := make([]model.DeviceType, 0, len(detections))
	for _, d := range detections {
		out = append(out, d.DeviceType)
	}
	return out
}

func TestAll_OneHandlerPerProtocol(t *testing.T) {
	all := All(DefaultOptions())
	require.Len(t, all, len(model.AllProtocols))

	seen := make(map[model.Protocol]bool)
	for _, h := range all {
		assert.False(t, seen[h.Protocol()], "duplicate protocol %s", h.Protocol())
		seen[h.Protocol()] = true
		assert.NotEmpty(t, h.DeviceTypes(), h.Name())
		assert.Equal(t, string(h.Protocol()), h.Name())
	}
}

func TestLifecycle(t *testing.T) {
	h := NewUltrasonicHandler(DefaultOptions())
	obs := model.Observation{
		Protocol:   model.ProtocolUltrasonic,
		Timestamp:  t0,
		Ultrasonic: &model.UltrasonicInfo{FrequencyHz: 19000, AmplitudeDb: -50, DurationMs: 200},
	}

	assert.False(t, h.Running())
	assert.Nil(t, h.Process(context.Background(), obs), "stopped handlers ignore observations")

	require.NoError(t, h.Start(context.Background()))
	assert.True(t, h.Running())
	assert.Len(t, h.Process(context.Background(), obs), 1)

	require.NoError(t, h.Stop())
	assert.Nil(t, h.Process(context.Background(), obs))

	require.NoError(t, h.Destroy())
	assert.ErrorIs(t, h.Start(context.Background()), errDestroyed)
	assert.False(t, h.Running())
}

func TestDeviceTypesReturnsCopy(t *testing.T) {
	h := NewBLEHandler(DefaultOptions())
	types := h.DeviceTypes()
	types[0] = model.DeviceTypeUnknown
	assert.Equal(t, model.DeviceTypeAirTag, h.DeviceTypes()[0])
}

func TestProcess_WrongProtocolIgnored(t *testing.T) {
	h := started(t, NewWiFiHandler(DefaultOptions()))
	obs := model.Observation{Protocol: model.ProtocolBLE, Identifier: "Flock-ABCDEF", Timestamp: t0}
	assert.Nil(t, h.Process(context.Background(), obs))
}

func TestUpdateLocation_FillsMissingPosition(t *testing.T) {
	h := started(t, NewSatelliteHandler(DefaultOptions()))
	h.UpdateLocation(40.7128, -74.0060)

	obs := model.Observation{
		Protocol:  model.ProtocolSatellite,
		Timestamp: t0,
		Satellite: &model.SatelliteInfo{Network: "Skylo", TerrestrialRSSI: -80},
	}
	detections := h.Process(context.Background(), obs)
	require.Len(t, detections, 1)
	require.NotNil(t, detections[0].Location)
	assert.Equal(t, 40.7128, detections[0].Location.Latitude)

	own := &model.Location{Latitude: 1, Longitude: 2}
	obs.Location = own
	detections = h.Process(context.Background(), obs)
	require.Len(t, detections, 1)
	assert.Equal(t, *own, *detections[0].Location)
}

func TestAllowlistMarksKnownFalsePositive(t *testing.T) {
	opts := DefaultOptions()
	opts.Allowlist = []string{"00-13-37-AA-BB-CC"}
	h := started(t, NewWiFiHandler(opts))

	obs := model.Observation{Protocol: model.ProtocolWiFi, MAC: "00:13:37:aa:bb:cc", Identifier: "Pineapple_BBCC",
		RSSI: -60, Timestamp: t0, Encryption: "WPA2"}
	detections := h.Process(context.Background(), obs)
	require.NotEmpty(t, detections)
	assert.True(t, detections[0].Input.KnownFalsePositive)
	assert.Contains(t, detections[0].Threat.Factors, "known false positive pattern (-0.50)")
}

func TestSafeZoneMarksKnownSafeArea(t *testing.T) {
	home := model.Location{Latitude: 47.6062, Longitude: -122.3321}
	opts := DefaultOptions()
	opts.SafeZones = []model.Location{home}
	h := started(t, NewWiFiHandler(opts))

	obs := model.Observation{Protocol: model.ProtocolWiFi, Identifier: "Wyze_Cam", MAC: "02:00:00:00:00:01",
		RSSI: -70, Timestamp: t0, Location: &home, Encryption: "WPA2"}
	detections := h.Process(context.Background(), obs)
	require.Len(t, detections, 1)
	assert.True(t, detections[0].Input.KnownSafeArea)

	elsewhere := model.Location{Latitude: 48.0, Longitude: -122.0}
	obs.Location = &elsewhere
	detections = h.Process(context.Background(), obs)
	require.Len(t, detections, 1)
	assert.False(t, detections[0].Input.KnownSafeArea)
}

func TestDetectionCarriesObservationFields(t *testing.T) {
	h := started(t, NewWiFiHandler(DefaultOptions()))
	obs := model.Observation{ID: "obs-1", Protocol: model.ProtocolWiFi, Identifier: "Flock-A1B2C3",
		MAC: "02:11:22:33:44:55", RSSI: -55, Timestamp: t0, Encryption: "WPA2"}

	detections := h.Process(context.Background(), obs)
	require.Len(t, detections, 1)
	d := detections[0]
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "obs-1", d.ObservationID)
	assert.Equal(t, "wifi", d.Handler)
	assert.Equal(t, model.ProtocolWiFi, d.Protocol)
	assert.Equal(t, "Flock-A1B2C3", d.Identifier)
	assert.Equal(t, -55, d.RSSI)
	assert.Equal(t, t0, d.Timestamp)
	assert.Equal(t, d.Input.Likelihood, d.Threat.Likelihood)
	assert.GreaterOrEqual(t, d.Threat.AdjustedScore, 0)
	assert.LessOrEqual(t, d.Threat.AdjustedScore, 100)
}
