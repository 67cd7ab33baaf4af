package model

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservationValidation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		obs     Observation
		wantErr bool
	}{
		{
			name:    "happy path - wifi with MAC",
			obs:     Observation{Protocol: ProtocolWiFi, Identifier: "Flock-A1B2", MAC: "b4:1e:52:00:11:22", RSSI: -60, Timestamp: now},
			wantErr: false,
		},
		{
			name:    "bad path - unknown protocol",
			obs:     Observation{Protocol: "zigbee", Timestamp: now},
			wantErr: true,
		},
		{
			name:    "bad path - zero timestamp",
			obs:     Observation{Protocol: ProtocolBLE},
			wantErr: true,
		},
		{
			name:    "bad path - malformed MAC",
			obs:     Observation{Protocol: ProtocolBLE, MAC: "00:11:22", Timestamp: now},
			wantErr: true,
		},
		{
			name:    "bad path - positive RSSI",
			obs:     Observation{Protocol: ProtocolBLE, RSSI: 10, Timestamp: now},
			wantErr: true,
		},
		{
			name:    "bad path - latitude out of range",
			obs:     Observation{Protocol: ProtocolBLE, Timestamp: now, Location: &Location{Latitude: 91}},
			wantErr: true,
		},
		{
			name:    "bad path - cellular without cell info",
			obs:     Observation{Protocol: ProtocolCellular, Timestamp: now},
			wantErr: true,
		},
		{
			name:    "happy path - cellular with cell info",
			obs:     Observation{Protocol: ProtocolCellular, Timestamp: now, Cell: &CellInfo{MCC: 310, MNC: 260, RAT: "LTE"}},
			wantErr: false,
		},
		{
			name:    "bad path - gnss without measurement",
			obs:     Observation{Protocol: ProtocolGNSS, Timestamp: now},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.obs.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Observation.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestObservationSignal(t *testing.T) {
	obs := Observation{Protocol: ProtocolGNSS}
	assert.False(t, obs.HasRSSI())
	assert.Nil(t, obs.Signal())

	obs.RSSI = -67
	assert.True(t, obs.HasRSSI())
	require.NotNil(t, obs.Signal())
	assert.Equal(t, -67, *obs.Signal())

	var decoded Observation
	require.NoError(t, json.Unmarshal([]byte(`{"protocol":"gnss","timestamp":"2026-01-01T00:00:00Z"}`), &decoded))
	assert.False(t, decoded.HasRSSI())
}

func TestParseProtocol(t *testing.T) {
	p, err := ParseProtocol(" BLE ")
	require.NoError(t, err)
	assert.Equal(t, ProtocolBLE, p)

	_, err = ParseProtocol("lora")
	assert.Error(t, err)
}

func TestDeviceTypeNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, dt := range AllDeviceTypes() {
		name := dt.String()
		assert.NotEmpty(t, name, "device type %d has no name", int(dt))
		assert.False(t, seen[name], "duplicate device type name %s", name)
		seen[name] = true

		parsed, err := ParseDeviceType(name)
		require.NoError(t, err)
		assert.Equal(t, dt, parsed)
	}
	assert.GreaterOrEqual(t, DeviceTypeCount, 80)
	assert.Equal(t, "DeviceType(-1)", DeviceType(-1).String())
}

func TestDeviceTypeText(t *testing.T) {
	text, err := DeviceTypeAirTag.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "AIRTAG", string(text))

	var dt DeviceType
	require.NoError(t, dt.UnmarshalText([]byte("cell_site_simulator")))
	assert.Equal(t, DeviceTypeCellSiteSimulator, dt)
	assert.Error(t, dt.UnmarshalText([]byte("toaster")))
}

func TestSeverityOrdering(t *testing.T) {
	assert.True(t, SeverityCritical.AtLeast(SeverityHigh))
	assert.True(t, SeverityHigh.AtLeast(SeverityHigh))
	assert.False(t, SeverityLow.AtLeast(SeverityMedium))

	var s Severity
	require.NoError(t, s.UnmarshalText([]byte("critical")))
	assert.Equal(t, SeverityCritical, s)
	assert.Equal(t, "INFO", SeverityInfo.String())
}

func TestMatchQualityText(t *testing.T) {
	var q MatchQuality
	require.NoError(t, q.UnmarshalText([]byte("STRONG")))
	assert.Equal(t, MatchStrong, q)
	assert.Error(t, q.UnmarshalText([]byte("PERFECT")))
}

func TestProfileModifierDelta(t *testing.T) {
	p := DeviceTypeProfile{
		Modifiers: []ThreatModifier{
			{Condition: ConditionFollowing, Delta: 25},
			{Condition: ConditionStationary, Delta: -10},
		},
	}
	assert.Equal(t, 25, p.ModifierDelta(ConditionFollowing))
	assert.Equal(t, 15, p.ModifierDelta(ConditionFollowing, ConditionStationary))
	assert.Equal(t, 0, p.ModifierDelta(ConditionNearProtest))
	assert.Equal(t, 0, p.ModifierDelta())
}

func TestProtocolSet(t *testing.T) {
	s := NewProtocolSet(ProtocolWiFi, ProtocolBLE, ProtocolWiFi)
	assert.Equal(t, 2, s.Size())
	assert.True(t, s.Contains(ProtocolBLE))
	assert.Equal(t, []Protocol{ProtocolBLE, ProtocolWiFi}, s.List())
	assert.Equal(t, "ble,wifi", s.ToString())

	assert.False(t, s.Contains(ProtocolGNSS))

	var empty ProtocolSet
	empty.Add(ProtocolCellular)
	assert.Equal(t, 1, empty.Size())
}
