package patterns

import (
	"testing"

	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltInTablesAreValid(t *testing.T) {
	assert.NoError(t, Validate(ssidRules))
	assert.NoError(t, Validate(bleNameRules))
	assert.NoError(t, Validate(macPrefixRules))
	assert.Equal(t, len(ssidRules), Default().SSID.Len())
}

func TestMatchSSID(t *testing.T) {
	tests := []struct {
		name      string
		ssid      string
		wantMatch bool
		wantType  model.DeviceType
		wantRule  string
	}{
		{"flock exact form", "Flock-A1B2C3", true, model.DeviceTypeFlockSafetyCamera, "ssid:flock_safety"},
		{"flock lower case falls to generic rule", "flock-a1b2c3", true, model.DeviceTypeFlockSafetyCamera, "ssid:flock_generic"},
		{"pineapple anywhere", "Guest_Pineapple_5G", true, model.DeviceTypeWiFiPineapple, "ssid:pineapple"},
		{"ring setup", "Ring-Setup-42", true, model.DeviceTypeRingDoorbell, "ssid:ring"},
		{"hikvision", "HIK-CAM01", true, model.DeviceTypeCCTVCamera, "ssid:cctv_hikvision"},
		{"joke van", "FBI Surveillance Van", true, model.DeviceTypeSurveillanceVan, "ssid:surveillance_van"},
		{"home network", "NETGEAR42", false, model.DeviceTypeUnknown, ""},
		{"empty", "", false, model.DeviceTypeUnknown, ""},
		{"whitespace only", "   ", false, model.DeviceTypeUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := MatchSSID(tt.ssid)
			assert.Equal(t, tt.wantMatch, ok)
			if !tt.wantMatch {
				return
			}
			assert.Equal(t, tt.wantType, result.DeviceType)
			assert.Equal(t, []string{tt.wantRule}, result.Indicators)
			assert.Greater(t, result.Likelihood, 0)
		})
	}
}

func TestMatchBLEName_CaseSensitivityIsDeclared(t *testing.T) {
	// "Tile" is declared case-sensitive and anchored
	result, ok := MatchBLEName("Tile")
	require.True(t, ok)
	assert.Equal(t, model.DeviceTypeTileTracker, result.DeviceType)
	assert.Equal(t, model.MatchExact, result.Quality)

	_, ok = MatchBLEName("tile")
	assert.False(t, ok)
	_, ok = MatchBLEName("Tiles")
	assert.False(t, ok)

	// chipolo is declared case-insensitive
	result, ok = MatchBLEName("CHIPOLO ONE")
	require.True(t, ok)
	assert.Equal(t, model.DeviceTypeChipoloTracker, result.DeviceType)
}

func TestMatchMACPrefix(t *testing.T) {
	result, ok := MatchMACPrefix("00-25-df-12-34-56")
	require.True(t, ok)
	assert.Equal(t, model.DeviceTypeAxonDevice, result.DeviceType)

	_, ok = MatchMACPrefix("00:11:22:33:44:55")
	assert.False(t, ok)

	// randomised address with an otherwise matching prefix shape
	_, ok = MatchMACPrefix("02:25:DF:12:34:56")
	assert.False(t, ok)

	_, ok = MatchMACPrefix("not-a-mac")
	assert.False(t, ok)
	_, ok = MatchMACPrefix("")
	assert.False(t, ok)
}

func TestFirstMatchWins(t *testing.T) {
	c, err := NewClassifier([]Rule{
		{Name: "first", Expr: `^cam`, CaseInsensitive: true, DeviceType: model.DeviceTypeHiddenCamera, BaseScore: 60, Quality: model.MatchPartial},
		{Name: "second", Expr: `^camera$`, DeviceType: model.DeviceTypeCCTVCamera, BaseScore: 90, Quality: model.MatchExact},
	}, nil, nil)
	require.NoError(t, err)

	result, ok := c.MatchSSID("camera")
	require.True(t, ok)
	assert.Equal(t, model.DeviceTypeHiddenCamera, result.DeviceType)
	assert.Equal(t, []string{"ssid:first"}, result.Indicators)
}

func TestValidate_RejectsBadRules(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
	}{
		{"bad regex", Rule{Name: "bad", Expr: `^(unclosed`, DeviceType: model.DeviceTypeUnknown, BaseScore: 10}},
		{"empty expression", Rule{Name: "empty", DeviceType: model.DeviceTypeUnknown, BaseScore: 10}},
		{"score out of range", Rule{Name: "score", Expr: `x`, DeviceType: model.DeviceTypeUnknown, BaseScore: 101}},
		{"invalid device type", Rule{Name: "type", Expr: `x`, DeviceType: model.DeviceType(9999), BaseScore: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Validate([]Rule{tt.rule}))
			_, err := NewClassifier([]Rule{tt.rule}, nil, nil)
			assert.Error(t, err)
			assert.Panics(t, func() { MustCompile("test", []Rule{tt.rule}) })
		})
	}
}

func TestTableRulesReturnsCopy(t *testing.T) {
	rules := Default().BLEName.Rules()
	require.NotEmpty(t, rules)
	rules[0].Name = "mutated"
	assert.NotEqual(t, "mutated", Default().BLEName.Rules()[0].Name)
}
