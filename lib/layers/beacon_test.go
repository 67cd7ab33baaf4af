package lib_layers

import (
	"bytes"
	"testing"

	"github.com/google/gopacket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iBeaconFrame() []byte {
	data := []byte{0x02, 0x15}
	data = append(data,
		0xE2, 0xC5, 0x6D, 0xB5, 0xDF, 0xFB, 0x48, 0xD2,
		0xB0, 0x60, 0xD0, 0xF5, 0xA7, 0x10, 0x96, 0xE0)
	data = append(data, 0x00, 0x64) // major 100
	data = append(data, 0x00, 0xC8) // minor 200
	data = append(data, 0xC5)       // -59 dBm
	return data
}

func TestDecodeIBeacon(t *testing.T) {
	b, ok := DecodeIBeacon(iBeaconFrame())
	require.True(t, ok)
	assert.Equal(t, "e2c56db5-dffb-48d2-b060-d0f5a71096e0", b.UUID.String())
	assert.Equal(t, uint16(100), b.Major)
	assert.Equal(t, uint16(200), b.Minor)
	assert.Equal(t, int8(-59), b.TxPower)
	assert.Equal(t, LayerTypeIBeacon, b.LayerType())
}

func TestDecodeIBeacon_NoMatch(t *testing.T) {
	frame := iBeaconFrame()

	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"one byte short", frame[:len(frame)-1]},
		{"wrong type", append([]byte{0x03, 0x15}, frame[2:]...)},
		{"wrong length byte", append([]byte{0x02, 0x16}, frame[2:]...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := DecodeIBeacon(tt.data)
			assert.False(t, ok)
			assert.Nil(t, b)
		})
	}
}

func TestIBeacon_ViaPacketDecoder(t *testing.T) {
	packet := gopacket.NewPacket(iBeaconFrame(), LayerTypeIBeacon, gopacket.Default)
	require.Nil(t, packet.ErrorLayer())

	layer := packet.Layer(LayerTypeIBeacon)
	require.NotNil(t, layer)
	b, ok := layer.(*IBeacon)
	require.True(t, ok)
	assert.Equal(t, uint16(200), b.Minor)
}

func TestDecodeEddystoneUID(t *testing.T) {
	data := []byte{0x00, 0xEE}
	data = append(data, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A)
	data = append(data, 0xA1, 0xA2, 0xA3, 0xA4, 0xA5, 0xA6)

	e, ok := DecodeEddystoneUID(data)
	require.True(t, ok)
	assert.Equal(t, int8(-18), e.TxPower)
	assert.Equal(t, "0102030405060708090a", e.NamespaceHex())
	assert.Equal(t, "a1a2a3a4a5a6", e.InstanceHex())

	_, ok = DecodeEddystoneUID(data[:17])
	assert.False(t, ok)
}

func TestDecodeEddystoneURL(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		want   string
		wantOK bool
	}{
		{
			name:   "https www with .com suffix",
			data:   append([]byte{0x10, 0xF4, 0x01}, append([]byte("example"), 0x07)...),
			want:   "https://www.example.com",
			wantOK: true,
		},
		{
			name:   "http with .org/ suffix and path",
			data:   append([]byte{0x10, 0xF4, 0x02}, append([]byte("flock"), append([]byte{0x01}, []byte("x")...)...)...),
			want:   "http://flock.org/x",
			wantOK: true,
		},
		{
			name:   "scheme only",
			data:   []byte{0x10, 0x00, 0x03},
			want:   "https://",
			wantOK: true,
		},
		{
			name:   "unknown scheme",
			data:   []byte{0x10, 0x00, 0x09, 'a'},
			wantOK: false,
		},
		{
			name:   "too short",
			data:   []byte{0x10, 0x00},
			wantOK: false,
		},
		{
			name:   "wrong frame type",
			data:   []byte{0x20, 0x00, 0x01},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := DecodeEddystoneURL(tt.data)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, e.URL)
			}
		})
	}
}

func TestDecodeEddystoneTLM(t *testing.T) {
	data := []byte{
		0x20, 0x00,             // frame type, version
		0x0B, 0xB8,             // 3000 mV
		0x19, 0x80,             // 25.5 C
		0x00, 0x00, 0x03, 0xE8, // 1000 advertisements
		0x00, 0x00, 0x27, 0x10, // 10000 tenths of a second
	}
	require.Len(t, data, 14)

	e, ok := DecodeEddystoneTLM(data)
	require.True(t, ok)
	assert.Equal(t, uint16(3000), e.BatteryMillivolts)
	assert.InDelta(t, 25.5, e.TemperatureCelsius, 0.001)
	assert.Equal(t, uint32(1000), e.AdvertisementCount)
	assert.Equal(t, uint32(1000), e.UptimeSeconds)

	_, ok = DecodeEddystoneTLM(data[:13])
	assert.False(t, ok)
}

func TestDecodeEddystoneTLM_NegativeTemperature(t *testing.T) {
	data := []byte{0x20, 0x00, 0x0B, 0xB8, 0xFF, 0x80, 0, 0, 0, 1, 0, 0, 0, 10}
	e, ok := DecodeEddystoneTLM(data)
	require.True(t, ok)
	assert.InDelta(t, -0.5, e.TemperatureCelsius, 0.001)
	assert.Equal(t, uint32(1), e.UptimeSeconds)
}

func TestDecodeEddystoneEID(t *testing.T) {
	data := []byte{0x30, 0xF0, 1, 2, 3, 4, 5, 6, 7, 8}
	e, ok := DecodeEddystoneEID(data)
	require.True(t, ok)
	assert.Equal(t, [8]byte{1, 2, 3, 4, 5, 6, 7, 8}, e.EphemeralID)

	_, ok = DecodeEddystoneEID(data[:9])
	assert.False(t, ok)
}

func TestDecodeAltBeacon(t *testing.T) {
	data := []byte{0xBE, 0xAC}
	for i := 0; i < 20; i++ {
		data = append(data, byte(i))
	}
	data = append(data, 0xBC, 0x00) // -68 dBm, reserved

	b, ok := DecodeAltBeacon(data)
	require.True(t, ok)
	assert.Equal(t, int8(-68), b.ReferenceRSSI)
	assert.Equal(t, byte(19), b.BeaconID[19])

	_, ok = DecodeAltBeacon(data[:23])
	assert.False(t, ok)

	data[0] = 0xBF
	_, ok = DecodeAltBeacon(data)
	assert.False(t, ok)
}

func TestDecodeFindMy(t *testing.T) {
	t.Run("minimal frame without key", func(t *testing.T) {
		f, ok := DecodeFindMy([]byte{0x12, 0x19, 0x80})
		require.True(t, ok)
		assert.Equal(t, FindMyBatteryLow, f.BatteryLevel)
		assert.False(t, f.HasPublicKey())
	})

	t.Run("full frame with key", func(t *testing.T) {
		data := []byte{0x12, 0x19, 0x10}
		for i := 0; i < 22; i++ {
			data = append(data, byte(0xA0+i))
		}
		data = append(data, 0x02, 0x00)

		f, ok := DecodeFindMy(data)
		require.True(t, ok)
		assert.Equal(t, FindMyBatteryFull, f.BatteryLevel)
		require.True(t, f.HasPublicKey())
		assert.Len(t, f.PublicKey, 22)
		assert.Equal(t, byte(0xA0), f.PublicKey[0])
		assert.Equal(t, uint8(0x02), f.KeyBits)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := DecodeFindMy([]byte{0x12, 0x19})
		assert.False(t, ok)
		_, ok = DecodeFindMy([]byte{0x07, 0x19, 0x00})
		assert.False(t, ok)
	})
}

func TestDecodeExposureNotification(t *testing.T) {
	data := make([]byte, 20)
	data[16] = 0x04

	e, ok := DecodeExposureNotification(data)
	require.True(t, ok)
	assert.True(t, e.IsAlert)

	data[16] = 0x40
	e, ok = DecodeExposureNotification(data)
	require.True(t, ok)
	assert.False(t, e.IsAlert)

	_, ok = DecodeExposureNotification(data[:19])
	assert.False(t, ok)
}

func TestDetectBeaconType(t *testing.T) {
	tests := []struct {
		name string
		adv  Advertisement
		want BeaconType
	}{
		{"empty", Advertisement{}, BeaconUnknown},
		{"apple ibeacon", Advertisement{ManufacturerID: CompanyApple, ManufacturerData: iBeaconFrame()}, BeaconIBeacon},
		{"ibeacon prefix under other company", Advertisement{ManufacturerID: 0x0059, ManufacturerData: iBeaconFrame()}, BeaconUnknown},
		{"find my", Advertisement{ManufacturerID: CompanyApple, ManufacturerData: []byte{0x12, 0x19, 0x00}}, BeaconFindMy},
		{"altbeacon any company", Advertisement{ManufacturerID: 0x0118, ManufacturerData: []byte{0xBE, 0xAC}}, BeaconAltBeacon},
		{"eddystone short key", Advertisement{ServiceData: map[string][]byte{"feaa": {0x20}}}, BeaconEddystoneTLM},
		{
			"eddystone full uuid upper case",
			Advertisement{ServiceData: map[string][]byte{"0000FEAA-0000-1000-8000-00805F9B34FB": {0x10}}},
			BeaconEddystoneURL,
		},
		{"eddystone unknown frame", Advertisement{ServiceData: map[string][]byte{"feaa": {0x40}}}, BeaconUnknown},
		{"exposure by uuid list", Advertisement{ServiceUUIDs: []string{"FD6F"}}, BeaconExposureNotification},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectBeaconType(tt.adv))
		})
	}
}

func TestDecodeAdvertisement(t *testing.T) {
	layer, bt, ok := DecodeAdvertisement(Advertisement{ManufacturerID: CompanyApple, ManufacturerData: iBeaconFrame()})
	require.True(t, ok)
	assert.Equal(t, BeaconIBeacon, bt)
	assert.Equal(t, LayerTypeIBeacon, layer.LayerType())

	_, bt, ok = DecodeAdvertisement(Advertisement{ManufacturerID: CompanyApple, ManufacturerData: []byte{0x02, 0x15, 0x00}})
	assert.False(t, ok)
	assert.Equal(t, BeaconIBeacon, bt)

	_, bt, ok = DecodeAdvertisement(Advertisement{ManufacturerID: 0x1234, ManufacturerData: []byte{0x01}})
	assert.False(t, ok)
	assert.Equal(t, BeaconUnknown, bt)
}

func TestDecodeAdvertisement_RejectionsAreSilent(t *testing.T) {
	var buf bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.TraceLevel)
	t.Cleanup(func() { log.Logger = saved })

	for i := 0; i < 100; i++ {
		_, _, ok := DecodeAdvertisement(Advertisement{ManufacturerID: CompanyApple, ManufacturerData: []byte{0x02, 0x15, 0x00}})
		require.False(t, ok)
		_, ok = DecodeIBeacon(nil)
		require.False(t, ok)
	}
	assert.Empty(t, buf.String())
}
