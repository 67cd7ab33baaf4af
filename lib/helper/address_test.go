package helper

import (
	"testing"

	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeMAC(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected string
		wantErr  bool
	}{
		{name: "colon upper case", address: "AA:BB:CC:00:11:22", expected: "aa:bb:cc:00:11:22"},
		{name: "dash separated", address: "aa-bb-cc-00-11-22", expected: "aa:bb:cc:00:11:22"},
		{name: "cisco dotted", address: "aabb.cc00.1122", expected: "aa:bb:cc:00:11:22"},
		{name: "bare hex", address: "aabbcc001122", expected: "aa:bb:cc:00:11:22"},
		{name: "too short", address: "aa:bb:cc", wantErr: true},
		{name: "not hex", address: "zz:bb:cc:00:11:22", wantErr: true},
		{name: "empty", address: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeMAC(tt.address)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMAC)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestOUI(t *testing.T) {
	oui, err := OUI("b4:1e:52:aa:bb:cc")
	assert.NoError(t, err)
	assert.Equal(t, "B4:1E:52", oui)

	_, err = OUI("garbage")
	assert.Error(t, err)
}

func TestIsLocallyAdministered(t *testing.T) {
	assert.True(t, IsLocallyAdministered("da:a1:19:00:00:01"))
	assert.True(t, IsLocallyAdministered("02:00:00:00:00:01"))
	assert.False(t, IsLocallyAdministered("00:11:22:33:44:55"))
	assert.False(t, IsLocallyAdministered("not-a-mac"))
}

func TestGetAddressScope(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected string
	}{
		{name: "broadcast", address: "ff:ff:ff:ff:ff:ff", expected: "broadcast"},
		{name: "multicast (odd first byte)", address: "01:00:5e:00:00:01", expected: "multicast"},
		{name: "unicast (even first byte)", address: "00:11:22:33:44:55", expected: "unicast"},
		{name: "upper case broadcast", address: "FF-FF-FF-FF-FF-FF", expected: "broadcast"},
		{name: "invalid", address: "xyz", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetAddressScope(tt.address))
		})
	}
}

func TestSameLocation(t *testing.T) {
	here := &model.Location{Latitude: 47.6062, Longitude: -122.3321}
	near := &model.Location{Latitude: 47.6065, Longitude: -122.3318}
	far := &model.Location{Latitude: 47.6107, Longitude: -122.3321} // ~500 m north

	assert.True(t, SameLocation(here, here, DefaultLocationTolerance))
	assert.True(t, SameLocation(here, near, DefaultLocationTolerance))
	assert.False(t, SameLocation(here, far, DefaultLocationTolerance))
	assert.True(t, SameLocation(here, nil, DefaultLocationTolerance), "unknown location matches")
	assert.True(t, SameLocation(nil, nil, DefaultLocationTolerance))
}

func TestDistanceMeters(t *testing.T) {
	a := model.Location{Latitude: 47.6062, Longitude: -122.3321}
	b := model.Location{Latitude: 47.6107, Longitude: -122.3321}

	d := DistanceMeters(a, b)
	assert.InDelta(t, 500, d, 10)
	assert.InDelta(t, 0, DistanceMeters(a, a), 1e-9)
}
