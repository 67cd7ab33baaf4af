// Copyright 2025 Patrick InfraSec Consult. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file in the root of the source
// tree.

package lib_layers

import (
	"errors"
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

const (
	findMyType byte = 0x12

	findMyMinLength = 3
	findMyKeyEnd    = 25
)

// FindMyBattery is the coarse battery state carried in the status byte
type FindMyBattery uint8

const (
	FindMyBatteryFull FindMyBattery = iota
	FindMyBatteryMedium
	FindMyBatteryLow
	FindMyBatteryCritical
)

// String returns the string representation of the battery level
func (b FindMyBattery) String() string {
	switch b {
	case FindMyBatteryFull:
		return "Full"
	case FindMyBatteryMedium:
		return "Medium"
	case FindMyBatteryLow:
		return "Low"
	default:
		return "Critical"
	}
}

// FindMy is an Apple offline-finding advertisement (AirTag and Find My
// network accessories separated from their owner)
type FindMy struct {
	layers.BaseLayer
	Length       uint8
	Status       uint8
	BatteryLevel FindMyBattery
	PublicKey    []byte // 22 bytes of the rotating key, nil when truncated
	KeyBits      uint8
	Hint         uint8
}

// LayerType returns the layer type for Find My
func (f *FindMy) LayerType() gopacket.LayerType {
	return LayerTypeFindMy
}

// CanDecode returns the set of layer types that this DecodingLayer can decode
func (f *FindMy) CanDecode() gopacket.LayerClass {
	return LayerTypeFindMy
}

// NextLayerType returns the layer type contained by this DecodingLayer
func (f *FindMy) NextLayerType() gopacket.LayerType {
	return gopacket.LayerTypePayload
}

// DecodeFromBytes decodes Apple manufacturer data of type 0x12
func (f *FindMy) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	if len(data) < findMyMinLength {
		markTruncated(df)
		return fmt.Errorf("find my payload too short: %d bytes", len(data))
	}
	if data[0] != findMyType {
		return errors.New("not a Find My advertisement")
	}

	f.Length = data[1]
	f.Status = data[2]
	f.BatteryLevel = FindMyBattery((data[2] >> 6) & 0x03)
	f.PublicKey = nil
	f.KeyBits = 0
	f.Hint = 0

	end := len(data)
	if len(data) >= findMyKeyEnd {
		f.PublicKey = append([]byte(nil), data[3:findMyKeyEnd]...)
		if len(data) > findMyKeyEnd {
			f.KeyBits = data[findMyKeyEnd]
		}
		if len(data) > findMyKeyEnd+1 {
			f.Hint = data[findMyKeyEnd+1]
		}
		if end > findMyKeyEnd+2 {
			end = findMyKeyEnd + 2
		}
	}
	f.BaseLayer = layers.BaseLayer{Contents: data[:end], Payload: data[end:]}
	return nil
}

// HasPublicKey reports whether the advertisement carried the key bytes
func (f *FindMy) HasPublicKey() bool {
	return len(f.PublicKey) > 0
}

// DecodeFindMy decodes a Find My frame, reporting false on any mismatch
func DecodeFindMy(data []byte) (*FindMy, bool) {
	f := &FindMy{}
	if !decodeWith(f, data) {
		return nil, false
	}
	return f, true
}
