// Copyright 2025 Patrick InfraSec Consult. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file in the root of the source
// tree.

package lib_layers

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/uuid"
)

const (
	iBeaconType   byte = 0x02
	iBeaconLength byte = 0x15

	iBeaconMinLength = 23
)

// IBeacon is an Apple iBeacon advertisement. Major and minor are big-endian
// on the wire.
type IBeacon struct {
	layers.BaseLayer
	UUID    uuid.UUID
	Major   uint16
	Minor   uint16
	TxPower int8 // calibrated RSSI at 1 m
}

// LayerType returns the layer type for iBeacon
func (b *IBeacon) LayerType() gopacket.LayerType {
	return LayerTypeIBeacon
}

// CanDecode returns the set of layer types that this DecodingLayer can decode
func (b *IBeacon) CanDecode() gopacket.LayerClass {
	return LayerTypeIBeacon
}

// NextLayerType returns the layer type contained by this DecodingLayer
func (b *IBeacon) NextLayerType() gopacket.LayerType {
	return gopacket.LayerTypePayload
}

// DecodeFromBytes decodes manufacturer data following the Apple company ID
func (b *IBeacon) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	if len(data) < iBeaconMinLength {
		markTruncated(df)
		return fmt.Errorf("iBeacon payload too short: %d bytes", len(data))
	}
	if data[0] != iBeaconType || data[1] != iBeaconLength {
		return errors.New("not an iBeacon prefix")
	}

	copy(b.UUID[:], data[2:18])
	b.Major = binary.BigEndian.Uint16(data[18:20])
	b.Minor = binary.BigEndian.Uint16(data[20:22])
	b.TxPower = int8(data[22])
	b.BaseLayer = layers.BaseLayer{Contents: data[:iBeaconMinLength], Payload: data[iBeaconMinLength:]}
	return nil
}

// DecodeIBeacon decodes an iBeacon frame, reporting false on any mismatch
func DecodeIBeacon(data []byte) (*IBeacon, bool) {
	b := &IBeacon{}
	if !decodeWith(b, data) {
		return nil, false
	}
	return b, true
}
