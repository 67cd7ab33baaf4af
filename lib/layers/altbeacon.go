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

var altBeaconCode = [2]byte{0xBE, 0xAC}

const altBeaconMinLength = 24

// AltBeacon is the open AltBeacon format. It can be carried under any
// manufacturer ID.
type AltBeacon struct {
	layers.BaseLayer
	BeaconID      [20]byte
	ReferenceRSSI int8
	MfgReserved   uint8
}

// LayerType returns the layer type for AltBeacon
func (b *AltBeacon) LayerType() gopacket.LayerType {
	return LayerTypeAltBeacon
}

// CanDecode returns the set of layer types that this DecodingLayer can decode
func (b *AltBeacon) CanDecode() gopacket.LayerClass {
	return LayerTypeAltBeacon
}

// NextLayerType returns the layer type contained by this DecodingLayer
func (b *AltBeacon) NextLayerType() gopacket.LayerType {
	return gopacket.LayerTypePayload
}

// DecodeFromBytes decodes manufacturer data following the company ID
func (b *AltBeacon) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	if len(data) < altBeaconMinLength {
		markTruncated(df)
		return fmt.Errorf("AltBeacon payload too short: %d bytes", len(data))
	}
	if data[0] != altBeaconCode[0] || data[1] != altBeaconCode[1] {
		return errors.New("missing AltBeacon code")
	}

	copy(b.BeaconID[:], data[2:22])
	b.ReferenceRSSI = int8(data[22])
	b.MfgReserved = data[23]
	b.BaseLayer = layers.BaseLayer{Contents: data[:altBeaconMinLength], Payload: data[altBeaconMinLength:]}
	return nil
}

// DecodeAltBeacon decodes an AltBeacon frame, reporting false on any mismatch
func DecodeAltBeacon(data []byte) (*AltBeacon, bool) {
	b := &AltBeacon{}
	if !decodeWith(b, data) {
		return nil, false
	}
	return b, true
}
