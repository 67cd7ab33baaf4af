// Copyright 2025 Patrick InfraSec Consult. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file in the root of the source
// tree.

package lib_layers

import (
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

const (
	exposureMinLength = 20

	// unwantedTrackingAlert is set in the first metadata byte when the
	// accessory reports it is separated from its owner
	unwantedTrackingAlert byte = 0x04
)

// ExposureNotification is the service data of UUID 0xFD6F, shared by
// exposure notification and unwanted-tracking advertisements
type ExposureNotification struct {
	layers.BaseLayer
	RollingProximityID [16]byte
	Metadata           [4]byte
	IsAlert            bool
}

// LayerType returns the layer type for exposure notification
func (e *ExposureNotification) LayerType() gopacket.LayerType {
	return LayerTypeExposureNotification
}

// CanDecode returns the set of layer types that this DecodingLayer can decode
func (e *ExposureNotification) CanDecode() gopacket.LayerClass {
	return LayerTypeExposureNotification
}

// NextLayerType returns the layer type contained by this DecodingLayer
func (e *ExposureNotification) NextLayerType() gopacket.LayerType {
	return gopacket.LayerTypePayload
}

// DecodeFromBytes decodes the 0xFD6F service data
func (e *ExposureNotification) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	if len(data) < exposureMinLength {
		markTruncated(df)
		return fmt.Errorf("exposure notification payload too short: %d bytes", len(data))
	}

	copy(e.RollingProximityID[:], data[0:16])
	copy(e.Metadata[:], data[16:20])
	e.IsAlert = e.Metadata[0]&unwantedTrackingAlert != 0
	e.BaseLayer = layers.BaseLayer{Contents: data[:exposureMinLength], Payload: data[exposureMinLength:]}
	return nil
}

// DecodeExposureNotification decodes 0xFD6F service data, reporting false when truncated
func DecodeExposureNotification(data []byte) (*ExposureNotification, bool) {
	e := &ExposureNotification{}
	if !decodeWith(e, data) {
		return nil, false
	}
	return e, true
}
