// Copyright 2025 Patrick InfraSec Consult. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file in the root of the source
// tree.

package lib_layers

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// Eddystone frame types, first byte of the 0xFEAA service data
const (
	eddystoneFrameUID byte = 0x00
	eddystoneFrameURL byte = 0x10
	eddystoneFrameTLM byte = 0x20
	eddystoneFrameEID byte = 0x30

	eddystoneUIDMinLength = 18
	eddystoneURLMinLength = 3
	eddystoneTLMMinLength = 14
	eddystoneEIDMinLength = 10
)

var eddystoneURLSchemes = [...]string{
	0x00: "http://www.",
	0x01: "https://www.",
	0x02: "http://",
	0x03: "https://",
}

var eddystoneURLSuffixes = [...]string{
	0x00: ".com/",
	0x01: ".org/",
	0x02: ".edu/",
	0x03: ".net/",
	0x04: ".info/",
	0x05: ".biz/",
	0x06: ".gov/",
	0x07: ".com",
	0x08: ".org",
	0x09: ".edu",
	0x0a: ".net",
	0x0b: ".info",
	0x0c: ".biz",
	0x0d: ".gov",
}

func checkEddystoneFrame(data []byte, frame byte, minLength int, df gopacket.DecodeFeedback) error {
	if len(data) < minLength {
		markTruncated(df)
		return fmt.Errorf("eddystone frame 0x%02x too short: %d bytes", frame, len(data))
	}
	if data[0] != frame {
		return fmt.Errorf("eddystone frame type 0x%02x, want 0x%02x", data[0], frame)
	}
	return nil
}

// EddystoneUID carries a static 10-byte namespace and 6-byte instance
type EddystoneUID struct {
	layers.BaseLayer
	TxPower   int8 // calibrated at 0 m
	Namespace [10]byte
	Instance  [6]byte
}

// LayerType returns the layer type for Eddystone-UID
func (e *EddystoneUID) LayerType() gopacket.LayerType { return LayerTypeEddystoneUID }

// CanDecode returns the set of layer types that this DecodingLayer can decode
func (e *EddystoneUID) CanDecode() gopacket.LayerClass { return LayerTypeEddystoneUID }

// NextLayerType returns the layer type contained by this DecodingLayer
func (e *EddystoneUID) NextLayerType() gopacket.LayerType { return gopacket.LayerTypePayload }

// DecodeFromBytes decodes an Eddystone-UID frame
func (e *EddystoneUID) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	if err := checkEddystoneFrame(data, eddystoneFrameUID, eddystoneUIDMinLength, df); err != nil {
		return err
	}
	e.TxPower = int8(data[1])
	copy(e.Namespace[:], data[2:12])
	copy(e.Instance[:], data[12:18])
	e.BaseLayer = layers.BaseLayer{Contents: data[:eddystoneUIDMinLength], Payload: data[eddystoneUIDMinLength:]}
	return nil
}

// NamespaceHex returns the namespace as lower-case hex
func (e *EddystoneUID) NamespaceHex() string {
	return hex.EncodeToString(e.Namespace[:])
}

// InstanceHex returns the instance as lower-case hex
func (e *EddystoneUID) InstanceHex() string {
	return hex.EncodeToString(e.Instance[:])
}

// DecodeEddystoneUID decodes a UID frame, reporting false on any mismatch
func DecodeEddystoneUID(data []byte) (*EddystoneUID, bool) {
	e := &EddystoneUID{}
	if !decodeWith(e, data) {
		return nil, false
	}
	return e, true
}

// EddystoneURL carries a compressed URL
type EddystoneURL struct {
	layers.BaseLayer
	TxPower int8
	URL     string
}

// LayerType returns the layer type for Eddystone-URL
func (e *EddystoneURL) LayerType() gopacket.LayerType { return LayerTypeEddystoneURL }

// CanDecode returns the set of layer types that this DecodingLayer can decode
func (e *EddystoneURL) CanDecode() gopacket.LayerClass { return LayerTypeEddystoneURL }

// NextLayerType returns the layer type contained by this DecodingLayer
func (e *EddystoneURL) NextLayerType() gopacket.LayerType { return gopacket.LayerTypePayload }

// DecodeFromBytes decodes an Eddystone-URL frame and expands the scheme and
// suffix tokens
func (e *EddystoneURL) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	if err := checkEddystoneFrame(data, eddystoneFrameURL, eddystoneURLMinLength, df); err != nil {
		return err
	}
	scheme := int(data[2])
	if scheme >= len(eddystoneURLSchemes) {
		return fmt.Errorf("unknown eddystone URL scheme 0x%02x", data[2])
	}

	var sb strings.Builder
	sb.WriteString(eddystoneURLSchemes[scheme])
	for _, c := range data[3:] {
		if int(c) < len(eddystoneURLSuffixes) {
			sb.WriteString(eddystoneURLSuffixes[c])
			continue
		}
		// 0x0e-0x20 and 0x7f-0xff are reserved
		if c <= 0x20 || c >= 0x7f {
			return fmt.Errorf("reserved byte 0x%02x in eddystone URL", c)
		}
		sb.WriteByte(c)
	}

	e.TxPower = int8(data[1])
	e.URL = sb.String()
	e.BaseLayer = layers.BaseLayer{Contents: data, Payload: nil}
	return nil
}

// DecodeEddystoneURL decodes a URL frame, reporting false on any mismatch
func DecodeEddystoneURL(data []byte) (*EddystoneURL, bool) {
	e := &EddystoneURL{}
	if !decodeWith(e, data) {
		return nil, false
	}
	return e, true
}

// EddystoneTLM is the unencrypted telemetry frame
type EddystoneTLM struct {
	layers.BaseLayer
	Version            uint8
	BatteryMillivolts  uint16
	TemperatureCelsius float64 // signed 8.8 fixed point on the wire
	AdvertisementCount uint32
	UptimeSeconds      uint32 // wire value is in 0.1 s units
}

// LayerType returns the layer type for Eddystone-TLM
func (e *EddystoneTLM) LayerType() gopacket.LayerType { return LayerTypeEddystoneTLM }

// CanDecode returns the set of layer types that this DecodingLayer can decode
func (e *EddystoneTLM) CanDecode() gopacket.LayerClass { return LayerTypeEddystoneTLM }

// NextLayerType returns the layer type contained by this DecodingLayer
func (e *EddystoneTLM) NextLayerType() gopacket.LayerType { return gopacket.LayerTypePayload }

// DecodeFromBytes decodes an Eddystone-TLM frame
func (e *EddystoneTLM) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	if err := checkEddystoneFrame(data, eddystoneFrameTLM, eddystoneTLMMinLength, df); err != nil {
		return err
	}
	e.Version = data[1]
	e.BatteryMillivolts = binary.BigEndian.Uint16(data[2:4])
	e.TemperatureCelsius = float64(int16(binary.BigEndian.Uint16(data[4:6]))) / 256.0
	e.AdvertisementCount = binary.BigEndian.Uint32(data[6:10])
	e.UptimeSeconds = binary.BigEndian.Uint32(data[10:14]) / 10
	e.BaseLayer = layers.BaseLayer{Contents: data[:eddystoneTLMMinLength], Payload: data[eddystoneTLMMinLength:]}
	return nil
}

// DecodeEddystoneTLM decodes a TLM frame, reporting false on any mismatch
func DecodeEddystoneTLM(data []byte) (*EddystoneTLM, bool) {
	e := &EddystoneTLM{}
	if !decodeWith(e, data) {
		return nil, false
	}
	return e, true
}

// EddystoneEID carries a rotating 8-byte ephemeral identifier
type EddystoneEID struct {
	layers.BaseLayer
	TxPower     int8
	EphemeralID [8]byte
}

// LayerType returns the layer type for Eddystone-EID
func (e *EddystoneEID) LayerType() gopacket.LayerType { return LayerTypeEddystoneEID }

// CanDecode returns the set of layer types that this DecodingLayer can decode
func (e *EddystoneEID) CanDecode() gopacket.LayerClass { return LayerTypeEddystoneEID }

// NextLayerType returns the layer type contained by this DecodingLayer
func (e *EddystoneEID) NextLayerType() gopacket.LayerType { return gopacket.LayerTypePayload }

// DecodeFromBytes decodes an Eddystone-EID frame
func (e *EddystoneEID) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	if err := checkEddystoneFrame(data, eddystoneFrameEID, eddystoneEIDMinLength, df); err != nil {
		return err
	}
	e.TxPower = int8(data[1])
	copy(e.EphemeralID[:], data[2:10])
	e.BaseLayer = layers.BaseLayer{Contents: data[:eddystoneEIDMinLength], Payload: data[eddystoneEIDMinLength:]}
	return nil
}

// DecodeEddystoneEID decodes an EID frame, reporting false on any mismatch
func DecodeEddystoneEID(data []byte) (*EddystoneEID, bool) {
	e := &EddystoneEID{}
	if !decodeWith(e, data) {
		return nil, false
	}
	return e, true
}
