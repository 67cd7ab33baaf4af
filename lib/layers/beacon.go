// Copyright 2025 Patrick InfraSec Consult. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file in the root of the source
// tree.

package lib_layers

import (
	"strings"

	"github.com/google/gopacket"
)

// Company identifiers and 16-bit service UUIDs used by the dispatcher
const (
	CompanyApple     uint16 = 0x004C
	CompanyMicrosoft uint16 = 0x0006
	CompanySamsung   uint16 = 0x0075

	ServiceEddystone            = "feaa"
	ServiceExposureNotification = "fd6f"
)

// BeaconType names the advertisement format a payload is expected to carry
type BeaconType uint8

const (
	BeaconUnknown BeaconType = iota
	BeaconIBeacon
	BeaconEddystoneUID
	BeaconEddystoneURL
	BeaconEddystoneTLM
	BeaconEddystoneEID
	BeaconAltBeacon
	BeaconFindMy
	BeaconExposureNotification
)

// String returns the string representation of the beacon type
func (b BeaconType) String() string {
	switch b {
	case BeaconIBeacon:
		return "iBeacon"
	case BeaconEddystoneUID:
		return "Eddystone-UID"
	case BeaconEddystoneURL:
		return "Eddystone-URL"
	case BeaconEddystoneTLM:
		return "Eddystone-TLM"
	case BeaconEddystoneEID:
		return "Eddystone-EID"
	case BeaconAltBeacon:
		return "AltBeacon"
	case BeaconFindMy:
		return "FindMy"
	case BeaconExposureNotification:
		return "ExposureNotification"
	default:
		return "Unknown"
	}
}

// Advertisement is the subset of a BLE advertisement the decoders look at.
// ManufacturerData starts right after the 16-bit company identifier.
type Advertisement struct {
	ManufacturerID   uint16
	ManufacturerData []byte
	ServiceUUIDs     []string
	ServiceData      map[string][]byte
}

// ServiceDataFor returns the service data whose key contains the given
// 16-bit UUID, ignoring case. Keys may be short ("feaa") or full 128-bit form.
func (a Advertisement) ServiceDataFor(uuid16 string) ([]byte, bool) {
	want := strings.ToLower(uuid16)
	for key, data := range a.ServiceData {
		if strings.Contains(strings.ToLower(key), want) {
			return data, true
		}
	}
	return nil, false
}

// AdvertisesService reports whether the 16-bit UUID appears in the service
// UUID list or as a service data key
func (a Advertisement) AdvertisesService(uuid16 string) bool {
	want := strings.ToLower(uuid16)
	for _, u := range a.ServiceUUIDs {
		if strings.Contains(strings.ToLower(u), want) {
			return true
		}
	}
	_, ok := a.ServiceDataFor(uuid16)
	return ok
}

// DetectBeaconType picks the single decoder worth trying for an advertisement
// without trial-decoding every format
func DetectBeaconType(adv Advertisement) BeaconType {
	if adv.AdvertisesService(ServiceExposureNotification) {
		return BeaconExposureNotification
	}

	if data, ok := adv.ServiceDataFor(ServiceEddystone); ok {
		if len(data) == 0 {
			return BeaconUnknown
		}
		switch data[0] {
		case eddystoneFrameUID:
			return BeaconEddystoneUID
		case eddystoneFrameURL:
			return BeaconEddystoneURL
		case eddystoneFrameTLM:
			return BeaconEddystoneTLM
		case eddystoneFrameEID:
			return BeaconEddystoneEID
		}
		return BeaconUnknown
	}

	mfg := adv.ManufacturerData
	if adv.ManufacturerID == CompanyApple && len(mfg) >= 2 {
		if mfg[0] == iBeaconType && mfg[1] == iBeaconLength {
			return BeaconIBeacon
		}
		if mfg[0] == findMyType {
			return BeaconFindMy
		}
	}
	if len(mfg) >= 2 && mfg[0] == altBeaconCode[0] && mfg[1] == altBeaconCode[1] {
		return BeaconAltBeacon
	}
	return BeaconUnknown
}

// DecodeAdvertisement dispatches an advertisement to the matching decoder.
// It returns false when no format matches or the payload is malformed.
func DecodeAdvertisement(adv Advertisement) (gopacket.Layer, BeaconType, bool) {
	bt := DetectBeaconType(adv)
	if bt == BeaconUnknown {
		return nil, bt, false
	}

	var layer gopacket.Layer
	switch bt {
	case BeaconIBeacon:
		if b, ok := DecodeIBeacon(adv.ManufacturerData); ok {
			layer = b
		}
	case BeaconAltBeacon:
		if b, ok := DecodeAltBeacon(adv.ManufacturerData); ok {
			layer = b
		}
	case BeaconFindMy:
		if b, ok := DecodeFindMy(adv.ManufacturerData); ok {
			layer = b
		}
	case BeaconExposureNotification:
		data, _ := adv.ServiceDataFor(ServiceExposureNotification)
		if b, ok := DecodeExposureNotification(data); ok {
			layer = b
		}
	default:
		data, _ := adv.ServiceDataFor(ServiceEddystone)
		layer = decodeEddystone(bt, data)
	}

	if layer == nil {
		return nil, bt, false
	}
	return layer, bt, true
}

func decodeEddystone(bt BeaconType, data []byte) gopacket.Layer {
	switch bt {
	case BeaconEddystoneUID:
		if e, ok := DecodeEddystoneUID(data); ok {
			return e
		}
	case BeaconEddystoneURL:
		if e, ok := DecodeEddystoneURL(data); ok {
			return e
		}
	case BeaconEddystoneTLM:
		if e, ok := DecodeEddystoneTLM(data); ok {
			return e
		}
	case BeaconEddystoneEID:
		if e, ok := DecodeEddystoneEID(data); ok {
			return e
		}
	}
	return nil
}

// decodeWith runs a DecodingLayer over data. Any decode error is a "no match".
func decodeWith(l gopacket.DecodingLayer, data []byte) bool {
	return l.DecodeFromBytes(data, gopacket.NilDecodeFeedback) == nil
}

// decodeLayer is the gopacket.Decoder glue shared by all advertisement layers
func decodeLayer(l gopacket.DecodingLayer, data []byte, p gopacket.PacketBuilder) error {
	if err := l.DecodeFromBytes(data, p); err != nil {
		return err
	}
	p.AddLayer(l.(gopacket.Layer))
	return p.NextDecoder(l.NextLayerType())
}

// Layer types for the advertisement formats, numbered high to avoid conflicts
var (
	LayerTypeIBeacon = gopacket.RegisterLayerType(2001, gopacket.LayerTypeMetadata{
		Name:    "IBeacon",
		Decoder: gopacket.DecodeFunc(func(data []byte, p gopacket.PacketBuilder) error { return decodeLayer(&IBeacon{}, data, p) }),
	})
	LayerTypeEddystoneUID = gopacket.RegisterLayerType(2002, gopacket.LayerTypeMetadata{
		Name:    "EddystoneUID",
		Decoder: gopacket.DecodeFunc(func(data []byte, p gopacket.PacketBuilder) error { return decodeLayer(&EddystoneUID{}, data, p) }),
	})
	LayerTypeEddystoneURL = gopacket.RegisterLayerType(2003, gopacket.LayerTypeMetadata{
		Name:    "EddystoneURL",
		Decoder: gopacket.DecodeFunc(func(data []byte, p gopacket.PacketBuilder) error { return decodeLayer(&EddystoneURL{}, data, p) }),
	})
	LayerTypeEddystoneTLM = gopacket.RegisterLayerType(2004, gopacket.LayerTypeMetadata{
		Name:    "EddystoneTLM",
		Decoder: gopacket.DecodeFunc(func(data []byte, p gopacket.PacketBuilder) error { return decodeLayer(&EddystoneTLM{}, data, p) }),
	})
	LayerTypeEddystoneEID = gopacket.RegisterLayerType(2005, gopacket.LayerTypeMetadata{
		Name:    "EddystoneEID",
		Decoder: gopacket.DecodeFunc(func(data []byte, p gopacket.PacketBuilder) error { return decodeLayer(&EddystoneEID{}, data, p) }),
	})
	LayerTypeAltBeacon = gopacket.RegisterLayerType(2006, gopacket.LayerTypeMetadata{
		Name:    "AltBeacon",
		Decoder: gopacket.DecodeFunc(func(data []byte, p gopacket.PacketBuilder) error { return decodeLayer(&AltBeacon{}, data, p) }),
	})
	LayerTypeFindMy = gopacket.RegisterLayerType(2007, gopacket.LayerTypeMetadata{
		Name:    "FindMy",
		Decoder: gopacket.DecodeFunc(func(data []byte, p gopacket.PacketBuilder) error { return decodeLayer(&FindMy{}, data, p) }),
	})
	LayerTypeExposureNotification = gopacket.RegisterLayerType(2008, gopacket.LayerTypeMetadata{
		Name:    "ExposureNotification",
		Decoder: gopacket.DecodeFunc(func(data []byte, p gopacket.PacketBuilder) error { return decodeLayer(&ExposureNotification{}, data, p) }),
	})
)

func markTruncated(df gopacket.DecodeFeedback) {
	if df != nil {
		df.SetTruncated()
	}
}
