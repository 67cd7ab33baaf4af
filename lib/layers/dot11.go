// Copyright 2025 Patrick InfraSec Consult. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file in the root of the source
// tree.

package lib_layers

import (
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// dot11CapabilityPrivacy is the privacy bit of the beacon capability field
const dot11CapabilityPrivacy uint16 = 0x0010

// Dot11Announcement is what an access point announces about itself in a
// beacon or in a direct response to a client search
type Dot11Announcement struct {
	SSID    string
	BSSID   string
	Channel int
	Privacy bool
	Hidden  bool // zero-length or all-NUL SSID element
}

// DecodeDot11Announcement decodes a raw 802.11 management frame including its
// trailing 4-byte FCS. Only beacons and
// their unicast response counterparts (subtype 5) match.
func DecodeDot11Announcement(frame []byte) (*Dot11Announcement, bool) {
	packet := gopacket.NewPacket(frame, layers.LayerTypeDot11, gopacket.DecodeOptions{NoCopy: true})

	dot11Layer := packet.Layer(layers.LayerTypeDot11)
	if dot11Layer == nil {
		return nil, false
	}
	dot11, _ := dot11Layer.(*layers.Dot11)
	if dot11.Type != layers.Dot11TypeMgmtBeacon && dot11.Type != layers.Dot11TypeMgmtProbeResp {
		return nil, false
	}

	ann := &Dot11Announcement{BSSID: dot11.Address3.String()}

	if beacon, ok := packet.Layer(layers.LayerTypeDot11MgmtBeacon).(*layers.Dot11MgmtBeacon); ok {
		ann.Privacy = beacon.Flags&dot11CapabilityPrivacy != 0
	} else if resp, ok := packet.Layer(layers.LayerTypeDot11MgmtProbeResp).(*layers.Dot11MgmtProbeResp); ok {
		ann.Privacy = resp.Flags&dot11CapabilityPrivacy != 0
	}

	sawSSID := false
	for _, l := range packet.Layers() {
		ie, ok := l.(*layers.Dot11InformationElement)
		if !ok {
			continue
		}
		switch ie.ID {
		case layers.Dot11InformationElementIDSSID:
			if sawSSID {
				continue
			}
			sawSSID = true
			ann.SSID = string(ie.Info)
			ann.Hidden = isHiddenSSID(ie.Info)
		case layers.Dot11InformationElementIDDSSet:
			if len(ie.Info) >= 1 {
				ann.Channel = int(ie.Info[0])
			}
		}
	}
	if !sawSSID {
		return nil, false
	}
	if ann.Hidden {
		ann.SSID = ""
	}
	return ann, true
}

func isHiddenSSID(ssid []byte) bool {
	for _, b := range ssid {
		if b != 0 {
			return false
		}
	}
	return true
}
