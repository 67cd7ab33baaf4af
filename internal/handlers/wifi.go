package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/InfraSecConsult/surveillance-detector-go/lib/helper"
	lib_layers "github.com/InfraSecConsult/surveillance-detector-go/lib/layers"
	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// WiFi heuristics thresholds
const (
	HiddenStrongRSSI = -50
	KarmaSSIDs       = 4 // distinct SSIDs answered by one BSSID
	networkWindow    = 10 * time.Minute
	maxTrackedKeys   = 4096
)

var suspiciousOpenNames = []string{
	"free", "public", "guest", "wifi", "open", "hotspot",
	"starbucks", "mcdonald", "airport", "hotel",
}

var wifiDeviceTypes = []model.DeviceType{
	model.DeviceTypeFlockSafetyCamera,
	model.DeviceTypePenguinSurveillance,
	model.DeviceTypeRavenAudioSensor,
	model.DeviceTypeGunshotDetector,
	model.DeviceTypeALPRCamera,
	model.DeviceTypeSurveillanceVan,
	model.DeviceTypeCCTVCamera,
	model.DeviceTypeSmartCityNode,
	model.DeviceTypeSmartStreetlight,
	model.DeviceTypeWiFiPineapple,
	model.DeviceTypeEvilTwin,
	model.DeviceTypeKarmaAttack,
	model.DeviceTypeSuspiciousHotspot,
	model.DeviceTypeHiddenNetwork,
	model.DeviceTypeRingDoorbell,
	model.DeviceTypeNestCamera,
	model.DeviceTypeSurveillanceDrone,
	model.DeviceTypeConsumerDrone,
}

// WiFiHandler classifies access points by SSID, vendor prefix and
// announcement behaviour
type WiFiHandler struct {
	*base
	bssidsBySSID *pairTracker
	ssidsByBSSID *pairTracker
}

// NewWiFiHandler creates a stopped WiFi handler
func NewWiFiHandler(opts Options) *WiFiHandler {
	return &WiFiHandler{
		base:         newBase("wifi", model.ProtocolWiFi, wifiDeviceTypes, opts),
		bssidsBySSID: newPairTracker(networkWindow, maxTrackedKeys),
		ssidsByBSSID: newPairTracker(networkWindow, maxTrackedKeys),
	}
}

// network is the normalised view of one access point announcement
type network struct {
	ssid  string
	bssid string
	open  bool
}

// networkFrom merges the scanner-provided fields with a raw 802.11 frame in
// the payload. Explicit fields win.
func networkFrom(obs model.Observation) network {
	n := network{ssid: obs.Identifier, bssid: obs.MAC}
	encryption := strings.ToUpper(obs.Encryption)
	n.open = encryption == "OPEN" || encryption == "NONE"

	if len(obs.Payload) > 0 {
		if ann, ok := lib_layers.DecodeDot11Announcement(obs.Payload); ok {
			if n.ssid == "" {
				n.ssid = ann.SSID
			}
			if n.bssid == "" {
				n.bssid = ann.BSSID
			}
			if encryption == "" {
				n.open = !ann.Privacy
			}
		}
	}
	if mac, err := helper.NormalizeMAC(n.bssid); err == nil {
		n.bssid = mac
	}
	// a group address is never an access point
	if scope := helper.GetAddressScope(n.bssid); scope == "broadcast" || scope == "multicast" {
		n.bssid = ""
	}
	return n
}

// Process classifies one access point announcement
func (h *WiFiHandler) Process(_ context.Context, obs model.Observation) []model.Detection {
	if !h.accept(obs) {
		return nil
	}
	n := networkFrom(obs)

	var candidates []model.ClassificationResult
	if c, ok := h.opts.Classifier.MatchSSID(n.ssid); ok {
		candidates = append(candidates, c)
	}
	if c, ok := h.opts.Classifier.MatchMACPrefix(n.bssid); ok {
		candidates = append(candidates, c)
	}

	if n.ssid != "" && n.bssid != "" {
		if count := h.bssidsBySSID.observe(n.ssid, n.bssid, obs.Timestamp); count > 1 {
			candidates = append(candidates, candidate(model.DeviceTypeEvilTwin, model.MatchPartial, 55,
				fmt.Sprintf("%d access points announce SSID %q", count, n.ssid), "behavior:multiple_bssids"))
		}
		if count := h.ssidsByBSSID.observe(n.bssid, n.ssid, obs.Timestamp); count >= KarmaSSIDs {
			candidates = append(candidates, candidate(model.DeviceTypeKarmaAttack, model.MatchStrong, 65,
				fmt.Sprintf("Access point %s answers for %d different SSIDs", n.bssid, count), "behavior:karma"))
		}
	}

	if n.open && isSuspiciousOpenName(n.ssid) {
		candidates = append(candidates, candidate(model.DeviceTypeSuspiciousHotspot, model.MatchHeuristic, 35,
			"Open network with a lure name, possible honeypot", "behavior:open_lure"))
	}
	if n.ssid == "" && obs.HasRSSI() && obs.RSSI > HiddenStrongRSSI {
		candidates = append(candidates, candidate(model.DeviceTypeHiddenNetwork, model.MatchWeak, 40,
			fmt.Sprintf("Strong hidden network (%d dBm)", obs.RSSI), "behavior:hidden_strong"))
	}
	if len(candidates) == 0 {
		return nil
	}

	oc := observationContext{sightings: h.sight(n.bssid, obs.Timestamp, FollowingWindow)}
	if oc.sightings.Count > 3 {
		oc.conditions = append(oc.conditions, model.ConditionRepeatedSights, model.ConditionStationary)
	}
	return h.emit(obs, candidates, oc)
}

func isSuspiciousOpenName(ssid string) bool {
	lower := strings.ToLower(ssid)
	for _, s := range suspiciousOpenNames {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// Destroy also forgets the network tables
func (h *WiFiHandler) Destroy() error {
	h.bssidsBySSID.reset()
	h.ssidsByBSSID.reset()
	return h.base.Destroy()
}
