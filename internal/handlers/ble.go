package handlers

import (
	"context"
	"time"

	"github.com/google/gopacket"

	lib_layers "github.com/InfraSecConsult/surveillance-detector-go/lib/layers"
	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// BLE service UUIDs and Apple continuity types looked at beyond the beacon decoders
const (
	serviceTileFeed     = "feed"
	serviceTileFeec     = "feec"
	serviceChipolo      = "fe50"
	serviceFastPair     = "fe2c"
	appleProximityPair  = 0x07
	appleNearbyAction   = 0x10
	appleSpamMinLength  = 27
	samsungTagMinLength = 4
	swiftPairBeacon     = 0x03
)

// Following is declared when one address is seen this often within the window
const (
	FollowingSightings = 5
	FollowingWindow    = 5 * time.Minute
)

var bleDeviceTypes = []model.DeviceType{
	model.DeviceTypeAirTag,
	model.DeviceTypeFindMyAccessory,
	model.DeviceTypeTileTracker,
	model.DeviceTypeSamsungSmartTag,
	model.DeviceTypeChipoloTracker,
	model.DeviceTypeGenericBLETracker,
	model.DeviceTypeRetailBeacon,
	model.DeviceTypeEddystoneBeacon,
	model.DeviceTypeAltBeacon,
	model.DeviceTypeExposureNotification,
	model.DeviceTypeBLESpamApple,
	model.DeviceTypeBLESpamAndroid,
	model.DeviceTypeBLESpamWindows,
	model.DeviceTypeFlipperZero,
	model.DeviceTypeAxonDevice,
	model.DeviceTypeBodyCamera,
	model.DeviceTypeCellebriteForensics,
	model.DeviceTypeGrayKeyForensics,
	model.DeviceTypeHiddenCamera,
	model.DeviceTypeHiddenMicrophone,
	model.DeviceTypeGPSTracker,
}

// BLEHandler classifies BLE advertisements: trackers, proximity beacons,
// advertisement spam and named law-enforcement equipment
type BLEHandler struct {
	*base
}

// NewBLEHandler creates a stopped BLE handler
func NewBLEHandler(opts Options) *BLEHandler {
	return &BLEHandler{base: newBase("ble", model.ProtocolBLE, bleDeviceTypes, opts)}
}

// Process classifies one advertisement
func (h *BLEHandler) Process(_ context.Context, obs model.Observation) []model.Detection {
	if !h.accept(obs) {
		return nil
	}

	adv := lib_layers.Advertisement{
		ManufacturerID:   obs.ManufacturerID,
		ManufacturerData: obs.Payload,
		ServiceUUIDs:     obs.ServiceUUIDs,
		ServiceData:      obs.ServiceData,
	}

	var candidates []model.ClassificationResult
	if c, ok := classifyBeacon(adv); ok {
		candidates = append(candidates, c)
	}
	candidates = append(candidates, classifyVendorTrackers(adv)...)
	if c, ok := classifySpam(adv); ok {
		candidates = append(candidates, c)
	}
	if c, ok := h.opts.Classifier.MatchBLEName(obs.Identifier); ok {
		candidates = append(candidates, c)
	}
	if c, ok := h.opts.Classifier.MatchMACPrefix(obs.MAC); ok {
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return nil
	}

	oc := observationContext{sightings: h.sight(obs.MAC, obs.Timestamp, FollowingWindow)}
	if oc.sightings.Count >= FollowingSightings {
		oc.conditions = append(oc.conditions, model.ConditionFollowing)
		oc.extra = append(oc.extra, "behavior:following")
	}
	if oc.sightings.Count > 3 {
		oc.conditions = append(oc.conditions, model.ConditionRepeatedSights)
	}
	return h.emit(obs, candidates, oc)
}

// classifyBeacon runs the advertisement through the beacon decoders
func classifyBeacon(adv lib_layers.Advertisement) (model.ClassificationResult, bool) {
	layer, bt, ok := lib_layers.DecodeAdvertisement(adv)
	if !ok {
		return model.ClassificationResult{}, false
	}
	indicator := "decoder:" + bt.String()

	switch l := layer.(type) {
	case *lib_layers.FindMy:
		if l.HasPublicKey() {
			return candidate(model.DeviceTypeAirTag, model.MatchExact, 80,
				"Apple Find My advertisement with full public key, separated from owner", indicator), true
		}
		return candidate(model.DeviceTypeFindMyAccessory, model.MatchStrong, 65,
			"Apple Find My network accessory", indicator), true
	case *lib_layers.ExposureNotification:
		if l.IsAlert {
			return candidate(model.DeviceTypeGenericBLETracker, model.MatchExact, 80,
				"Unwanted tracking alert advertised by a tracker", indicator, "decoder:unwanted_tracking_alert"), true
		}
		return candidate(model.DeviceTypeExposureNotification, model.MatchExact, 5,
			"Exposure notification beacon from a phone", indicator), true
	case *lib_layers.IBeacon:
		return candidate(model.DeviceTypeRetailBeacon, model.MatchStrong, 35,
			"iBeacon proximity beacon "+l.UUID.String(), indicator), true
	case *lib_layers.AltBeacon:
		return candidate(model.DeviceTypeAltBeacon, model.MatchStrong, 35,
			"AltBeacon proximity beacon", indicator), true
	case *lib_layers.EddystoneUID, *lib_layers.EddystoneURL, *lib_layers.EddystoneTLM, *lib_layers.EddystoneEID:
		return candidate(model.DeviceTypeEddystoneBeacon, model.MatchStrong, 35,
			"Eddystone beacon ("+layerName(layer)+")", indicator), true
	}
	return model.ClassificationResult{}, false
}

func layerName(l gopacket.Layer) string {
	return l.LayerType().String()
}

// classifyVendorTrackers recognises trackers that announce themselves by
// company identifier or service UUID rather than a decodable payload
func classifyVendorTrackers(adv lib_layers.Advertisement) []model.ClassificationResult {
	var out []model.ClassificationResult
	if adv.ManufacturerID == lib_layers.CompanySamsung && len(adv.ManufacturerData) >= samsungTagMinLength {
		out = append(out, candidate(model.DeviceTypeSamsungSmartTag, model.MatchStrong, 65,
			"Samsung SmartThings Find advertisement", "service:samsung_smarttag"))
	}
	if adv.AdvertisesService(serviceTileFeed) || adv.AdvertisesService(serviceTileFeec) {
		out = append(out, candidate(model.DeviceTypeTileTracker, model.MatchStrong, 70,
			"Tile tracker service", "service:tile"))
	}
	if adv.AdvertisesService(serviceChipolo) {
		out = append(out, candidate(model.DeviceTypeChipoloTracker, model.MatchStrong, 65,
			"Chipolo tracker service", "service:chipolo"))
	}
	return out
}

// classifySpam recognises pairing-popup floods as sent by BLE spam tools
func classifySpam(adv lib_layers.Advertisement) (model.ClassificationResult, bool) {
	data := adv.ManufacturerData
	switch {
	case adv.ManufacturerID == lib_layers.CompanyApple && len(data) >= appleSpamMinLength &&
		(data[0] == appleProximityPair || data[0] == appleNearbyAction):
		return candidate(model.DeviceTypeBLESpamApple, model.MatchHeuristic, 45,
			"Apple proximity pairing popup advertisement", "spam:apple_popup"), true
	case adv.AdvertisesService(serviceFastPair):
		return candidate(model.DeviceTypeBLESpamAndroid, model.MatchHeuristic, 40,
			"Google Fast Pair popup advertisement", "spam:android_fast_pair"), true
	case adv.ManufacturerID == lib_layers.CompanyMicrosoft && len(data) >= 1 && data[0] == swiftPairBeacon:
		return candidate(model.DeviceTypeBLESpamWindows, model.MatchHeuristic, 40,
			"Microsoft Swift Pair popup advertisement", "spam:windows_swift_pair"), true
	}
	return model.ClassificationResult{}, false
}
