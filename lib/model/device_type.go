package model

import (
	"fmt"
	"strings"
)

// DeviceType is the closed taxonomy of surveillance and tracking device categories.
// Values are dense so they can index fixed-size lookup tables.
type DeviceType int

const (
	DeviceTypeUnknown DeviceType = iota

	// Cellular
	DeviceTypeCellSiteSimulator
	DeviceTypeFakeBaseStation2G
	DeviceTypeRogueFemtocell
	DeviceTypeCellularBaitTower

	// GNSS
	DeviceTypeGNSSSpoofer
	DeviceTypeGNSSJammer

	// License plate and traffic
	DeviceTypeALPRCamera
	DeviceTypeFlockSafetyCamera
	DeviceTypePenguinSurveillance
	DeviceTypeMobileALPR
	DeviceTypeTrafficCamera
	DeviceTypeSpeedCamera
	DeviceTypeRedLightCamera
	DeviceTypeTollReader
	DeviceTypeParkingEnforcement
	DeviceTypeTrafficSensor

	// Acoustic
	DeviceTypeGunshotDetector
	DeviceTypeRavenAudioSensor
	DeviceTypeUltrasonicBeacon
	DeviceTypeAudioSurveillance

	// Law enforcement equipment
	DeviceTypeBodyCamera
	DeviceTypePoliceRadio
	DeviceTypePoliceVehicle
	DeviceTypeAxonDevice
	DeviceTypeMotorolaPoliceTech
	DeviceTypeL3HarrisSurveillance
	DeviceTypeCellebriteForensics
	DeviceTypeGrayKeyForensics
	DeviceTypeSurveillanceVan

	// Aerial
	DeviceTypeSurveillanceDrone
	DeviceTypeConsumerDrone

	// Personal trackers
	DeviceTypeAirTag
	DeviceTypeFindMyAccessory
	DeviceTypeTileTracker
	DeviceTypeSamsungSmartTag
	DeviceTypeChipoloTracker
	DeviceTypeGenericBLETracker
	DeviceTypeGPSTracker
	DeviceTypeFleetTelematics

	// Proximity beacons
	DeviceTypeRetailBeacon
	DeviceTypeEddystoneBeacon
	DeviceTypeAltBeacon
	DeviceTypeExposureNotification
	DeviceTypeRetailAnalyticsSensor
	DeviceTypeWiFiProbeTracker

	// Consumer cameras and home security
	DeviceTypeRingDoorbell
	DeviceTypeNestCamera
	DeviceTypeArloCamera
	DeviceTypeWyzeCamera
	DeviceTypeEufyCamera
	DeviceTypeBlinkCamera
	DeviceTypeSmartCamera
	DeviceTypeBabyMonitor
	DeviceTypeSimpliSafe
	DeviceTypeADTSecurity
	DeviceTypeVivintSecurity
	DeviceTypeSmartSpeaker

	// Fixed CCTV and smart city
	DeviceTypeCCTVCamera
	DeviceTypePTZCamera
	DeviceTypeThermalCamera
	DeviceTypeFacialRecognition
	DeviceTypeSmartStreetlight
	DeviceTypeSmartCityNode

	// Covert devices
	DeviceTypeHiddenCamera
	DeviceTypeHiddenMicrophone

	// WiFi attacks
	DeviceTypeRogueAccessPoint
	DeviceTypeEvilTwin
	DeviceTypeWiFiPineapple
	DeviceTypeKarmaAttack
	DeviceTypeDeauthAttacker
	DeviceTypePacketSniffer
	DeviceTypeManInTheMiddle
	DeviceTypeSuspiciousHotspot
	DeviceTypeHiddenNetwork

	// BLE attacks
	DeviceTypeBLESpamApple
	DeviceTypeBLESpamAndroid
	DeviceTypeBLESpamWindows
	DeviceTypeFlipperZero

	// Satellite
	DeviceTypeSatelliteAnomaly

	DeviceTypeUnknownSurveillance

	deviceTypeCount
)

var deviceTypeNames = [deviceTypeCount]string{
	DeviceTypeUnknown:               "UNKNOWN",
	DeviceTypeCellSiteSimulator:     "CELL_SITE_SIMULATOR",
	DeviceTypeFakeBaseStation2G:     "FAKE_BASE_STATION_2G",
	DeviceTypeRogueFemtocell:        "ROGUE_FEMTOCELL",
	DeviceTypeCellularBaitTower:     "CELLULAR_BAIT_TOWER",
	DeviceTypeGNSSSpoofer:           "GNSS_SPOOFER",
	DeviceTypeGNSSJammer:            "GNSS_JAMMER",
	DeviceTypeALPRCamera:            "ALPR_CAMERA",
	DeviceTypeFlockSafetyCamera:     "FLOCK_SAFETY_CAMERA",
	DeviceTypePenguinSurveillance:   "PENGUIN_SURVEILLANCE",
	DeviceTypeMobileALPR:            "MOBILE_ALPR",
	DeviceTypeTrafficCamera:         "TRAFFIC_CAMERA",
	DeviceTypeSpeedCamera:           "SPEED_CAMERA",
	DeviceTypeRedLightCamera:        "RED_LIGHT_CAMERA",
	DeviceTypeTollReader:            "TOLL_READER",
	DeviceTypeParkingEnforcement:    "PARKING_ENFORCEMENT",
	DeviceTypeTrafficSensor:         "TRAFFIC_SENSOR",
	DeviceTypeGunshotDetector:       "GUNSHOT_DETECTOR",
	DeviceTypeRavenAudioSensor:      "RAVEN_AUDIO_SENSOR",
	DeviceTypeUltrasonicBeacon:      "ULTRASONIC_BEACON",
	DeviceTypeAudioSurveillance:     "AUDIO_SURVEILLANCE",
	DeviceTypeBodyCamera:            "BODY_CAMERA",
	DeviceTypePoliceRadio:           "POLICE_RADIO",
	DeviceTypePoliceVehicle:         "POLICE_VEHICLE",
	DeviceTypeAxonDevice:            "AXON_DEVICE",
	DeviceTypeMotorolaPoliceTech:    "MOTOROLA_POLICE_TECH",
	DeviceTypeL3HarrisSurveillance:  "L3HARRIS_SURVEILLANCE",
	DeviceTypeCellebriteForensics:   "CELLEBRITE_FORENSICS",
	DeviceTypeGrayKeyForensics:      "GRAYKEY_FORENSICS",
	DeviceTypeSurveillanceVan:       "SURVEILLANCE_VAN",
	DeviceTypeSurveillanceDrone:     "SURVEILLANCE_DRONE",
	DeviceTypeConsumerDrone:         "CONSUMER_DRONE",
	DeviceTypeAirTag:                "AIRTAG",
	DeviceTypeFindMyAccessory:       "FIND_MY_ACCESSORY",
	DeviceTypeTileTracker:           "TILE_TRACKER",
	DeviceTypeSamsungSmartTag:       "SAMSUNG_SMARTTAG",
	DeviceTypeChipoloTracker:        "CHIPOLO_TRACKER",
	DeviceTypeGenericBLETracker:     "GENERIC_BLE_TRACKER",
	DeviceTypeGPSTracker:            "GPS_TRACKER",
	DeviceTypeFleetTelematics:       "FLEET_TELEMATICS",
	DeviceTypeRetailBeacon:          "RETAIL_BEACON",
	DeviceTypeEddystoneBeacon:       "EDDYSTONE_BEACON",
	DeviceTypeAltBeacon:             "ALTBEACON",
	DeviceTypeExposureNotification:  "EXPOSURE_NOTIFICATION",
	DeviceTypeRetailAnalyticsSensor: "RETAIL_ANALYTICS_SENSOR",
	DeviceTypeWiFiProbeTracker:      "WIFI_PROBE_TRACKER",
	DeviceTypeRingDoorbell:          "RING_DOORBELL",
	DeviceTypeNestCamera:            "NEST_CAMERA",
	DeviceTypeArloCamera:            "ARLO_CAMERA",
	DeviceTypeWyzeCamera:            "WYZE_CAMERA",
	DeviceTypeEufyCamera:            "EUFY_CAMERA",
	DeviceTypeBlinkCamera:           "BLINK_CAMERA",
	DeviceTypeSmartCamera:           "SMART_CAMERA",
	DeviceTypeBabyMonitor:           "BABY_MONITOR",
	DeviceTypeSimpliSafe:            "SIMPLISAFE",
	DeviceTypeADTSecurity:           "ADT_SECURITY",
	DeviceTypeVivintSecurity:        "VIVINT_SECURITY",
	DeviceTypeSmartSpeaker:          "SMART_SPEAKER",
	DeviceTypeCCTVCamera:            "CCTV_CAMERA",
	DeviceTypePTZCamera:             "PTZ_CAMERA",
	DeviceTypeThermalCamera:         "THERMAL_CAMERA",
	DeviceTypeFacialRecognition:     "FACIAL_RECOGNITION",
	DeviceTypeSmartStreetlight:      "SMART_STREETLIGHT",
	DeviceTypeSmartCityNode:         "SMART_CITY_NODE",
	DeviceTypeHiddenCamera:          "HIDDEN_CAMERA",
	DeviceTypeHiddenMicrophone:      "HIDDEN_MICROPHONE",
	DeviceTypeRogueAccessPoint:      "ROGUE_ACCESS_POINT",
	DeviceTypeEvilTwin:              "EVIL_TWIN",
	DeviceTypeWiFiPineapple:         "WIFI_PINEAPPLE",
	DeviceTypeKarmaAttack:           "KARMA_ATTACK",
	DeviceTypeDeauthAttacker:        "DEAUTH_ATTACKER",
	DeviceTypePacketSniffer:         "PACKET_SNIFFER",
	DeviceTypeManInTheMiddle:        "MAN_IN_THE_MIDDLE",
	DeviceTypeSuspiciousHotspot:     "SUSPICIOUS_HOTSPOT",
	DeviceTypeHiddenNetwork:         "HIDDEN_NETWORK",
	DeviceTypeBLESpamApple:          "BLE_SPAM_APPLE",
	DeviceTypeBLESpamAndroid:        "BLE_SPAM_ANDROID",
	DeviceTypeBLESpamWindows:        "BLE_SPAM_WINDOWS",
	DeviceTypeFlipperZero:           "FLIPPER_ZERO",
	DeviceTypeSatelliteAnomaly:      "SATELLITE_ANOMALY",
	DeviceTypeUnknownSurveillance:   "UNKNOWN_SURVEILLANCE",
}

// DeviceTypeCount is the number of defined device types
const DeviceTypeCount = int(deviceTypeCount)

// AllDeviceTypes returns every device type in ordinal order
func AllDeviceTypes() []DeviceType {
	types := make([]DeviceType, 0, deviceTypeCount)
	for dt := DeviceTypeUnknown; dt < deviceTypeCount; dt++ {
		types = append(types, dt)
	}
	return types
}

// IsValid reports whether dt is inside the closed taxonomy
func (dt DeviceType) IsValid() bool {
	return dt >= DeviceTypeUnknown && dt < deviceTypeCount
}

func (dt DeviceType) String() string {
	if !dt.IsValid() {
		return fmt.Sprintf("DeviceType(%d)", int(dt))
	}
	return deviceTypeNames[dt]
}

// MarshalText encodes the device type by name
func (dt DeviceType) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

// UnmarshalText decodes a device type name
func (dt *DeviceType) UnmarshalText(text []byte) error {
	parsed, err := ParseDeviceType(string(text))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

// ParseDeviceType resolves a device type by its case-insensitive name
func ParseDeviceType(name string) (DeviceType, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range deviceTypeNames {
		if n == want {
			return DeviceType(i), nil
		}
	}
	return DeviceTypeUnknown, fmt.Errorf("unknown device type %q", name)
}
