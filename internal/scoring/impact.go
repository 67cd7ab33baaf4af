package scoring

import "github.com/InfraSecConsult/surveillance-detector-go/lib/model"

// DefaultImpactFactor applies to device types missing from the table
const DefaultImpactFactor = 1.0

// impactFactors is the potential harm if a classification is correct,
// from 0.5 (traffic infrastructure) to 2.0 (interception and forensics)
var impactFactors = map[model.DeviceType]float64{
	model.DeviceTypeCellSiteSimulator:    2.0,
	model.DeviceTypeFakeBaseStation2G:    2.0,
	model.DeviceTypeCellebriteForensics:  2.0,
	model.DeviceTypeGrayKeyForensics:     2.0,
	model.DeviceTypeRogueFemtocell:       1.8,
	model.DeviceTypeCellularBaitTower:    1.8,
	model.DeviceTypeL3HarrisSurveillance: 1.8,
	model.DeviceTypeGNSSSpoofer:          1.8,
	model.DeviceTypeGNSSJammer:           1.8,
	model.DeviceTypeFacialRecognition:    1.8,
	model.DeviceTypeHiddenCamera:         1.8,
	model.DeviceTypeHiddenMicrophone:     1.8,
	model.DeviceTypeManInTheMiddle:       1.8,
	model.DeviceTypeWiFiPineapple:        1.7,
	model.DeviceTypeEvilTwin:             1.6,
	model.DeviceTypeKarmaAttack:          1.6,
	model.DeviceTypeAirTag:               1.5,
	model.DeviceTypeFindMyAccessory:      1.5,
	model.DeviceTypeTileTracker:          1.5,
	model.DeviceTypeSamsungSmartTag:      1.5,
	model.DeviceTypeChipoloTracker:       1.5,
	model.DeviceTypeGenericBLETracker:    1.5,
	model.DeviceTypeGPSTracker:           1.5,
	model.DeviceTypeRogueAccessPoint:     1.5,
	model.DeviceTypeAudioSurveillance:    1.5,
	model.DeviceTypePacketSniffer:        1.4,
	model.DeviceTypeALPRCamera:           1.3,
	model.DeviceTypeFlockSafetyCamera:    1.3,
	model.DeviceTypePenguinSurveillance:  1.3,
	model.DeviceTypeMobileALPR:           1.3,
	model.DeviceTypeGunshotDetector:      1.3,
	model.DeviceTypeRavenAudioSensor:     1.3,
	model.DeviceTypeThermalCamera:        1.3,
	model.DeviceTypeSatelliteAnomaly:     1.3,
	model.DeviceTypeDeauthAttacker:       1.3,
	model.DeviceTypeSurveillanceDrone:    1.2,
	model.DeviceTypeConsumerDrone:        1.2,
	model.DeviceTypeUltrasonicBeacon:     1.2,
	model.DeviceTypePTZCamera:            1.2,
	model.DeviceTypeFlipperZero:          1.2,
	model.DeviceTypeRingDoorbell:         0.8,
	model.DeviceTypeNestCamera:           0.8,
	model.DeviceTypeArloCamera:           0.8,
	model.DeviceTypeWyzeCamera:           0.8,
	model.DeviceTypeEufyCamera:           0.8,
	model.DeviceTypeBlinkCamera:          0.8,
	model.DeviceTypeSmartCamera:          0.8,
	model.DeviceTypeBabyMonitor:          0.8,
	model.DeviceTypeSimpliSafe:           0.7,
	model.DeviceTypeADTSecurity:          0.7,
	model.DeviceTypeVivintSecurity:       0.7,
	model.DeviceTypeRetailBeacon:         0.7,
	model.DeviceTypeEddystoneBeacon:      0.7,
	model.DeviceTypeAltBeacon:            0.7,
	model.DeviceTypeExposureNotification: 0.5,
	model.DeviceTypeTrafficCamera:        0.5,
	model.DeviceTypeSpeedCamera:          0.5,
	model.DeviceTypeRedLightCamera:       0.5,
	model.DeviceTypeTollReader:           0.5,
	model.DeviceTypeParkingEnforcement:   0.5,
	model.DeviceTypeTrafficSensor:        0.5,
}

// ImpactFactor returns the harm multiplier for a device type
func ImpactFactor(dt model.DeviceType) float64 {
	if f, ok := impactFactors[dt]; ok {
		return f
	}
	return DefaultImpactFactor
}

// IsConsumerDevice reports whether the type is a mainstream consumer
// product, which lowers confidence that it is being used for surveillance
func IsConsumerDevice(dt model.DeviceType) bool {
	switch dt {
	case model.DeviceTypeRingDoorbell, model.DeviceTypeNestCamera, model.DeviceTypeArloCamera,
		model.DeviceTypeWyzeCamera, model.DeviceTypeEufyCamera, model.DeviceTypeBlinkCamera,
		model.DeviceTypeSmartCamera, model.DeviceTypeBabyMonitor, model.DeviceTypeSimpliSafe,
		model.DeviceTypeADTSecurity, model.DeviceTypeVivintSecurity, model.DeviceTypeSmartSpeaker,
		model.DeviceTypeConsumerDrone, model.DeviceTypeExposureNotification:
		return true
	}
	return false
}
