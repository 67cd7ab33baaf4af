package handlers

import (
	"context"
	"fmt"

	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// Near-ultrasonic band used by cross-device tracking beacons
const (
	UltrasonicMinHz = 18000.0
	UltrasonicMaxHz = 20500.0
)

// UltrasonicHandler flags near-ultrasonic tones used for cross-device tracking
type UltrasonicHandler struct {
	*base
}

// NewUltrasonicHandler creates a stopped ultrasonic handler
func NewUltrasonicHandler(opts Options) *UltrasonicHandler {
	return &UltrasonicHandler{base: newBase("ultrasonic", model.ProtocolUltrasonic,
		[]model.DeviceType{model.DeviceTypeUltrasonicBeacon}, opts)}
}

// Process evaluates one detected tone
func (h *UltrasonicHandler) Process(_ context.Context, obs model.Observation) []model.Detection {
	if !h.accept(obs) || obs.Ultrasonic == nil {
		return nil
	}
	u := obs.Ultrasonic
	if u.FrequencyHz < UltrasonicMinHz || u.FrequencyHz > UltrasonicMaxHz {
		return nil
	}

	indicators := []string{"audio:near_ultrasonic"}
	likelihood := 40
	if u.DurationMs >= 1000 {
		indicators = append(indicators, "audio:sustained")
		likelihood += 20
	}
	if u.AmplitudeDb > -40 {
		indicators = append(indicators, "audio:loud")
		likelihood += 10
	}

	cls := candidate(model.DeviceTypeUltrasonicBeacon, qualityFor(len(indicators)), likelihood,
		fmt.Sprintf("Near-ultrasonic tone at %.0f Hz", u.FrequencyHz), indicators...)
	key := fmt.Sprintf("%.0f", u.FrequencyHz/100)
	oc := observationContext{sightings: h.sight(key, obs.Timestamp, FollowingWindow)}
	return h.emit(obs, []model.ClassificationResult{cls}, oc)
}
