package handlers

import (
	"context"
	"fmt"

	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// UsableTerrestrialRSSI is the terrestrial signal above which a phone has no
// reason to fall back to a satellite network
const UsableTerrestrialRSSI = -100

// SatelliteHandler flags non-terrestrial network attaches the user did not ask for
type SatelliteHandler struct {
	*base
}

// NewSatelliteHandler creates a stopped satellite handler
func NewSatelliteHandler(opts Options) *SatelliteHandler {
	return &SatelliteHandler{base: newBase("satellite", model.ProtocolSatellite,
		[]model.DeviceType{model.DeviceTypeSatelliteAnomaly}, opts)}
}

// Process evaluates one satellite attach report
func (h *SatelliteHandler) Process(_ context.Context, obs model.Observation) []model.Detection {
	if !h.accept(obs) || obs.Satellite == nil {
		return nil
	}
	s := obs.Satellite
	if s.UserInitiated || s.TerrestrialRSSI <= UsableTerrestrialRSSI || s.TerrestrialRSSI == 0 {
		return nil
	}

	indicators := []string{"ntn:unexpected_attach"}
	likelihood := 45
	if s.UnexpectedHandover {
		indicators = append(indicators, "ntn:forced_handover")
		likelihood += 20
	}
	if s.TerrestrialRSSI > -85 {
		indicators = append(indicators, "ntn:strong_terrestrial")
		likelihood += 10
	}

	cls := candidate(model.DeviceTypeSatelliteAnomaly, qualityFor(len(indicators)), likelihood,
		fmt.Sprintf("Attached to %s with terrestrial signal at %d dBm", s.Network, s.TerrestrialRSSI), indicators...)
	oc := observationContext{sightings: h.sight(s.Network, obs.Timestamp, FollowingWindow)}
	return h.emit(obs, []model.ClassificationResult{cls}, oc)
}
