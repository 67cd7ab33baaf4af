package handlers

import (
	"context"

	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// GNSS heuristics thresholds
const (
	uniformCN0StdDev   = 2.0  // dB-Hz
	uniformCN0Mean     = 45.0 // dB-Hz
	uniformMinSats     = 4
	excessiveCN0Mean   = 55.0 // dB-Hz, above what open sky delivers
	agcDropDb          = -6.0
	jammingIndicatorHi = 100
)

var gnssDeviceTypes = []model.DeviceType{model.DeviceTypeGNSSSpoofer, model.DeviceTypeGNSSJammer}

// GNSSHandler looks for spoofing and jamming in receiver measurements
type GNSSHandler struct {
	*base
}

// NewGNSSHandler creates a stopped GNSS handler
func NewGNSSHandler(opts Options) *GNSSHandler {
	return &GNSSHandler{base: newBase("gnss", model.ProtocolGNSS, gnssDeviceTypes, opts)}
}

func spoofingIndicators(g *model.GNSSInfo) ([]string, int) {
	var indicators []string
	likelihood := 0
	if g.Satellites >= uniformMinSats && g.MeanCN0 > uniformCN0Mean && g.CN0StdDev < uniformCN0StdDev {
		indicators = append(indicators, "gnss:uniform_cn0")
		likelihood += 45
	}
	if g.MeanCN0 > excessiveCN0Mean {
		indicators = append(indicators, "gnss:excessive_cn0")
		likelihood += 15
	}
	if g.PositionJump {
		indicators = append(indicators, "gnss:position_jump")
		likelihood += 25
	}
	if g.ClockJump {
		indicators = append(indicators, "gnss:clock_jump")
		likelihood += 25
	}
	return indicators, likelihood
}

func jammingIndicators(g *model.GNSSInfo) ([]string, int) {
	var indicators []string
	likelihood := 0
	agcDrop := g.AGCLevel <= agcDropDb
	if agcDrop {
		indicators = append(indicators, "gnss:agc_drop")
		likelihood += 35
	}
	if g.JammingIndicator >= jammingIndicatorHi {
		indicators = append(indicators, "gnss:jamming_indicator")
		likelihood += 35
	}
	if g.Satellites == 0 && (agcDrop || g.JammingIndicator >= jammingIndicatorHi/2) {
		indicators = append(indicators, "gnss:no_satellites")
		likelihood += 20
	}
	return indicators, likelihood
}

// Process evaluates one measurement epoch
func (h *GNSSHandler) Process(_ context.Context, obs model.Observation) []model.Detection {
	if !h.accept(obs) || obs.GNSS == nil {
		return nil
	}

	var candidates []model.ClassificationResult
	if ind, l := spoofingIndicators(obs.GNSS); len(ind) > 0 {
		candidates = append(candidates, candidate(model.DeviceTypeGNSSSpoofer, qualityFor(len(ind)), min(l, 95),
			"Satellite signals inconsistent with genuine reception", ind...))
	}
	if ind, l := jammingIndicators(obs.GNSS); len(ind) > 0 {
		candidates = append(candidates, candidate(model.DeviceTypeGNSSJammer, qualityFor(len(ind)), min(l, 95),
			"Satellite reception suppressed by in-band noise", ind...))
	}
	if len(candidates) == 0 {
		return nil
	}

	oc := observationContext{sightings: h.sight("gnss", obs.Timestamp, FollowingWindow)}
	return h.emit(obs, candidates, oc)
}
