// Package scoring turns a classified observation into a calibrated 0-100
// threat score and severity.
package scoring

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// Confidence bounds and starting point
const (
	BaseConfidence = 0.5
	MinConfidence  = 0.1
	MaxConfidence  = 1.0
)

// Severity thresholds on the adjusted score
const (
	CriticalThreshold = 90
	HighThreshold     = 70
	MediumThreshold   = 50
	LowThreshold      = 30
)

const (
	persistentSightings = 3
	persistentDuration  = 5 * time.Minute
	briefDuration       = 30 * time.Second
	weakSignal          = -80
)

// Formula describes the raw score computation for debug output
const Formula = "score = round(likelihood x impact_factor x confidence)"

type confidenceRule struct {
	label   string
	delta   float64
	applies func(in model.ThreatInput) bool
}

func isGNSSThreat(dt model.DeviceType) bool {
	return dt == model.DeviceTypeGNSSSpoofer || dt == model.DeviceTypeGNSSJammer
}

func isBriefSighting(in model.ThreatInput) bool {
	return in.SeenCount <= 1 && in.Duration < briefDuration
}

// signalBand matches only inputs that carry a measured signal strength
func signalBand(match func(rssi int) bool) func(model.ThreatInput) bool {
	return func(in model.ThreatInput) bool {
		return in.RSSI != nil && match(*in.RSSI)
	}
}

func isWeakSignal(in model.ThreatInput) bool {
	return in.RSSI != nil && *in.RSSI < weakSignal
}

func isPersistent(in model.ThreatInput) bool {
	return in.SeenCount > persistentSightings || in.Duration > persistentDuration
}

// confidenceRules is applied in order. Signal bands are mutually exclusive,
// strongest band first.
var confidenceRules = []confidenceRule{
	{"very strong signal", +0.10, signalBand(func(rssi int) bool { return rssi > -50 })},
	{"strong signal", +0.05, signalBand(func(rssi int) bool { return rssi <= -50 && rssi > -60 })},
	{"very weak signal", -0.20, signalBand(func(rssi int) bool { return rssi < -90 })},
	{"weak signal", -0.10, signalBand(func(rssi int) bool { return rssi >= -90 && rssi < weakSignal })},
	{"persistent sightings", +0.20, isPersistent},
	{"single brief sighting", -0.20, func(in model.ThreatInput) bool { return !isPersistent(in) && isBriefSighting(in) }},
	{"multiple indicators", +0.20, func(in model.ThreatInput) bool { return in.MultipleIndicators }},
	{"single indicator", -0.30, func(in model.ThreatInput) bool { return !in.MultipleIndicators }},
	{"cross-protocol correlation", +0.30, func(in model.ThreatInput) bool { return in.CrossProtocol }},
	{"known false positive pattern", -0.50, func(in model.ThreatInput) bool { return in.KnownFalsePositive }},
	{"consumer device", -0.20, func(in model.ThreatInput) bool { return in.ConsumerDevice }},
	{"known safe area", -0.15, func(in model.ThreatInput) bool { return in.KnownSafeArea && !in.Environment.Moving }},
	{"exact match", +0.15, func(in model.ThreatInput) bool { return in.Quality == model.MatchExact }},
	{"strong match", +0.10, func(in model.ThreatInput) bool { return in.Quality == model.MatchStrong }},
	{"weak match", -0.10, func(in model.ThreatInput) bool { return in.Quality == model.MatchWeak }},
	{"heuristic match", -0.20, func(in model.ThreatInput) bool { return in.Quality == model.MatchHeuristic }},
	{"possible GNSS multipath", -0.30, func(in model.ThreatInput) bool {
		return isGNSSThreat(in.DeviceType) && (in.Environment.Urban || in.Environment.Indoor)
	}},
}

func (r confidenceRule) factor() string {
	return fmt.Sprintf("%s (%+.2f)", r.label, r.delta)
}

// Confidence folds the rule table over the input and clamps the result once
// at the end. It returns the confidence and the factors that fired, in order.
func Confidence(in model.ThreatInput) (float64, []string) {
	confidence := BaseConfidence
	factors := make([]string, 0, 6)
	for _, r := range confidenceRules {
		if r.applies(in) {
			confidence += r.delta
			factors = append(factors, r.factor())
		}
	}
	// deltas are multiples of 0.05; drop float drift before comparisons
	confidence = math.Round(confidence*100) / 100
	return clampFloat(confidence, MinConfidence, MaxConfidence), factors
}

// SeverityFor maps an adjusted score to its tier
func SeverityFor(score int) model.Severity {
	switch {
	case score >= CriticalThreshold:
		return model.SeverityCritical
	case score >= HighThreshold:
		return model.SeverityHigh
	case score >= MediumThreshold:
		return model.SeverityMedium
	case score >= LowThreshold:
		return model.SeverityLow
	default:
		return model.SeverityInfo
	}
}

// Score computes the threat result for one classified observation. It is a
// pure function and safe for concurrent use.
func Score(in model.ThreatInput) model.ThreatResult {
	likelihood := clampInt(in.Likelihood, 0, 100)
	impact := ImpactFactor(in.DeviceType)
	confidence, factors := Confidence(in)

	raw := clampInt(int(math.Round(float64(likelihood)*impact*confidence)), 0, 100)

	adjusted := raw
	var adjustment string
	switch {
	case in.MultipleIndicators && in.CrossProtocol && confidence > 0.7:
		adjusted = min(raw*11/10, 100)
		adjustment = "+10% for corroborated multi-indicator detection"
	case in.SeenCount <= 1 && isWeakSignal(in) && !in.MultipleIndicators:
		adjusted = raw * 7 / 10
		adjustment = "x0.7 for single weak sighting"
	}

	severity := SeverityFor(adjusted)

	return model.ThreatResult{
		RawScore:      raw,
		AdjustedScore: adjusted,
		Severity:      severity,
		Likelihood:    likelihood,
		ImpactFactor:  impact,
		Confidence:    confidence,
		Factors:       factors,
		Reasoning:     reasoning(in.DeviceType, likelihood, impact, confidence, raw, adjusted, severity, factors, adjustment),
	}
}

func reasoning(dt model.DeviceType, likelihood int, impact, confidence float64, raw, adjusted int,
	severity model.Severity, factors []string, adjustment string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: likelihood %d%% x impact %.1f x confidence %.0f%% = %d",
		dt, likelihood, impact, confidence*100, raw)
	if adjustment != "" {
		fmt.Fprintf(&sb, ", adjusted to %d (%s)", adjusted, adjustment)
	}
	fmt.Fprintf(&sb, " -> %s", severity)
	if len(factors) > 0 {
		sb.WriteString(". Confidence factors: ")
		sb.WriteString(strings.Join(factors, ", "))
	}
	return sb.String()
}

// DebugMap flattens a result into key/value pairs for diagnostics and
// structured logging
func DebugMap(r model.ThreatResult) map[string]any {
	return map[string]any{
		"score":          r.AdjustedScore,
		"raw_score":      r.RawScore,
		"severity":       r.Severity.String(),
		"likelihood":     r.Likelihood,
		"impact_factor":  r.ImpactFactor,
		"confidence_pct": int(math.Round(r.Confidence * 100)),
		"factors":        r.Factors,
		"reasoning":      r.Reasoning,
		"formula":        Formula,
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
