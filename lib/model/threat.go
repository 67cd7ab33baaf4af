package model

import (
	"fmt"
	"strings"
	"time"
)

// Severity is the ordered threat tier derived from a 0-100 score
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

var severityNames = [...]string{"INFO", "LOW", "MEDIUM", "HIGH", "CRITICAL"}

func (s Severity) String() string {
	if s < SeverityInfo || s > SeverityCritical {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// MarshalText encodes the severity by name
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name
func (s *Severity) UnmarshalText(text []byte) error {
	want := strings.ToUpper(string(text))
	for i, n := range severityNames {
		if n == want {
			*s = Severity(i)
			return nil
		}
	}
	return fmt.Errorf("unknown severity %q", string(text))
}

// AtLeast reports whether s is as severe as other or more
func (s Severity) AtLeast(other Severity) bool {
	return s >= other
}

// MatchQuality grades how well a classifier rule matched an observation
type MatchQuality int

const (
	MatchHeuristic MatchQuality = iota
	MatchWeak
	MatchPartial
	MatchStrong
	MatchExact
)

var matchQualityNames = [...]string{"HEURISTIC", "WEAK", "PARTIAL", "STRONG", "EXACT"}

func (q MatchQuality) String() string {
	if q < MatchHeuristic || q > MatchExact {
		return fmt.Sprintf("MatchQuality(%d)", int(q))
	}
	return matchQualityNames[q]
}

// MarshalText encodes the match quality by name
func (q MatchQuality) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText decodes a match quality name
func (q *MatchQuality) UnmarshalText(text []byte) error {
	want := strings.ToUpper(string(text))
	for i, n := range matchQualityNames {
		if n == want {
			*q = MatchQuality(i)
			return nil
		}
	}
	return fmt.Errorf("unknown match quality %q", string(text))
}

// ClassificationResult is what a decoder or rule table concluded about one observation
type ClassificationResult struct {
	DeviceType  DeviceType   `json:"device_type"`
	Quality     MatchQuality `json:"match_quality"`
	Likelihood  int          `json:"likelihood"` // 0-100
	Description string       `json:"description"`
	Indicators  []string     `json:"indicators,omitempty"`
}

// Environment describes the surroundings of the receiver
type Environment struct {
	Urban  bool `json:"urban"`
	Indoor bool `json:"indoor"`
	Moving bool `json:"moving"`
}

// ThreatInput is everything the scoring engine needs to score one classified observation
type ThreatInput struct {
	Likelihood         int           `json:"likelihood"`
	DeviceType         DeviceType    `json:"device_type"`
	RSSI               *int          `json:"rssi,omitempty"` // nil when no signal strength was reported
	SeenCount          int           `json:"seen_count"`
	Duration           time.Duration `json:"duration"`
	MultipleIndicators bool          `json:"multiple_indicators"`
	CrossProtocol      bool          `json:"cross_protocol"`
	KnownFalsePositive bool          `json:"known_false_positive"`
	KnownSafeArea      bool          `json:"known_safe_area"`
	ConsumerDevice     bool          `json:"consumer_device"`
	Quality            MatchQuality  `json:"match_quality"`
	Environment        Environment   `json:"environment"`
}

// ThreatResult is the immutable outcome of scoring one observation
type ThreatResult struct {
	RawScore      int      `json:"raw_score"`
	AdjustedScore int      `json:"adjusted_score"`
	Severity      Severity `json:"severity"`
	Likelihood    int      `json:"likelihood"`
	ImpactFactor  float64  `json:"impact_factor"`
	Confidence    float64  `json:"confidence"`
	Factors       []string `json:"factors"`
	Reasoning     string   `json:"reasoning"`
}
