package model

import (
	"fmt"
	"strings"
)

// PrivacyImpact grades how much personal data a device type can collect
type PrivacyImpact int

const (
	PrivacyImpactLow PrivacyImpact = iota
	PrivacyImpactMedium
	PrivacyImpactHigh
	PrivacyImpactCritical
)

var privacyImpactNames = [...]string{"LOW", "MEDIUM", "HIGH", "CRITICAL"}

func (p PrivacyImpact) String() string {
	if p < PrivacyImpactLow || p > PrivacyImpactCritical {
		return fmt.Sprintf("PrivacyImpact(%d)", int(p))
	}
	return privacyImpactNames[p]
}

// MarshalText encodes the tier by name
func (p PrivacyImpact) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParsePrivacyImpact resolves a tier by its case-insensitive name
func ParsePrivacyImpact(name string) (PrivacyImpact, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range privacyImpactNames {
		if n == want {
			return PrivacyImpact(i), nil
		}
	}
	return PrivacyImpactLow, fmt.Errorf("unknown privacy impact %q", name)
}

// ThreatModifier adjusts a base threat weight when a contextual condition holds
type ThreatModifier struct {
	Condition string `json:"condition"`
	Delta     int    `json:"delta"`
}

// Conditions understood by profile modifiers
const (
	ConditionFollowing      = "following"
	ConditionNearResidence  = "near_residence"
	ConditionNearProtest    = "near_protest"
	ConditionStationary     = "stationary"
	ConditionRepeatedSights = "repeated_sightings"
	ConditionNullCipher     = "null_cipher"
	ConditionDowngrade      = "downgrade"
)

// DeviceTypeProfile is static descriptive metadata for one device type
type DeviceTypeProfile struct {
	DeviceType       DeviceType       `json:"device_type"`
	Name             string           `json:"name"`
	Category         string           `json:"category"`
	Description      string           `json:"description"`
	TypicalOperator  string           `json:"typical_operator"`
	LegalFramework   string           `json:"legal_framework"`
	DataCollected    []string         `json:"data_collected"`
	PrivacyImpact    PrivacyImpact    `json:"privacy_impact"`
	Recommendations  []string         `json:"recommendations"`
	BaseThreatWeight int              `json:"base_threat_weight"`
	Modifiers        []ThreatModifier `json:"modifiers,omitempty"`
}

// ModifierDelta sums the deltas of every modifier whose condition is present
func (p DeviceTypeProfile) ModifierDelta(conditions ...string) int {
	delta := 0
	for _, m := range p.Modifiers {
		for _, c := range conditions {
			if m.Condition == c {
				delta += m.Delta
				break
			}
		}
	}
	return delta
}
