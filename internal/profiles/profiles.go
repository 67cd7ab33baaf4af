// Package profiles is the read-only store of device-type profiles.
package profiles

import (
	"slices"
	"sort"
	"sync"

	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// Default profile values for device types without a curated entry
const (
	DefaultCategory         = "Uncategorized"
	DefaultBaseThreatWeight = 40
)

var defaultRecommendations = []string{
	"Note the time and location of the detection",
	"Watch for repeated sightings in other places",
	"Treat the classification as unconfirmed",
}

var (
	buildOnce sync.Once
	byType    [model.DeviceTypeCount]model.DeviceTypeProfile
	curated   [model.DeviceTypeCount]bool
)

func build() {
	for _, p := range profileTable {
		if !p.DeviceType.IsValid() {
			continue
		}
		byType[p.DeviceType] = p
		curated[p.DeviceType] = true
	}
	for _, dt := range model.AllDeviceTypes() {
		if !curated[dt] {
			byType[dt] = defaultProfile(dt)
		}
	}
}

func defaultProfile(dt model.DeviceType) model.DeviceTypeProfile {
	return model.DeviceTypeProfile{
		DeviceType:       dt,
		Name:             dt.String(),
		Category:         DefaultCategory,
		Description:      "No detailed profile is available for this device type.",
		TypicalOperator:  "Unknown",
		LegalFramework:   "Unknown",
		DataCollected:    []string{"Unknown"},
		PrivacyImpact:    model.PrivacyImpactMedium,
		Recommendations:  defaultRecommendations,
		BaseThreatWeight: DefaultBaseThreatWeight,
	}
}

// clone copies the slices so callers cannot mutate the shared table
func clone(p model.DeviceTypeProfile) model.DeviceTypeProfile {
	p.DataCollected = slices.Clone(p.DataCollected)
	p.Recommendations = slices.Clone(p.Recommendations)
	p.Modifiers = slices.Clone(p.Modifiers)
	return p
}

// Profile returns the profile for a device type. It never fails: types
// outside the table, including out-of-range values, get a default profile.
func Profile(dt model.DeviceType) model.DeviceTypeProfile {
	buildOnce.Do(build)
	if !dt.IsValid() {
		return clone(defaultProfile(dt))
	}
	return clone(byType[dt])
}

// HasCuratedProfile reports whether the device type has a table entry
func HasCuratedProfile(dt model.DeviceType) bool {
	buildOnce.Do(build)
	return dt.IsValid() && curated[dt]
}

// All returns every device type's profile in ordinal order
func All() []model.DeviceTypeProfile {
	buildOnce.Do(build)
	out := make([]model.DeviceTypeProfile, 0, len(byType))
	for _, p := range byType {
		out = append(out, clone(p))
	}
	return out
}

// ProfilesByCategory returns the profiles of one category in ordinal order
func ProfilesByCategory(category string) []model.DeviceTypeProfile {
	return filter(func(p model.DeviceTypeProfile) bool { return p.Category == category })
}

// ProfilesByPrivacyImpact returns the profiles of one privacy tier in ordinal order
func ProfilesByPrivacyImpact(impact model.PrivacyImpact) []model.DeviceTypeProfile {
	return filter(func(p model.DeviceTypeProfile) bool { return p.PrivacyImpact == impact })
}

// AllCategories returns the distinct categories, sorted
func AllCategories() []string {
	buildOnce.Do(build)
	seen := make(map[string]struct{})
	for _, p := range byType {
		seen[p.Category] = struct{}{}
	}
	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

func filter(keep func(model.DeviceTypeProfile) bool) []model.DeviceTypeProfile {
	buildOnce.Do(build)
	var out []model.DeviceTypeProfile
	for _, p := range byType {
		if keep(p) {
			out = append(out, clone(p))
		}
	}
	return out
}
