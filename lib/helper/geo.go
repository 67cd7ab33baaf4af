package helper

import (
	"math"

	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

const earthRadiusMeters = 6371000.0

// DefaultLocationTolerance is roughly 50 m expressed in degrees
const DefaultLocationTolerance = 0.0005

// SameLocation treats two positions as the same place when both coordinates differ by
// at most tolerance degrees. An unknown position on either side counts as a match.
func SameLocation(a, b *model.Location, tolerance float64) bool {
	if a == nil || b == nil {
		return true
	}
	return math.Abs(a.Latitude-b.Latitude) <= tolerance &&
		math.Abs(a.Longitude-b.Longitude) <= tolerance
}

// DistanceMeters is the great-circle distance between two positions
func DistanceMeters(a, b model.Location) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}
