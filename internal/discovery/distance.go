package discovery

import (
	"math"

	"github.com/gdugdh24/mpit2026-discovery/internal/domain"
)

const earthRadiusKm = 6371.0

// Distance returns the haversine distance in kilometers between two points.
// A missing point means the distance is unknown and yields 0.
func Distance(origin, destination *domain.GeoPoint) float64 {
	if origin == nil || destination == nil {
		return 0
	}
	lat1 := origin.Latitude * (math.Pi / 180.0)
	lat2 := destination.Latitude * (math.Pi / 180.0)
	dLat := (destination.Latitude - origin.Latitude) * (math.Pi / 180.0)
	dLon := (destination.Longitude - origin.Longitude) * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// DistanceStrict is Distance for callers that want bad coordinates rejected
// instead of turned into a meaningless number.
func DistanceStrict(origin, destination *domain.GeoPoint) (float64, error) {
	for _, p := range []*domain.GeoPoint{origin, destination} {
		if p == nil {
			continue
		}
		if err := p.Validate(); err != nil {
			return 0, err
		}
	}
	return Distance(origin, destination), nil
}
