package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/adiwira/tebengan/internal/pkg/models"
)

// HistoryGeohashPrecision groups history rows into ~150 m cells
const HistoryGeohashPrecision = 7

// EncodePosition converts a position to a geohash string
func EncodePosition(pos models.Position, precision uint) string {
	return geohash.EncodeWithPrecision(pos.Latitude, pos.Longitude, precision)
}

// DecodeGeohash converts a geohash string to a position
func DecodeGeohash(hash string) models.Position {
	lat, lng := geohash.Decode(hash)
	return models.Position{Latitude: lat, Longitude: lng}
}

// CalculateDistance calculates the distance between two positions in
// kilometers using the Haversine formula.
func CalculateDistance(p1, p2 models.Position) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := p1.Latitude * math.Pi / 180.0
	lon1 := p1.Longitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	lon2 := p2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// ValidatePosition checks that coordinates are within valid ranges
func ValidatePosition(pos models.Position) bool {
	if pos.Latitude < -90 || pos.Latitude > 90 {
		return false
	}
	if pos.Longitude < -180 || pos.Longitude > 180 {
		return false
	}
	return true
}
