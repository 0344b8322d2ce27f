package utils

import "math"

const earthRadiusKm = 6371.0

// HaversineDistance returns the great-circle distance between two points in
// kilometers.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// LongitudeDelta returns the shortest absolute angular difference between two
// longitudes, in [0, 180].
func LongitudeDelta(lng1, lng2 float64) float64 {
	delta := math.Abs(lng1 - lng2)
	if delta > 180 {
		delta = 360 - delta
	}
	return delta
}

// ValidateCoordinates reports whether lat/lon are within geographic range.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateZoom reports whether a reverse-geocoding zoom level is usable.
func ValidateZoom(zoom int) bool {
	return zoom >= 0 && zoom <= 18
}
