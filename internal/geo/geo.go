// Package geo holds small coordinate helpers shared by the parser and the
// web API.
package geo

import (
	"fmt"
	"math"

	"github.com/intelligrit/adventure-guide/internal/model"
)

const earthRadiusKm = 6371.0

// ValidateCoordinates reports whether a signed decimal pair is inside the
// WGS84 range.
func ValidateCoordinates(latitude, longitude float64) bool {
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}

// Distance returns the great-circle distance between two coordinates in
// kilometers (haversine).
func Distance(a, b model.Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lon1 := a.Longitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	lon2 := b.Longitude * math.Pi / 180

	dlat := lat2 - lat1
	dlon := lon2 - lon1
	h := math.Pow(math.Sin(dlat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	return earthRadiusKm * 2 * math.Asin(math.Sqrt(h))
}

// FormatDecimal renders coordinates as unsigned decimal degrees with
// hemisphere letters, e.g. "59.913900°N, 10.752200°E".
func FormatDecimal(c model.Coordinates) string {
	return fmt.Sprintf("%.6f°%s, %.6f°%s",
		math.Abs(c.Latitude), c.LatitudeDirection,
		math.Abs(c.Longitude), c.LongitudeDirection)
}

// ToDMS converts unsigned decimal degrees to degrees, minutes, seconds.
func ToDMS(decimal float64) (degrees, minutes int, seconds float64) {
	degrees = int(decimal)
	minutes = int((decimal - float64(degrees)) * 60)
	seconds = ((decimal-float64(degrees))*60 - float64(minutes)) * 60
	return degrees, minutes, seconds
}

// FormatDMS renders coordinates in degrees/minutes/seconds notation.
func FormatDMS(c model.Coordinates) string {
	latD, latM, latS := ToDMS(math.Abs(c.Latitude))
	lonD, lonM, lonS := ToDMS(math.Abs(c.Longitude))
	return fmt.Sprintf(`%d°%d'%.2f"%s, %d°%d'%.2f"%s`,
		latD, latM, latS, c.LatitudeDirection,
		lonD, lonM, lonS, c.LongitudeDirection)
}

// Bounds is the bounding box and centroid of a set of coordinates.
type Bounds struct {
	MinLatitude     float64 `json:"min_latitude"`
	MaxLatitude     float64 `json:"max_latitude"`
	MinLongitude    float64 `json:"min_longitude"`
	MaxLongitude    float64 `json:"max_longitude"`
	CenterLatitude  float64 `json:"center_latitude"`
	CenterLongitude float64 `json:"center_longitude"`
}

// BoundsOf computes the bounding box for a list of coordinates. The second
// return is false for an empty list.
func BoundsOf(coords []model.Coordinates) (Bounds, bool) {
	if len(coords) == 0 {
		return Bounds{}, false
	}

	b := Bounds{
		MinLatitude:  coords[0].Latitude,
		MaxLatitude:  coords[0].Latitude,
		MinLongitude: coords[0].Longitude,
		MaxLongitude: coords[0].Longitude,
	}
	var sumLat, sumLon float64
	for _, c := range coords {
		b.MinLatitude = math.Min(b.MinLatitude, c.Latitude)
		b.MaxLatitude = math.Max(b.MaxLatitude, c.Latitude)
		b.MinLongitude = math.Min(b.MinLongitude, c.Longitude)
		b.MaxLongitude = math.Max(b.MaxLongitude, c.Longitude)
		sumLat += c.Latitude
		sumLon += c.Longitude
	}
	b.CenterLatitude = sumLat / float64(len(coords))
	b.CenterLongitude = sumLon / float64(len(coords))
	return b, true
}
