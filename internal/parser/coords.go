package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/intelligrit/adventure-guide/internal/geo"
	"github.com/intelligrit/adventure-guide/internal/model"
)

var (
	// ErrInvalidCoordinate marks a coordinate value that is not numeric.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrOutOfRange marks a coordinate outside the valid WGS84 range.
	ErrOutOfRange = errors.New("coordinate out of range")
)

// ParseCoordinates converts raw numeric strings plus hemisphere letters into
// a signed decimal pair. "S" negates latitude and "W" negates longitude; an
// absent longitude direction defaults to "E".
func ParseCoordinates(lat, latDir, lng, lngDir string) (model.Coordinates, error) {
	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("%w: latitude %q", ErrInvalidCoordinate, lat)
	}
	longitude, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("%w: longitude %q", ErrInvalidCoordinate, lng)
	}

	if latDir == "S" {
		latitude = -latitude
	}
	if lngDir == "W" {
		longitude = -longitude
	}
	if lngDir == "" {
		lngDir = "E"
	}

	if !geo.ValidateCoordinates(latitude, longitude) {
		return model.Coordinates{}, fmt.Errorf("%w: %v, %v", ErrOutOfRange, latitude, longitude)
	}

	return model.Coordinates{
		Latitude:           latitude,
		Longitude:          longitude,
		LatitudeDirection:  latDir,
		LongitudeDirection: lngDir,
	}, nil
}
