// Package maps generates map and image links for destinations. Every link
// is a plain URL template over the location name and coordinate pair; no
// network calls and no API keys.
package maps

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/intelligrit/adventure-guide/internal/model"
)

var (
	prefixRe      = regexp.MustCompile(`(?i)^(START IN|START AT|START WITH|NEAR|ALL OVER|ACROSS|INCLUDES)\s+`)
	suffixRe      = regexp.MustCompile(`(?i),?\s+(US|UK|USA|UNITED STATES|UNITED KINGDOM)$`)
	spaceRe       = regexp.MustCompile(`\s+`)
	punctuationRe = regexp.MustCompile(`[,;]+`)
)

// CleanLocationName strips itinerary prefixes and trailing country suffixes
// so the name works better as a search query.
func CleanLocationName(location string) string {
	location = prefixRe.ReplaceAllString(location, "")
	location = suffixRe.ReplaceAllString(location, "")
	location = spaceRe.ReplaceAllString(location, " ")
	location = punctuationRe.ReplaceAllString(location, ",")
	return strings.Trim(location, " ,.-")
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// GoogleMapsLink builds a Google Maps search URL combining the readable
// location name with the precise coordinates.
func GoogleMapsLink(location string, c model.Coordinates) string {
	query := url.PathEscape(location)
	return fmt.Sprintf("https://www.google.com/maps/search/%s/@%s,%s,15z",
		query, coord(c.Latitude), coord(c.Longitude))
}

// StreetViewLink builds a Google Street View web URL.
func StreetViewLink(c model.Coordinates) string {
	return fmt.Sprintf("https://www.google.com/maps/@%s,%s,3a,0y,0h,90t/data=!3m1!1e3",
		coord(c.Latitude), coord(c.Longitude))
}

// GoogleEarthLink builds a Google Earth web URL.
func GoogleEarthLink(c model.Coordinates) string {
	return fmt.Sprintf("https://earth.google.com/web/@%s,%s,1000a,35y,0h,0t,0r",
		coord(c.Latitude), coord(c.Longitude))
}

// SatelliteViewLink builds a Google Maps satellite-layer URL.
func SatelliteViewLink(c model.Coordinates) string {
	return fmt.Sprintf("https://www.google.com/maps/@%s,%s,1000m/data=!3m1!1e3",
		coord(c.Latitude), coord(c.Longitude))
}

// GoogleImagesLink builds a freely-licensed image search URL for the
// location.
func GoogleImagesLink(location string) string {
	query := url.QueryEscape(CleanLocationName(location) + " travel destination photography")
	return fmt.Sprintf("https://www.google.com/search?q=%s&tbm=isch&tbs=sur:fmc", query)
}

// OpenStreetMapLink builds an OpenStreetMap URL centered on the coordinates.
func OpenStreetMapLink(c model.Coordinates) string {
	return fmt.Sprintf("https://www.openstreetmap.org/#map=15/%s/%s",
		coord(c.Latitude), coord(c.Longitude))
}

// AppleMapsLink builds an Apple Maps URL with the location as query.
func AppleMapsLink(location string, c model.Coordinates) string {
	return fmt.Sprintf("https://maps.apple.com/?q=%s&ll=%s,%s",
		url.QueryEscape(location), coord(c.Latitude), coord(c.Longitude))
}

// ExtendedLinks builds the full link set attached to every destination.
func ExtendedLinks(location string, c model.Coordinates) model.MapLinks {
	return model.MapLinks{
		StreetView:    StreetViewLink(c),
		GoogleEarth:   GoogleEarthLink(c),
		SatelliteView: SatelliteViewLink(c),
		GoogleImages:  GoogleImagesLink(location),
		OpenStreetMap: OpenStreetMapLink(c),
		AppleMaps:     AppleMapsLink(location, c),
	}
}
