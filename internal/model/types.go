package model

// Coordinates is a signed decimal WGS84 coordinate pair. The sign always
// matches the direction letter: negative latitude pairs with "S", negative
// longitude with "W".
type Coordinates struct {
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	LatitudeDirection  string  `json:"latitudeDirection"`
	LongitudeDirection string  `json:"longitudeDirection"`
}

// MapLinks holds derived map and image links for a destination. All of them
// are plain URL templates over the location name and coordinates; none
// require an API key.
type MapLinks struct {
	StreetView    string `json:"streetView"`
	GoogleEarth   string `json:"googleEarth"`
	SatelliteView string `json:"satelliteView"`
	GoogleImages  string `json:"googleImages"`
	OpenStreetMap string `json:"openStreetMap"`
	AppleMaps     string `json:"appleMaps"`
}

// Destination is one successfully parsed guide entry.
type Destination struct {
	ID               int         `json:"id"`
	Location         string      `json:"location"`
	Coordinates      Coordinates `json:"coordinates"`
	Country          string      `json:"country"`
	Region           string      `json:"region"`
	MainAttractionEn string      `json:"mainAttractionEn"`
	MainAttractionFr string      `json:"mainAttractionFr"`
	GoogleMapsLink   string      `json:"googleMapsLink"`
	MapLinks         MapLinks    `json:"mapLinks"`
}

// LatitudeRange labels the latitude band a chapter covers.
type LatitudeRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ChapterDocument is the per-chapter output document.
type ChapterDocument struct {
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	LatitudeRange     LatitudeRange     `json:"latitudeRange"`
	TotalDestinations int               `json:"totalDestinations"`
	Destinations      []Destination     `json:"destinations"`
	Metadata          map[string]string `json:"metadata"`
}

// CombinedChapter is one chapter entry inside the combined document.
type CombinedChapter struct {
	Title            string        `json:"title"`
	LatitudeRange    LatitudeRange `json:"latitudeRange"`
	DestinationCount int           `json:"destinationCount"`
	Destinations     []Destination `json:"destinations"`
}

// CombinedDocument aggregates every non-empty chapter into a single guide.
type CombinedDocument struct {
	Title             string                     `json:"title"`
	Description       string                     `json:"description"`
	TotalChapters     int                        `json:"totalChapters"`
	TotalDestinations int                        `json:"totalDestinations"`
	Chapters          map[string]CombinedChapter `json:"chapters"`
	Metadata          map[string]string          `json:"metadata"`
}

// ParseStats accumulates counters for one parsing run.
type ParseStats struct {
	Processed        int `json:"processed"`
	Successful       int `json:"successful"`
	Failed           int `json:"failed"`
	UnknownCountries int `json:"unknown_countries"`
}

// DebugReport summarizes a run that had parse failures.
type DebugReport struct {
	Summary           ParseStats `json:"summary"`
	SuccessRate       string     `json:"success_rate"`
	FailedLinesSample []string   `json:"failed_lines_sample"`
	TotalFailedLines  int        `json:"total_failed_lines"`
}
