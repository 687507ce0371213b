package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/intelligrit/adventure-guide/internal/geo"
	"github.com/intelligrit/adventure-guide/internal/model"
	"github.com/intelligrit/adventure-guide/internal/parser"
)

func (s *Server) handleDestinations(w http.ResponseWriter, r *http.Request) {
	destinations, err := s.Store.ReadDestinations()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	chapterStr := r.URL.Query().Get("chapter")
	if chapterStr != "" {
		chapter, err := strconv.Atoi(chapterStr)
		if err != nil {
			http.Error(w, "invalid 'chapter' parameter", http.StatusBadRequest)
			return
		}
		var filtered []model.Destination
		for _, d := range destinations {
			if num, ok := parser.ChapterFor(d.ID); ok && num == chapter {
				filtered = append(filtered, d)
			}
		}
		destinations = filtered
	}

	country := r.URL.Query().Get("country")
	if country != "" {
		var filtered []model.Destination
		for _, d := range destinations {
			if strings.EqualFold(d.Country, country) {
				filtered = append(filtered, d)
			}
		}
		destinations = filtered
	}

	// ?near=lat,lng&radius=km keeps only destinations within the radius
	// (default 500 km).
	if near := r.URL.Query().Get("near"); near != "" {
		latStr, lngStr, ok := strings.Cut(near, ",")
		lat, errLat := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
		lng, errLng := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
		if !ok || errLat != nil || errLng != nil || !geo.ValidateCoordinates(lat, lng) {
			http.Error(w, "invalid 'near' parameter, want lat,lng", http.StatusBadRequest)
			return
		}

		radius := 500.0
		if radiusStr := r.URL.Query().Get("radius"); radiusStr != "" {
			radius, err = strconv.ParseFloat(radiusStr, 64)
			if err != nil || radius <= 0 {
				http.Error(w, "invalid 'radius' parameter", http.StatusBadRequest)
				return
			}
		}

		center := model.Coordinates{Latitude: lat, Longitude: lng}
		var filtered []model.Destination
		for _, d := range destinations {
			if geo.Distance(center, d.Coordinates) <= radius {
				filtered = append(filtered, d)
			}
		}
		destinations = filtered
	}

	writeJSON(w, destinations)
}

// chapterSummary is the per-chapter entry returned by /api/chapters.
type chapterSummary struct {
	Chapter          int                 `json:"chapter"`
	Title            string              `json:"title"`
	LatitudeRange    model.LatitudeRange `json:"latitudeRange"`
	DestinationCount int                 `json:"destinationCount"`
	Bounds           *geo.Bounds         `json:"bounds,omitempty"`
}

func (s *Server) handleChapters(w http.ResponseWriter, r *http.Request) {
	buckets, err := s.Store.ReadChapters()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var summaries []chapterSummary
	for _, def := range parser.Chapters {
		destinations := buckets[def.Number]
		summary := chapterSummary{
			Chapter:          def.Number,
			Title:            def.Title,
			LatitudeRange:    def.Range,
			DestinationCount: len(destinations),
		}
		var coords []model.Coordinates
		for _, d := range destinations {
			coords = append(coords, d.Coordinates)
		}
		if bounds, ok := geo.BoundsOf(coords); ok {
			summary.Bounds = &bounds
		}
		summaries = append(summaries, summary)
	}

	writeJSON(w, summaries)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Store.ReadStats()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	_, totalFailed, err := s.Store.ReadFailedLines()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{
		"summary":      stats,
		"total_failed": totalFailed,
		"by_country":   s.Store.CountByCountry(),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	// Wildcard CORS is fine here, this is a local tool rather than a public API.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if v == nil {
		_, _ = w.Write([]byte("[]"))
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}
