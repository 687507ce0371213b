package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/intelligrit/adventure-guide/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dir := filepath.Join(os.TempDir(), "adventure-guide-store-test-"+t.Name())
	os.RemoveAll(dir)
	t.Cleanup(func() { os.RemoveAll(dir) })

	s, err := New(dir)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleBuckets() map[int][]model.Destination {
	buckets := make(map[int][]model.Destination)
	for chapter := 1; chapter <= 8; chapter++ {
		buckets[chapter] = nil
	}
	buckets[1] = []model.Destination{
		{
			ID:       1,
			Location: "Oslo, Norway",
			Coordinates: model.Coordinates{
				Latitude: 59.9139, Longitude: 10.7522,
				LatitudeDirection: "N", LongitudeDirection: "E",
			},
			Country:        "Norway",
			Region:         "Scandinavia",
			GoogleMapsLink: "https://www.google.com/maps/search/Oslo/@59.9139,10.7522,15z",
			MapLinks:       model.MapLinks{OpenStreetMap: "https://www.openstreetmap.org/#map=15/59.9139/10.7522"},
		},
		{
			ID:       2,
			Location: "Reykjavik, Iceland",
			Coordinates: model.Coordinates{
				Latitude: 64.1466, Longitude: -21.9426,
				LatitudeDirection: "N", LongitudeDirection: "W",
			},
			Country: "Iceland",
			Region:  "Nordic",
		},
	}
	buckets[8] = []model.Destination{
		{
			ID:       950,
			Location: "Ushuaia, Argentina",
			Coordinates: model.Coordinates{
				Latitude: -54.8019, Longitude: -68.303,
				LatitudeDirection: "S", LongitudeDirection: "W",
			},
			Country: "Argentina",
			Region:  "South America",
		},
	}
	return buckets
}

func TestParseRunRoundTrip(t *testing.T) {
	s := testStore(t)

	stats := model.ParseStats{Processed: 4, Successful: 3, Failed: 1, UnknownCountries: 0}
	failedLines := []string{"garbage line"}
	if err := s.WriteParseRun(sampleBuckets(), stats, failedLines, 1, "2026-08-29T00:00:00Z"); err != nil {
		t.Fatalf("writing parse run: %v", err)
	}

	buckets, err := s.ReadChapters()
	if err != nil {
		t.Fatalf("reading chapters: %v", err)
	}
	if len(buckets) != 8 {
		t.Fatalf("expected all 8 chapter keys, got %d", len(buckets))
	}
	if len(buckets[1]) != 2 {
		t.Fatalf("expected 2 destinations in chapter 1, got %d", len(buckets[1]))
	}

	oslo := buckets[1][0]
	if oslo.ID != 1 || oslo.Location != "Oslo, Norway" {
		t.Errorf("stored order or fields wrong: %+v", oslo)
	}
	if oslo.Coordinates.Latitude != 59.9139 || oslo.Coordinates.LongitudeDirection != "E" {
		t.Errorf("coordinates not preserved: %+v", oslo.Coordinates)
	}
	if oslo.GoogleMapsLink == "" {
		t.Error("maps link not preserved")
	}
	if oslo.MapLinks.OpenStreetMap != "https://www.openstreetmap.org/#map=15/59.9139/10.7522" {
		t.Errorf("map links JSON not preserved: %+v", oslo.MapLinks)
	}

	gotStats, err := s.ReadStats()
	if err != nil {
		t.Fatalf("reading stats: %v", err)
	}
	if gotStats != stats {
		t.Errorf("stats mismatch: got %+v, want %+v", gotStats, stats)
	}

	lines, total, err := s.ReadFailedLines()
	if err != nil {
		t.Fatalf("reading failed lines: %v", err)
	}
	if len(lines) != 1 || lines[0] != "garbage line" {
		t.Errorf("failed lines mismatch: %v", lines)
	}
	if total != 1 {
		t.Errorf("expected total 1, got %d", total)
	}
}

func TestWriteParseRunReplaces(t *testing.T) {
	s := testStore(t)

	if err := s.WriteParseRun(sampleBuckets(), model.ParseStats{Processed: 3, Successful: 3}, nil, 0, "2026-08-29T00:00:00Z"); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if s.DestinationCount() != 3 {
		t.Fatalf("expected 3 destinations, got %d", s.DestinationCount())
	}

	// Second run with fewer destinations replaces the first entirely
	buckets := make(map[int][]model.Destination)
	for chapter := 1; chapter <= 8; chapter++ {
		buckets[chapter] = nil
	}
	buckets[2] = []model.Destination{{
		ID:       100,
		Location: "Stockholm, Sweden",
		Coordinates: model.Coordinates{
			Latitude: 59.3293, Longitude: 18.0686,
			LatitudeDirection: "N", LongitudeDirection: "E",
		},
		Country: "Sweden",
		Region:  "Scandinavia",
	}}
	if err := s.WriteParseRun(buckets, model.ParseStats{Processed: 1, Successful: 1}, nil, 0, "2026-08-30T00:00:00Z"); err != nil {
		t.Fatalf("second write: %v", err)
	}

	if s.DestinationCount() != 1 {
		t.Errorf("expected old run replaced, got %d destinations", s.DestinationCount())
	}
	destinations, err := s.ReadDestinations()
	if err != nil {
		t.Fatalf("reading destinations: %v", err)
	}
	if len(destinations) != 1 || destinations[0].ID != 100 {
		t.Errorf("unexpected destinations after replace: %+v", destinations)
	}
}

func TestUpdateAttractions(t *testing.T) {
	s := testStore(t)

	if err := s.WriteParseRun(sampleBuckets(), model.ParseStats{}, nil, 0, "2026-08-29T00:00:00Z"); err != nil {
		t.Fatalf("writing parse run: %v", err)
	}

	if s.EnrichedCount() != 0 {
		t.Fatalf("expected 0 enriched, got %d", s.EnrichedCount())
	}

	if err := s.UpdateAttractions(1, "Fjords and museums", "Fjords et musées"); err != nil {
		t.Fatalf("updating attractions: %v", err)
	}

	if s.EnrichedCount() != 1 {
		t.Errorf("expected 1 enriched, got %d", s.EnrichedCount())
	}

	destinations, err := s.ReadDestinations()
	if err != nil {
		t.Fatalf("reading destinations: %v", err)
	}
	var oslo *model.Destination
	for i := range destinations {
		if destinations[i].ID == 1 {
			oslo = &destinations[i]
		}
	}
	if oslo == nil {
		t.Fatal("destination 1 not found")
	}
	if oslo.MainAttractionEn != "Fjords and museums" || oslo.MainAttractionFr != "Fjords et musées" {
		t.Errorf("attraction text not stored: %+v", oslo)
	}
}

func TestCountMethods(t *testing.T) {
	s := testStore(t)

	if s.DestinationCount() != 0 {
		t.Errorf("expected 0 on empty store, got %d", s.DestinationCount())
	}

	if err := s.WriteParseRun(sampleBuckets(), model.ParseStats{}, nil, 0, "2026-08-29T00:00:00Z"); err != nil {
		t.Fatalf("writing parse run: %v", err)
	}

	byChapter := s.CountByChapter()
	if byChapter[1] != 2 || byChapter[8] != 1 {
		t.Errorf("unexpected chapter counts: %v", byChapter)
	}

	byCountry := s.CountByCountry()
	if byCountry["Norway"] != 1 || byCountry["Iceland"] != 1 || byCountry["Argentina"] != 1 {
		t.Errorf("unexpected country counts: %v", byCountry)
	}
}

func TestReadStatsEmpty(t *testing.T) {
	s := testStore(t)

	stats, err := s.ReadStats()
	if err != nil {
		t.Fatalf("reading stats from empty store: %v", err)
	}
	if stats != (model.ParseStats{}) {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}
