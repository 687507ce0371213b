package parser

import (
	"reflect"
	"testing"

	"github.com/intelligrit/adventure-guide/internal/model"
)

func sampleBuckets() map[int][]model.Destination {
	buckets := make(map[int][]model.Destination)
	for _, def := range Chapters {
		buckets[def.Number] = nil
	}
	buckets[1] = []model.Destination{
		{ID: 1, Location: "Oslo, Norway", Country: "Norway", Region: "Scandinavia"},
		{ID: 2, Location: "Reykjavik, Iceland", Country: "Iceland", Region: "Nordic"},
	}
	buckets[8] = []model.Destination{
		{ID: 950, Location: "Ushuaia, Argentina", Country: "Argentina", Region: "South America"},
	}
	return buckets
}

func TestBuildChapterDocument(t *testing.T) {
	def := Chapters[0]
	destinations := sampleBuckets()[1]

	doc := BuildChapterDocument(def, destinations, "2026-08-29")

	if doc.Title != "Find Your Next Adventure - Chapter 1: From 90° North to 60° North" {
		t.Errorf("unexpected title: %q", doc.Title)
	}
	if doc.Description != "Adventure destinations from 90° north to 60° north" {
		t.Errorf("unexpected description: %q", doc.Description)
	}
	if doc.TotalDestinations != 2 {
		t.Errorf("expected 2 destinations, got %d", doc.TotalDestinations)
	}
	if doc.LatitudeRange.From != "90° North" || doc.LatitudeRange.To != "60° North" {
		t.Errorf("unexpected latitude range: %+v", doc.LatitudeRange)
	}
	if doc.Metadata["chapter"] != "1" {
		t.Errorf("expected chapter metadata '1', got %q", doc.Metadata["chapter"])
	}
	if doc.Metadata["generatedDate"] != "2026-08-29" {
		t.Errorf("expected generated date preserved, got %q", doc.Metadata["generatedDate"])
	}
	if doc.Metadata["coordinateSystem"] != "WGS84" {
		t.Errorf("expected WGS84, got %q", doc.Metadata["coordinateSystem"])
	}
}

func TestBuildCombinedDocument(t *testing.T) {
	buckets := sampleBuckets()

	doc := BuildCombinedDocument(buckets, "2026-08-29")

	if doc.Title != "Find Your Next Adventure - Complete Guide" {
		t.Errorf("unexpected title: %q", doc.Title)
	}
	if doc.TotalChapters != 8 {
		t.Errorf("expected totalChapters 8, got %d", doc.TotalChapters)
	}
	if doc.TotalDestinations != 3 {
		t.Errorf("expected 3 total destinations, got %d", doc.TotalDestinations)
	}
	// Only non-empty chapters appear in the map
	if len(doc.Chapters) != 2 {
		t.Fatalf("expected 2 chapter entries, got %d", len(doc.Chapters))
	}
	ch1, ok := doc.Chapters["chapter_1"]
	if !ok {
		t.Fatal("expected chapter_1 entry")
	}
	if ch1.DestinationCount != 2 {
		t.Errorf("expected 2 in chapter_1, got %d", ch1.DestinationCount)
	}
	if _, ok := doc.Chapters["chapter_2"]; ok {
		t.Error("empty chapter_2 should be omitted")
	}
}

func TestBuildDocumentsIdempotent(t *testing.T) {
	buckets := sampleBuckets()

	first := BuildCombinedDocument(buckets, "2026-08-29")
	second := BuildCombinedDocument(buckets, "2026-08-29")
	if !reflect.DeepEqual(first, second) {
		t.Error("combined document should be identical across calls")
	}

	chFirst := BuildChapterDocument(Chapters[0], buckets[1], "2026-08-29")
	chSecond := BuildChapterDocument(Chapters[0], buckets[1], "2026-08-29")
	if !reflect.DeepEqual(chFirst, chSecond) {
		t.Error("chapter document should be identical across calls")
	}
}

func TestDebugReport(t *testing.T) {
	p := New()
	p.ParseContent("1. Oslo, Norway - Latitude: 59.9139 N Longitude: 10.7522 E")
	if report := p.DebugReport(); report != nil {
		t.Errorf("expected nil report when nothing failed, got %+v", report)
	}

	p.ParseContent("garbage\n1. Oslo, Norway - Latitude: 59.9139 N Longitude: 10.7522 E")
	report := p.DebugReport()
	if report == nil {
		t.Fatal("expected a debug report")
	}
	if report.TotalFailedLines != 1 {
		t.Errorf("expected 1 failed line, got %d", report.TotalFailedLines)
	}
	if report.SuccessRate != "50.0%" {
		t.Errorf("expected success rate '50.0%%', got %q", report.SuccessRate)
	}
	if len(report.FailedLinesSample) != 1 || report.FailedLinesSample[0] != "garbage" {
		t.Errorf("unexpected sample: %v", report.FailedLinesSample)
	}
}
