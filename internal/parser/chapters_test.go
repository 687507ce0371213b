package parser

import (
	"testing"

	"github.com/intelligrit/adventure-guide/internal/model"
)

func TestChaptersPartitionIDs(t *testing.T) {
	if len(Chapters) != 8 {
		t.Fatalf("expected 8 chapters, got %d", len(Chapters))
	}

	if Chapters[0].StartID != 1 {
		t.Errorf("first chapter should start at 1, got %d", Chapters[0].StartID)
	}
	if Chapters[len(Chapters)-1].EndID != 1000 {
		t.Errorf("last chapter should end at 1000, got %d", Chapters[len(Chapters)-1].EndID)
	}

	// Ranges must be contiguous with no gaps or overlaps
	for i := 1; i < len(Chapters); i++ {
		prev, cur := Chapters[i-1], Chapters[i]
		if cur.StartID != prev.EndID+1 {
			t.Errorf("chapter %d starts at %d, expected %d", cur.Number, cur.StartID, prev.EndID+1)
		}
	}

	// Every id in 1-1000 belongs to exactly one chapter
	for id := 1; id <= 1000; id++ {
		if _, ok := ChapterFor(id); !ok {
			t.Fatalf("id %d belongs to no chapter", id)
		}
	}
}

func TestChapterFor(t *testing.T) {
	tests := []struct {
		id      int
		chapter int
		ok      bool
	}{
		{1, 1, true},
		{44, 1, true},
		{45, 2, true},
		{265, 2, true},
		{266, 3, true},
		{560, 3, true},
		{561, 4, true},
		{712, 5, true},
		{809, 6, true},
		{862, 7, true},
		{930, 8, true},
		{1000, 8, true},
		{0, 0, false},
		{1001, 0, false},
		{-5, 0, false},
	}

	for _, tt := range tests {
		chapter, ok := ChapterFor(tt.id)
		if chapter != tt.chapter || ok != tt.ok {
			t.Errorf("ChapterFor(%d) = %d,%v, want %d,%v", tt.id, chapter, ok, tt.chapter, tt.ok)
		}
	}
}

func TestChapterDef(t *testing.T) {
	def := ChapterDef(1)
	if def == nil {
		t.Fatal("expected chapter 1 definition")
	}
	if def.Title != "From 90° North to 60° North" {
		t.Errorf("unexpected title: %q", def.Title)
	}
	if def.Range.From != "90° North" || def.Range.To != "60° North" {
		t.Errorf("unexpected range: %+v", def.Range)
	}

	if ChapterDef(9) != nil {
		t.Error("expected nil for nonexistent chapter")
	}
}

func TestBucket(t *testing.T) {
	destinations := []model.Destination{
		{ID: 1, Location: "A"},
		{ID: 2, Location: "B"},
		{ID: 500, Location: "C"},
		{ID: 1500, Location: "dropped"},
	}

	buckets := Bucket(destinations)

	if len(buckets) != 8 {
		t.Fatalf("expected all 8 chapter keys, got %d", len(buckets))
	}
	if len(buckets[1]) != 2 {
		t.Errorf("expected 2 destinations in chapter 1, got %d", len(buckets[1]))
	}
	// Input order preserved within a chapter
	if buckets[1][0].ID != 1 || buckets[1][1].ID != 2 {
		t.Errorf("order not preserved: %+v", buckets[1])
	}
	if len(buckets[3]) != 1 || buckets[3][0].ID != 500 {
		t.Errorf("chapter 3 bucket wrong: %+v", buckets[3])
	}

	total := 0
	for _, d := range buckets {
		total += len(d)
	}
	if total != 3 {
		t.Errorf("expected out-of-range id dropped, got %d bucketed", total)
	}
}
