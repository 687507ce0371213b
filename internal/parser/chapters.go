package parser

import "github.com/intelligrit/adventure-guide/internal/model"

// ChapterDefinition describes one of the guide's 8 latitude-band chapters.
// The ID ranges are inclusive and partition 1-1000 contiguously.
type ChapterDefinition struct {
	Number  int
	Title   string
	Range   model.LatitudeRange
	StartID int
	EndID   int
}

// Chapters is the static chapter table. Process-wide constant, read-only.
var Chapters = []ChapterDefinition{
	{1, "From 90° North to 60° North", model.LatitudeRange{From: "90° North", To: "60° North"}, 1, 44},
	{2, "From 60° North to 45° North", model.LatitudeRange{From: "60° North", To: "45° North"}, 45, 265},
	{3, "From 45° North to 30° North", model.LatitudeRange{From: "45° North", To: "30° North"}, 266, 560},
	{4, "From 30° North to 15° North", model.LatitudeRange{From: "30° North", To: "15° North"}, 561, 711},
	{5, "From 15° North to 0° North", model.LatitudeRange{From: "15° North", To: "0° North"}, 712, 808},
	{6, "From 0° South to 15° South", model.LatitudeRange{From: "0° South", To: "15° South"}, 809, 861},
	{7, "From 15° South to 30° South", model.LatitudeRange{From: "15° South", To: "30° South"}, 862, 929},
	{8, "From 30° South to 90° South", model.LatitudeRange{From: "30° South", To: "90° South"}, 930, 1000},
}

// ChapterDef returns the definition for a chapter number, or nil.
func ChapterDef(number int) *ChapterDefinition {
	for i := range Chapters {
		if Chapters[i].Number == number {
			return &Chapters[i]
		}
	}
	return nil
}

// ChapterFor returns the chapter number whose ID range contains id. IDs
// outside 1-1000 belong to no chapter.
func ChapterFor(id int) (int, bool) {
	for _, def := range Chapters {
		if id >= def.StartID && id <= def.EndID {
			return def.Number, true
		}
	}
	return 0, false
}

// Bucket groups destinations by chapter, preserving input order within each
// chapter. Destinations whose ID falls outside every range are dropped.
func Bucket(destinations []model.Destination) map[int][]model.Destination {
	buckets := make(map[int][]model.Destination, len(Chapters))
	for _, def := range Chapters {
		buckets[def.Number] = nil
	}
	for _, d := range destinations {
		if num, ok := ChapterFor(d.ID); ok {
			buckets[num] = append(buckets[num], d)
		}
	}
	return buckets
}
