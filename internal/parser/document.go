package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/intelligrit/adventure-guide/internal/model"
)

const guideSource = "Find Your Next Adventure Travel Guide"

// BuildChapterDocument assembles the output document for one chapter.
func BuildChapterDocument(def ChapterDefinition, destinations []model.Destination, generatedDate string) model.ChapterDocument {
	return model.ChapterDocument{
		Title:             fmt.Sprintf("Find Your Next Adventure - Chapter %d: %s", def.Number, def.Title),
		Description:       "Adventure destinations " + strings.ToLower(def.Title),
		LatitudeRange:     def.Range,
		TotalDestinations: len(destinations),
		Destinations:      destinations,
		Metadata: map[string]string{
			"source":           guideSource,
			"chapter":          strconv.Itoa(def.Number),
			"generatedDate":    generatedDate,
			"coordinateSystem": "WGS84",
			"format":           "Decimal Degrees",
		},
	}
}

// BuildCombinedDocument assembles the complete-guide document from all
// chapter buckets. Empty chapters are omitted from the chapters map but
// still count toward totalChapters.
func BuildCombinedDocument(buckets map[int][]model.Destination, generatedDate string) model.CombinedDocument {
	doc := model.CombinedDocument{
		Title:         "Find Your Next Adventure - Complete Guide",
		Description:   "Complete adventure destinations guide from 90° North to 90° South",
		TotalChapters: len(Chapters),
		Chapters:      make(map[string]model.CombinedChapter),
		Metadata: map[string]string{
			"source":           guideSource,
			"generatedDate":    generatedDate,
			"coordinateSystem": "WGS84",
			"format":           "Decimal Degrees",
		},
	}

	for _, def := range Chapters {
		destinations := buckets[def.Number]
		doc.TotalDestinations += len(destinations)
		if len(destinations) == 0 {
			continue
		}
		doc.Chapters[fmt.Sprintf("chapter_%d", def.Number)] = model.CombinedChapter{
			Title:            def.Title,
			LatitudeRange:    def.Range,
			DestinationCount: len(destinations),
			Destinations:     destinations,
		}
	}

	return doc
}

// DebugReport summarizes the last run's failures, or nil if every line
// parsed.
func (p *Parser) DebugReport() *model.DebugReport {
	if p.totalFailed == 0 {
		return nil
	}
	return &model.DebugReport{
		Summary:           p.stats,
		SuccessRate:       fmt.Sprintf("%.1f%%", p.SuccessRate()),
		FailedLinesSample: p.failedLines,
		TotalFailedLines:  p.totalFailed,
	}
}
