package parser

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/intelligrit/adventure-guide/internal/maps"
	"github.com/intelligrit/adventure-guide/internal/model"
)

// linePattern matches one destination record: a numeric id, a location
// phrase, then labeled latitude/longitude with hemisphere letters. The
// longitude letter is optional and defaults to east.
var linePattern = regexp.MustCompile(
	`^(\d+)\.\s+(.+?)\s+-\s+Latitude:\s*([\d.-]+)\s*([NS])\s+Longitude:\s*([\d.-]+)\s*([EW])?`)

// maxFailedSample bounds how many failing lines are retained verbatim for
// the debug report. The total count is tracked separately.
const maxFailedSample = 50

// Parser runs the line-record extraction pipeline and accumulates per-run
// statistics. A Parser is reusable across runs but must not be shared by
// concurrent ParseContent calls: the stats accumulator belongs to the
// in-flight run.
type Parser struct {
	stats       model.ParseStats
	failedLines []string
	totalFailed int
	droppedIDs  []int
}

// New returns a Parser with zeroed statistics.
func New() *Parser {
	return &Parser{}
}

// Stats returns a copy of the current run's counters.
func (p *Parser) Stats() model.ParseStats {
	return p.stats
}

// FailedLines returns the retained sample of failing line diagnostics.
func (p *Parser) FailedLines() []string {
	return p.failedLines
}

// TotalFailedLines returns how many failing lines were seen in total,
// including those beyond the retained sample.
func (p *Parser) TotalFailedLines() int {
	return p.totalFailed
}

// DroppedIDs returns ids of successfully parsed records that fell outside
// every chapter range during the last ParseContent run.
func (p *Parser) DroppedIDs() []int {
	return p.droppedIDs
}

// SuccessRate returns successful/processed as a percentage, guarding the
// empty-input case.
func (p *Parser) SuccessRate() float64 {
	processed := p.stats.Processed
	if processed < 1 {
		processed = 1
	}
	return float64(p.stats.Successful) / float64(processed) * 100
}

func (p *Parser) recordFailure(diag string) {
	p.stats.Failed++
	p.totalFailed++
	if len(p.failedLines) < maxFailedSample {
		p.failedLines = append(p.failedLines, diag)
	}
}

// ParseLine extracts one destination from a line of guide text. Blank lines
// are a silent no-op. Malformed lines never produce an error: they return
// nil and bump the failure counters.
func (p *Parser) ParseLine(line string) *model.Destination {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	p.stats.Processed++

	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		p.recordFailure(line)
		return nil
	}

	id, err := strconv.Atoi(m[1])
	if err != nil {
		p.recordFailure("Error: " + line)
		return nil
	}

	location := CleanLocation(m[2])

	coords, err := ParseCoordinates(m[3], m[4], m[5], m[6])
	if err != nil {
		if errors.Is(err, ErrOutOfRange) {
			p.recordFailure("Invalid coords: " + line)
		} else {
			p.recordFailure("Error: " + line)
		}
		return nil
	}

	country, region := Classify(location)
	if country == "Unknown" {
		p.stats.UnknownCountries++
	}

	p.stats.Successful++
	return &model.Destination{
		ID:             id,
		Location:       location,
		Coordinates:    coords,
		Country:        country,
		Region:         region,
		GoogleMapsLink: maps.GoogleMapsLink(location, coords),
		MapLinks:       maps.ExtendedLinks(location, coords),
	}
}

// ParseContent runs the full pipeline over a document's text: statistics are
// reset, every non-blank line is parsed, and successful records are bucketed
// into chapters. All 8 chapter keys are present in the result even when
// empty.
func (p *Parser) ParseContent(content string) map[int][]model.Destination {
	p.stats = model.ParseStats{}
	p.failedLines = nil
	p.totalFailed = 0
	p.droppedIDs = nil

	buckets := make(map[int][]model.Destination, len(Chapters))
	for _, def := range Chapters {
		buckets[def.Number] = nil
	}

	for _, line := range strings.Split(content, "\n") {
		dest := p.ParseLine(line)
		if dest == nil {
			continue
		}
		num, ok := ChapterFor(dest.ID)
		if !ok {
			p.droppedIDs = append(p.droppedIDs, dest.ID)
			continue
		}
		buckets[num] = append(buckets[num], *dest)
	}

	return buckets
}
