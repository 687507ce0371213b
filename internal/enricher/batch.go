package enricher

import (
	"context"
	"fmt"
	"strings"
)

// Attraction is a bilingual attraction summary.
type Attraction struct {
	En string
	Fr string
}

type request struct {
	Location string
	Country  string
	Region   string
}

// Generator queues destinations and sends them to the model in combined
// batches, one outbound request per batch. Results (or fallbacks) are kept
// until retrieved with Result.
type Generator struct {
	client    *Client
	batchSize int
	queue     []request
	results   map[string]Attraction

	// Stats counts outbound batch calls, not individual destinations.
	TotalCalls      int
	SuccessfulCalls int
	ErrorCalls      int
}

// NewGenerator wraps a Client with batching. batchSize values below 1 fall
// back to 50.
func NewGenerator(client *Client, batchSize int) *Generator {
	if batchSize < 1 {
		batchSize = 50
	}
	return &Generator{
		client:    client,
		batchSize: batchSize,
		results:   make(map[string]Attraction),
	}
}

// Enqueue adds a destination to the pending batch, sending the batch when
// it is full. The only returned error is context cancellation.
func (g *Generator) Enqueue(ctx context.Context, location, country, region string) error {
	g.queue = append(g.queue, request{Location: location, Country: country, Region: region})
	if len(g.queue) >= g.batchSize {
		return g.processBatch(ctx)
	}
	return nil
}

// Flush sends any queued destinations that did not fill a batch.
func (g *Generator) Flush(ctx context.Context) error {
	if len(g.queue) == 0 {
		return nil
	}
	return g.processBatch(ctx)
}

// Result returns the generated attraction text for a location, or the
// deterministic fallback when the batch produced nothing for it.
func (g *Generator) Result(location, country string) Attraction {
	if a, ok := g.results[location]; ok {
		return a
	}
	return Fallback(location, country)
}

// Fallback is the deterministic attraction text substituted whenever
// generation fails.
func Fallback(location, country string) Attraction {
	return Attraction{
		En: fmt.Sprintf("Discover the unique charm and attractions of %s in %s.", location, country),
		Fr: fmt.Sprintf("Découvrez le charme unique et les attractions de %s en %s.", location, country),
	}
}

func (g *Generator) processBatch(ctx context.Context) error {
	batch := g.queue
	if len(batch) > g.batchSize {
		batch = batch[:g.batchSize]
	}
	g.queue = g.queue[len(batch):]

	g.TotalCalls++

	resp, err := g.client.Generate(ctx, buildBatchPrompt(batch))
	if err != nil {
		g.ErrorCalls++
		for _, item := range batch {
			g.results[item.Location] = Fallback(item.Location, item.Country)
		}
		// Cancellation must stop the run; any other failure already
		// degraded to fallback text.
		return ctx.Err()
	}

	g.SuccessfulCalls++
	for loc, attraction := range parseBatchResponse(resp, batch) {
		g.results[loc] = attraction
	}
	return nil
}

func buildBatchPrompt(batch []request) string {
	var locations strings.Builder
	for _, item := range batch {
		fmt.Fprintf(&locations, "- %s (%s, %s)\n", item.Location, item.Country, item.Region)
	}

	return fmt.Sprintf(`Generate brief, engaging descriptions of the main attractions for these travel destinations.

Locations:
%s
For each location, provide the response in this exact format:
[Location Name]: English: [Brief description in English] | French: [Brief description in French]

Keep each description concise (1-2 sentences) and focus on what makes each destination unique and appealing to travelers.

Please provide exactly %d responses, one for each location listed above.

Example format:
Paris: English: Discover the iconic Eiffel Tower and charming cafes along the Seine River | French: Découvrez la tour Eiffel emblématique et les charmants cafés le long de la Seine
Tokyo: English: Experience the blend of ancient temples and cutting-edge technology in this vibrant metropolis | French: Vivez le mélange de temples anciens et de technologie de pointe dans cette métropole vibrante`,
		locations.String(), len(batch))
}

// parseBatchResponse extracts per-location results from the model's
// line-oriented reply. Locations the model skipped or mangled get fallback
// text.
func parseBatchResponse(response string, batch []request) map[string]Attraction {
	results := make(map[string]Attraction, len(batch))
	lines := strings.Split(strings.TrimSpace(response), "\n")

	for _, item := range batch {
		found := false
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, item.Location+":") {
				continue
			}
			_, rest, ok := strings.Cut(line, "English:")
			if !ok {
				continue
			}
			en, fr, ok := strings.Cut(rest, "| French:")
			if !ok {
				continue
			}
			results[item.Location] = Attraction{
				En: strings.TrimSpace(en),
				Fr: strings.TrimSpace(fr),
			}
			found = true
			break
		}
		if !found {
			results[item.Location] = Fallback(item.Location, item.Country)
		}
	}

	return results
}
