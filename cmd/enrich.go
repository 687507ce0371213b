package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/intelligrit/adventure-guide/internal/enricher"
	"github.com/intelligrit/adventure-guide/internal/store"
)

var (
	enrichModel string
	enrichForce bool
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Generate bilingual attraction text for destinations via Ollama",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		destinations, err := s.ReadDestinations()
		if err != nil {
			return fmt.Errorf("reading destinations (run parse first): %w", err)
		}
		if len(destinations) == 0 {
			return fmt.Errorf("no destinations stored (run parse first)")
		}

		if !cmd.Flags().Changed("model") {
			enrichModel = cfg.Enrich.Model
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		client := enricher.NewClient(cfg.Enrich.URL, enrichModel, cfg.Enrich.MaxTokens, cfg.Enrich.RateLimit)
		gen := enricher.NewGenerator(client, cfg.Enrich.BatchSize)

		var toEnrich []int
		for i, d := range destinations {
			if !enrichForce && d.MainAttractionEn != "" {
				continue // already enriched
			}
			toEnrich = append(toEnrich, i)
		}

		if len(toEnrich) == 0 {
			fmt.Println("All destinations already enriched.")
			return nil
		}

		fmt.Printf("Enriching %d destinations using %s (batches of %d)...\n",
			len(toEnrich), enrichModel, cfg.Enrich.BatchSize)

		for n, i := range toEnrich {
			d := destinations[i]
			if err := gen.Enqueue(ctx, d.Location, d.Country, d.Region); err != nil {
				fmt.Printf("\nInterrupted after %d/%d destinations\n", n, len(toEnrich))
				return nil
			}
		}
		if err := gen.Flush(ctx); err != nil {
			fmt.Println("\nInterrupted during final batch")
			return nil
		}

		for _, i := range toEnrich {
			d := destinations[i]
			attraction := gen.Result(d.Location, d.Country)
			if err := s.UpdateAttractions(d.ID, attraction.En, attraction.Fr); err != nil {
				return fmt.Errorf("saving attraction for %d: %w", d.ID, err)
			}
			logVerbose("  %s | EN: %.60s", d.Location, attraction.En)
		}

		fmt.Printf("Done. Batch calls: %d total, %d successful, %d fell back\n",
			gen.TotalCalls, gen.SuccessfulCalls, gen.ErrorCalls)
		return nil
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichModel, "model", "phi4-mini", "Ollama model to use")
	enrichCmd.Flags().BoolVar(&enrichForce, "force", false, "Re-enrich destinations that already have attraction text")
	rootCmd.AddCommand(enrichCmd)
}
