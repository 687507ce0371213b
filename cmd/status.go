package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/intelligrit/adventure-guide/internal/parser"
	"github.com/intelligrit/adventure-guide/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show pipeline state: parse stats, per-chapter counts and enrichment progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		total := s.DestinationCount()
		if total == 0 {
			fmt.Println("No destinations stored. Run 'parse' first.")
			return nil
		}

		stats, err := s.ReadStats()
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}

		rate := 0.0
		if stats.Processed > 0 {
			rate = float64(stats.Successful) / float64(stats.Processed) * 100
		}

		fmt.Printf("Destinations: %d\n", total)
		fmt.Printf("Last parse:   %d processed, %d successful, %d failed (%.1f%% success)\n",
			stats.Processed, stats.Successful, stats.Failed, rate)
		if stats.UnknownCountries > 0 {
			fmt.Printf("Unknown countries: %d\n", stats.UnknownCountries)
		}

		enriched := s.EnrichedCount()
		fmt.Printf("Enriched:     %d/%d (%.1f%%)\n", enriched, total, float64(enriched)/float64(total)*100)

		fmt.Println("\nBy chapter:")
		byChapter := s.CountByChapter()
		for _, def := range parser.Chapters {
			fmt.Printf("  %d. %-28s %4d destinations\n", def.Number, def.Title, byChapter[def.Number])
		}

		if verbose {
			byCountry := s.CountByCountry()
			countries := make([]string, 0, len(byCountry))
			for country := range byCountry {
				countries = append(countries, country)
			}
			sort.Strings(countries)

			fmt.Println("\nBy country:")
			for _, country := range countries {
				fmt.Printf("  %-30s %4d\n", country, byCountry[country])
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
