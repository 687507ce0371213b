package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/intelligrit/adventure-guide/internal/parser"
	"github.com/intelligrit/adventure-guide/internal/source"
	"github.com/intelligrit/adventure-guide/internal/store"
)

var parseCmd = &cobra.Command{
	Use:   "parse <input-file>",
	Short: "Parse a guide document (PDF, HTML or plain text) into destinations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		if _, err := os.Stat(input); err != nil {
			return fmt.Errorf("input file: %w", err)
		}

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		fmt.Printf("Parsing %s...\n", input)

		content, err := source.ForFile(input).Text()
		if err != nil {
			return fmt.Errorf("extracting text: %w", err)
		}
		if content == "" {
			return fmt.Errorf("no text extracted from %s", input)
		}

		p := parser.New()
		buckets := p.ParseContent(content)

		for _, id := range p.DroppedIDs() {
			logVerbose("  destination %d falls outside every chapter range, dropped", id)
		}

		stats := p.Stats()
		parsedAt := time.Now().UTC().Format(time.RFC3339)
		if err := s.WriteParseRun(buckets, stats, p.FailedLines(), p.TotalFailedLines(), parsedAt); err != nil {
			return fmt.Errorf("saving parse run: %w", err)
		}

		fmt.Printf("Processed: %d, Successful: %d, Failed: %d, Unknown countries: %d\n",
			stats.Processed, stats.Successful, stats.Failed, stats.UnknownCountries)
		fmt.Printf("Success rate: %.1f%%\n", p.SuccessRate())

		if failed := p.FailedLines(); len(failed) > 0 {
			fmt.Println("Failed lines sample (first 5):")
			for i, line := range failed {
				if i == 5 {
					break
				}
				fmt.Printf("  %s\n", line)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
