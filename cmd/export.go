package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/intelligrit/adventure-guide/internal/model"
	"github.com/intelligrit/adventure-guide/internal/parser"
	"github.com/intelligrit/adventure-guide/internal/store"
)

var outputDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write per-chapter and combined JSON documents from stored destinations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("output-dir") {
			outputDir = cfg.Output.Dir
		}

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		buckets, err := s.ReadChapters()
		if err != nil {
			return fmt.Errorf("reading chapters (run parse first): %w", err)
		}

		total := 0
		for _, destinations := range buckets {
			total += len(destinations)
		}
		if total == 0 {
			return fmt.Errorf("no destinations stored (run parse first)")
		}

		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		generatedDate := time.Now().UTC().Format("2006-01-02")

		written := 0
		for _, def := range parser.Chapters {
			destinations := buckets[def.Number]
			if len(destinations) == 0 {
				logVerbose("  chapter %d has no destinations, skipped", def.Number)
				continue
			}
			doc := parser.BuildChapterDocument(def, destinations, generatedDate)
			name := fmt.Sprintf("chapter_%d_destinations.json", def.Number)
			if err := writeDocument(filepath.Join(outputDir, name), doc); err != nil {
				return err
			}
			fmt.Printf("  %s: %d destinations\n", name, len(destinations))
			written++
		}

		combined := parser.BuildCombinedDocument(buckets, generatedDate)
		if err := writeDocument(filepath.Join(outputDir, "complete_adventure_guide.json"), combined); err != nil {
			return err
		}

		failedLines, totalFailed, err := s.ReadFailedLines()
		if err != nil {
			return fmt.Errorf("reading failed lines: %w", err)
		}
		if totalFailed > 0 {
			stats, err := s.ReadStats()
			if err != nil {
				return fmt.Errorf("reading stats: %w", err)
			}
			report := debugReport(stats, failedLines, totalFailed)
			if err := writeDocument(filepath.Join(outputDir, "debug_report.json"), report); err != nil {
				return err
			}
			fmt.Printf("  debug_report.json: %d failed lines\n", totalFailed)
		}

		fmt.Printf("Exported %d chapter files and the combined guide to %s\n", written, outputDir)
		return nil
	},
}

func writeDocument(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func debugReport(stats model.ParseStats, failedLines []string, totalFailed int) *model.DebugReport {
	rate := 0.0
	if stats.Processed > 0 {
		rate = float64(stats.Successful) / float64(stats.Processed) * 100
	}
	return &model.DebugReport{
		Summary:           stats,
		SuccessRate:       fmt.Sprintf("%.1f%%", rate),
		FailedLinesSample: failedLines,
		TotalFailedLines:  totalFailed,
	}
}

func init() {
	exportCmd.Flags().StringVar(&outputDir, "output-dir", "output", "Directory for generated JSON files")
	rootCmd.AddCommand(exportCmd)
}
