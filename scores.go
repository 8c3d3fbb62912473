package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/starcatch/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the highest scoring finished runs, best first.

Examples:
  starcatch scores
  starcatch scores --limit 3`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("read scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores")
	fmt.Fprintln(out)
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-20s  %s\n", "Rank", "Score", "Level", "Seed", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-20s  %s\n", "----", "-----", "-----", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-8d  %-5d  %-20d  %s\n", i+1, r.Score, r.Level, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
