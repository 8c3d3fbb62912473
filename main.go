// starcatch is a one-screen platformer: catch the falling stars, dodge the
// bombs that every cleared wave adds.
//
// Usage:
//
//	starcatch                 - play
//	starcatch scores          - show the best runs
//
// Keys: arrows move and jump, shift+b toggles bombs, r restarts after a hit.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/starcatch/prefabs"
	"github.com/milk9111/starcatch/storage"
)

var (
	flagTuning    string
	flagDBPath    string
	flagSeed      uint64
	flagDebug     bool
	flagNoHazards bool
	flagNoScores  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "starcatch",
	Short:        "Catch the stars, dodge the bombs",
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "Path to a tuning YAML file (default: prefabs/tuning.yaml or the built-in copy)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Verbose logging")
	rootCmd.Flags().BoolVar(&flagNoHazards, "no-hazards", false, "Start with bombs disabled")
	rootCmd.Flags().BoolVar(&flagNoScores, "no-scores", false, "Do not record finished runs")

	rootCmd.AddCommand(scoresCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "starcatch",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	tuning, err := prefabs.LoadTuning(flagTuning)
	if err != nil {
		return fmt.Errorf("load tuning: %w", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("starting", "seed", seed, "hazards", !flagNoHazards)

	var store *storage.Store
	if !flagNoScores {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open scores database", "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	watcher, err := prefabs.NewWatcher(tuningWatchDir(flagTuning))
	if err != nil {
		logger.Debug("tuning hot reload off", "error", err)
		watcher = nil
	} else {
		defer watcher.Close()
	}

	game := NewGame(GameOptions{
		Tuning:         tuning,
		TuningPath:     flagTuning,
		Seed:           seed,
		HazardsEnabled: !flagNoHazards,
		Store:          store,
		Watcher:        watcher,
		Logger:         logger,
	})

	ebiten.SetWindowSize(tuning.Screen.Width, tuning.Screen.Height)
	ebiten.SetWindowTitle("starcatch")
	ebiten.SetTPS(tuning.Physics.TPS)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// tuningWatchDir is the directory whose YAML edits trigger a reload.
func tuningWatchDir(path string) string {
	if path != "" {
		return filepath.Dir(path)
	}
	return "prefabs"
}
