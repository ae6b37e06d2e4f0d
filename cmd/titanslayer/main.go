// titanslayer is a side-scrolling platformer: clear each level's titans,
// walk through the door, and beat Bert on the last level.
//
// Usage:
//
//	titanslayer play            - Open the game window
//	titanslayer sim             - Run a headless simulation
//	titanslayer levels          - List the level catalog
//	titanslayer check           - Validate the level catalog and maps
//
// Global flags:
//
//	--catalog <dir>     - Load levels from a directory instead of the embedded set
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	stdlog "log"
	"os"

	"github.com/automoto/titan-slayer/assets"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagCatalog  string
	flagLogLevel string
	flagLevel    int

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "titanslayer",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "titanslayer",
	Short: "Titan Slayer - a tile-based platformer",
	Long: `Titan Slayer is a side-scrolling platformer. Each level's titans must
fall before its door opens; the last level ends with a boss fight.

Examples:
  titanslayer play
  titanslayer play --level 3
  titanslayer sim --ticks 3600 --tick-rate 0
  titanslayer check --catalog ./levels`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)

		// Route the game packages' log.Printf output through the same logger.
		stdlog.SetFlags(0)
		stdlog.SetOutput(logger.StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel}).Writer())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Directory holding catalog.yaml and its maps (default: embedded levels)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 0, "Level id to start on (default: first level)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
}

// loadCatalog returns the catalog selected by --catalog.
func loadCatalog() (*assets.Catalog, error) {
	if flagCatalog == "" {
		return assets.LoadDefaultCatalog()
	}
	return assets.LoadCatalogDir(flagCatalog)
}
