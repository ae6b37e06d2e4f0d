package main

import (
	"errors"
	"fmt"

	"github.com/automoto/titan-slayer/assets"
	"github.com/automoto/titan-slayer/core"
	"github.com/automoto/titan-slayer/shared/leveldata"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the level catalog and maps",
	Long: `Load the catalog and every map it names, report unknown tile codes,
and start a simulation on each level to make sure it spawns cleanly.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		var spawnErr *assets.InvalidSpawnDescriptorError
		var mapErr *leveldata.MalformedMapError
		switch {
		case errors.As(err, &spawnErr):
			logger.Error("invalid spawn list", "level", spawnErr.Level, "index", spawnErr.Index, "reason", spawnErr.Reason)
		case errors.As(err, &mapErr):
			logger.Error("malformed map", "source", mapErr.Source, "row", mapErr.Row, "col", mapErr.Col, "token", mapErr.Token, "reason", mapErr.Reason)
		}
		return err
	}

	failed := 0
	for _, id := range catalog.IDs() {
		def, _ := catalog.Level(id)
		for _, u := range def.Grid.UnknownCodes() {
			logger.Warn("unknown tile code", "level", id, "row", u.Row, "col", u.Col, "code", u.Code)
		}
		if def.Grid.Count(leveldata.TileDoor) == 0 {
			logger.Warn("level has no door", "level", id)
		}

		sim, err := core.New(catalog, core.WithStartLevel(id))
		if err != nil {
			logger.Error("level failed to start", "level", id, "error", err)
			failed++
			continue
		}
		snap := sim.Snapshot()
		if snap.EnemiesLeft != def.EnemyCount {
			logger.Error("enemy count mismatch", "level", id, "spawned", snap.EnemiesLeft, "declared", def.EnemyCount)
			failed++
			continue
		}
		logger.Info("ok", "level", id, "name", def.Name, "enemies", def.EnemyCount)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d levels failed", failed, len(catalog.IDs()))
	}
	return nil
}
