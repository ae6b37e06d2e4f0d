package systems

import (
	"fmt"
	"log"

	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/game"
	"github.com/automoto/titan-slayer/systems/factory"
)

// LoadLevel replaces every non-player entity with level id's tiles and
// enemies and places the player at the level's entry point. A player that
// already exists keeps its score, lives, bullets and multiplier.
func LoadLevel(s *game.State, id int) error {
	def, ok := s.Catalog.Level(id)
	if !ok {
		return fmt.Errorf("unknown level %d", id)
	}
	grid, spawns, enemyCount, err := s.Catalog.GetLevel(id)
	if err != nil {
		return fmt.Errorf("load level %d: %w", id, err)
	}

	s.Registry.PurgeAllExcept(cfg.CategoryPlayer)

	bounds := factory.LevelBounds(grid)
	s.Registry.Resize(bounds)

	if unknown := factory.CreateTiles(s, grid); len(unknown) > 0 {
		log.Printf("[level] level %d: %d unknown tile codes treated as empty (first: %s)", id, len(unknown), unknown[0])
	}
	for _, d := range spawns {
		factory.CreateEnemy(s, d)
	}

	ts := cfg.C.TileSize
	*s.Level() = components.LevelData{
		ID:          id,
		Tick:        s.Level().Tick,
		Name:        def.Name,
		EnemiesLeft: enemyCount,
		Bounds:      bounds,
		BossArenaX:  def.BossArenaX * ts,
	}

	entryX, entryY := def.EntryX*ts, def.EntryY*ts
	if player, ok := s.Player(); ok {
		factory.PlacePlayer(s, player, entryX, entryY)
	} else {
		factory.CreatePlayer(s, entryX, entryY)
	}

	UpdateCamera(s)
	log.Printf("[level] loaded level %d (%s): %dx%d tiles, %d enemies", id, def.Name, grid.Width(), grid.Height(), enemyCount)
	return nil
}
