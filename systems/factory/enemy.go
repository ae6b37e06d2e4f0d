package factory

import (
	"log"

	"github.com/automoto/titan-slayer/archetypes"
	"github.com/automoto/titan-slayer/assets"
	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/game"
	"github.com/automoto/titan-slayer/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns an enemy from a spawn descriptor. Its centre is the
// descriptor's tile coordinate scaled by the tile size.
func CreateEnemy(s *game.State, d assets.SpawnDescriptor) *donburi.Entry {
	typ, ok := cfg.EnemyType(d.Variant)
	if !ok {
		// Catalog loading rejects unknown variants; this only guards hand-built descriptors.
		log.Printf("[factory] unknown enemy variant %q, spawning as titan", d.Variant)
		typ = cfg.Enemy.Types["titan"]
	}

	category := cfg.CategoryMeleeEnemy
	enemy := archetypes.MeleeEnemy
	if typ.Ranged {
		category = cfg.CategoryRangedEnemy
		enemy = archetypes.RangedEnemy
	}
	e := enemy.Spawn(s.World)

	ts := cfg.C.TileSize
	cx, cy := d.X*ts, d.Y*ts
	scale := typ.Scale
	if scale == 0 {
		scale = 1
	}
	components.Body.SetValue(e, components.BodyData{
		Rect: gamemath.RectFromCenter(cx, cy, typ.CollisionWidth*scale, typ.CollisionHeight*scale),
	})
	components.Enemy.SetValue(e, components.EnemyData{
		Kind:          d.Kind,
		Variant:       typ.Name,
		PatrolLeft:    cx - d.Range*ts,
		PatrolRight:   cx + d.Range*ts,
		SpeedX:        d.Velocity,
		ShootInterval: typ.ShootInterval,
	})
	components.Health.SetValue(e, components.HealthData{
		Current: d.Health,
		Max:     d.Health,
	})

	s.Registry.Add(e, category)
	return e
}
