package factory

import (
	"github.com/automoto/titan-slayer/archetypes"
	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/game"
	"github.com/automoto/titan-slayer/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player centred on (cx, cy) with starting stats.
func CreatePlayer(s *game.State, cx, cy float64) *donburi.Entry {
	player := archetypes.Player.Spawn(s.World)

	components.Body.SetValue(player, components.BodyData{
		Rect: gamemath.RectFromCenter(cx, cy, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight),
	})
	components.Player.SetValue(player, components.PlayerData{
		Facing:           cfg.FacingRight,
		AttackMultiplier: cfg.Player.AttackMultiplier,
		Bullets:          cfg.Pickups.InitialBulletCount,
	})
	components.Physics.SetValue(player, components.PhysicsData{})
	components.Lives.SetValue(player, components.LivesData{
		Lives: cfg.Player.StartingLives,
	})

	s.Registry.Add(player, cfg.CategoryPlayer)
	return player
}

// PlacePlayer moves an existing player to (cx, cy) and stops it.
func PlacePlayer(s *game.State, player *donburi.Entry, cx, cy float64) {
	components.Body.Get(player).SetCenter(cx, cy)
	physics := components.Physics.Get(player)
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = false
	s.Registry.Sync(player)
}
