package factory

import (
	"math"

	"github.com/automoto/titan-slayer/archetypes"
	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/game"
	"github.com/automoto/titan-slayer/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CreateProjectile spawns a bullet at (fromX, fromY) flying toward
// (toX, toY). The owner decides its category and what it can hurt.
func CreateProjectile(s *game.State, owner cfg.Side, fromX, fromY, toX, toY, speed float64) *donburi.Entry {
	category := cfg.CategoryPlayerBullet
	bullet := archetypes.PlayerBullet
	w, h := cfg.Combat.BulletWidth, cfg.Combat.BulletHeight
	if owner == cfg.SideEnemy {
		category = cfg.CategoryEnemyBullet
		bullet = archetypes.EnemyBullet
		w, h = cfg.Combat.EnemyBulletWidth, cfg.Combat.EnemyBulletHeight
	}
	p := bullet.Spawn(s.World)

	velocity := gamemath.AimVelocity(fromX, fromY, toX, toY, speed)
	components.Body.SetValue(p, components.BodyData{
		Rect: gamemath.RectFromCenter(fromX, fromY, w, h),
	})
	components.Velocity.SetValue(p, components.VelocityData{Vec2: velocity})
	components.Projectile.SetValue(p, components.ProjectileData{
		Owner: owner,
		Angle: math.Atan2(velocity.Y, velocity.X),
	})

	s.Registry.Add(p, category)
	return p
}

// CreateAttack spawns a melee swing centred on (cx, cy).
func CreateAttack(s *game.State, cx, cy float64) *donburi.Entry {
	a := archetypes.Attack.Spawn(s.World)

	components.Body.SetValue(a, components.BodyData{
		Rect: gamemath.RectFromCenter(cx, cy, cfg.Combat.AttackWidth, cfg.Combat.AttackHeight),
	})
	components.Attack.SetValue(a, components.AttackData{})

	s.Registry.Add(a, cfg.CategoryAttack)
	return a
}
