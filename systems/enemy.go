package systems

import (
	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/game"
	"github.com/automoto/titan-slayer/systems/factory"
	"github.com/yohamta/donburi"
)

// enemyBehavior is one capability of an enemy, run once per tick.
type enemyBehavior func(s *game.State, e *donburi.Entry, enemy *components.EnemyData)

// enemyBehaviors selects what each kind does. Every kind patrols; only
// ranged enemies fire.
var enemyBehaviors = map[cfg.EnemyKind][]enemyBehavior{
	cfg.EnemyMelee:  {patrol},
	cfg.EnemyRanged: {patrol, rangedFire},
	cfg.EnemyBoss:   {patrol},
}

func UpdateEnemies(s *game.State) {
	for _, category := range cfg.EnemyCategories {
		s.Registry.ForEach(category, func(e *donburi.Entry) {
			enemy := components.Enemy.Get(e)
			for _, behave := range enemyBehaviors[enemy.Kind] {
				behave(s, e, enemy)
			}
		})
	}
}

// patrol moves the enemy by its speed, then reverses it once an edge has
// crossed a patrol bound. Enemies ignore gravity and walls.
func patrol(_ *game.State, e *donburi.Entry, enemy *components.EnemyData) {
	body := components.Body.Get(e)
	body.X += enemy.SpeedX
	if body.Left() < enemy.PatrolLeft || body.Right() > enemy.PatrolRight {
		enemy.SpeedX = -enemy.SpeedX
	}
}

// rangedFire shoots at the player's centre every ShootInterval ticks.
func rangedFire(s *game.State, e *donburi.Entry, enemy *components.EnemyData) {
	if enemy.ShootInterval <= 0 {
		return
	}
	enemy.ShootTimer++
	if enemy.ShootTimer < enemy.ShootInterval {
		return
	}
	enemy.ShootTimer = 0

	player, ok := s.Player()
	if !ok {
		return
	}
	typ, _ := cfg.EnemyType(enemy.Variant)
	speed := typ.ProjectileSpeed
	if speed == 0 {
		speed = cfg.Combat.BulletSpeed
	}

	from := components.Body.Get(e)
	target := components.Body.Get(player)
	factory.CreateProjectile(s, cfg.SideEnemy, from.CenterX(), from.CenterY(), target.CenterX(), target.CenterY(), speed)
	s.Emit(cfg.EventEnemyShot, from.CenterX(), from.CenterY(), 0)
}
