package systems

import (
	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/game"
	"github.com/automoto/titan-slayer/shared/gamemath"
	"github.com/yohamta/donburi"
)

var playerHits = []cfg.Category{cfg.CategoryAttack, cfg.CategoryPlayerBullet}

var playerDamageSources = []cfg.Category{
	cfg.CategoryMeleeEnemy,
	cfg.CategoryRangedEnemy,
	cfg.CategoryEnemyBullet,
	cfg.CategoryHazard,
}

// UpdateCombat resolves damage between the player's attacks and enemies,
// then between enemies, their bullets and hazards and the player.
func UpdateCombat(s *game.State) {
	player, hasPlayer := s.Player()
	multiplier := cfg.Player.AttackMultiplier
	if hasPlayer {
		multiplier = components.Player.Get(player).AttackMultiplier
	}

	// Attacks and player bullets hit every enemy they overlap, once.
	for _, category := range playerHits {
		s.Registry.ForEach(category, func(hit *donburi.Entry) {
			if enemies := s.Registry.Overlapping(hit, cfg.EnemyCategories...); len(enemies) > 0 {
				for _, e := range enemies {
					damageEnemy(s, e, multiplier)
				}
				s.Registry.Remove(hit)
				return
			}
			if hit.HasComponent(components.Attack) && components.Attack.Get(hit).Age >= cfg.Combat.AttackLifetime {
				s.Registry.Remove(hit)
			}
		})
	}

	removeDeadEnemies(s)

	if hasPlayer {
		damagePlayer(s, player)
	}

	removeStrayProjectiles(s)
}

func damageEnemy(s *game.State, e *donburi.Entry, amount int) {
	if !s.Registry.Alive(e) {
		return
	}
	health := components.Health.Get(e)
	health.Current -= amount
	body := components.Body.Get(e)
	s.Emit(cfg.EventEnemyHurt, body.CenterX(), body.CenterY(), health.Current)
}

func removeDeadEnemies(s *game.State) {
	level := s.Level()
	for _, category := range cfg.EnemyCategories {
		s.Registry.ForEach(category, func(e *donburi.Entry) {
			if !components.Health.Get(e).Depleted() {
				return
			}
			body := components.Body.Get(e)
			s.Registry.Remove(e)
			if level.EnemiesLeft > 0 {
				level.EnemiesLeft--
			}
			s.Emit(cfg.EventEnemyKilled, body.CenterX(), body.CenterY(), level.EnemiesLeft)
		})
	}
}

// damagePlayer applies at most one hit per tick, and only once the shared
// damage cooldown has run out.
func damagePlayer(s *game.State, player *donburi.Entry) {
	p := components.Player.Get(player)
	if p.DamageCooldown < cfg.Combat.DamageCooldown {
		return
	}
	sources := s.Registry.Overlapping(player, playerDamageSources...)
	if len(sources) == 0 {
		return
	}

	lives := components.Lives.Get(player)
	lives.Lives = gamemath.Floor0(lives.Lives - cfg.Combat.DamagePerHit)
	p.Score = gamemath.Floor0(p.Score - cfg.Combat.ScorePenalty)
	p.DamageCooldown = 0

	for _, src := range sources {
		if components.Category.Get(src).Category == cfg.CategoryEnemyBullet {
			s.Registry.Remove(src)
		}
	}

	body := components.Body.Get(player)
	s.Emit(cfg.EventPlayerHurt, body.CenterX(), body.CenterY(), lives.Lives)
}
