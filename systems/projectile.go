package systems

import (
	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/game"
	"github.com/yohamta/donburi"
)

var projectileCategories = []cfg.Category{cfg.CategoryPlayerBullet, cfg.CategoryEnemyBullet}

// UpdateProjectiles moves bullets along their fixed velocity.
func UpdateProjectiles(s *game.State) {
	for _, category := range projectileCategories {
		s.Registry.ForEach(category, func(e *donburi.Entry) {
			body := components.Body.Get(e)
			v := components.Velocity.Get(e)
			body.X += v.X
			body.Y += v.Y
		})
	}
}

// removeStrayProjectiles drops bullets that hit a wall or left the
// off-screen bound around the level.
func removeStrayProjectiles(s *game.State) {
	bound := s.Level().Bounds.Grow(cfg.Combat.OffscreenMargin)
	for _, category := range projectileCategories {
		s.Registry.RemoveIf(category, func(e *donburi.Entry) bool {
			body := components.Body.Get(e)
			if !bound.ContainsPoint(body.CenterX(), body.CenterY()) {
				return true
			}
			return len(s.Registry.Overlapping(e, cfg.CategoryWall)) > 0
		})
	}
}
