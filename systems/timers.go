package systems

import (
	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/game"
	"github.com/yohamta/donburi"
)

// UpdateTimers advances the tick counter and every seconds-based timer by DT.
func UpdateTimers(s *game.State) {
	s.Level().Tick++

	if player, ok := s.Player(); ok {
		p := components.Player.Get(player)
		p.DamageCooldown += s.DT
		p.AttackCooldown += s.DT
		if p.PotionActive {
			p.PotionTimer += s.DT
		}
	}

	s.Registry.ForEach(cfg.CategoryAttack, func(e *donburi.Entry) {
		components.Attack.Get(e).Age += s.DT
	})
}
