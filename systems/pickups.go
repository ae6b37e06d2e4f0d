package systems

import (
	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/game"
	"github.com/yohamta/donburi"
)

var pickupCategories = []cfg.Category{
	cfg.CategoryCoin,
	cfg.CategoryHealthPickup,
	cfg.CategoryStrengthPickup,
	cfg.CategoryGunPickup,
}

type pickupEffect func(p *components.PlayerData, lives *components.LivesData) cfg.EventKind

var pickupEffects = map[cfg.PickupKind]pickupEffect{
	cfg.PickupCoin: func(p *components.PlayerData, _ *components.LivesData) cfg.EventKind {
		p.Score += cfg.Pickups.CoinScore
		return cfg.EventCoin
	},
	cfg.PickupHealth: func(_ *components.PlayerData, lives *components.LivesData) cfg.EventKind {
		lives.Lives += cfg.Pickups.HealthLives
		return cfg.EventHealth
	},
	// Strength is always base times the factor, so a second potion only
	// restarts the timer.
	cfg.PickupStrength: func(p *components.PlayerData, _ *components.LivesData) cfg.EventKind {
		p.AttackMultiplier = cfg.Player.AttackMultiplier * cfg.Pickups.StrengthFactor
		p.PotionTimer = 0
		p.PotionActive = true
		return cfg.EventStrength
	},
	cfg.PickupGun: func(p *components.PlayerData, _ *components.LivesData) cfg.EventKind {
		p.Bullets += cfg.Pickups.GunBullets
		return cfg.EventGun
	},
}

// UpdatePickups consumes every pickup the player touches, then expires the
// strength potion.
func UpdatePickups(s *game.State) {
	player, ok := s.Player()
	if !ok {
		return
	}
	p := components.Player.Get(player)
	lives := components.Lives.Get(player)

	for _, e := range s.Registry.Overlapping(player, pickupCategories...) {
		applyPickup(s, e, p, lives)
	}

	if p.PotionActive && p.PotionTimer >= cfg.Pickups.StrengthDuration {
		p.AttackMultiplier = cfg.Player.AttackMultiplier
		p.PotionActive = false
		p.PotionTimer = 0
	}
}

func applyPickup(s *game.State, e *donburi.Entry, p *components.PlayerData, lives *components.LivesData) {
	if !s.Registry.Alive(e) {
		return
	}
	effect, ok := pickupEffects[components.Pickup.Get(e).Kind]
	if !ok {
		return
	}
	kind := effect(p, lives)
	body := components.Body.Get(e)
	s.Registry.Remove(e)
	s.Emit(kind, body.CenterX(), body.CenterY(), 0)
}
