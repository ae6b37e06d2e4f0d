package systems

import (
	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/game"
	"github.com/automoto/titan-slayer/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateInput applies the commands queued since the last tick.
// Must run BEFORE UpdatePhysics in the system order.
func UpdateInput(s *game.State) {
	cmds := s.TakeCommands()
	player, ok := s.Player()
	if !ok {
		return
	}
	p := components.Player.Get(player)

	for _, cmd := range cmds {
		switch cmd.Action {
		case cfg.ActionMoveLeft:
			p.MoveLeft = cmd.Pressed
			if cmd.Pressed {
				p.Facing = cfg.FacingLeft
			}
		case cfg.ActionMoveRight:
			p.MoveRight = cmd.Pressed
			if cmd.Pressed {
				p.Facing = cfg.FacingRight
			}
		case cfg.ActionJump:
			if cmd.Pressed && CanJump(s) {
				components.Physics.Get(player).SpeedY = cfg.Player.JumpSpeed
				body := components.Body.Get(player)
				s.Emit(cfg.EventJump, body.CenterX(), body.Bottom(), 0)
			}
		case cfg.ActionMelee:
			melee(s, player, p, cmd.TargetX)
		case cfg.ActionRanged:
			shoot(s, player, p, cmd.TargetX, cmd.TargetY)
		}
	}

	physics := components.Physics.Get(player)
	physics.SpeedX = 0
	if p.MoveLeft {
		physics.SpeedX -= cfg.Player.MoveSpeed
	}
	if p.MoveRight {
		physics.SpeedX += cfg.Player.MoveSpeed
	}
}

func melee(s *game.State, player *donburi.Entry, p *components.PlayerData, targetX float64) {
	body := components.Body.Get(player)
	cx, cy := body.CenterX(), body.CenterY()

	p.Facing = cfg.FacingRight
	if targetX < cx {
		p.Facing = cfg.FacingLeft
	}
	factory.CreateAttack(s, cx+float64(p.Facing)*cfg.Combat.AttackReach, cy)
	p.AttackCooldown = 0
	s.Emit(cfg.EventMeleeSwing, cx, cy, int(p.Facing))
}

func shoot(s *game.State, player *donburi.Entry, p *components.PlayerData, targetX, targetY float64) {
	if p.Bullets < 1 {
		return
	}
	body := components.Body.Get(player)
	cx, cy := body.CenterX(), body.CenterY()

	p.Bullets--
	p.AttackCooldown = 0
	factory.CreateProjectile(s, cfg.SidePlayer, cx, cy, targetX, targetY, cfg.Combat.BulletSpeed)
	s.Emit(cfg.EventShot, cx, cy, p.Bullets)
}
