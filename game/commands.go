package game

import "github.com/automoto/titan-slayer/config"

// Command is one input event. Targets are world-space points and are only
// read for melee and ranged attacks.
type Command struct {
	Action  config.ActionID
	Pressed bool

	TargetX, TargetY float64
}

// Press is a key-down for a movement or jump action.
func Press(a config.ActionID) Command {
	return Command{Action: a, Pressed: true}
}

// Release is a key-up for a movement action.
func Release(a config.ActionID) Command {
	return Command{Action: a}
}

// MeleeAt swings toward a world point.
func MeleeAt(x, y float64) Command {
	return Command{Action: config.ActionMelee, Pressed: true, TargetX: x, TargetY: y}
}

// ShootAt fires a bullet toward a world point.
func ShootAt(x, y float64) Command {
	return Command{Action: config.ActionRanged, Pressed: true, TargetX: x, TargetY: y}
}
