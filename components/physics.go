package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	OnGround bool
}

// VelocityData is a constant per-tick displacement for projectiles.
type VelocityData struct {
	dmath.Vec2
}

var (
	Physics  = donburi.NewComponentType[PhysicsData]()
	Velocity = donburi.NewComponentType[VelocityData]()
)
