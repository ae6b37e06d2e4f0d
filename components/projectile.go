package components

import (
	"github.com/automoto/titan-slayer/config"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Owner config.Side
	Angle float64 // radians, for drawing
}

var Projectile = donburi.NewComponentType[ProjectileData]()
