package components

import (
	"github.com/automoto/titan-slayer/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind    config.EnemyKind
	Variant string // "titan", "police", ...

	// Patrol bounds in world x; the enemy reverses when an edge crosses one.
	PatrolLeft  float64
	PatrolRight float64
	SpeedX      float64

	// Ranged fire, counted in ticks. Zero interval means the enemy never fires.
	ShootInterval int
	ShootTimer    int
}

var Enemy = donburi.NewComponentType[EnemyData]()
