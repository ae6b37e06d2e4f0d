package components

import (
	"github.com/automoto/titan-slayer/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing config.Facing

	// Held movement keys; the input system derives SpeedX from them.
	MoveLeft  bool
	MoveRight bool

	Score            int
	AttackMultiplier int
	Bullets          int

	// Seconds since the player last took damage.
	DamageCooldown float64
	// Seconds since the player last attacked or fired.
	AttackCooldown float64

	// Seconds since the last strength pickup; only counts while PotionActive.
	PotionTimer  float64
	PotionActive bool
}

var Player = donburi.NewComponentType[PlayerData]()
