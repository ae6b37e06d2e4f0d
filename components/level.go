package components

import (
	"github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/shared/gamemath"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	ID          int
	Name        string
	EnemiesLeft int
	Tick        int

	// Bounds is the map's world rectangle.
	Bounds gamemath.Rect

	DoorOpened bool

	// BossArenaX is the world x that starts the boss fight; zero disables it.
	BossArenaX   float64
	BossAnnounce bool
}

// ProgressData is the level-progression machine.
type ProgressData struct {
	State      config.MachineState
	FinalScore int
}

var (
	Level    = donburi.NewComponentType[LevelData]()
	Progress = donburi.NewComponentType[ProgressData]()
)
