package core

import (
	"sort"

	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/shared/gamemath"
	"github.com/yohamta/donburi"
)

// EntityView is one entity as presentation sees it.
type EntityView struct {
	ID       donburi.Entity
	Category cfg.Category
	Rect     gamemath.Rect
	Facing   cfg.Facing
	Variant  string
	Health   int
}

// Snapshot is the post-tick view of a simulation.
type Snapshot struct {
	Tick       int
	LevelID    int
	LevelName  string
	State      cfg.MachineState
	FinalScore int

	ViewLeft, ViewBottom int

	Lives        int
	Score        int
	Bullets      int
	Multiplier   int
	PotionLeft   float64
	EnemiesLeft  int
	BossAnnounce bool

	Entities []EntityView
}

// Snapshot copies the current state. Entities are ordered by category, then id.
func (sim *Simulation) Snapshot() Snapshot {
	s := sim.state
	level := s.Level()
	progress := s.Progress()
	camera := s.Camera()

	snap := Snapshot{
		Tick:         level.Tick,
		LevelID:      level.ID,
		LevelName:    level.Name,
		State:        progress.State,
		FinalScore:   progress.FinalScore,
		ViewLeft:     camera.ViewLeft,
		ViewBottom:   camera.ViewBottom,
		EnemiesLeft:  level.EnemiesLeft,
		BossAnnounce: level.BossAnnounce,
	}

	if player, ok := s.Player(); ok {
		p := components.Player.Get(player)
		snap.Lives = components.Lives.Get(player).Lives
		snap.Score = p.Score
		snap.Bullets = p.Bullets
		snap.Multiplier = p.AttackMultiplier
		if p.PotionActive {
			snap.PotionLeft = gamemath.Clamp(cfg.Pickups.StrengthDuration-p.PotionTimer, 0, cfg.Pickups.StrengthDuration)
		}
	}

	for c := cfg.Category(0); c < cfg.CategoryCount; c++ {
		s.Registry.ForEach(c, func(e *donburi.Entry) {
			snap.Entities = append(snap.Entities, view(e, c))
		})
	}
	sort.SliceStable(snap.Entities, func(i, j int) bool {
		a, b := snap.Entities[i], snap.Entities[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.ID < b.ID
	})
	return snap
}

func view(e *donburi.Entry, c cfg.Category) EntityView {
	v := EntityView{
		ID:       e.Entity(),
		Category: c,
		Rect:     components.Body.Get(e).Rect,
	}
	if e.HasComponent(components.Player) {
		v.Facing = components.Player.Get(e).Facing
	}
	if e.HasComponent(components.Enemy) {
		v.Variant = components.Enemy.Get(e).Variant
		v.Facing = cfg.FacingRight
		if components.Enemy.Get(e).SpeedX < 0 {
			v.Facing = cfg.FacingLeft
		}
	}
	if e.HasComponent(components.Health) {
		v.Health = components.Health.Get(e).Current
	}
	return v
}
