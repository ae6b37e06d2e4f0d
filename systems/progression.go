package systems

import (
	"log"

	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/game"
	"github.com/yohamta/donburi"
)

// UpdateProgression advances the level machine. Game over is checked first
// and wins over every other transition in the same tick.
func UpdateProgression(s *game.State) {
	progress := s.Progress()
	if progress.State.Terminal() {
		return
	}
	player, ok := s.Player()
	if !ok {
		return
	}
	p := components.Player.Get(player)
	body := components.Body.Get(player)

	if components.Lives.Get(player).Dead() {
		finish(s, progress, cfg.StateGameOver, p.Score)
		return
	}

	level := s.Level()
	if level.EnemiesLeft <= 0 && !level.DoorOpened {
		openDoor(s, level, progress)
	}

	if level.BossArenaX > 0 && !level.BossAnnounce && body.CenterX() >= level.BossArenaX {
		level.BossAnnounce = true
		s.Emit(cfg.EventBossArena, body.CenterX(), body.CenterY(), level.ID)
	}

	if !level.DoorOpened || len(s.Registry.Overlapping(player, cfg.CategoryDoorOpen)) == 0 {
		return
	}

	if s.Catalog.IsFinal(level.ID) {
		finish(s, progress, cfg.StateVictory, p.Score)
		return
	}

	next, ok := s.Catalog.Next(level.ID)
	if !ok {
		finish(s, progress, cfg.StateVictory, p.Score)
		return
	}
	progress.State = cfg.StateTransitioning
	if err := LoadLevel(s, next); err != nil {
		log.Printf("[progression] failed to load level %d: %v", next, err)
		progress.State = cfg.StateLevelClear
		return
	}
	progress.State = cfg.StatePlaying
	s.Emit(cfg.EventLevelAdvanced, body.CenterX(), body.CenterY(), next)
}

// openDoor removes the closed doors once the level is cleared.
func openDoor(s *game.State, level *components.LevelData, progress *components.ProgressData) {
	s.Registry.RemoveIf(cfg.CategoryDoorClosed, func(*donburi.Entry) bool { return true })
	level.DoorOpened = true
	progress.State = cfg.StateLevelClear

	x, y := 0.0, 0.0
	if door, ok := s.Registry.First(cfg.CategoryDoorOpen); ok {
		body := components.Body.Get(door)
		x, y = body.CenterX(), body.CenterY()
	}
	s.Emit(cfg.EventDoorOpened, x, y, level.ID)
}

func finish(s *game.State, progress *components.ProgressData, state cfg.MachineState, score int) {
	progress.State = state
	progress.FinalScore = score

	kind := cfg.EventGameOver
	if state == cfg.StateVictory {
		kind = cfg.EventVictory
	}
	s.Emit(kind, 0, 0, score)
}
