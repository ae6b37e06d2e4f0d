package systems

import (
	"testing"

	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoorOpensWhenLevelIsCleared(t *testing.T) {
	s := newTestState(t)
	s.Events.Drain()

	UpdateProgression(s)
	assert.Equal(t, cfg.StatePlaying, s.Progress().State)
	assert.Equal(t, 1, s.Registry.Count(cfg.CategoryDoorClosed))

	s.Level().EnemiesLeft = 0
	UpdateProgression(s)
	assert.Equal(t, cfg.StateLevelClear, s.Progress().State)
	assert.True(t, s.Level().DoorOpened)
	assert.Zero(t, s.Registry.Count(cfg.CategoryDoorClosed))
	assert.Equal(t, 1, s.Registry.Count(cfg.CategoryDoorOpen))

	UpdateProgression(s)
	assert.Equal(t, []cfg.EventKind{cfg.EventDoorOpened}, eventKinds(s.Events.Drain()), "door opens once")
}

func TestClosedDoorDoesNotAdvance(t *testing.T) {
	s := newTestState(t)
	placePlayer(s, mustPlayer(t, s), 704)

	UpdateProgression(s)
	assert.Equal(t, 1, s.Level().ID)
	assert.Equal(t, cfg.StatePlaying, s.Progress().State)
}

func TestOpenDoorAdvancesLevel(t *testing.T) {
	s := newTestState(t)
	player := mustPlayer(t, s)
	p := components.Player.Get(player)
	p.Score = 7
	p.Bullets = 3
	p.AttackMultiplier = 2
	components.Lives.Get(player).Lives = 2
	components.Physics.Get(player).SpeedX = 4

	s.Level().EnemiesLeft = 0
	placePlayer(s, player, 704)
	s.Events.Drain()

	UpdateProgression(s)

	assert.Equal(t, 2, s.Level().ID)
	assert.Equal(t, "second", s.Level().Name)
	assert.Equal(t, cfg.StatePlaying, s.Progress().State)
	assert.False(t, s.Level().DoorOpened)
	assert.Equal(t, 1, s.Registry.Count(cfg.CategoryDoorClosed))
	assert.Zero(t, s.Registry.Count(cfg.CategoryMeleeEnemy))

	again := mustPlayer(t, s)
	assert.Equal(t, player.Entity(), again.Entity(), "player survives the load")
	assert.Equal(t, 1, s.Registry.Count(cfg.CategoryPlayer))

	body := components.Body.Get(player)
	assert.Equal(t, 4*64.0, body.CenterX())
	assert.Equal(t, 5.5*64, body.CenterY())
	assert.Zero(t, components.Physics.Get(player).SpeedX)
	assert.Equal(t, 7, p.Score)
	assert.Equal(t, 3, p.Bullets)
	assert.Equal(t, 2, p.AttackMultiplier)
	assert.Equal(t, 2, components.Lives.Get(player).Lives)

	assert.Equal(t, []cfg.EventKind{cfg.EventDoorOpened, cfg.EventLevelAdvanced}, eventKinds(s.Events.Drain()))
}

func TestFinalDoorIsVictory(t *testing.T) {
	s := newTestState(t)
	require.NoError(t, LoadLevel(s, 2))
	player := mustPlayer(t, s)
	components.Player.Get(player).Score = 42
	placePlayer(s, player, 704)

	UpdateProgression(s)

	assert.Equal(t, cfg.StateVictory, s.Progress().State)
	assert.Equal(t, 42, s.Progress().FinalScore)
	assert.Contains(t, eventKinds(s.Events.Drain()), cfg.EventVictory)
}

func TestGameOverTakesPriority(t *testing.T) {
	s := newTestState(t)
	player := mustPlayer(t, s)
	components.Lives.Get(player).Lives = 0
	components.Player.Get(player).Score = 9
	s.Level().EnemiesLeft = 0
	placePlayer(s, player, 704)

	UpdateProgression(s)

	assert.Equal(t, cfg.StateGameOver, s.Progress().State)
	assert.Equal(t, 9, s.Progress().FinalScore)
	assert.False(t, s.Level().DoorOpened)
	assert.Equal(t, 1, s.Level().ID)
}

func TestTerminalStatesFreeze(t *testing.T) {
	for _, state := range []cfg.MachineState{cfg.StateVictory, cfg.StateGameOver} {
		t.Run(state.String(), func(t *testing.T) {
			s := newTestState(t)
			s.Progress().State = state
			s.Level().EnemiesLeft = 0
			placePlayer(s, mustPlayer(t, s), 704)
			s.Events.Drain()

			UpdateProgression(s)

			assert.Equal(t, state, s.Progress().State)
			assert.False(t, s.Level().DoorOpened)
			assert.Empty(t, s.Events.Drain())
		})
	}
}

func TestBossArenaAnnouncedOnce(t *testing.T) {
	s := newTestState(t)
	player := mustPlayer(t, s)
	s.Level().BossArenaX = 400
	s.Events.Drain()

	UpdateProgression(s)
	assert.False(t, s.Level().BossAnnounce)

	placePlayer(s, player, 420)
	UpdateProgression(s)
	UpdateProgression(s)
	assert.True(t, s.Level().BossAnnounce)
	assert.Equal(t, []cfg.EventKind{cfg.EventBossArena}, eventKinds(s.Events.Drain()))
}
