package systems

import (
	"testing"

	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/game"
	"github.com/automoto/titan-slayer/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerLandsOnFloor(t *testing.T) {
	s := newTestState(t)
	player := mustPlayer(t, s)

	assert.False(t, CanJump(s), "spawned in the air")
	settle(t, s)

	physics := components.Physics.Get(player)
	assert.Zero(t, physics.SpeedY)
	assert.True(t, physics.OnGround)
	assert.True(t, CanJump(s))
}

func TestStandingPlayerStaysGrounded(t *testing.T) {
	s := newTestState(t)
	player := mustPlayer(t, s)
	settle(t, s)

	for tick := range 30 {
		UpdatePhysics(s)
		physics := components.Physics.Get(player)
		require.Equal(t, groundTop, components.Body.Get(player).Bottom(), "tick %d", tick)
		require.Zero(t, physics.SpeedY, "tick %d", tick)
		require.True(t, physics.OnGround, "tick %d", tick)
		require.True(t, CanJump(s), "tick %d", tick)
	}
}

func TestJumpHonouredOnAnyStandingTick(t *testing.T) {
	for offset := range 4 {
		s := newTestState(t)
		player := mustPlayer(t, s)
		settle(t, s)

		for range offset {
			UpdatePhysics(s)
		}
		s.Commands = append(s.Commands, game.Press(cfg.ActionJump))
		UpdateInput(s)
		assert.Equal(t, cfg.Player.JumpSpeed, components.Physics.Get(player).SpeedY, "after %d standing ticks", offset)
	}
}

func TestJumpRequiresGround(t *testing.T) {
	s := newTestState(t)
	player := mustPlayer(t, s)
	physics := components.Physics.Get(player)

	s.Commands = append(s.Commands, game.Press(cfg.ActionJump))
	UpdateInput(s)
	assert.NotEqual(t, cfg.Player.JumpSpeed, physics.SpeedY)

	settle(t, s)
	s.Events.Drain()
	s.Commands = append(s.Commands, game.Press(cfg.ActionJump))
	UpdateInput(s)
	assert.Equal(t, cfg.Player.JumpSpeed, physics.SpeedY)
	assert.Equal(t, []cfg.EventKind{cfg.EventJump}, eventKinds(s.Events.Drain()))

	// Rises then lands again.
	UpdatePhysics(s)
	assert.Greater(t, components.Body.Get(player).Bottom(), groundTop)
	for range 60 {
		UpdatePhysics(s)
	}
	assert.Equal(t, groundTop, components.Body.Get(player).Bottom())
}

func TestWallBlocksHorizontalMovement(t *testing.T) {
	s := newTestState(t)
	player := mustPlayer(t, s)
	settle(t, s)

	// Column 6 of the middle row spans x 384..448.
	factory.CreateTile(s, 1, 6, 1)

	s.Commands = append(s.Commands, game.Press(cfg.ActionMoveRight))
	for range 60 {
		UpdateInput(s)
		UpdatePhysics(s)
	}

	body := components.Body.Get(player)
	assert.Equal(t, 384.0, body.Right())
	assert.Equal(t, groundTop, body.Bottom())
}

func TestPlayerCentreIsClampedToLevel(t *testing.T) {
	tests := []struct {
		name   string
		action cfg.ActionID
		want   float64
	}{
		{name: "left limit is four tiles", action: cfg.ActionMoveLeft, want: 4 * 64},
		{name: "right limit is one tile from the edge", action: cfg.ActionMoveRight, want: 12*64 - 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t)
			player := mustPlayer(t, s)
			settle(t, s)

			s.Commands = append(s.Commands, game.Press(tt.action))
			for range 200 {
				UpdateInput(s)
				UpdatePhysics(s)
			}
			assert.Equal(t, tt.want, components.Body.Get(player).CenterX())
		})
	}
}

func TestReleaseStopsMovement(t *testing.T) {
	s := newTestState(t)
	player := mustPlayer(t, s)
	settle(t, s)

	s.Commands = append(s.Commands, game.Press(cfg.ActionMoveRight))
	UpdateInput(s)
	require.Equal(t, cfg.Player.MoveSpeed, components.Physics.Get(player).SpeedX)
	assert.Equal(t, cfg.FacingRight, components.Player.Get(player).Facing)

	s.Commands = append(s.Commands, game.Press(cfg.ActionMoveLeft))
	UpdateInput(s)
	assert.Zero(t, components.Physics.Get(player).SpeedX, "both held")
	assert.Equal(t, cfg.FacingLeft, components.Player.Get(player).Facing)

	s.Commands = append(s.Commands, game.Release(cfg.ActionMoveRight), game.Release(cfg.ActionMoveLeft))
	UpdateInput(s)
	assert.Zero(t, components.Physics.Get(player).SpeedX)
}
