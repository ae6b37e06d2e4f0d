package systems

import (
	"math"
	"testing"

	"github.com/automoto/titan-slayer/assets"
	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatrolStaysWithinRange(t *testing.T) {
	s := newTestState(t)
	e := factory.CreateEnemy(s, assets.SpawnDescriptor{
		Kind: cfg.EnemyMelee, Variant: "titan", X: 8, Y: 6, Velocity: 2, Range: 1, Health: 3,
	})
	enemy := components.Enemy.Get(e)
	body := components.Body.Get(e)
	require.Equal(t, 512.0-64, enemy.PatrolLeft)
	require.Equal(t, 512.0+64, enemy.PatrolRight)

	reversals := 0
	last := enemy.SpeedX
	for range 300 {
		UpdateEnemies(s)
		assert.GreaterOrEqual(t, body.Left(), enemy.PatrolLeft-2)
		assert.LessOrEqual(t, body.Right(), enemy.PatrolRight+2)
		if enemy.SpeedX != last {
			reversals++
			last = enemy.SpeedX
		}
	}
	assert.Greater(t, reversals, 4)
}

func TestPatrolReversesOnFirstCrossing(t *testing.T) {
	s := newTestState(t)
	e := factory.CreateEnemy(s, assets.SpawnDescriptor{
		Kind: cfg.EnemyMelee, Variant: "titan", X: 8, Y: 6, Velocity: 2, Range: 1, Health: 3,
	})
	enemy := components.Enemy.Get(e)

	// Right edge starts at 544 and the bound is 576.
	for range 16 {
		UpdateEnemies(s)
	}
	assert.Equal(t, 2.0, enemy.SpeedX)
	UpdateEnemies(s)
	assert.Equal(t, -2.0, enemy.SpeedX)
}

func TestRangedEnemyFiresOnInterval(t *testing.T) {
	s := newTestState(t)
	e := factory.CreateEnemy(s, assets.SpawnDescriptor{
		Kind: cfg.EnemyRanged, Variant: "police", X: 9, Y: 5.5, Velocity: 0, Range: 0, Health: 6,
	})
	require.Equal(t, 1, s.Registry.Count(cfg.CategoryRangedEnemy))
	interval := components.Enemy.Get(e).ShootInterval
	require.Equal(t, 150, interval)

	for range interval - 1 {
		UpdateEnemies(s)
	}
	assert.Zero(t, s.Registry.Count(cfg.CategoryEnemyBullet))

	UpdateEnemies(s)
	bullet := mustFirst(t, s, cfg.CategoryEnemyBullet)
	v := components.Velocity.Get(bullet)
	assert.Less(t, v.X, 0.0, "player is to the left")
	assert.InDelta(t, 5.0, math.Hypot(v.X, v.Y), 1e-9)
	assert.Contains(t, eventKinds(s.Events.Drain()), cfg.EventEnemyShot)

	for range interval {
		UpdateEnemies(s)
	}
	assert.Equal(t, 2, s.Registry.Count(cfg.CategoryEnemyBullet))
}

func TestMeleeEnemiesNeverFire(t *testing.T) {
	s := newTestState(t)
	for range 1000 {
		UpdateEnemies(s)
	}
	assert.Zero(t, s.Registry.Count(cfg.CategoryEnemyBullet))
}
