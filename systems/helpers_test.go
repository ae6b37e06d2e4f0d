package systems

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/titan-slayer/assets"
	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/game"
	"github.com/automoto/titan-slayer/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// flatMap is a 12x3 grid: open air over a floor whose top is y=320, with a
// door at the far right of the middle row.
const flatMap = `0,0,0,0,0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0,0,0,0,8
1,1,1,1,1,1,1,1,1,1,1,1
`

const twoLevels = `levels:
  - id: 1
    name: first
    map: flat.csv
    entry: [4, 5.5]
    enemy_count: 1
    enemies:
      - {type: titan, x: 10, y: 6, velocity: 0, range: 0, health: 3}
  - id: 2
    name: second
    map: flat.csv
    entry: [4, 5.5]
    enemy_count: 0
`

const groundTop = 320.0

func testCatalog(t *testing.T) *assets.Catalog {
	t.Helper()
	fsys := fstest.MapFS{
		"catalog.yaml": {Data: []byte(twoLevels)},
		"flat.csv":     {Data: []byte(flatMap)},
	}
	c, err := assets.LoadCatalog(fsys, "catalog.yaml")
	require.NoError(t, err)
	return c
}

func newTestState(t *testing.T) *game.State {
	t.Helper()
	s := game.NewState(testCatalog(t))
	require.NoError(t, LoadLevel(s, 1))
	s.DT = 1.0 / 60
	return s
}

func mustPlayer(t *testing.T, s *game.State) *donburi.Entry {
	t.Helper()
	p, ok := s.Player()
	require.True(t, ok)
	return p
}

func mustFirst(t *testing.T, s *game.State, c cfg.Category) *donburi.Entry {
	t.Helper()
	e, ok := s.Registry.First(c)
	require.True(t, ok, "no %s", c)
	return e
}

// runTick runs every system in simulation order.
func runTick(s *game.State) {
	UpdateInput(s)
	UpdatePhysics(s)
	UpdateObjects(s)
	UpdateTimers(s)
	UpdateEnemies(s)
	UpdateProjectiles(s)
	UpdateObjects(s)
	UpdateCombat(s)
	UpdatePickups(s)
	UpdateProgression(s)
	UpdateCamera(s)
}

func runTicks(s *game.State, n int) {
	for range n {
		runTick(s)
	}
}

// settle lets the player fall onto the floor.
func settle(t *testing.T, s *game.State) {
	t.Helper()
	for range 10 {
		UpdatePhysics(s)
	}
	require.Equal(t, groundTop, components.Body.Get(mustPlayer(t, s)).Bottom())
}

func placePlayer(s *game.State, player *donburi.Entry, cx float64) {
	factory.PlacePlayer(s, player, cx, groundTop+cfg.Player.CollisionHeight/2)
}

func eventKinds(events []game.Event) []cfg.EventKind {
	out := make([]cfg.EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}
