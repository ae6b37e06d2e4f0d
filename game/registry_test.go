package game

import (
	"testing"

	"github.com/automoto/titan-slayer/archetypes"
	"github.com/automoto/titan-slayer/components"
	"github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func newTestRegistry() (donburi.World, *Registry) {
	w := donburi.NewWorld()
	return w, NewRegistry(w, gamemath.Rect{X: 0, Y: -640, W: 1024, H: 1088})
}

func addWall(w donburi.World, r *Registry, x, y float64) *donburi.Entry {
	e := archetypes.Wall.Spawn(w)
	components.Body.SetValue(e, components.BodyData{Rect: gamemath.Rect{X: x, Y: y, W: 64, H: 64}})
	r.Add(e, config.CategoryWall)
	return e
}

func addCoin(w donburi.World, r *Registry, x, y float64) *donburi.Entry {
	e := archetypes.Coin.Spawn(w)
	components.Body.SetValue(e, components.BodyData{Rect: gamemath.Rect{X: x, Y: y, W: 32, H: 32}})
	r.Add(e, config.CategoryCoin)
	return e
}

func TestRegistryAddCount(t *testing.T) {
	w, r := newTestRegistry()
	for i := 0; i < 5; i++ {
		addWall(w, r, float64(i)*64, 0)
	}
	addCoin(w, r, 10, 100)

	assert.Equal(t, 5, r.Count(config.CategoryWall))
	assert.Equal(t, 1, r.Count(config.CategoryCoin))
	assert.Equal(t, 0, r.Count(config.CategoryHazard))

	e, ok := r.First(config.CategoryCoin)
	require.True(t, ok)
	assert.Equal(t, config.CategoryCoin, components.Category.Get(e).Category)
}

func TestRegistryRemoveDuringForEach(t *testing.T) {
	w, r := newTestRegistry()
	var walls []*donburi.Entry
	for i := 0; i < 4; i++ {
		walls = append(walls, addWall(w, r, float64(i)*64, 0))
	}

	var visited []*donburi.Entry
	r.ForEach(config.CategoryWall, func(e *donburi.Entry) {
		visited = append(visited, e)
		if e == walls[0] {
			// Removed entries stay valid until the traversal ends but are
			// not visited or returned by queries.
			r.Remove(walls[2])
			assert.True(t, walls[2].Valid())
			assert.False(t, r.Alive(walls[2]))
			assert.Empty(t, r.Query(components.Body.Get(walls[2]).Rect, config.CategoryWall))
		}
	})

	assert.Len(t, visited, 3)
	assert.NotContains(t, visited, walls[2])
	assert.False(t, walls[2].Valid(), "purged after the traversal")
	assert.Equal(t, 3, r.Count(config.CategoryWall))
}

func TestRegistryNestedTraversalPurgesOnce(t *testing.T) {
	w, r := newTestRegistry()
	wall := addWall(w, r, 0, 0)
	coin := addCoin(w, r, 200, 0)

	r.ForEach(config.CategoryWall, func(*donburi.Entry) {
		r.ForEach(config.CategoryCoin, func(c *donburi.Entry) {
			r.Remove(c)
		})
		assert.True(t, coin.Valid(), "inner traversal must not purge")
		r.Remove(wall)
	})

	assert.False(t, coin.Valid())
	assert.False(t, wall.Valid())
}

func TestRegistryRemoveIf(t *testing.T) {
	w, r := newTestRegistry()
	for i := 0; i < 6; i++ {
		addCoin(w, r, float64(i)*64, 0)
	}

	n := r.RemoveIf(config.CategoryCoin, func(e *donburi.Entry) bool {
		return components.Body.Get(e).X >= 192
	})
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, r.Count(config.CategoryCoin))

	// Removing twice is a no-op.
	first, _ := r.First(config.CategoryCoin)
	r.Remove(first)
	r.Remove(first)
	assert.Equal(t, 2, r.Count(config.CategoryCoin))
}

func TestRegistryOverlapping(t *testing.T) {
	w, r := newTestRegistry()
	wall := addWall(w, r, 64, 0)
	addWall(w, r, 256, 0)

	tests := []struct {
		name string
		rect gamemath.Rect
		want int
	}{
		{"inside", gamemath.Rect{X: 80, Y: 10, W: 20, H: 20}, 1},
		{"straddles two cells", gamemath.Rect{X: 100, Y: 30, W: 200, H: 10}, 2},
		{"touching edge only", gamemath.Rect{X: 128, Y: 0, W: 64, H: 64}, 0},
		{"resting on top", gamemath.Rect{X: 64, Y: 64, W: 40, H: 60}, 0},
		{"far away", gamemath.Rect{X: 700, Y: 300, W: 10, H: 10}, 0},
		{"partly outside the space", gamemath.Rect{X: -300, Y: 10, W: 380, H: 20}, 1},
		{"half pixel into the top across a cell line", gamemath.Rect{X: 80, Y: 63.5, W: 20, H: 20}, 1},
		{"half pixel into the side across a cell line", gamemath.Rect{X: 127.5, Y: 10, W: 20, H: 20}, 1},
		{"half pixel short of the top", gamemath.Rect{X: 80, Y: 64.5, W: 20, H: 20}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, r.Query(tt.rect, config.CategoryWall), tt.want)
		})
	}

	coin := addCoin(w, r, 70, 10)
	got := r.Overlapping(coin, config.CategoryWall)
	require.Len(t, got, 1)
	assert.Equal(t, wall, got[0])
	assert.Empty(t, r.Overlapping(coin, config.CategoryHazard))

	// Moving a body is seen after Overlapping syncs it.
	components.Body.Get(coin).X = 260
	got = r.Overlapping(coin, config.CategoryWall)
	require.Len(t, got, 1)
	assert.NotEqual(t, wall, got[0])

	r.Remove(coin)
	assert.Nil(t, r.Overlapping(coin, config.CategoryWall), "dead entries overlap nothing")
}

func TestRegistryOverlappingSubPixelContact(t *testing.T) {
	w, r := newTestRegistry()
	wall := addWall(w, r, 64, 0)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"sunk half a pixel into the top", 70, 63.5, true},
		{"pushed half a pixel into the left side", 32.5, 10, true},
		{"resting exactly on top", 70, 64, false},
		{"touching the right side", 128, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coin := addCoin(w, r, tt.x, tt.y)
			defer r.Remove(coin)

			got := r.Overlapping(coin, config.CategoryWall)
			back := r.Overlapping(wall, config.CategoryCoin)
			if tt.want {
				assert.Equal(t, []*donburi.Entry{wall}, got)
				assert.Equal(t, []*donburi.Entry{coin}, back)
			} else {
				assert.Empty(t, got)
				assert.Empty(t, back)
			}
		})
	}
}

func TestRegistryPurgeAllExceptIsIdempotent(t *testing.T) {
	w, r := newTestRegistry()
	player := archetypes.Player.Spawn(w)
	components.Body.SetValue(player, components.BodyData{Rect: gamemath.Rect{X: 0, Y: 64, W: 40, H: 60}})
	r.Add(player, config.CategoryPlayer)
	for i := 0; i < 3; i++ {
		addWall(w, r, float64(i)*64, 0)
		addCoin(w, r, float64(i)*64, 200)
	}

	r.PurgeAllExcept(config.CategoryPlayer)
	r.PurgeAllExcept(config.CategoryPlayer)

	assert.Equal(t, 0, r.Count(config.CategoryWall))
	assert.Equal(t, 0, r.Count(config.CategoryCoin))
	assert.Equal(t, 1, r.Count(config.CategoryPlayer))
	assert.True(t, r.Alive(player))
}

func TestRegistryResizeKeepsSurvivors(t *testing.T) {
	w, r := newTestRegistry()
	player := archetypes.Player.Spawn(w)
	components.Body.SetValue(player, components.BodyData{Rect: gamemath.Rect{X: 3000, Y: 0, W: 40, H: 60}})
	r.Add(player, config.CategoryPlayer)

	r.Resize(gamemath.Rect{X: 0, Y: -640, W: 4096, H: 1088})
	wall := addWall(w, r, 3000, -64)

	assert.Empty(t, r.Overlapping(player, config.CategoryWall))
	components.Body.Get(player).Y = -10
	got := r.Overlapping(player, config.CategoryWall)
	require.Len(t, got, 1)
	assert.Equal(t, wall, got[0])
}
