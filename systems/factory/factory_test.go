package factory

import (
	"testing"

	"github.com/automoto/titan-slayer/assets"
	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/game"
	"github.com/automoto/titan-slayer/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileOrigin(t *testing.T) {
	tests := []struct {
		row, col  int
		left, top float64
	}{
		{row: 0, col: 0, left: 0, top: 448},
		{row: 7, col: 3, left: 192, top: 0},
		{row: 15, col: 63, left: 4032, top: -512},
	}
	for _, tt := range tests {
		left, top := TileOrigin(tt.row, tt.col)
		assert.Equal(t, tt.left, left, "row %d col %d", tt.row, tt.col)
		assert.Equal(t, tt.top, top, "row %d col %d", tt.row, tt.col)
	}
}

func TestCreateTile(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		categories []cfg.Category
		left, top  float64
		w, h       float64
	}{
		{name: "wall", code: 1, categories: []cfg.Category{cfg.CategoryWall}, left: 0, top: 448, w: 64, h: 64},
		{name: "coin", code: 7, categories: []cfg.Category{cfg.CategoryCoin}, left: 15, top: 433, w: 34, h: 34},
		{name: "health", code: 9, categories: []cfg.Category{cfg.CategoryHealthPickup}, left: 16, top: 433, w: 32, h: 34},
		{name: "lava", code: 10, categories: []cfg.Category{cfg.CategoryHazard}, left: 0, top: 426, w: 64, h: 42},
		{name: "gun", code: 12, categories: []cfg.Category{cfg.CategoryGunPickup}, left: 0, top: 423, w: 64, h: 39},
		{name: "door", code: 8, categories: []cfg.Category{cfg.CategoryDoorClosed, cfg.CategoryDoorOpen}, left: 0, top: 448, w: 64, h: 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := game.NewState(nil)
			entries := CreateTile(s, 0, 0, tt.code)
			require.Len(t, entries, len(tt.categories))

			for i, e := range entries {
				assert.Equal(t, tt.categories[i], components.Category.Get(e).Category)
				body := components.Body.Get(e)
				assert.Equal(t, tt.left, body.Left())
				assert.Equal(t, tt.top, body.Top())
				assert.Equal(t, tt.w, body.W)
				assert.Equal(t, tt.h, body.H)
				assert.Equal(t, components.TileData{Row: 0, Col: 0, Code: tt.code}, *components.Tile.Get(e))
			}
		})
	}
}

func TestCreateTilesSkipsUnknownCodes(t *testing.T) {
	s := game.NewState(nil)
	grid := leveldata.TileGrid{Rows: [][]int{
		{0, 99, 7},
		{1, 1, -3},
	}}

	unknown := CreateTiles(s, grid)

	assert.Equal(t, []leveldata.UnknownTileCode{
		{Row: 0, Col: 1, Code: 99},
		{Row: 1, Col: 2, Code: -3},
	}, unknown)
	assert.Equal(t, 2, s.Registry.Count(cfg.CategoryWall))
	assert.Equal(t, 1, s.Registry.Count(cfg.CategoryCoin))
}

func TestCreateEnemyScalesBoss(t *testing.T) {
	s := game.NewState(nil)
	e := CreateEnemy(s, assets.SpawnDescriptor{
		Kind: cfg.EnemyBoss, Variant: "bert", X: 45, Y: -6.5, Velocity: 5, Range: 6, Health: 30,
	})

	body := components.Body.Get(e)
	assert.Equal(t, 96.0, body.W)
	assert.Equal(t, 192.0, body.H)
	assert.Equal(t, 45*64.0, body.CenterX())
	assert.Equal(t, 30, components.Health.Get(e).Current)
	assert.Equal(t, cfg.CategoryMeleeEnemy, components.Category.Get(e).Category)

	enemy := components.Enemy.Get(e)
	assert.Equal(t, 45*64.0-6*64, enemy.PatrolLeft)
	assert.Equal(t, 45*64.0+6*64, enemy.PatrolRight)
}

func TestCreateRangedEnemy(t *testing.T) {
	s := game.NewState(nil)
	e := CreateEnemy(s, assets.SpawnDescriptor{
		Kind: cfg.EnemyRanged, Variant: "police", X: 3, Y: 2, Velocity: 2, Range: 1, Health: 6,
	})
	assert.Equal(t, cfg.CategoryRangedEnemy, components.Category.Get(e).Category)
	assert.Equal(t, 150, components.Enemy.Get(e).ShootInterval)
	assert.Equal(t, 1, s.Registry.Count(cfg.CategoryRangedEnemy))
}
