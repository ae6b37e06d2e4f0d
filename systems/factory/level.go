package factory

import (
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/shared/gamemath"
	"github.com/automoto/titan-slayer/shared/leveldata"
)

// LevelBounds is the world rectangle covered by grid.
func LevelBounds(grid leveldata.TileGrid) gamemath.Rect {
	ts := cfg.C.TileSize
	_, top := TileOrigin(0, 0)
	h := float64(grid.Height()) * ts
	return gamemath.Rect{
		X: 0,
		Y: top - h,
		W: float64(grid.Width()) * ts,
		H: h,
	}
}
