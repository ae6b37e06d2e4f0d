package factory

import (
	"github.com/automoto/titan-slayer/archetypes"
	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/game"
	"github.com/automoto/titan-slayer/shared/gamemath"
	"github.com/automoto/titan-slayer/shared/leveldata"
	"github.com/yohamta/donburi"
)

type spawner interface {
	Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry
}

var tileArchetypes = map[cfg.Category]spawner{
	cfg.CategoryWall:           archetypes.Wall,
	cfg.CategoryCoin:           archetypes.Coin,
	cfg.CategoryHealthPickup:   archetypes.HealthPickup,
	cfg.CategoryStrengthPickup: archetypes.StrengthPickup,
	cfg.CategoryGunPickup:      archetypes.GunPickup,
	cfg.CategoryDoorClosed:     archetypes.DoorClosed,
	cfg.CategoryDoorOpen:       archetypes.DoorOpen,
	cfg.CategoryHazard:         archetypes.Hazard,
}

// TileOrigin returns the world-space left and top edges of a map cell.
func TileOrigin(row, col int) (left, top float64) {
	ts := cfg.C.TileSize
	return float64(col) * ts, float64(cfg.C.MapHeight-row) * ts
}

// CreateTile spawns the entities for one map cell. Unrecognized codes create nothing.
func CreateTile(s *game.State, row, col, code int) []*donburi.Entry {
	specs := cfg.Tiles[code]
	if len(specs) == 0 {
		return nil
	}

	left, top := TileOrigin(row, col)
	out := make([]*donburi.Entry, 0, len(specs))
	for _, spec := range specs {
		arch, ok := tileArchetypes[spec.Category]
		if !ok {
			continue
		}
		e := arch.Spawn(s.World)
		components.Body.SetValue(e, components.BodyData{
			Rect: gamemath.RectFromTopLeft(left+spec.OffsetX, top-spec.OffsetY, spec.Width, spec.Height),
		})
		components.Tile.SetValue(e, components.TileData{Row: row, Col: col, Code: code})
		if kind, isPickup := cfg.PickupKindFor[spec.Category]; isPickup {
			components.Pickup.SetValue(e, components.PickupData{Kind: kind})
		}
		s.Registry.Add(e, spec.Category)
		out = append(out, e)
	}
	return out
}

// CreateTiles spawns every cell of grid and reports the codes it could not place.
func CreateTiles(s *game.State, grid leveldata.TileGrid) []leveldata.UnknownTileCode {
	for row := range grid.Rows {
		for col, code := range grid.Rows[row] {
			if leveldata.Known(code) {
				CreateTile(s, row, col, code)
			}
		}
	}
	return grid.UnknownCodes()
}
