package components

import (
	"github.com/automoto/titan-slayer/config"
	"github.com/yohamta/donburi"
)

type PickupData struct {
	Kind config.PickupKind
}

// TileData remembers the map cell and code an entity was built from.
type TileData struct {
	Row, Col int
	Code     int
}

var (
	Pickup = donburi.NewComponentType[PickupData]()
	Tile   = donburi.NewComponentType[TileData]()
)
