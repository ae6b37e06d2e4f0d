package components

import (
	"github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BodyData is an entity's bounding box in world space (y-up).
type BodyData struct {
	gamemath.Rect
}

// SetCenter moves the body so its centre is (cx, cy).
func (b *BodyData) SetCenter(cx, cy float64) {
	b.X = cx - b.W/2
	b.Y = cy - b.H/2
}

// SetTop moves the body so its top edge is at y.
func (b *BodyData) SetTop(y float64) {
	b.Y = y - b.H
}

// SetRight moves the body so its right edge is at x.
func (b *BodyData) SetRight(x float64) {
	b.X = x - b.W
}

// ObjectData is the resolv broadphase shadow of a body. The registry keeps it
// in sync with BodyData.
type ObjectData struct {
	*resolv.Object
}

// CategoryData records which registry partition an entity lives in.
type CategoryData struct {
	Category config.Category
}

var (
	Body     = donburi.NewComponentType[BodyData]()
	Object   = donburi.NewComponentType[ObjectData]()
	Category = donburi.NewComponentType[CategoryData]()
)
