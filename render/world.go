// Package render draws simulation snapshots with ebiten.
package render

import (
	"image/color"

	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/core"
	"github.com/automoto/titan-slayer/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ToScreen converts a world rectangle (y-up) to screen space for a camera.
func ToScreen(r gamemath.Rect, viewLeft, viewBottom int) (x, y, w, h float32) {
	x = float32(r.Left() - float64(viewLeft))
	y = float32(float64(cfg.C.Height) - (r.Top() - float64(viewBottom)))
	return x, y, float32(r.W), float32(r.H)
}

// ToWorld converts a screen point to world space for a camera.
func ToWorld(sx, sy int, viewLeft, viewBottom int) (float64, float64) {
	return float64(sx + viewLeft), float64(cfg.C.Height - sy + viewBottom)
}

// DrawWorld fills every entity's rectangle in its category colour. The
// closed door hides the open one until it is removed.
func DrawWorld(screen *ebiten.Image, snap core.Snapshot) {
	screen.Fill(cfg.UI.BackgroundColor)

	w, h := float32(cfg.C.Width), float32(cfg.C.Height)
	for _, e := range snap.Entities {
		x, y, ew, eh := ToScreen(e.Rect, snap.ViewLeft, snap.ViewBottom)
		if x > w || y > h || x+ew < 0 || y+eh < 0 {
			continue
		}
		vector.FillRect(screen, x, y, ew, eh, entityColor(e), false)

		switch e.Category {
		case cfg.CategoryPlayer, cfg.CategoryMeleeEnemy, cfg.CategoryRangedEnemy:
			drawFacing(screen, x, y, ew, e.Facing)
		}
	}
}

func entityColor(e core.EntityView) color.RGBA {
	if e.Variant != "" {
		if typ, ok := cfg.EnemyType(e.Variant); ok {
			return typ.TintColor
		}
	}
	return cfg.UI.CategoryColors[e.Category]
}

// drawFacing marks the side an actor is facing with a small eye.
func drawFacing(screen *ebiten.Image, x, y, w float32, facing cfg.Facing) {
	const eye = 6
	ex := x + w - eye - 4
	if facing == cfg.FacingLeft {
		ex = x + 4
	}
	vector.FillRect(screen, ex, y+8, eye, eye, color.Black, false)
}
