package render

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/core"
	"github.com/automoto/titan-slayer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawHUD renders the player's stats along the top of the screen.
func DrawHUD(screen *ebiten.Image, snap core.Snapshot) {
	face := fonts.HUD.Face()
	lineHeight := cfg.UI.HUDFontSize + 4

	vector.FillRect(screen, 0, 0, float32(cfg.C.Width), float32(lineHeight*2+8), color.RGBA{0, 0, 0, 140}, false)

	left := fmt.Sprintf("Lives: %d   Score: %d   Bullets: %d", snap.Lives, snap.Score, snap.Bullets)
	drawText(screen, left, face, 10, 4, cfg.UI.HUDTextColor)

	right := fmt.Sprintf("Level %d  %s   Titans left: %d", snap.LevelID, snap.LevelName, snap.EnemiesLeft)
	drawText(screen, right, face, 10, 4+lineHeight, cfg.UI.HUDTextColor)

	if snap.PotionLeft > 0 {
		potion := fmt.Sprintf("Strength x%d  %.1fs", snap.Multiplier, snap.PotionLeft)
		w, _ := text.Measure(potion, face, 0)
		drawText(screen, potion, face, float64(cfg.C.Width)-w-10, 4, cfg.UI.CategoryColors[cfg.CategoryStrengthPickup])
	}
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// DrawCentered draws s horizontally centred at y with an alpha in [0, 1].
func DrawCentered(screen *ebiten.Image, s string, face text.Face, y float64, c color.Color, alpha float32) {
	w, _ := text.Measure(s, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(cfg.C.Width)-w)/2, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, s, face, op)
}
