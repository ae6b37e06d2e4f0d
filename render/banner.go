package render

import (
	"image/color"

	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Banner is a centred message that fades out.
type Banner struct {
	text  string
	color color.Color
	alpha float32
	fade  *gween.Tween
}

// Show replaces the current message and restarts the fade.
func (b *Banner) Show(s string, c color.Color) {
	b.text = s
	b.color = c
	b.alpha = 1
	b.fade = gween.New(1, 0, cfg.UI.BannerFadeSeconds, ease.InQuad)
}

// Update advances the fade by dt seconds.
func (b *Banner) Update(dt float32) {
	if b.fade == nil {
		return
	}
	alpha, done := b.fade.Update(dt)
	b.alpha = alpha
	if done {
		b.fade = nil
		b.text = ""
	}
}

// Visible reports whether a message is on screen.
func (b *Banner) Visible() bool {
	return b.text != ""
}

func (b *Banner) Draw(screen *ebiten.Image) {
	if !b.Visible() {
		return
	}
	DrawCentered(screen, b.text, fonts.Banner.Face(), float64(cfg.C.Height)/3, b.color, b.alpha)
}
