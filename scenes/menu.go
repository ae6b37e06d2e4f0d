package scenes

import (
	"image/color"

	"github.com/automoto/titan-slayer/assets"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/fonts"
	"github.com/automoto/titan-slayer/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene is the title screen.
type MenuScene struct {
	sceneChanger SceneChanger
	catalog      *assets.Catalog
	startLevel   int
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, catalog *assets.Catalog, startLevel int) *MenuScene {
	return &MenuScene{sceneChanger: sc, catalog: catalog, startLevel: startLevel}
}

func (ms *MenuScene) Update() {
	if menuConfirmed() {
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, ms.catalog, ms.startLevel))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	h := float64(cfg.C.Height)
	render.DrawCentered(screen, "TITAN SLAYER", fonts.Title.Face(), h/3, color.RGBA{255, 210, 0, 255}, 1)
	render.DrawCentered(screen, "Press Enter to start", fonts.HUD.Face(), h/2, cfg.UI.HUDTextColor, 1)
	render.DrawCentered(screen, "Arrows/WASD move and jump   Left click swing   Right click shoot",
		fonts.HUD.Face(), h-60, color.RGBA{180, 180, 180, 255}, 1)
}
