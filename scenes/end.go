package scenes

import (
	"log"

	"github.com/automoto/titan-slayer/assets"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// EndScene shows the final score using ebitenui.
type EndScene struct {
	sceneChanger SceneChanger
	catalog      *assets.Catalog
	startLevel   int

	panel        *ui.EndPanel
	shouldReplay bool
	shouldMenu   bool
}

// NewEndScene creates the end screen for a finished game.
func NewEndScene(sc SceneChanger, catalog *assets.Catalog, startLevel int, state cfg.MachineState, finalScore, levelID int) *EndScene {
	es := &EndScene{sceneChanger: sc, catalog: catalog, startLevel: startLevel}

	panel, err := ui.NewEndPanel(state, finalScore, levelID,
		func() { es.shouldReplay = true },
		func() { es.shouldMenu = true },
	)
	if err != nil {
		log.Printf("[scene] end panel unavailable: %v", err)
	}
	es.panel = panel
	return es
}

func (es *EndScene) Update() {
	if es.panel == nil {
		es.shouldMenu = true
	} else {
		es.panel.Update()
	}

	switch {
	case es.shouldReplay || menuConfirmed():
		es.sceneChanger.ChangeScene(NewWorldScene(es.sceneChanger, es.catalog, es.startLevel))
	case es.shouldMenu:
		es.sceneChanger.ChangeScene(NewMenuScene(es.sceneChanger, es.catalog, es.startLevel))
	}
}

func (es *EndScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)
	if es.panel == nil {
		return
	}
	es.panel.UI.Draw(screen)
}
