package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/titan-slayer/assets"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/core"
	"github.com/automoto/titan-slayer/game"
	"github.com/automoto/titan-slayer/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// WorldScene runs the simulation once per ebiten update.
type WorldScene struct {
	sceneChanger SceneChanger
	catalog      *assets.Catalog
	startLevel   int

	sim    *core.Simulation
	snap   core.Snapshot
	banner render.Banner
}

// NewWorldScene creates a new gameplay scene
func NewWorldScene(sc SceneChanger, catalog *assets.Catalog, startLevel int) *WorldScene {
	return &WorldScene{sceneChanger: sc, catalog: catalog, startLevel: startLevel}
}

func (ws *WorldScene) configure() error {
	opts := []core.Option{}
	if ws.startLevel > 0 {
		opts = append(opts, core.WithStartLevel(ws.startLevel))
	}
	sim, err := core.New(ws.catalog, opts...)
	if err != nil {
		return err
	}
	ws.sim = sim
	ws.snap = sim.Snapshot()
	ws.banner.Show(fmt.Sprintf("Level %d: %s", ws.snap.LevelID, ws.snap.LevelName), cfg.UI.HUDTextColor)
	return nil
}

func (ws *WorldScene) Update() {
	if ws.sim == nil {
		if err := ws.configure(); err != nil {
			log.Printf("[scene] failed to start game: %v", err)
			ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger, ws.catalog, ws.startLevel))
			return
		}
	}

	dt := 1.0 / float64(ebiten.TPS())
	for _, cmd := range pollCommands(DefaultBindings, ws.toWorld) {
		ws.sim.Input(cmd)
	}
	ws.sim.Update(dt)
	ws.snap = ws.sim.Snapshot()

	for _, e := range ws.sim.Events() {
		ws.announce(e)
	}
	ws.banner.Update(float32(dt))

	if score, done := ws.sim.FinalScore(); done {
		ws.sceneChanger.ChangeScene(NewEndScene(ws.sceneChanger, ws.catalog, ws.startLevel, ws.snap.State, score, ws.snap.LevelID))
	}
}

func (ws *WorldScene) toWorld(x, y int) (float64, float64) {
	return render.ToWorld(x, y, ws.snap.ViewLeft, ws.snap.ViewBottom)
}

// announce shows a banner for events worth telling the player about.
func (ws *WorldScene) announce(e game.Event) {
	switch e.Kind {
	case cfg.EventDoorOpened:
		ws.banner.Show("Level cleared! Find the door", color.RGBA{120, 230, 120, 255})
	case cfg.EventLevelAdvanced:
		ws.banner.Show(fmt.Sprintf("Level %d: %s", ws.snap.LevelID, ws.snap.LevelName), cfg.UI.HUDTextColor)
	case cfg.EventBossArena:
		ws.banner.Show("Bert has arrived", color.RGBA{230, 40, 40, 255})
	case cfg.EventStrength:
		ws.banner.Show("Strength x2", cfg.UI.CategoryColors[cfg.CategoryStrengthPickup])
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	if ws.sim == nil {
		screen.Fill(color.Black)
		return
	}
	render.DrawWorld(screen, ws.snap)
	render.DrawHUD(screen, ws.snap)
	ws.banner.Draw(screen)
}
