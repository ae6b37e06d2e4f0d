package main

import (
	"fmt"
	"image"

	"github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/fonts"
	"github.com/automoto/titan-slayer/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Start the game in a window.

Controls:
  Left/A, Right/D   - Move
  Up/W/Space        - Jump
  Left click        - Swing toward the cursor
  Right click       - Shoot toward the cursor (needs bullets)`,
	RunE: runPlay,
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func runPlay(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	if flagLevel != 0 {
		if _, ok := catalog.Level(flagLevel); !ok {
			return fmt.Errorf("unknown level %d", flagLevel)
		}
	}
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	g := &Game{}
	g.scene = scenes.NewMenuScene(g, catalog, flagLevel)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Titan Slayer")
	ebiten.SetTPS(config.C.TickRate)

	logger.Info("starting game", "levels", len(catalog.IDs()), "start", flagLevel)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game exited: %w", err)
	}
	return nil
}
