package scenes

import (
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBinding maps an action to the keys that trigger it.
type KeyBinding struct {
	Action cfg.ActionID
	Keys   []ebiten.Key
}

// DefaultBindings are the keyboard controls. Melee and ranged attacks also
// go to the mouse buttons, aimed at the cursor.
var DefaultBindings = []KeyBinding{
	{Action: cfg.ActionMoveLeft, Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}},
	{Action: cfg.ActionMoveRight, Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}},
	{Action: cfg.ActionJump, Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW, ebiten.KeySpace}},
}

// pollCommands turns this frame's key and mouse edges into commands.
// toWorld maps the cursor to world space.
func pollCommands(bindings []KeyBinding, toWorld func(x, y int) (float64, float64)) []game.Command {
	var cmds []game.Command
	for _, b := range bindings {
		for _, k := range b.Keys {
			if inpututil.IsKeyJustPressed(k) {
				cmds = append(cmds, game.Press(b.Action))
				break
			}
			if inpututil.IsKeyJustReleased(k) && !anyPressed(b.Keys) {
				cmds = append(cmds, game.Release(b.Action))
				break
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cmds = append(cmds, game.MeleeAt(toWorld(ebiten.CursorPosition())))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		cmds = append(cmds, game.ShootAt(toWorld(ebiten.CursorPosition())))
	}
	return cmds
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func menuConfirmed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}
