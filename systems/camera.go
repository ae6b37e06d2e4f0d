package systems

import (
	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/game"
)

// UpdateCamera scrolls the viewport by exactly how far the player has left
// the dead zone on each axis. Offsets are truncated to whole pixels.
func UpdateCamera(s *game.State) {
	player, ok := s.Player()
	if !ok {
		return
	}
	body := components.Body.Get(player)
	camera := s.Camera()

	viewLeft := float64(camera.ViewLeft)
	viewBottom := float64(camera.ViewBottom)
	screenWidth := float64(cfg.C.Width)
	screenHeight := float64(cfg.C.Height)

	// Scroll left
	leftBoundary := viewLeft + cfg.Camera.LeftMargin
	if body.Left() < leftBoundary {
		viewLeft -= leftBoundary - body.Left()
	}

	// Scroll right
	rightBoundary := viewLeft + screenWidth - cfg.Camera.RightMargin
	if body.Right() > rightBoundary {
		viewLeft += body.Right() - rightBoundary
	}

	// Scroll up
	topBoundary := viewBottom + screenHeight - cfg.Camera.TopMargin
	if body.Top() > topBoundary {
		viewBottom += body.Top() - topBoundary
	}

	// Scroll down
	bottomBoundary := viewBottom + cfg.Camera.BottomMargin
	if body.Bottom() < bottomBoundary {
		viewBottom -= bottomBoundary - body.Bottom()
	}

	camera.ViewLeft = int(viewLeft)
	camera.ViewBottom = int(viewBottom)
}
