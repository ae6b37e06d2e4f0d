package systems

import (
	"math"

	"github.com/automoto/titan-slayer/components"
	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/game"
	"github.com/automoto/titan-slayer/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdatePhysics applies gravity to the player and resolves it against walls,
// vertical axis first.
func UpdatePhysics(s *game.State) {
	player, ok := s.Player()
	if !ok {
		return
	}
	physics := components.Physics.Get(player)
	body := components.Body.Get(player)

	physics.SpeedY -= cfg.Physics.Gravity

	// Vertical
	body.Y += physics.SpeedY
	if walls := s.Registry.Overlapping(player, cfg.CategoryWall); len(walls) > 0 {
		resolveVertical(body, physics.SpeedY, walls)
		physics.SpeedY = 0
	}

	// Horizontal
	if physics.SpeedX != 0 {
		body.X += physics.SpeedX
		if walls := s.Registry.Overlapping(player, cfg.CategoryWall); len(walls) > 0 {
			resolveHorizontal(body, physics.SpeedX, walls)
		}
	}

	clampToLevel(s, body)
	s.Registry.Sync(player)
	physics.OnGround = CanJump(s)
}

// resolveVertical snaps the body to the nearest wall surface in the
// direction it was moving.
func resolveVertical(body *components.BodyData, speedY float64, walls []*donburi.Entry) {
	switch {
	case speedY < 0:
		top := math.Inf(-1)
		for _, w := range walls {
			top = math.Max(top, components.Body.Get(w).Top())
		}
		body.Y = top
	case speedY > 0:
		bottom := math.Inf(1)
		for _, w := range walls {
			bottom = math.Min(bottom, components.Body.Get(w).Bottom())
		}
		body.SetTop(bottom)
	default:
		// Not moving vertically: push out along the shorter way.
		top := math.Inf(-1)
		bottom := math.Inf(1)
		for _, w := range walls {
			wb := components.Body.Get(w)
			top = math.Max(top, wb.Top())
			bottom = math.Min(bottom, wb.Bottom())
		}
		if top-body.Bottom() <= body.Top()-bottom {
			body.Y = top
		} else {
			body.SetTop(bottom)
		}
	}
}

func resolveHorizontal(body *components.BodyData, speedX float64, walls []*donburi.Entry) {
	if speedX > 0 {
		left := math.Inf(1)
		for _, w := range walls {
			left = math.Min(left, components.Body.Get(w).Left())
		}
		body.SetRight(left)
		return
	}
	right := math.Inf(-1)
	for _, w := range walls {
		right = math.Max(right, components.Body.Get(w).Right())
	}
	body.X = right
}

// clampToLevel keeps the player's centre inside the level's horizontal limits.
func clampToLevel(s *game.State, body *components.BodyData) {
	bounds := s.Level().Bounds
	if bounds.W == 0 {
		return
	}
	ts := cfg.C.TileSize
	lo := bounds.Left() + cfg.Player.MinCenterTiles*ts
	hi := bounds.Right() - cfg.Player.RightLimitTiles*ts
	if hi < lo {
		hi = lo
	}
	body.SetCenter(gamemath.Clamp(body.CenterX(), lo, hi), body.CenterY())
}

// CanJump reports whether the player is standing still vertically on a wall.
func CanJump(s *game.State) bool {
	player, ok := s.Player()
	if !ok {
		return false
	}
	if components.Physics.Get(player).SpeedY != 0 {
		return false
	}
	body := components.Body.Get(player)
	probe := gamemath.Rect{X: body.X, Y: body.Y - cfg.Physics.GroundProbe, W: body.W, H: cfg.Physics.GroundProbe}
	return len(s.Registry.Query(probe, cfg.CategoryWall)) > 0
}
