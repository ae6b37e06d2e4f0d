package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// AimVelocity returns a velocity of the given speed pointing from (fromX, fromY)
// toward (toX, toY). A zero-length aim fires along +x.
func AimVelocity(fromX, fromY, toX, toY, speed float64) dmath.Vec2 {
	angle := math.Atan2(toY-fromY, toX-fromX)
	return dmath.NewVec2(math.Cos(angle)*speed, math.Sin(angle)*speed)
}
