package components

import "github.com/yohamta/donburi"

// CameraData is the viewport's bottom-left corner in world space.
type CameraData struct {
	ViewLeft   int
	ViewBottom int
}

var Camera = donburi.NewComponentType[CameraData]()
