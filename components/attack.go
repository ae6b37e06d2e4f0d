package components

import "github.com/yohamta/donburi"

// AttackData is a melee swing. It hits once and expires after a lifetime.
type AttackData struct {
	Age float64 // seconds
}

var Attack = donburi.NewComponentType[AttackData]()
